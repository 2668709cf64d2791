/*
Package store implements the key-value store interfaces of the custos root
package with a btree-backed in-memory engine.

MemStore gives a standalone store for tests and single-process hosts.
BTreeCacheable wraps any KVStore with savepoint support: a host cache-wraps
the store, runs one engine call against the wrap, and then either writes the
wrap back (call completed) or discards it (call never happened).
*/
package store
