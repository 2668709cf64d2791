/*
Package cash is a minimal token ledger: integer balances per (account, token)
pair with deposit and move operations.

It is the default transfer primitive wired into the multisig engine. Hosts
with their own value-transfer mechanism implement multisig.TokenMover
instead.
*/
package cash
