/*
Package multisig implements a threshold-authorization engine for custody of
fungible value.

A fixed set of owners collectively controls a custody account. Any owner may
propose a transfer; the proposal accumulates distinct owner approvals and can
be executed by any owner once the approval count reaches the configured
threshold. Execution flips the transaction into its terminal state before the
external transfer primitive runs, which closes the window for reentrant
double execution. A failed transfer is rolled back and may be retried.

The engine keeps no in-memory state. Configuration, transactions and approval
lists are independent records in a key-value store, read-modify-written as
units within one serialized call.
*/
package multisig
