/*
Package custos provides the shared framework types of the custody engine: the
binary Address and Condition formats, the key-value store interfaces every
component persists through, the Authenticator seam that an embedding host
implements, and the genesis Options format.

The engine itself lives in x/multisig. A host wires it together with an
Authenticator, a store and a token mover, and serializes calls against one
store; within that contract every operation runs as one indivisible unit.
*/
package custos
