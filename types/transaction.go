package types

// TransactionResult represents a submitted wallet transaction.
// It contains the hash of the transaction and the transaction itself.
// Users of this struct should cast the transaction to the appropriate type.
type TransactionResult struct {
	Hash           string `json:"hash"`
	RawTransaction any    `json:"rawTx"`
}

// Transition is one state transition submitted as part of a batch. Exactly one of Modify or
// Execute is set. Signatures are r || s || v encoded and only cover signers without an on-chain
// approval.
type Transition struct {
	Modify     *ModifyCall
	Execute    []Call
	Signatures []Signature
}

// ModifyCall holds the arguments of an administrative transition.
type ModifyCall struct {
	Action ActionType
	Data   []byte
}
