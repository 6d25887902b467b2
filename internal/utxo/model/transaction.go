// Package model defines the editable, JSON-facing transaction models.
package model

// Transaction is the human-editable form of a transaction. Byte strings are
// hex encoded and amounts are satoshis.
type Transaction struct {
	Version  int32               `json:"version"`
	LockTime uint32              `json:"lockTime"`
	Inputs   []TransactionInput  `json:"in"`
	Outputs  []TransactionOutput `json:"out"`
}

// TransactionInput describes a reference to a previous transaction output.
type TransactionInput struct {
	// OutpointTxID is displayed in reversed byte order, as block explorers do.
	OutpointTxID  string   `json:"outpointTxId"`
	OutpointIndex uint32   `json:"outpointIndex"`
	Sequence      uint32   `json:"sequence"`
	ScriptSig     string   `json:"scriptSig"`
	Witness       []string `json:"witness"`
}

// TransactionOutput represents an output produced by a transaction.
type TransactionOutput struct {
	Amount       uint64 `json:"amount"`
	ScriptPubKey string `json:"scriptPubKey"`
}
