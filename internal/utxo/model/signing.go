package model

// SigningScheme selects the signature hash algorithm for an input.
type SigningScheme string

const (
	SigningLegacy SigningScheme = "legacy"
	SigningP2WPKH SigningScheme = "p2wpkh"
	SigningP2WSH  SigningScheme = "p2wsh"
)

// SigningContext carries everything about the spent output that a signature
// hash commits to besides the transaction itself.
type SigningContext struct {
	Scheme        SigningScheme
	InputIndex    int
	PkScript      []byte
	Amount        *uint64
	WitnessScript []byte
}

// SignRequest is the JSON request for computing a signature hash or a
// signature for one input.
type SignRequest struct {
	Tx            Transaction `json:"tx"`
	Index         uint32      `json:"index"`
	ScriptPubKey  string      `json:"scriptPubKey"`
	SighashType   uint32      `json:"sighashType"`
	SecretKey     string      `json:"secretKey,omitempty"`
	WitnessScript *string     `json:"witnessScript,omitempty"`
	Amount        *uint64     `json:"amount,omitempty"`
	SigningType   string      `json:"signingType"`
}

// SignResult is a signature (or bare digest) for one input of a batch.
type SignResult struct {
	Index     uint32 `json:"index"`
	Sighash   string `json:"sighash"`
	Signature string `json:"signature,omitempty"`
}
