// Package bitcoin implements Bitcoin-specific transaction logic: the editable
// transaction model, consensus encoding, script analysis and signing.
package bitcoin

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/goodnatureofminers/blockinsight7000-txbuilder/internal/utxo/model"
)

// transactionDocument mirrors model.Transaction with every field required.
type transactionDocument struct {
	Version  *int32            `json:"version"`
	LockTime *uint32           `json:"lockTime"`
	Inputs   *[]inputDocument  `json:"in"`
	Outputs  *[]outputDocument `json:"out"`
}

type inputDocument struct {
	OutpointTxID  *string   `json:"outpointTxId"`
	OutpointIndex *uint32   `json:"outpointIndex"`
	Sequence      *uint32   `json:"sequence"`
	ScriptSig     *string   `json:"scriptSig"`
	Witness       *[]string `json:"witness"`
}

type outputDocument struct {
	Amount       *uint64 `json:"amount"`
	ScriptPubKey *string `json:"scriptPubKey"`
}

// ParseTransactionJSON decodes an editable transaction from JSON. Every field
// must be present and non-null; unknown fields are rejected.
func ParseTransactionJSON(data []byte) (model.Transaction, error) {
	var doc transactionDocument
	if err := decodeStrictJSON(data, &doc); err != nil {
		return model.Transaction{}, err
	}
	if doc.Version == nil || doc.LockTime == nil || doc.Inputs == nil || doc.Outputs == nil {
		return model.Transaction{}, fmt.Errorf("%w: transaction requires version, lockTime, in and out", ErrMalformedJSON)
	}

	tx := model.Transaction{
		Version:  *doc.Version,
		LockTime: *doc.LockTime,
		Inputs:   make([]model.TransactionInput, 0, len(*doc.Inputs)),
		Outputs:  make([]model.TransactionOutput, 0, len(*doc.Outputs)),
	}
	for idx, in := range *doc.Inputs {
		if in.OutpointTxID == nil || in.OutpointIndex == nil || in.Sequence == nil || in.ScriptSig == nil || in.Witness == nil {
			return model.Transaction{}, fmt.Errorf("%w: input %d requires outpointTxId, outpointIndex, sequence, scriptSig and witness", ErrMalformedJSON, idx)
		}
		tx.Inputs = append(tx.Inputs, model.TransactionInput{
			OutpointTxID:  *in.OutpointTxID,
			OutpointIndex: *in.OutpointIndex,
			Sequence:      *in.Sequence,
			ScriptSig:     *in.ScriptSig,
			Witness:       *in.Witness,
		})
	}
	for idx, out := range *doc.Outputs {
		if out.Amount == nil || out.ScriptPubKey == nil {
			return model.Transaction{}, fmt.Errorf("%w: output %d requires amount and scriptPubKey", ErrMalformedJSON, idx)
		}
		tx.Outputs = append(tx.Outputs, model.TransactionOutput{
			Amount:       *out.Amount,
			ScriptPubKey: *out.ScriptPubKey,
		})
	}
	return tx, nil
}

// FromEditable converts the editable representation into a wire transaction.
func FromEditable(src model.Transaction) (*wire.MsgTx, error) {
	tx := wire.NewMsgTx(src.Version)
	tx.LockTime = src.LockTime

	for idx, in := range src.Inputs {
		txIn, err := inputFromEditable(in)
		if err != nil {
			return nil, fmt.Errorf("input %d: %w", idx, err)
		}
		tx.AddTxIn(txIn)
	}
	for idx, out := range src.Outputs {
		txOut, err := outputFromEditable(out)
		if err != nil {
			return nil, fmt.Errorf("output %d: %w", idx, err)
		}
		tx.AddTxOut(txOut)
	}
	return tx, nil
}

func inputFromEditable(in model.TransactionInput) (*wire.TxIn, error) {
	hash, err := ParseOutpointTxID(in.OutpointTxID)
	if err != nil {
		return nil, err
	}
	scriptSig, err := ParseHex(in.ScriptSig)
	if err != nil {
		return nil, fmt.Errorf("script sig: %w", err)
	}

	var witness wire.TxWitness
	if len(in.Witness) > 0 {
		witness = make(wire.TxWitness, 0, len(in.Witness))
		for idx, item := range in.Witness {
			b, err := ParseHex(item)
			if err != nil {
				return nil, fmt.Errorf("witness item %d: %w", idx, err)
			}
			witness = append(witness, b)
		}
	}

	txIn := wire.NewTxIn(wire.NewOutPoint(&hash, in.OutpointIndex), scriptSig, witness)
	txIn.Sequence = in.Sequence
	return txIn, nil
}

func outputFromEditable(out model.TransactionOutput) (*wire.TxOut, error) {
	pkScript, err := ParseHex(out.ScriptPubKey)
	if err != nil {
		return nil, fmt.Errorf("script pub key: %w", err)
	}
	// The wire value is the same 64 bits reinterpreted; no supply bound applies.
	return wire.NewTxOut(int64(out.Amount), pkScript), nil
}

// ToEditable converts a wire transaction into its editable representation.
func ToEditable(tx *wire.MsgTx) (model.Transaction, error) {
	result := model.Transaction{
		Version:  tx.Version,
		LockTime: tx.LockTime,
		Inputs:   make([]model.TransactionInput, 0, len(tx.TxIn)),
		Outputs:  make([]model.TransactionOutput, 0, len(tx.TxOut)),
	}

	for _, in := range tx.TxIn {
		witness := make([]string, 0, len(in.Witness))
		for _, item := range in.Witness {
			witness = append(witness, hex.EncodeToString(item))
		}
		result.Inputs = append(result.Inputs, model.TransactionInput{
			OutpointTxID:  in.PreviousOutPoint.Hash.String(),
			OutpointIndex: in.PreviousOutPoint.Index,
			Sequence:      in.Sequence,
			ScriptSig:     hex.EncodeToString(in.SignatureScript),
			Witness:       witness,
		})
	}

	for _, out := range tx.TxOut {
		result.Outputs = append(result.Outputs, model.TransactionOutput{
			Amount:       uint64(out.Value),
			ScriptPubKey: hex.EncodeToString(out.PkScript),
		})
	}
	return result, nil
}

// ParseOutpointTxID parses a txid in display order (byte-reversed) and
// requires exactly 32 bytes.
func ParseOutpointTxID(s string) (chainhash.Hash, error) {
	b, err := ParseHex(s)
	if err != nil {
		return chainhash.Hash{}, fmt.Errorf("%w: %v", ErrInvalidOutpointID, err)
	}
	if len(b) != chainhash.HashSize {
		return chainhash.Hash{}, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidOutpointID, len(b), chainhash.HashSize)
	}
	var hash chainhash.Hash
	for i := range b {
		hash[chainhash.HashSize-1-i] = b[i]
	}
	return hash, nil
}

func decodeStrictJSON(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedJSON, err)
	}
	if dec.More() {
		return fmt.Errorf("%w: trailing data after object", ErrMalformedJSON)
	}
	return nil
}
