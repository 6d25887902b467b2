package bitcoin

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/btcsuite/btcd/wire"
)

// Encode serializes a transaction with the consensus encoding. The segwit
// marker, flag and witness stacks are written only when some input carries
// a witness.
func Encode(tx *wire.MsgTx) ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow(tx.SerializeSize())
	if err := tx.Serialize(&buf); err != nil {
		return nil, fmt.Errorf("serialize transaction: %w", err)
	}
	return buf.Bytes(), nil
}

// EncodeNoWitness serializes a transaction in the legacy format, dropping
// witness data.
func EncodeNoWitness(tx *wire.MsgTx) ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow(tx.SerializeSizeStripped())
	if err := tx.SerializeNoWitness(&buf); err != nil {
		return nil, fmt.Errorf("serialize transaction: %w", err)
	}
	return buf.Bytes(), nil
}

// Decode parses a consensus encoded transaction. The whole input must be
// consumed.
func Decode(data []byte) (*wire.MsgTx, error) {
	r := bytes.NewReader(data)
	tx := &wire.MsgTx{}
	if err := tx.Deserialize(r); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, fmt.Errorf("%w: %v", ErrTruncatedTransaction, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidTransaction, err)
	}
	if r.Len() != 0 {
		return nil, fmt.Errorf("%w: %d trailing bytes", ErrInvalidTransaction, r.Len())
	}
	return tx, nil
}

// DecodeHex parses a hex encoded consensus transaction.
func DecodeHex(s string) (*wire.MsgTx, error) {
	data, err := ParseHex(s)
	if err != nil {
		return nil, err
	}
	return Decode(data)
}
