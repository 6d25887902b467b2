package bitcoin

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"math"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/txscript"
	"github.com/goodnatureofminers/blockinsight7000-txbuilder/pkg/safe"
)

func buildScript(b *txscript.ScriptBuilder) ([]byte, error) {
	script, err := b.Script()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrScriptTooLarge, err)
	}
	return script, nil
}

// PayToWitnessPubKeyHashScript builds OP_0 <20-byte key hash>.
func PayToWitnessPubKeyHashScript(pubKeyHash []byte) ([]byte, error) {
	if len(pubKeyHash) != 20 {
		return nil, fmt.Errorf("%w: key hash must be 20 bytes, got %d", ErrScriptMismatch, len(pubKeyHash))
	}
	return buildScript(txscript.NewScriptBuilder().AddOp(txscript.OP_0).AddData(pubKeyHash))
}

// PayToWitnessScriptHashScript builds OP_0 <sha256(witnessScript)>.
func PayToWitnessScriptHashScript(witnessScript []byte) ([]byte, error) {
	scriptHash := sha256.Sum256(witnessScript)
	return buildScript(txscript.NewScriptBuilder().AddOp(txscript.OP_0).AddData(scriptHash[:]))
}

// PayToScriptHashScript builds OP_HASH160 <hash160(redeemScript)> OP_EQUAL.
// Redeem scripts above the push limit can never be revealed and are rejected.
func PayToScriptHashScript(redeemScript []byte) ([]byte, error) {
	if len(redeemScript) > txscript.MaxScriptElementSize {
		return nil, fmt.Errorf("%w: redeem script is %d bytes, max %d", ErrScriptTooLarge, len(redeemScript), txscript.MaxScriptElementSize)
	}
	return buildScript(txscript.NewScriptBuilder().
		AddOp(txscript.OP_HASH160).
		AddData(btcutil.Hash160(redeemScript)).
		AddOp(txscript.OP_EQUAL))
}

// pushSlice encodes data with the shortest push opcode for its length. Unlike
// ScriptBuilder.AddData, single bytes are never folded into OP_1..OP_16, so
// the pushed bytes read back verbatim.
func pushSlice(data []byte) ([]byte, error) {
	n := len(data)
	var push []byte
	switch {
	case n < txscript.OP_PUSHDATA1:
		push = []byte{byte(n)}
	case n <= math.MaxUint8:
		push = []byte{txscript.OP_PUSHDATA1, byte(n)}
	case n <= math.MaxUint16:
		push = []byte{txscript.OP_PUSHDATA2, 0, 0}
		binary.LittleEndian.PutUint16(push[1:], uint16(n))
	default:
		size, err := safe.Uint32(n)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrScriptTooLarge, err)
		}
		push = []byte{txscript.OP_PUSHDATA4, 0, 0, 0, 0}
		binary.LittleEndian.PutUint32(push[1:], size)
	}
	return append(push, data...), nil
}

func pushAll(b *txscript.ScriptBuilder, items ...[]byte) ([]byte, error) {
	for _, data := range items {
		push, err := pushSlice(data)
		if err != nil {
			return nil, err
		}
		b.AddOps(push)
	}
	return buildScript(b)
}

// AppendPush appends a push of data to an existing script.
func AppendPush(script, data []byte) ([]byte, error) {
	return pushAll(txscript.NewScriptBuilder().AddOps(script), data)
}

// WitnessKeyHashScriptSig builds <signature> <public key>. The key must be a
// valid compressed or uncompressed secp256k1 point.
func WitnessKeyHashScriptSig(signature, pubKey []byte) ([]byte, error) {
	if _, err := btcec.ParsePubKey(pubKey); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPublicKey, err)
	}
	return pushAll(txscript.NewScriptBuilder(), signature, pubKey)
}

// NullDataScript builds OP_RETURN <data>.
func NullDataScript(data []byte) ([]byte, error) {
	return pushAll(txscript.NewScriptBuilder().AddOp(txscript.OP_RETURN), data)
}
