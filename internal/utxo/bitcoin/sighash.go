package bitcoin

import (
	"bytes"
	"crypto/sha256"
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/txscript"
	"github.com/btcsuite/btcd/wire"
	"github.com/goodnatureofminers/blockinsight7000-txbuilder/internal/utxo/model"
)

const sigHashBaseMask = 0x1f

// SighashCalculator computes the digest a signature for one input commits to.
type SighashCalculator interface {
	Calc(tx *wire.MsgTx, sc model.SigningContext, hashType txscript.SigHashType) ([]byte, error)
}

var sighashCalculators = map[model.SigningScheme]SighashCalculator{
	model.SigningLegacy: legacySighash{},
	model.SigningP2WPKH: witnessKeyHashSighash{},
	model.SigningP2WSH:  witnessScriptHashSighash{},
}

// ParseSigningScheme resolves a scheme name case-insensitively.
func ParseSigningScheme(name string) (model.SigningScheme, error) {
	scheme := model.SigningScheme(strings.ToLower(strings.TrimSpace(name)))
	if _, ok := sighashCalculators[scheme]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedSigningScheme, name)
	}
	return scheme, nil
}

// NormalizeSigHashType maps an arbitrary 32-bit sighash value onto one of the
// six standard flags the same way the consensus decoder does: bits outside
// 0x9f are ignored and an unknown base type becomes ALL, keeping
// ANYONECANPAY.
func NormalizeSigHashType(n uint32) txscript.SigHashType {
	masked := txscript.SigHashType(n) & (sigHashBaseMask | txscript.SigHashAnyOneCanPay)
	switch masked & sigHashBaseMask {
	case txscript.SigHashAll, txscript.SigHashNone, txscript.SigHashSingle:
		return masked
	default:
		return txscript.SigHashAll | masked&txscript.SigHashAnyOneCanPay
	}
}

// CalcSignatureHash returns the 32-byte digest for the input selected by
// sc.InputIndex under sc.Scheme. The transaction is not modified.
func CalcSignatureHash(tx *wire.MsgTx, sc model.SigningContext, hashType txscript.SigHashType) ([]byte, error) {
	calc, ok := sighashCalculators[sc.Scheme]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedSigningScheme, sc.Scheme)
	}
	if sc.InputIndex < 0 || sc.InputIndex >= len(tx.TxIn) {
		return nil, fmt.Errorf("%w: index %d, tx has %d inputs", ErrInputIndexOutOfRange, sc.InputIndex, len(tx.TxIn))
	}
	return calc.Calc(tx, sc, hashType)
}

// legacySighash is the pre-segwit whole-transaction algorithm. SIGHASH_SINGLE
// without a matching output yields the digest 0x01 00..00 instead of failing.
type legacySighash struct{}

func (legacySighash) Calc(tx *wire.MsgTx, sc model.SigningContext, hashType txscript.SigHashType) ([]byte, error) {
	if sc.PkScript == nil {
		return nil, fmt.Errorf("%w: script pub key", ErrMissingSigningParameter)
	}
	hash, err := txscript.CalcSignatureHash(sc.PkScript, hashType, tx, sc.InputIndex)
	if err != nil {
		return nil, fmt.Errorf("legacy sighash: %w", err)
	}
	return hash, nil
}

// witnessKeyHashSighash is BIP143 for a P2WPKH output. The script code is the
// P2PKH script of the 20-byte program.
type witnessKeyHashSighash struct{}

func (witnessKeyHashSighash) Calc(tx *wire.MsgTx, sc model.SigningContext, hashType txscript.SigHashType) ([]byte, error) {
	if sc.Amount == nil {
		return nil, fmt.Errorf("%w: amount", ErrMissingSigningParameter)
	}
	if !txscript.IsPayToWitnessPubKeyHash(sc.PkScript) {
		return nil, fmt.Errorf("%w: script pub key is not p2wpkh", ErrScriptMismatch)
	}
	return witnessV0Sighash(tx, sc.InputIndex, sc.PkScript, *sc.Amount, hashType)
}

// witnessScriptHashSighash is BIP143 for a P2WSH output. The script code is
// the witness script as given.
type witnessScriptHashSighash struct{}

func (witnessScriptHashSighash) Calc(tx *wire.MsgTx, sc model.SigningContext, hashType txscript.SigHashType) ([]byte, error) {
	if sc.Amount == nil {
		return nil, fmt.Errorf("%w: amount", ErrMissingSigningParameter)
	}
	if sc.WitnessScript == nil {
		return nil, fmt.Errorf("%w: witness script", ErrMissingSigningParameter)
	}
	if txscript.IsPayToWitnessScriptHash(sc.PkScript) {
		scriptHash := sha256.Sum256(sc.WitnessScript)
		if !bytes.Equal(scriptHash[:], sc.PkScript[2:]) {
			return nil, fmt.Errorf("%w: witness script does not hash to the p2wsh program", ErrScriptMismatch)
		}
	}
	return witnessV0Sighash(tx, sc.InputIndex, sc.WitnessScript, *sc.Amount, hashType)
}

// witnessV0Sighash runs the BIP143 digest. The midstates do not depend on the
// spent script, so the fetcher hands btcd an empty one and NewTxSigHashes
// always computes the v0 set.
func witnessV0Sighash(tx *wire.MsgTx, idx int, script []byte, amount uint64, hashType txscript.SigHashType) ([]byte, error) {
	// Amounts travel as the raw 64-bit field, the same bits wire writes.
	amt := int64(amount)
	sigHashes := txscript.NewTxSigHashes(tx, txscript.NewCannedPrevOutputFetcher(nil, amt))
	hash, err := txscript.CalcWitnessSigHash(script, sigHashes, hashType, tx, idx, amt)
	if err != nil {
		return nil, fmt.Errorf("%w: witness script: %v", ErrScriptMismatch, err)
	}
	return hash, nil
}
