package bitcoin

import (
	"fmt"

	"github.com/btcsuite/btcd/txscript"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
)

// ParseSecretKey parses a raw 32-byte secp256k1 scalar. Zero and values not
// below the group order are rejected.
func ParseSecretKey(b []byte) (*secp256k1.PrivateKey, error) {
	if len(b) != secp256k1.PrivKeyBytesLen {
		return nil, fmt.Errorf("%w: must be %d bytes, got %d", ErrInvalidKey, secp256k1.PrivKeyBytesLen, len(b))
	}
	var scalar secp256k1.ModNScalar
	if overflow := scalar.SetByteSlice(b); overflow {
		return nil, fmt.Errorf("%w: scalar is not below the curve order", ErrInvalidKey)
	}
	if scalar.IsZero() {
		return nil, fmt.Errorf("%w: scalar is zero", ErrInvalidKey)
	}
	return secp256k1.NewPrivateKey(&scalar), nil
}

// SignSighash returns <DER signature> <sighash flag>. The nonce is derived
// per RFC6979, so equal inputs give equal signatures.
func SignSighash(digest []byte, key *secp256k1.PrivateKey, hashType txscript.SigHashType) ([]byte, error) {
	if len(digest) != 32 {
		return nil, fmt.Errorf("%w: got %d bytes", ErrInvalidDigest, len(digest))
	}
	der := ecdsa.Sign(key, digest).Serialize()
	signature := make([]byte, 0, len(der)+1)
	signature = append(signature, der...)
	return append(signature, byte(hashType)), nil
}

// AssembleSignature parses the raw secret key and signs the digest.
func AssembleSignature(digest, secretKey []byte, hashType txscript.SigHashType) ([]byte, error) {
	key, err := ParseSecretKey(secretKey)
	if err != nil {
		return nil, err
	}
	return SignSighash(digest, key, hashType)
}
