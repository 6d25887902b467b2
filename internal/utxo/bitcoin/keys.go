package bitcoin

import (
	"fmt"

	"github.com/btcsuite/btcd/btcutil"
)

// CompressedPublicKey returns the 33-byte public key of a raw secret key.
func CompressedPublicKey(secretKey []byte) ([]byte, error) {
	key, err := ParseSecretKey(secretKey)
	if err != nil {
		return nil, err
	}
	return key.PubKey().SerializeCompressed(), nil
}

// DecodeWIF decodes a WIF string into the raw secret key and the public key
// serialized as the WIF compression flag requests.
func DecodeWIF(wif string) (secretKey, pubKey []byte, err error) {
	decoded, err := btcutil.DecodeWIF(wif)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrInvalidKey, err)
	}
	return decoded.PrivKey.Serialize(), decoded.SerializePubKey(), nil
}
