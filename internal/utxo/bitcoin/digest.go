package bitcoin

import (
	"crypto/sha1" //nolint:gosec // user-selectable digest
	"crypto/sha256"
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"golang.org/x/crypto/ripemd160" //nolint:staticcheck
)

// DigestType names a hash function selectable by the user.
type DigestType string

const (
	DigestRipemd160 DigestType = "ripemd160"
	DigestSha256    DigestType = "sha256"
	DigestSha256d   DigestType = "sha256d"
	DigestHash160   DigestType = "hash160"
	DigestSha1      DigestType = "sha1"
)

var digestFuncs = map[DigestType]func([]byte) []byte{
	DigestRipemd160: func(b []byte) []byte {
		h := ripemd160.New()
		_, _ = h.Write(b)
		return h.Sum(nil)
	},
	DigestSha256: func(b []byte) []byte {
		sum := sha256.Sum256(b)
		return sum[:]
	},
	DigestSha256d: chainhash.DoubleHashB,
	DigestHash160: btcutil.Hash160,
	DigestSha1: func(b []byte) []byte {
		sum := sha1.Sum(b) //nolint:gosec
		return sum[:]
	},
}

// Digest hashes data with the digest selected by name (case-insensitive).
func Digest(data []byte, name string) ([]byte, error) {
	fn, ok := digestFuncs[DigestType(strings.ToLower(strings.TrimSpace(name)))]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDigest, name)
	}
	return fn(data), nil
}

// Base58Check encodes data followed by the first four bytes of its double
// sha256. No version byte is prepended; callers include it in data.
func Base58Check(data []byte) string {
	checksum := chainhash.DoubleHashB(data)[:4]
	payload := make([]byte, 0, len(data)+len(checksum))
	payload = append(payload, data...)
	payload = append(payload, checksum...)
	return base58.Encode(payload)
}
