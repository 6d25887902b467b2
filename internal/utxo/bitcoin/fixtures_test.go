package bitcoin

import (
	"testing"

	"github.com/btcsuite/btcd/wire"
)

// Native P2WPKH example from BIP143: input 0 spends a P2PK output, input 1
// spends P2WPKH.
const (
	bip143UnsignedTxHex = "0100000002fff7f7881a8099afa6940d42d1e7f6362bec38171ea3edf433541db4e4ad969f0000000000eeffffffef51e1b804cc89d182d279655c3aa89e815b1b309fe287d9b2b55d57b90ec68a0100000000ffffffff02202cb206000000001976a9148280b37df378db99f66f85c95a783a76ac7a6d5988ac9093510d000000001976a9143bde42dbee7e4dbe6a21b2d50ce2f0167faa815988ac11000000"
	bip143SignedTxHex   = "01000000000102fff7f7881a8099afa6940d42d1e7f6362bec38171ea3edf433541db4e4ad969f00000000494830450221008b9d1dc26ba6a9cb62127b02742fa9d754cd3bebf337f7a55d114c8e5cdd30be022040529b194ba3f9281a99f2b1c0a19c0489bc22ede944ccf4ecbab4cc618ef3ed01eeffffffef51e1b804cc89d182d279655c3aa89e815b1b309fe287d9b2b55d57b90ec68a0100000000ffffffff02202cb206000000001976a9148280b37df378db99f66f85c95a783a76ac7a6d5988ac9093510d000000001976a9143bde42dbee7e4dbe6a21b2d50ce2f0167faa815988ac000247304402203609e17b84f6a7d30c80bfa610b5b4542f32a8a0d5447a12fb1366d7f01cc44a0220573a954c4518331561406f90300e8f3358f51928d43c212a8caed02de67eebee0121025476c2e83188368da1ff3e292e7acafcdb3566bb0ad253f62fc70f07aeee635711000000"
	bip143StrippedTxHex = "0100000002fff7f7881a8099afa6940d42d1e7f6362bec38171ea3edf433541db4e4ad969f00000000494830450221008b9d1dc26ba6a9cb62127b02742fa9d754cd3bebf337f7a55d114c8e5cdd30be022040529b194ba3f9281a99f2b1c0a19c0489bc22ede944ccf4ecbab4cc618ef3ed01eeffffffef51e1b804cc89d182d279655c3aa89e815b1b309fe287d9b2b55d57b90ec68a0100000000ffffffff02202cb206000000001976a9148280b37df378db99f66f85c95a783a76ac7a6d5988ac9093510d000000001976a9143bde42dbee7e4dbe6a21b2d50ce2f0167faa815988ac11000000"

	bip143P2WPKHScriptHex = "00141d0f172a0ecb48aee1be1f2687d2963ae33f71a1"
	bip143P2PKHScriptHex  = "76a9141d0f172a0ecb48aee1be1f2687d2963ae33f71a188ac"
	bip143P2WPKHAmount    = uint64(600_000_000)
	bip143P2WPKHSighash   = "c37af31116d1b27caf68aae9e3ac82f1477929014d5b917657d0eb49478cb670"
	bip143P2WPKHSecretHex = "619c335025c7f4012e556c2a58b2506e30b8511b53ade95ea316fd8c3286feb9"
	bip143P2WPKHPubKeyHex = "025476c2e83188368da1ff3e292e7acafcdb3566bb0ad253f62fc70f07aeee6357"
	bip143P2WPKHSigDERHex = "304402203609e17b84f6a7d30c80bfa610b5b4542f32a8a0d5447a12fb1366d7f01cc44a0220573a954c4518331561406f90300e8f3358f51928d43c212a8caed02de67eebee"

	// P2SH-P2WPKH example from BIP143.
	bip143NestedTxHex     = "0100000001db6b1b20aa0fd7b23880be2ecbd4a98130974cf4748fb66092ac4d3ceb1a54770100000000feffffff02b8b4eb0b000000001976a914a457b684d7f0d539a46a45bbc043f35b59d0d96388ac0008af2f000000001976a914fd270b1ee6abcaea97fea7ad0402e8bd8ad6d77c88ac92040000"
	bip143NestedScriptHex = "001479091972186c449eb1ded22b78e40d009bdf0089"
	bip143NestedAmount    = uint64(1_000_000_000)
	bip143NestedSighash   = "64f3b0f4dd2bb3aa1ce8566d220cc74dda9df97d8490cc81d89d735c92e59fb6"

	// secret key 1 and its compressed public key.
	unitSecretHex    = "0000000000000000000000000000000000000000000000000000000000000001"
	unitPubKeyHex    = "0279be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798"
	unitPubKeyHash   = "751e76e8199196d454941c45d1b3a323f1433bd6"
	unitSecretSigHex = "304402206673ffad2147741f04772b6f921f0ba6af0c1e77fc439e65c36dedf4092e889802204c1a971652e0ada880120ef8025e709fff2080c4a39aae068d12eed009b68c89"
)

func mustDecodeTx(t *testing.T, s string) *wire.MsgTx {
	t.Helper()
	tx, err := DecodeHex(s)
	if err != nil {
		t.Fatalf("decode tx: %v", err)
	}
	return tx
}

func mustEncodeTx(t *testing.T, tx *wire.MsgTx) []byte {
	t.Helper()
	b, err := Encode(tx)
	if err != nil {
		t.Fatalf("encode tx: %v", err)
	}
	return b
}

func uint64Ptr(v uint64) *uint64 {
	return &v
}
