package bitcoin

import (
	"crypto/sha256"
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/txscript"
	"github.com/goodnatureofminers/blockinsight7000-txbuilder/internal/utxo/model"
)

// ScriptDecoder converts between addresses and output scripts for one network.
type ScriptDecoder struct {
	params *chaincfg.Params
}

// NewScriptDecoder initializes a decoder using params of the provided network.
func NewScriptDecoder(network model.Network) (*ScriptDecoder, error) {
	params, err := chainParamsForNetwork(network)
	if err != nil {
		return nil, err
	}
	return &ScriptDecoder{params: params}, nil
}

// AddressToScript returns the output script paying to address. The address
// must belong to the decoder's network.
func (d *ScriptDecoder) AddressToScript(address string) ([]byte, error) {
	addr, err := btcutil.DecodeAddress(strings.TrimSpace(address), d.params)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAddress, err)
	}
	if !addr.IsForNet(d.params) {
		return nil, fmt.Errorf("%w: %s is not a %s address", ErrInvalidAddress, address, d.params.Name)
	}
	script, err := txscript.PayToAddrScript(addr)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAddress, err)
	}
	return script, nil
}

// WitnessScriptHashAddress returns the bech32 P2WSH address of a witness script.
func (d *ScriptDecoder) WitnessScriptHashAddress(witnessScript []byte) (string, error) {
	scriptHash := sha256.Sum256(witnessScript)
	addr, err := btcutil.NewAddressWitnessScriptHash(scriptHash[:], d.params)
	if err != nil {
		return "", fmt.Errorf("p2wsh address: %w", err)
	}
	return addr.EncodeAddress(), nil
}

func chainParamsForNetwork(network model.Network) (*chaincfg.Params, error) {
	switch strings.ToLower(string(network)) {
	case "main", "mainnet", "bitcoin":
		return &chaincfg.MainNetParams, nil
	// testnet4 shares the address prefixes of testnet3.
	case "testnet", "testnet3", "testnet4":
		return &chaincfg.TestNet3Params, nil
	case "regtest":
		return &chaincfg.RegressionNetParams, nil
	case "signet":
		return &chaincfg.SigNetParams, nil
	default:
		return nil, fmt.Errorf("unsupported network %q", network)
	}
}
