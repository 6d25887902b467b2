package transport

import "github.com/goodnatureofminers/blockinsight7000-txbuilder/internal/utxo/model"

type (
	hexRequest struct {
		Hex string `json:"hex"`
	}
	scriptRequest struct {
		Script string `json:"script"`
	}
	p2shScriptSigRequest struct {
		ScriptSig    string `json:"scriptSig"`
		RedeemScript string `json:"redeemScript"`
	}
	p2wpkhScriptSigRequest struct {
		Signature string `json:"signature"`
		PublicKey string `json:"publicKey"`
	}
	opReturnRequest struct {
		Text string `json:"text"`
	}
	addressRequest struct {
		Address string        `json:"address"`
		Network model.Network `json:"network"`
	}
	witnessScriptAddressRequest struct {
		WitnessScript string        `json:"witnessScript"`
		Network       model.Network `json:"network"`
	}
	secretKeyRequest struct {
		SecretKey string `json:"secretKey"`
	}
	wifRequest struct {
		WIF string `json:"wif"`
	}
	dataRequest struct {
		Data string `json:"data"`
	}
	digestRequest struct {
		Data   string `json:"data"`
		Digest string `json:"digest"`
	}
	signBatchRequest struct {
		Requests []model.SignRequest `json:"requests"`
	}
)

type (
	hexResponse struct {
		Hex string `json:"hex"`
	}
	scriptResponse struct {
		Script string `json:"script"`
	}
	asmResponse struct {
		Asm string `json:"asm"`
	}
	sighashResponse struct {
		Sighash string `json:"sighash"`
	}
	signatureResponse struct {
		Signature string `json:"signature"`
	}
	signBatchResponse struct {
		Results []model.SignResult `json:"results"`
	}
	addressResponse struct {
		Address string `json:"address"`
	}
	publicKeyResponse struct {
		PublicKey string `json:"publicKey"`
	}
	wifResponse struct {
		SecretKey string `json:"secretKey"`
		PublicKey string `json:"publicKey"`
	}
	digestResponse struct {
		Digest string `json:"digest"`
	}
	base58CheckResponse struct {
		Encoded string `json:"encoded"`
	}
	splitResponse struct {
		Items []string `json:"items"`
	}
	healthResponse struct {
		Status string `json:"status"`
	}
)
