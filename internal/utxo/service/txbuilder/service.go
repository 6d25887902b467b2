// Package txbuilder exposes transaction building, inspection and signing
// over the hex and JSON encodings used by API clients.
package txbuilder

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/txscript"
	"github.com/goodnatureofminers/blockinsight7000-txbuilder/internal/utxo/bitcoin"
	"github.com/goodnatureofminers/blockinsight7000-txbuilder/internal/utxo/model"
	"go.uber.org/zap"
)

type Service struct {
	logger      *zap.Logger
	network     model.Network
	decoder     *bitcoin.ScriptDecoder
	metrics     Metrics
	batchSigner *batchSigner
}

func NewService(
	metrics Metrics,
	network model.Network,
	workerCount int,
	logger *zap.Logger,
) (*Service, error) {
	if metrics == nil {
		return nil, errors.New("tx builder metrics is required")
	}
	decoder, err := bitcoin.NewScriptDecoder(network)
	if err != nil {
		return nil, err
	}
	if workerCount <= 0 {
		workerCount = defaultWorkerCount
	}

	logger = logger.With(zap.String("network", string(network)))
	s := &Service{
		logger:  logger,
		network: network,
		decoder: decoder,
		metrics: metrics,
	}
	s.batchSigner = &batchSigner{
		workerCount: workerCount,
		signer:      s,
		metrics:     metrics,
		logger:      logger.Named("batchSigner"),
	}
	return s, nil
}

// EncodeTx serializes an editable transaction and returns the hex encoding.
func (s *Service) EncodeTx(tx model.Transaction) (result string, err error) {
	started := time.Now()
	defer func() {
		s.metrics.Observe(opEncodeTx, err, started)
	}()

	msgTx, err := bitcoin.FromEditable(tx)
	if err != nil {
		return "", err
	}
	raw, err := bitcoin.Encode(msgTx)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(raw), nil
}

// JSONToTxHex parses an editable transaction document and encodes it.
func (s *Service) JSONToTxHex(txJSON string) (string, error) {
	tx, err := bitcoin.ParseTransactionJSON([]byte(txJSON))
	if err != nil {
		s.metrics.Observe(opEncodeTx, err, time.Now())
		return "", err
	}
	return s.EncodeTx(tx)
}

// DecodeTx parses a hex encoded transaction into its editable form.
func (s *Service) DecodeTx(txHex string) (result model.Transaction, err error) {
	started := time.Now()
	defer func() {
		s.metrics.Observe(opDecodeTx, err, started)
	}()

	msgTx, err := bitcoin.DecodeHex(txHex)
	if err != nil {
		return model.Transaction{}, err
	}
	return bitcoin.ToEditable(msgTx)
}

// TxHexToJSON decodes a hex encoded transaction into an editable JSON document.
func (s *Service) TxHexToJSON(txHex string) (string, error) {
	tx, err := s.DecodeTx(txHex)
	if err != nil {
		return "", err
	}
	data, err := json.Marshal(tx)
	if err != nil {
		return "", fmt.Errorf("marshal transaction: %w", err)
	}
	return string(data), nil
}

func (s *Service) ScriptToAsm(scriptHex string) (result string, err error) {
	started := time.Now()
	defer func() {
		s.metrics.Observe(opScriptAsm, err, started)
	}()

	script, err := bitcoin.ParseHex(scriptHex)
	if err != nil {
		return "", err
	}
	return bitcoin.DisasmScript(script), nil
}

func (s *Service) ScriptInfo(scriptHex string) (result model.ScriptInfo, err error) {
	started := time.Now()
	defer func() {
		s.metrics.Observe(opScriptInfo, err, started)
	}()

	script, err := bitcoin.ParseHex(scriptHex)
	if err != nil {
		return model.ScriptInfo{}, err
	}
	return bitcoin.DescribeScript(script), nil
}

// SignatureHash returns the hex digest the signature for req.Index commits to.
// The secret key, if any, is ignored.
func (s *Service) SignatureHash(req model.SignRequest) (result string, err error) {
	started := time.Now()
	defer func() {
		s.metrics.Observe(opSighash, err, started)
	}()

	digest, _, err := s.sighash(req)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(digest), nil
}

// SignTx signs one input and returns <DER signature><sighash flag> as hex.
func (s *Service) SignTx(req model.SignRequest) (result string, err error) {
	started := time.Now()
	defer func() {
		s.metrics.Observe(opSignTx, err, started)
	}()

	if req.SecretKey == "" {
		return "", fmt.Errorf("%w: secret key", bitcoin.ErrMissingSigningParameter)
	}
	res, err := s.SignInput(req)
	if err != nil {
		return "", err
	}
	return res.Signature, nil
}

// SignInput computes the digest of one input and, when a secret key is
// given, its signature. The key is validated before anything is hashed.
func (s *Service) SignInput(req model.SignRequest) (model.SignResult, error) {
	var secret []byte
	if req.SecretKey != "" {
		var err error
		if secret, err = bitcoin.ParseHex(req.SecretKey); err != nil {
			return model.SignResult{}, fmt.Errorf("secret key: %w", err)
		}
		if _, err = bitcoin.ParseSecretKey(secret); err != nil {
			return model.SignResult{}, err
		}
	}

	digest, hashType, err := s.sighash(req)
	if err != nil {
		return model.SignResult{}, err
	}
	result := model.SignResult{
		Index:   req.Index,
		Sighash: hex.EncodeToString(digest),
	}
	if secret == nil {
		return result, nil
	}

	signature, err := bitcoin.AssembleSignature(digest, secret, hashType)
	if err != nil {
		return model.SignResult{}, err
	}
	result.Signature = hex.EncodeToString(signature)
	return result, nil
}

// SignInputs signs a batch of inputs concurrently. Results keep request
// order; the first failure cancels the remaining work.
func (s *Service) SignInputs(ctx context.Context, reqs []model.SignRequest) ([]model.SignResult, error) {
	return s.batchSigner.Sign(ctx, reqs)
}

func (s *Service) sighash(req model.SignRequest) ([]byte, txscript.SigHashType, error) {
	scheme, err := bitcoin.ParseSigningScheme(req.SigningType)
	if err != nil {
		return nil, 0, err
	}
	tx, err := bitcoin.FromEditable(req.Tx)
	if err != nil {
		return nil, 0, fmt.Errorf("transaction: %w", err)
	}
	sc, err := signingContext(scheme, req)
	if err != nil {
		return nil, 0, err
	}

	hashType := bitcoin.NormalizeSigHashType(req.SighashType)
	digest, err := bitcoin.CalcSignatureHash(tx, sc, hashType)
	if err != nil {
		s.logger.Debug("signature hash failed",
			zap.Uint32("index", req.Index),
			zap.String("scheme", string(scheme)),
			zap.Error(err))
		return nil, 0, err
	}
	return digest, hashType, nil
}

func signingContext(scheme model.SigningScheme, req model.SignRequest) (model.SigningContext, error) {
	pkScript, err := bitcoin.ParseHex(req.ScriptPubKey)
	if err != nil {
		return model.SigningContext{}, fmt.Errorf("script pub key: %w", err)
	}
	sc := model.SigningContext{
		Scheme:     scheme,
		InputIndex: int(req.Index),
		PkScript:   pkScript,
		Amount:     req.Amount,
	}
	if req.WitnessScript != nil {
		if sc.WitnessScript, err = bitcoin.ParseHex(*req.WitnessScript); err != nil {
			return model.SigningContext{}, fmt.Errorf("witness script: %w", err)
		}
	}
	return sc, nil
}

// AddressToScriptPubKey returns the output script for address. An empty
// network selects the service network.
func (s *Service) AddressToScriptPubKey(address string, network model.Network) (result string, err error) {
	started := time.Now()
	defer func() {
		s.metrics.Observe(opAddressScript, err, started)
	}()

	decoder, err := s.decoderFor(network)
	if err != nil {
		return "", err
	}
	script, err := decoder.AddressToScript(address)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(script), nil
}

// CreateP2WSHAddress returns the bech32 address paying to a witness script.
func (s *Service) CreateP2WSHAddress(witnessScriptHex string, network model.Network) (result string, err error) {
	started := time.Now()
	defer func() {
		s.metrics.Observe(opP2WSHAddress, err, started)
	}()

	witnessScript, err := bitcoin.ParseHex(witnessScriptHex)
	if err != nil {
		return "", err
	}
	decoder, err := s.decoderFor(network)
	if err != nil {
		return "", err
	}
	return decoder.WitnessScriptHashAddress(witnessScript)
}

func (s *Service) decoderFor(network model.Network) (*bitcoin.ScriptDecoder, error) {
	if network == "" || network == s.network {
		return s.decoder, nil
	}
	decoder, err := bitcoin.NewScriptDecoder(network)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", bitcoin.ErrInvalidAddress, err)
	}
	return decoder, nil
}

func (s *Service) SecretToPublicKeyCompressed(secretHex string) (string, error) {
	return s.hexToHex(opPublicKey, secretHex, bitcoin.CompressedPublicKey)
}

func (s *Service) WIFToECHex(wif string) (result string, err error) {
	started := time.Now()
	defer func() {
		s.metrics.Observe(opWIFSecret, err, started)
	}()

	secret, _, err := bitcoin.DecodeWIF(wif)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(secret), nil
}

func (s *Service) WIFToPublicKey(wif string) (result string, err error) {
	started := time.Now()
	defer func() {
		s.metrics.Observe(opWIFPublicKey, err, started)
	}()

	_, pubKey, err := bitcoin.DecodeWIF(wif)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(pubKey), nil
}

func (s *Service) GenerateP2SHPubKey(redeemHex string) (string, error) {
	return s.hexToHex(opP2SHScript, redeemHex, bitcoin.PayToScriptHashScript)
}

// ScriptSigForP2SH appends a push of the redeem script to scriptSig.
func (s *Service) ScriptSigForP2SH(scriptSigHex, redeemHex string) (result string, err error) {
	started := time.Now()
	defer func() {
		s.metrics.Observe(opP2SHScriptSig, err, started)
	}()

	scriptSig, err := bitcoin.ParseHex(scriptSigHex)
	if err != nil {
		return "", fmt.Errorf("script sig: %w", err)
	}
	redeem, err := bitcoin.ParseHex(redeemHex)
	if err != nil {
		return "", fmt.Errorf("redeem script: %w", err)
	}
	script, err := bitcoin.AppendPush(scriptSig, redeem)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(script), nil
}

func (s *Service) CreateP2WSHScriptPubKey(witnessScriptHex string) (string, error) {
	return s.hexToHex(opP2WSHScript, witnessScriptHex, bitcoin.PayToWitnessScriptHashScript)
}

func (s *Service) CreateP2WPKHScriptSig(signatureHex, pubKeyHex string) (result string, err error) {
	started := time.Now()
	defer func() {
		s.metrics.Observe(opP2WPKHScriptSig, err, started)
	}()

	signature, err := bitcoin.ParseHex(signatureHex)
	if err != nil {
		return "", fmt.Errorf("signature: %w", err)
	}
	pubKey, err := bitcoin.ParseHex(pubKeyHex)
	if err != nil {
		return "", fmt.Errorf("public key: %w", err)
	}
	script, err := bitcoin.WitnessKeyHashScriptSig(signature, pubKey)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(script), nil
}

// OpReturnScriptPubKey builds an OP_RETURN script carrying the UTF-8 bytes of text.
func (s *Service) OpReturnScriptPubKey(text string) (result string, err error) {
	started := time.Now()
	defer func() {
		s.metrics.Observe(opOpReturnScript, err, started)
	}()

	script, err := bitcoin.NullDataScript([]byte(text))
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(script), nil
}

func (s *Service) SplitCommaHex(text string) (result []string, err error) {
	started := time.Now()
	defer func() {
		s.metrics.Observe(opSplitCommaHex, err, started)
	}()

	return bitcoin.SplitCommaHex(text)
}

func (s *Service) Base58Check(dataHex string) (result string, err error) {
	started := time.Now()
	defer func() {
		s.metrics.Observe(opBase58Check, err, started)
	}()

	data, err := bitcoin.ParseHex(dataHex)
	if err != nil {
		return "", err
	}
	return bitcoin.Base58Check(data), nil
}

// ParseHex normalizes a whitespace tolerant hex string.
func (s *Service) ParseHex(dataHex string) (result []byte, err error) {
	started := time.Now()
	defer func() {
		s.metrics.Observe(opParseHex, err, started)
	}()

	return bitcoin.ParseHex(dataHex)
}

func (s *Service) Digest(dataHex, name string) (result string, err error) {
	started := time.Now()
	defer func() {
		s.metrics.Observe(opDigest, err, started)
	}()

	data, err := bitcoin.ParseHex(dataHex)
	if err != nil {
		return "", err
	}
	sum, err := bitcoin.Digest(data, name)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(sum), nil
}

func (s *Service) hexToHex(operation, inputHex string, fn func([]byte) ([]byte, error)) (result string, err error) {
	started := time.Now()
	defer func() {
		s.metrics.Observe(operation, err, started)
	}()

	input, err := bitcoin.ParseHex(inputHex)
	if err != nil {
		return "", err
	}
	output, err := fn(input)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(output), nil
}
