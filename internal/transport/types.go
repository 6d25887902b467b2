package transport

import (
	"context"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-txbuilder/internal/utxo/model"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	TxBuilder interface {
		JSONToTxHex(txJSON string) (string, error)
		TxHexToJSON(txHex string) (string, error)
		SignatureHash(req model.SignRequest) (string, error)
		SignTx(req model.SignRequest) (string, error)
		SignInputs(ctx context.Context, reqs []model.SignRequest) ([]model.SignResult, error)
		ScriptInfo(scriptHex string) (model.ScriptInfo, error)
		ScriptToAsm(scriptHex string) (string, error)
		GenerateP2SHPubKey(redeemHex string) (string, error)
		ScriptSigForP2SH(scriptSigHex, redeemHex string) (string, error)
		CreateP2WSHScriptPubKey(witnessScriptHex string) (string, error)
		CreateP2WPKHScriptSig(signatureHex, pubKeyHex string) (string, error)
		OpReturnScriptPubKey(text string) (string, error)
		AddressToScriptPubKey(address string, network model.Network) (string, error)
		CreateP2WSHAddress(witnessScriptHex string, network model.Network) (string, error)
		SecretToPublicKeyCompressed(secretHex string) (string, error)
		WIFToECHex(wif string) (string, error)
		WIFToPublicKey(wif string) (string, error)
		Digest(dataHex, name string) (string, error)
		Base58Check(dataHex string) (string, error)
		SplitCommaHex(text string) ([]string, error)
		ParseHex(dataHex string) ([]byte, error)
	}
	HealthChecker interface {
		Check(ctx context.Context, req *healthpb.HealthCheckRequest) (*healthpb.HealthCheckResponse, error)
	}
	HTTPMetrics interface {
		ObserveRequest(route string, code int, started time.Time)
		ObserveThrottle(waited time.Duration)
	}
)
