// Package transport exposes gRPC/HTTP handlers.
package transport

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-txbuilder/internal/utxo/model"
	"github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"go.uber.org/zap"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

const maxBodyBytes = 4 << 20

// RestHandler serves the tx builder operations as JSON over HTTP.
type RestHandler struct {
	service TxBuilder
	health  HealthChecker
	metrics HTTPMetrics
	logger  *zap.Logger
}

// NewRestHandler returns a RestHandler instance.
func NewRestHandler(service TxBuilder, health HealthChecker, metrics HTTPMetrics, logger *zap.Logger) *RestHandler {
	return &RestHandler{
		service: service,
		health:  health,
		metrics: metrics,
		logger:  logger,
	}
}

type route struct {
	method string
	path   string
	handle http.HandlerFunc
}

// Register attaches every route to the gateway mux.
func (h *RestHandler) Register(mux *runtime.ServeMux) error {
	for _, rt := range h.routes() {
		if err := mux.HandlePath(rt.method, rt.path, h.observe(rt.path, rt.handle)); err != nil {
			return fmt.Errorf("register %s %s: %w", rt.method, rt.path, err)
		}
	}
	return nil
}

func (h *RestHandler) routes() []route {
	s := h.service
	post := func(path string, handle http.HandlerFunc) route {
		return route{method: http.MethodPost, path: path, handle: handle}
	}
	return []route{
		{method: http.MethodGet, path: "/v1/health", handle: h.healthCheck},

		post("/v1/tx/encode", h.encodeTx),
		post("/v1/tx/decode", handleJSON(h, func(_ context.Context, req hexRequest) (json.RawMessage, error) {
			doc, err := s.TxHexToJSON(req.Hex)
			return json.RawMessage(doc), err
		})),
		post("/v1/tx/sighash", handleJSON(h, func(_ context.Context, req model.SignRequest) (sighashResponse, error) {
			digest, err := s.SignatureHash(req)
			return sighashResponse{Sighash: digest}, err
		})),
		post("/v1/tx/sign", handleJSON(h, func(_ context.Context, req model.SignRequest) (signatureResponse, error) {
			sig, err := s.SignTx(req)
			return signatureResponse{Signature: sig}, err
		})),
		post("/v1/tx/sign-batch", handleJSON(h, func(ctx context.Context, req signBatchRequest) (signBatchResponse, error) {
			results, err := s.SignInputs(ctx, req.Requests)
			return signBatchResponse{Results: results}, err
		})),

		post("/v1/script/info", handleJSON(h, func(_ context.Context, req scriptRequest) (model.ScriptInfo, error) {
			return s.ScriptInfo(req.Script)
		})),
		post("/v1/script/asm", handleJSON(h, func(_ context.Context, req scriptRequest) (asmResponse, error) {
			asm, err := s.ScriptToAsm(req.Script)
			return asmResponse{Asm: asm}, err
		})),
		post("/v1/script/p2sh", handleJSON(h, func(_ context.Context, req scriptRequest) (scriptResponse, error) {
			script, err := s.GenerateP2SHPubKey(req.Script)
			return scriptResponse{Script: script}, err
		})),
		post("/v1/script/p2sh-sig", handleJSON(h, func(_ context.Context, req p2shScriptSigRequest) (scriptResponse, error) {
			script, err := s.ScriptSigForP2SH(req.ScriptSig, req.RedeemScript)
			return scriptResponse{Script: script}, err
		})),
		post("/v1/script/p2wsh", handleJSON(h, func(_ context.Context, req scriptRequest) (scriptResponse, error) {
			script, err := s.CreateP2WSHScriptPubKey(req.Script)
			return scriptResponse{Script: script}, err
		})),
		post("/v1/script/p2wpkh-sig", handleJSON(h, func(_ context.Context, req p2wpkhScriptSigRequest) (scriptResponse, error) {
			script, err := s.CreateP2WPKHScriptSig(req.Signature, req.PublicKey)
			return scriptResponse{Script: script}, err
		})),
		post("/v1/script/op-return", handleJSON(h, func(_ context.Context, req opReturnRequest) (scriptResponse, error) {
			script, err := s.OpReturnScriptPubKey(req.Text)
			return scriptResponse{Script: script}, err
		})),

		post("/v1/address/script", handleJSON(h, func(_ context.Context, req addressRequest) (scriptResponse, error) {
			script, err := s.AddressToScriptPubKey(req.Address, req.Network)
			return scriptResponse{Script: script}, err
		})),
		post("/v1/address/p2wsh", handleJSON(h, func(_ context.Context, req witnessScriptAddressRequest) (addressResponse, error) {
			address, err := s.CreateP2WSHAddress(req.WitnessScript, req.Network)
			return addressResponse{Address: address}, err
		})),

		post("/v1/keys/public", handleJSON(h, func(_ context.Context, req secretKeyRequest) (publicKeyResponse, error) {
			pubKey, err := s.SecretToPublicKeyCompressed(req.SecretKey)
			return publicKeyResponse{PublicKey: pubKey}, err
		})),
		post("/v1/keys/wif", handleJSON(h, func(_ context.Context, req wifRequest) (wifResponse, error) {
			secret, err := s.WIFToECHex(req.WIF)
			if err != nil {
				return wifResponse{}, err
			}
			pubKey, err := s.WIFToPublicKey(req.WIF)
			return wifResponse{SecretKey: secret, PublicKey: pubKey}, err
		})),

		post("/v1/hex/digest", handleJSON(h, func(_ context.Context, req digestRequest) (digestResponse, error) {
			digest, err := s.Digest(req.Data, req.Digest)
			return digestResponse{Digest: digest}, err
		})),
		post("/v1/hex/base58check", handleJSON(h, func(_ context.Context, req dataRequest) (base58CheckResponse, error) {
			encoded, err := s.Base58Check(req.Data)
			return base58CheckResponse{Encoded: encoded}, err
		})),
		post("/v1/hex/split", handleJSON(h, func(_ context.Context, req dataRequest) (splitResponse, error) {
			items, err := s.SplitCommaHex(req.Data)
			return splitResponse{Items: items}, err
		})),
		post("/v1/hex/parse", handleJSON(h, func(_ context.Context, req dataRequest) (hexResponse, error) {
			data, err := s.ParseHex(req.Data)
			return hexResponse{Hex: hex.EncodeToString(data)}, err
		})),
	}
}

// encodeTx takes the editable transaction document as the request body.
func (h *RestHandler) encodeTx(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		h.fail(w, fmt.Errorf("%w: %v", errMalformedBody, err))
		return
	}
	txHex, err := h.service.JSONToTxHex(string(body))
	if err != nil {
		h.fail(w, err)
		return
	}
	sendJSON(w, http.StatusOK, hexResponse{Hex: txHex})
}

func (h *RestHandler) healthCheck(w http.ResponseWriter, r *http.Request) {
	resp, err := h.health.Check(r.Context(), &healthpb.HealthCheckRequest{})
	if err != nil {
		h.fail(w, err)
		return
	}
	statusCode := http.StatusOK
	if resp.GetStatus() != healthpb.HealthCheckResponse_SERVING {
		statusCode = http.StatusServiceUnavailable
	}
	sendJSON(w, statusCode, healthResponse{Status: resp.GetStatus().String()})
}

func (h *RestHandler) fail(w http.ResponseWriter, err error) {
	statusCode, body := classifyError(err)
	if statusCode >= http.StatusInternalServerError {
		h.logger.Error("request failed", zap.Int("status", statusCode), zap.Error(err))
	} else {
		h.logger.Debug("request rejected", zap.String("code", body.Error), zap.Error(err))
	}
	sendJSON(w, statusCode, body)
}

func (h *RestHandler) observe(path string, handle http.HandlerFunc) runtime.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request, _ map[string]string) {
		started := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		handle(rec, r)
		h.metrics.ObserveRequest(path, rec.status, started)
	}
}

func handleJSON[Req, Resp any](h *RestHandler, fn func(ctx context.Context, req Req) (Resp, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req Req
		dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&req); err != nil {
			h.fail(w, fmt.Errorf("%w: %v", errMalformedBody, err))
			return
		}
		resp, err := fn(r.Context(), req)
		if err != nil {
			h.fail(w, err)
			return
		}
		sendJSON(w, http.StatusOK, resp)
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}
