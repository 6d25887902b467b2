package transport

import (
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// TxBuilderServiceName is the name the tx builder reports under in the
// standard gRPC health service.
const TxBuilderServiceName = "blockinsight7000.txbuilder.v1.TxBuilderService"

// NewHealthServer returns a health server with the tx builder marked serving.
func NewHealthServer() *health.Server {
	srv := health.NewServer()
	srv.SetServingStatus(TxBuilderServiceName, healthpb.HealthCheckResponse_SERVING)
	return srv
}
