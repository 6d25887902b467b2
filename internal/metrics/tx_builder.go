// Package metrics exposes application metrics collectors.
package metrics

import (
	"time"

	"github.com/goodnatureofminers/blockinsight7000-txbuilder/internal/utxo/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	txBuilderOperationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "tx_builder",
		Name:      "operations_total",
		Help:      "Count of transaction builder operations.",
	}, []string{"operation", "network", "status"})

	txBuilderOperationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "tx_builder",
		Name:      "operation_duration_seconds",
		Help:      "Duration of transaction builder operations.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "network", "status"})

	txBuilderSignBatchSize = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "tx_builder",
		Name:      "sign_batch_size",
		Help:      "Number of inputs signed per batch request.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 10), // 1..512
	}, []string{"network", "status"})
)

// TxBuilder tracks metrics for transaction building and signing.
type TxBuilder struct {
	network model.Network
}

// NewTxBuilder constructs a metrics collector for the transaction builder.
func NewTxBuilder(network model.Network) *TxBuilder {
	if network == "" {
		network = "unknown"
	}
	return &TxBuilder{network: network}
}

// Observe records a single operation outcome and duration.
func (m TxBuilder) Observe(operation string, err error, started time.Time) {
	status := statusLabel(err)
	txBuilderOperationsTotal.WithLabelValues(operation, string(m.network), status).Inc()
	txBuilderOperationDuration.WithLabelValues(operation, string(m.network), status).
		Observe(time.Since(started).Seconds())
}

// ObserveSignBatch records the size of a batch signing request.
func (m TxBuilder) ObserveSignBatch(err error, inputs int, started time.Time) {
	m.Observe("sign_batch", err, started)
	txBuilderSignBatchSize.WithLabelValues(string(m.network), statusLabel(err)).Observe(float64(inputs))
}

func statusLabel(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}
