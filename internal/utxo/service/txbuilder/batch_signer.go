package txbuilder

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-txbuilder/internal/utxo/model"
	"github.com/goodnatureofminers/blockinsight7000-txbuilder/pkg/workerpool"
	"go.uber.org/zap"
)

var ErrEmptyBatch = errors.New("sign batch is empty")

type batchSigner struct {
	workerCount int
	signer      InputSigner
	metrics     Metrics
	logger      *zap.Logger
}

func (b *batchSigner) Sign(ctx context.Context, reqs []model.SignRequest) (results []model.SignResult, err error) {
	started := time.Now()
	defer func() {
		b.metrics.ObserveSignBatch(err, len(reqs), started)
	}()

	if len(reqs) == 0 {
		return nil, ErrEmptyBatch
	}

	return workerpool.Map(ctx, min(b.workerCount, len(reqs)), reqs, func(_ context.Context, pos int, req model.SignRequest) (model.SignResult, error) {
		res, err := b.signer.SignInput(req)
		if err != nil {
			b.logger.Debug("sign input failed",
				zap.Int("position", pos),
				zap.Uint32("index", req.Index),
				zap.Error(err))
			return model.SignResult{}, fmt.Errorf("request %d: %w", pos, err)
		}
		return res, nil
	})
}
