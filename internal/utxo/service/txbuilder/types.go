package txbuilder

import (
	"time"

	"github.com/goodnatureofminers/blockinsight7000-txbuilder/internal/utxo/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Metrics interface {
		Observe(operation string, err error, started time.Time)
		ObserveSignBatch(err error, inputs int, started time.Time)
	}
	InputSigner interface {
		SignInput(req model.SignRequest) (model.SignResult, error)
	}
)
