package candidateworker

import (
	"context"
	"time"

	"talento-backend/config"
	"talento-backend/lib/candidate"
	baseworker "talento-backend/lib/utils/base-worker"
)

// StartWorker arranca la limpieza periódica de candidatos que nunca
// completaron el formulario dentro del período de gracia.
func StartWorker(ctx context.Context) {
	interval := time.Duration(config.Conf.Cleanup.IntervalMin) * time.Minute
	i := &impl{
		BaseImpl: *baseworker.NewInstance("CandidateCleanupWorker", 30*time.Second, interval),
	}
	go i.Run(ctx, i.handle)
}

type impl struct {
	baseworker.BaseImpl
}

func (i impl) handle(ctx context.Context) {
	logger := i.GetLogger()
	deleted, err := candidate.Instance.CleanupIncomplete()
	if err != nil {
		logger.WithError(err).Error("error en la limpieza de candidatos incompletos")
		return
	}
	if deleted > 0 {
		logger.WithField("eliminados", deleted).Info("candidatos incompletos eliminados")
	}
}
