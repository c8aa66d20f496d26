package baseworker

import (
	"context"
	"runtime/debug"
	"time"

	log "github.com/sirupsen/logrus"
)

// BaseImpl ejecuta una tarea periódica hasta que el contexto del servicio se
// cancela. El primer disparo espera firstRunDelay; los siguientes, runInterval.
type BaseImpl struct {
	WorkerName    string
	firstRunDelay time.Duration
	runInterval   time.Duration
}

func NewInstance(workerName string, firstRunDelay, runInterval time.Duration) *BaseImpl {
	return &BaseImpl{
		WorkerName:    workerName,
		firstRunDelay: firstRunDelay,
		runInterval:   runInterval,
	}
}

func (i BaseImpl) GetLogger() *log.Entry {
	return log.WithField("worker_name", i.WorkerName)
}

// Run atrapa pánicos del job para que una corrida fallida no tumbe el
// servicio completo.
func (i BaseImpl) Run(ctx context.Context, jobFunc func(ctx context.Context)) {
	defer func() {
		if r := recover(); r != nil {
			i.GetLogger().
				WithField("panic_stack", string(debug.Stack())).
				Errorf("panic: (%v)", r)
		}
	}()
	logger := i.GetLogger()
	wait := i.firstRunDelay
	for {
		select {
		case <-ctx.Done():
			logger.Info("tarea detenida")
			return
		case <-time.After(wait):
			logger.Info("tarea iniciada")
			jobFunc(ctx)
			logger.Info("tarea completada")
		}
		wait = i.runInterval
	}
}
