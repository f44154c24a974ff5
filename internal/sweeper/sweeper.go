package sweeper

import (
	"context"
	"log"
	"time"
)

// Job é uma passada do sweep. A lógica de negócio mora no usecase;
// aqui só o agendamento, para que a passada possa ser testada sem
// relógio de parede.
type Job interface {
	Execute(ctx context.Context) int
}

const (
	defaultInterval     = 1 * time.Hour
	defaultStartupDelay = 15 * time.Second
)

type Sweeper struct {
	job Job

	interval     time.Duration
	startupDelay time.Duration
}

func New(job Job) *Sweeper {
	return NewWithSchedule(job, defaultStartupDelay, defaultInterval)
}

func NewWithSchedule(job Job, startupDelay, interval time.Duration) *Sweeper {
	return &Sweeper{
		job:          job,
		interval:     interval,
		startupDelay: startupDelay,
	}
}

// Start roda o sweep uma vez após o delay de startup e depois a cada
// intervalo, até o contexto ser cancelado. Nenhum estado vive entre
// ticks além do que está no storage.
func (s *Sweeper) Start(ctx context.Context) {
	go s.run(ctx)
}

func (s *Sweeper) run(ctx context.Context) {
	select {
	case <-time.After(s.startupDelay):
	case <-ctx.Done():
		return
	}

	log.Printf("sweeper: startup pass")
	s.job.Execute(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.job.Execute(ctx)
		case <-ctx.Done():
			return
		}
	}
}
