package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"assetflow/internal/core/application/usecases/commands"
	"assetflow/internal/core/domain/model/actor"
	"assetflow/internal/core/domain/model/kernel"

	"github.com/robfig/cron/v3"
)

// AutoAdvanceJob sweeps all processing orders on a fixed interval and
// advances each one state forward as a system registrar. Every advance goes
// through the same command handler as a manual one, so authorization,
// status checks, and the ledger append behave identically.
type AutoAdvanceJob struct {
	uowFactory     commands.TransactionUoWFactory
	advanceHandler commands.AdvanceTransactionCommandHandler
	system         actor.Actor
	interval       time.Duration
	cron           *cron.Cron
	logger         *slog.Logger
}

// NewAutoAdvanceJob creates the auto-progression job. The system actor is a
// process-scoped registrar identity minted at startup.
func NewAutoAdvanceJob(
	uowFactory commands.TransactionUoWFactory,
	advanceHandler commands.AdvanceTransactionCommandHandler,
	interval time.Duration,
	logger *slog.Logger,
) (*AutoAdvanceJob, error) {
	system, err := actor.NewActor(kernel.NewUUID(), actor.Registrar)
	if err != nil {
		return nil, err
	}

	return &AutoAdvanceJob{
		uowFactory:     uowFactory,
		advanceHandler: advanceHandler,
		system:         system,
		interval:       interval,
		cron:           cron.New(),
		logger:         logger.With("component", "auto_advance_job"),
	}, nil
}

// Start schedules the sweep at the configured interval.
func (j *AutoAdvanceJob) Start() error {
	_, err := j.cron.AddFunc(fmt.Sprintf("@every %s", j.interval), func() {
		ctx := context.Background()
		if err := j.runOnce(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Auto advance sweep failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Auto advance job started", "interval", j.interval.String())
	return nil
}

// Stop stops the job.
func (j *AutoAdvanceJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Auto advance job stopped")
}

func (j *AutoAdvanceJob) runOnce(ctx context.Context) error {
	uow := j.uowFactory.Create()
	processing, err := uow.TransactionRepository().GetAllInProcessingStatus(ctx)
	if err != nil {
		return err
	}

	for _, aggregate := range processing {
		cmd, cmdErr := commands.NewAdvanceTransactionCommand(aggregate.ID(), j.system)
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Skipping order with invalid id",
				"transaction_id", aggregate.ID().String(), "error", cmdErr)
			continue
		}

		if _, advErr := j.advanceHandler.Handle(ctx, cmd); advErr != nil {
			j.logger.ErrorContext(ctx, "Failed to advance order",
				"transaction_id", aggregate.ID().String(), "error", advErr)
		}
	}

	return nil
}
