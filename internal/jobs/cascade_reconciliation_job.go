package jobs

import (
	"context"
	"errors"
	"log/slog"

	"installation/internal/core/application/usecases/commands"
	"installation/internal/core/domain/model/order"
	"installation/internal/pkg/errs"

	"github.com/robfig/cron/v3"
)

// DefaultCascadeSchedule runs reconciliation every 30 seconds.
const DefaultCascadeSchedule = "*/30 * * * * *"

// AwaitingCascadeFinder lists orders whose completion cascade is due.
type AwaitingCascadeFinder interface {
	GetAllAwaitingCascade(ctx context.Context) ([]*order.Order, error)
}

// CascadeRetrier applies the completion cascade of one order.
type CascadeRetrier interface {
	Handle(ctx context.Context, cmd commands.RetryCascadeCommand) (bool, error)
}

// CascadeReconciliationJob applies completion cascades that failed after their
// task update committed. A run that is still going when the next tick fires is
// not overlapped.
type CascadeReconciliationJob struct {
	finder   AwaitingCascadeFinder
	retrier  CascadeRetrier
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewCascadeReconciliationJob creates the job. schedule is a six-field cron
// expression with seconds; empty selects DefaultCascadeSchedule.
func NewCascadeReconciliationJob(
	finder AwaitingCascadeFinder,
	retrier CascadeRetrier,
	schedule string,
	logger *slog.Logger,
) *CascadeReconciliationJob {
	if schedule == "" {
		schedule = DefaultCascadeSchedule
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &CascadeReconciliationJob{
		finder:   finder,
		retrier:  retrier,
		schedule: schedule,
		cron: cron.New(
			cron.WithSeconds(),
			cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
		),
		logger: logger.With("component", "cascade_reconciliation_job"),
	}
}

// Start schedules the job. An invalid schedule is reported here.
func (j *CascadeReconciliationJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		if _, err := j.RunOnce(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Cascade reconciliation failed", "error", err)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Cascade reconciliation job started", "schedule", j.schedule)
	return nil
}

// Stop stops scheduling and waits for a running reconciliation to finish.
func (j *CascadeReconciliationJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Cascade reconciliation job stopped")
}

// RunOnce reconciles every due order and returns how many cascades it applied.
// A failure on one order does not stop the others; it is logged, and only the
// listing failure is returned.
func (j *CascadeReconciliationJob) RunOnce(ctx context.Context) (int, error) {
	due, err := j.finder.GetAllAwaitingCascade(ctx)
	if err != nil {
		return 0, err
	}

	applied := 0
	for _, o := range due {
		cmd, cmdErr := commands.NewReconcileCascadeCommand(o.ID())
		if cmdErr != nil {
			return applied, cmdErr
		}

		ok, retryErr := j.retrier.Handle(ctx, cmd)
		switch {
		case retryErr == nil:
			if ok {
				applied++
				j.logger.InfoContext(ctx, "Completion cascade applied", "order_id", o.ID().String())
			}
		case errors.Is(retryErr, errs.ErrVersionIsInvalid), errors.Is(retryErr, errs.ErrInvalidTransition):
			// the order moved on since it was listed
			j.logger.DebugContext(ctx, "Completion cascade skipped", "order_id", o.ID().String(), "error", retryErr)
		default:
			j.logger.WarnContext(ctx, "Completion cascade retry failed", "order_id", o.ID().String(), "error", retryErr)
		}
	}

	return applied, nil
}
