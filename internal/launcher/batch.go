package launcher

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/memelaunch/launcher/internal/scheduler"
)

// Launcher runs the launch of one account. *Pipeline implements it.
type Launcher interface {
	Launch(ctx context.Context, account Account, req LaunchRequest) (*Result, error)
}

// RunBatch launches every job and returns one outcome per job in input order. Jobs that failed
// validation while loading are reported without running. A failing job never affects the others.
func RunBatch(ctx context.Context, logger *slog.Logger, launcher Launcher, jobs []Job, mode scheduler.Mode, limit int) ([]Outcome, error) {
	total := len(jobs)

	results, err := scheduler.Run(ctx, jobs, mode, limit, func(ctx context.Context, i int, job Job) (*Result, error) {
		if job.ConfigErr != nil {
			return nil, newStageError(StageConfig, job.ConfigErr)
		}

		logger.Info(fmt.Sprintf("[%d/%d] launch %s (%s)", i+1, total, job.Request.Symbol, job.Request.Name), slog.Any("account", job.Account))

		return launcher.Launch(ctx, job.Account, job.Request)
	})
	if err != nil {
		return nil, err
	}

	outcomes := make([]Outcome, len(jobs))
	for i, res := range results {
		job := jobs[i]
		outcomes[i] = Outcome{
			Index:   job.Index,
			Account: job.Account.Address,
			Symbol:  job.Request.Symbol,
			Result:  res.Value,
			Err:     res.Err,
		}

		if res.Err != nil {
			outcomes[i].Result = nil
			logger.Error("launch failed",
				slog.Any("account", job.Account),
				slog.String("symbol", job.Request.Symbol),
				slog.String("stage", string(StageOf(res.Err))),
				slog.String("err", res.Err.Error()),
			)
		}
	}

	return outcomes, nil
}
