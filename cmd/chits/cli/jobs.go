package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/hibiken/asynq"

	"github.com/smk-chits/smk-chits/jobs"
)

// JobsCLI wraps manual management helpers for Asynq jobs.
type JobsCLI struct {
	client    *asynq.Client
	inspector *asynq.Inspector
}

// NewJobsCLI initialises the CLI helpers using the provided Redis address.
func NewJobsCLI(redisAddr string) (*JobsCLI, error) {
	client := asynq.NewClient(asynq.RedisClientOpt{Addr: redisAddr})
	inspector := asynq.NewInspector(asynq.RedisClientOpt{Addr: redisAddr})
	return &JobsCLI{client: client, inspector: inspector}, nil
}

// Close releases underlying resources.
func (c *JobsCLI) Close() error {
	var err error
	if c.inspector != nil {
		if closeErr := c.inspector.Close(); closeErr != nil {
			err = closeErr
		}
	}
	if c.client != nil {
		if closeErr := c.client.Close(); closeErr != nil {
			err = closeErr
		}
	}
	return err
}

// Stats prints pending and active counts for the default queue.
func (c *JobsCLI) Stats(ctx context.Context) error {
	if c == nil || c.inspector == nil {
		return errors.New("jobs cli: not initialised")
	}
	info, err := c.inspector.GetQueueInfo(jobs.QueueDefault)
	if err != nil {
		return err
	}
	fmt.Printf("queue=%s pending=%d active=%d scheduled=%d failed=%d\n",
		info.Queue, info.Pending, info.Active, info.Scheduled, info.Failed)
	return nil
}

// WarmDashboard enqueues an immediate dashboard warmup task.
func (c *JobsCLI) WarmDashboard(ctx context.Context) error {
	if c == nil || c.client == nil {
		return errors.New("jobs cli: not initialised")
	}
	info, err := c.client.EnqueueContext(ctx, jobs.NewDashboardWarmTask(), asynq.Queue(jobs.QueueDefault))
	if err != nil {
		return err
	}
	fmt.Printf("enqueued %s id=%s\n", info.Type, info.ID)
	return nil
}

// Run dispatches a jobs subcommand: stats or warm-dashboard.
func Run(ctx context.Context, redisAddr string, args []string) error {
	if len(args) == 0 {
		return errors.New("usage: chits jobs <stats|warm-dashboard>")
	}
	cli, err := NewJobsCLI(redisAddr)
	if err != nil {
		return err
	}
	defer func() { _ = cli.Close() }()

	switch args[0] {
	case "stats":
		return cli.Stats(ctx)
	case "warm-dashboard":
		return cli.WarmDashboard(ctx)
	default:
		return fmt.Errorf("unknown jobs command %q", args[0])
	}
}
