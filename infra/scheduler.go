package infra

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

const pruneTimeout = 30 * time.Second

// Pruner removes revocation entries whose tokens have already expired.
type Pruner interface {
	PruneExpired(ctx context.Context) (int64, error)
}

// NewPruneScheduler registers pruner on schedule. The caller starts and
// stops the returned scheduler.
func NewPruneScheduler(schedule string, pruner Pruner, log logrus.FieldLogger) (*cron.Cron, error) {
	c := cron.New()
	_, err := c.AddFunc(schedule, func() {
		RunPrune(context.Background(), pruner, log)
	})
	if err != nil {
		return nil, err
	}
	return c, nil
}

func RunPrune(ctx context.Context, pruner Pruner, log logrus.FieldLogger) {
	ctx, cancel := context.WithTimeout(ctx, pruneTimeout)
	defer cancel()

	removed, err := pruner.PruneExpired(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to prune revoked tokens")
		return
	}
	if removed > 0 {
		log.WithField("removed", removed).Info("Pruned expired revoked tokens")
	}
}
