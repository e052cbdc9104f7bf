package app

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"

	"fitcore/internal/domain"
	"fitcore/internal/metrics"
)

type userLister interface {
	ListUserIDs(ctx context.Context) ([]int64, error)
}

type snapshotComputer interface {
	ComputeSnapshot(ctx context.Context, userID int64, localDay string) (*domain.NutritionSnapshot, error)
}

// SnapshotJob periodically computes today's snapshot for every user.
// Failed users are skipped until the next tick.
type SnapshotJob struct {
	users     userLister
	snapshots snapshotComputer
	interval  time.Duration
	metrics   *metrics.Manager
	now       func() time.Time
}

func NewSnapshotJob(users userLister, snapshots snapshotComputer, interval time.Duration, m *metrics.Manager) *SnapshotJob {
	return &SnapshotJob{
		users:     users,
		snapshots: snapshots,
		interval:  interval,
		metrics:   m,
		now:       time.Now,
	}
}

// Run blocks, running the job every interval until ctx is done.
func (j *SnapshotJob) Run(ctx context.Context) {
	log.Printf("snapshot job started, interval: %s", j.interval)
	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("snapshot job stopped")
			return
		case <-ticker.C:
			j.RunOnce(ctx)
		}
	}
}

// RunOnce computes today's snapshot for each user and reports how many
// were stored and how many failed.
func (j *SnapshotJob) RunOnce(ctx context.Context) (stored, failed int) {
	if j.metrics != nil {
		j.metrics.CounterJobRuns.Inc()
	}

	ids, err := j.users.ListUserIDs(ctx)
	if err != nil {
		log.Errorf("snapshot job: list users: %s", err)
		return 0, 0
	}

	day := j.now().In(time.Local).Format("2006-01-02")
	for _, id := range ids {
		if ctx.Err() != nil {
			break
		}
		if _, err := j.snapshots.ComputeSnapshot(ctx, id, day); err != nil {
			failed++
			continue
		}
		stored++
	}

	log.WithFields(log.Fields{
		"day":    day,
		"stored": stored,
		"failed": failed,
	}).Info("snapshot job run finished")
	return stored, failed
}
