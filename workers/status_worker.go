package workers

import (
	"context"
	"log"
	"time"

	"github.com/go-co-op/gocron/v2"

	"solcraft-backend/models"
	"solcraft-backend/storage"
)

// StartStatusScheduler advances tournament statuses on time: upcoming → live
// once the start time passes, live → completed once the end time passes.
// Transitions only ever move forward; a store outage just skips the sweep.
func StartStatusScheduler(store storage.Store) (gocron.Scheduler, error) {
	sched, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}
	sched.Start()

	_, err = sched.NewJob(
		gocron.DurationJob(1*time.Minute),
		gocron.NewTask(func() {
			sweepStatuses(context.Background(), store)
		}),
	)
	if err != nil {
		return nil, err
	}
	return sched, nil
}

func sweepStatuses(ctx context.Context, store storage.Store) {
	tournaments, err := store.Tournaments(ctx)
	if err != nil {
		log.Printf("[StatusWorker] store error: %v", err)
		return
	}

	now := time.Now()
	for _, t := range tournaments {
		next := ""
		switch {
		case t.Status == models.StatusUpcoming && now.After(t.StartTime):
			next = models.StatusLive
		case t.Status == models.StatusLive && t.EndTime != nil && now.After(*t.EndTime):
			next = models.StatusCompleted
		}
		if next == "" || !models.CanTransition(t.Status, next) {
			continue
		}

		t.Status = next
		if err := store.UpdateTournament(ctx, &t); err != nil {
			log.Printf("[StatusWorker] failed to move tournament %d to %s: %v", t.ID, next, err)
		} else {
			log.Printf("✅ Tournament %q moved to %s", t.Name, next)
		}
	}
}
