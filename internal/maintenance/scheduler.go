package maintenance

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/renoquote/quote-backend/internal/quotes/repository"
)

// Scheduler runs periodic housekeeping jobs. Currently one: a nightly
// snapshot of how many submissions arrived during the day.
type Scheduler struct {
	repo *repository.ProjectRepository
	cron *cron.Cron
}

func NewScheduler(repo *repository.ProjectRepository) *Scheduler {
	return &Scheduler{
		repo: repo,
		cron: cron.New(),
	}
}

// Start registers the jobs and launches the cron loop.
func (s *Scheduler) Start() error {
	// Just before midnight, log the day's submission count.
	if _, err := s.cron.AddFunc("59 23 * * *", s.logDailySnapshot); err != nil {
		return err
	}

	log.Println("[maintenance] scheduler started (nightly snapshot at 23:59)")
	s.cron.Start()
	return nil
}

// Stop halts the cron loop and waits for a running job to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

func (s *Scheduler) logDailySnapshot() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	now := time.Now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	count, err := s.repo.CountSince(ctx, midnight)
	if err != nil {
		log.Printf("[maintenance] daily snapshot failed: %v", err)
		return
	}
	log.Printf("[maintenance] submissions today: %d", count)
}
