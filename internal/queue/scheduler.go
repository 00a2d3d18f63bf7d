package queue

import (
	"time"

	"github.com/go-co-op/gocron"
)

// Scheduler manages periodic background jobs.
type Scheduler struct {
	scheduler *gocron.Scheduler
}

func NewScheduler() *Scheduler {
	s := gocron.NewScheduler(time.UTC)
	s.TagsUnique()
	return &Scheduler{scheduler: s}
}

func (s *Scheduler) Start() {
	s.scheduler.StartAsync()
}

func (s *Scheduler) Stop() {
	s.scheduler.Stop()
}

// ScheduleInterval registers a job to run at a fixed interval.
func (s *Scheduler) ScheduleInterval(tag string, interval time.Duration, job func() error) error {
	_, err := s.scheduler.Every(interval).Tag(tag).Do(job)
	return err
}

// RemoveJob removes a scheduled job by tag.
func (s *Scheduler) RemoveJob(tag string) error {
	return s.scheduler.RemoveByTag(tag)
}
