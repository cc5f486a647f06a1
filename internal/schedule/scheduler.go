// Package schedule wraps robfig/cron with a named-registration guard so
// that installing the daily audit twice cannot create duplicate triggers.
package schedule

import (
	"sync"

	"github.com/robfig/cron/v3"
)

// DailySpec fires once a day at 08:00.
const DailySpec = "0 8 * * *"

type Scheduler struct {
	cron *cron.Cron

	mu      sync.Mutex
	entries map[string]cron.EntryID
}

func New() *Scheduler {
	return &Scheduler{
		cron:    cron.New(),
		entries: make(map[string]cron.EntryID),
	}
}

// Ensure registers job under name unless a registration with that name
// already exists. It reports whether a new entry was created.
func (s *Scheduler) Ensure(name, spec string, job func()) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.entries[name]; ok {
		return false, nil
	}
	id, err := s.cron.AddFunc(spec, job)
	if err != nil {
		return false, err
	}
	s.entries[name] = id
	return true, nil
}

// RemoveAll drops every registration.
func (s *Scheduler) RemoveAll() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for name, id := range s.entries {
		s.cron.Remove(id)
		delete(s.entries, name)
	}
}

// Names returns the registered entry names.
func (s *Scheduler) Names() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	names := make([]string, 0, len(s.entries))
	for name := range s.entries {
		names = append(names, name)
	}
	return names
}

func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop halts the timer and waits for a running job to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}
