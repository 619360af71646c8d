package services

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/stevedore-dev/stevedore/internal/core/domain"
)

// RunManager keeps the daemon's view of past and in-flight runs together
// with their log streams. Logs are append-only; live subscribers get a
// replay of everything written so far.
type RunManager struct {
	mu   sync.Mutex
	runs map[string]*domain.PipelineRun
	logs map[string][]string
	hubs map[string]*domain.BroadcastChannel
}

func NewRunManager() *RunManager {
	return &RunManager{
		runs: map[string]*domain.PipelineRun{},
		logs: map[string][]string{},
		hubs: map[string]*domain.BroadcastChannel{},
	}
}

func (m *RunManager) Create(pipeline string, targets []string, trigger domain.RunTrigger) *domain.PipelineRun {
	m.mu.Lock()
	defer m.mu.Unlock()

	run := &domain.PipelineRun{
		ID:        uuid.NewString(),
		Pipeline:  pipeline,
		Targets:   targets,
		Status:    domain.RunStatusPending,
		Trigger:   trigger,
		StartedAt: time.Now(),
	}
	m.runs[run.ID] = run

	hub := domain.NewBroadcastChannel()
	m.hubs[run.ID] = hub
	go hub.Run()

	return run
}

func (m *RunManager) Get(id string) (*domain.PipelineRun, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	run, ok := m.runs[id]
	if !ok {
		return nil, domain.ErrRunNotFound
	}
	return run, nil
}

func (m *RunManager) List() []*domain.PipelineRun {
	m.mu.Lock()
	defer m.mu.Unlock()

	runs := make([]*domain.PipelineRun, 0, len(m.runs))
	for _, run := range m.runs {
		runs = append(runs, run)
	}
	sort.Slice(runs, func(i, j int) bool {
		return runs[i].StartedAt.After(runs[j].StartedAt)
	})
	return runs
}

func (m *RunManager) Update(run *domain.PipelineRun) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.runs[run.ID] = run
}

func (m *RunManager) Finish(run *domain.PipelineRun, err error) {
	m.mu.Lock()

	now := time.Now()
	run.FinishedAt = &now
	if err != nil {
		run.Status = domain.RunStatusFailed
		run.Error = err.Error()
	} else {
		run.Status = domain.RunStatusSucceeded
	}
	m.runs[run.ID] = run

	hub := m.hubs[run.ID]
	delete(m.hubs, run.ID)
	m.mu.Unlock()

	if hub != nil {
		close(hub.Close)
	}
}

func (m *RunManager) AppendLog(id string, line string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.logs[id] = append(m.logs[id], line)

	// broadcast inside the critical section, so a concurrent Subscribe either
	// has the line in its replay snapshot or receives the broadcast, never
	// neither and never both
	if hub := m.hubs[id]; hub != nil {
		hub.Broadcast <- []byte(line)
	}
}

func (m *RunManager) GetLog(id string) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.runs[id]; !ok {
		return nil, domain.ErrRunNotFound
	}
	lines := make([]string, len(m.logs[id]))
	copy(lines, m.logs[id])
	return lines, nil
}

// Subscribe returns a channel that replays the existing log and then follows
// the live stream. A nil message marks the end of the stream.
func (m *RunManager) Subscribe(id string) (chan *[]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	run, ok := m.runs[id]
	if !ok {
		return nil, domain.ErrRunNotFound
	}

	// the buffer covers the whole backlog so the replay below never blocks,
	// plus headroom for live lines while the reader catches up
	subscription := make(chan *[]byte, len(m.logs[id])+256)
	for _, line := range m.logs[id] {
		b := []byte(line)
		subscription <- &b
	}

	hub := m.hubs[id]
	if hub == nil || run.FinishedAt != nil {
		subscription <- nil
		close(subscription)
		return subscription, nil
	}

	// registration shares the replay's critical section, a line appended
	// concurrently cannot fall between snapshot and follow
	hub.Register <- subscription
	return subscription, nil
}

func (m *RunManager) Unsubscribe(id string, subscription chan *[]byte) {
	m.mu.Lock()
	hub := m.hubs[id]
	m.mu.Unlock()

	if hub == nil {
		return
	}
	select {
	case hub.Unregister <- subscription:
	case <-hub.Close:
		// hub already shut down between the map lookup and the send
	}
}

func (m *RunManager) ActiveCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	count := 0
	for _, run := range m.runs {
		if run.Status == domain.RunStatusPending || run.Status == domain.RunStatusRunning {
			count++
		}
	}
	return count
}
