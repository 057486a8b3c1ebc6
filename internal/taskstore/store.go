// Package taskstore owns the persistent personal task list.
//
// Persistence model:
//   - The whole state (tasks + id counter) is one JSON document, rewritten
//     after every mutation.
//   - A missing or unreadable file never fails startup; the store resets to
//     an empty state and logs a warning.
package taskstore

import (
	"encoding/json"
	"errors"
	"os"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// Status is the lifecycle state of a task.
type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
)

// Task is a single task record as persisted and as returned to clients.
type Task struct {
	ID          int    `json:"id"`
	Text        string `json:"text"`
	Status      Status `json:"status"`
	CreatedAt   string `json:"created_at"`
	CompletedAt string `json:"completed_at,omitempty"`
}

// state is the on-disk document shape.
type state struct {
	Tasks         []Task `json:"tasks"`
	TaskIDCounter int    `json:"task_id_counter"`
}

// Store holds the ordered task collection and the next-id counter.
// All read-modify-write cycles run under the mutex; the MCP host dispatches
// tool calls concurrently, so the lock is load-bearing.
type Store struct {
	mu     sync.Mutex
	path   string
	tasks  []Task
	nextID int
	log    logrus.FieldLogger
	now    func() time.Time
}

// Open loads the store from path. Load failures are recovered by resetting
// to an empty state; Open never returns an error.
func Open(path string, log logrus.FieldLogger) *Store {
	s := &Store{
		path:   path,
		tasks:  []Task{},
		nextID: 1,
		log:    log,
		now:    time.Now,
	}
	s.load()
	return s
}

func (s *Store) load() {
	b, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			s.log.WithError(err).WithField("path", s.path).
				Warn("failed to read task file; starting with empty task list")
		}
		return
	}
	var st state
	if err := json.Unmarshal(b, &st); err != nil {
		s.log.WithError(err).WithField("path", s.path).
			Warn("malformed task file; resetting to empty task list")
		return
	}
	if st.Tasks != nil {
		s.tasks = st.Tasks
	}
	if st.TaskIDCounter >= 1 {
		s.nextID = st.TaskIDCounter
	}
}

// save rewrites the whole document. Called with the mutex held. Write
// failures are logged and dropped; the in-memory state stays authoritative.
func (s *Store) save() {
	b, err := json.MarshalIndent(state{Tasks: s.tasks, TaskIDCounter: s.nextID}, "", "  ")
	if err != nil {
		s.log.WithError(err).Warn("failed to encode task state")
		return
	}
	if err := os.WriteFile(s.path, b, 0o644); err != nil {
		s.log.WithError(err).WithField("path", s.path).
			Warn("failed to save task file; keeping in-memory state")
	}
}

// Add appends a new pending task, assigns it the next id, and persists.
// Empty text is accepted as-is. Returns the created task and a snapshot of
// the full collection.
func (s *Store) Add(text string) (Task, []Task) {
	s.mu.Lock()
	defer s.mu.Unlock()

	task := Task{
		ID:        s.nextID,
		Text:      text,
		Status:    StatusPending,
		CreatedAt: s.now().Format(time.RFC3339),
	}
	s.tasks = append(s.tasks, task)
	s.nextID++
	s.save()
	return task, s.snapshot()
}

// Tasks returns a snapshot of the collection plus pending/completed counts.
func (s *Store) Tasks() (tasks []Task, pending, completed int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, t := range s.tasks {
		switch t.Status {
		case StatusPending:
			pending++
		case StatusCompleted:
			completed++
		}
	}
	return s.snapshot(), pending, completed
}

// Complete marks the first task with the given id as completed and persists.
// It reports false, without persisting, when no task matches.
func (s *Store) Complete(id int) ([]Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks[i].Status = StatusCompleted
			s.tasks[i].CompletedAt = s.now().Format(time.RFC3339)
			s.save()
			return s.snapshot(), true
		}
	}
	return nil, false
}

// Delete removes every task with the given id and persists. It reports
// false, without persisting, when no task matches. Ids are assigned uniquely
// so the all-matches sweep and complete's first-match are equivalent in
// practice.
func (s *Store) Delete(id int) ([]Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.tasks[:0]
	for _, t := range s.tasks {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	if len(kept) == len(s.tasks) {
		return nil, false
	}
	s.tasks = kept
	s.save()
	return s.snapshot(), true
}

// snapshot copies the collection so callers never alias the guarded slice.
// Called with the mutex held.
func (s *Store) snapshot() []Task {
	out := make([]Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}
