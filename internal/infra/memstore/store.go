// Package memstore provides an in-memory implementation of TaskRepository.
package memstore

import (
	"slices"
	"sync"

	"github.com/runoshun/todo/internal/domain"
)

// Ensure Store implements domain.TaskRepository.
var _ domain.TaskRepository = (*Store)(nil)

// Store keeps tasks in insertion order behind a single mutex.
// Fields are ordered to minimize memory padding.
type Store struct {
	tasks  []domain.Task
	nextID int
	mu     sync.Mutex
}

// New creates an empty Store. The first inserted task gets ID 1.
func New() *Store {
	return &Store{
		tasks:  make([]domain.Task, 0),
		nextID: 1,
	}
}

// Insert appends a pending task with the next ID.
func (s *Store) Insert(text string) domain.Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	task := domain.NewTask(s.nextID, text)
	s.nextID++
	s.tasks = append(s.tasks, task)
	return task
}

// Toggle flips the completion flag of the task with the given ID.
func (s *Store) Toggle(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return domain.NewNotFoundError(id)
	}
	s.tasks[i].Toggle()
	return nil
}

// Remove detaches the task with the given ID, keeping the order of the rest.
func (s *Store) Remove(id int) (domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return domain.Task{}, domain.NewNotFoundError(id)
	}
	task := s.tasks[i]
	s.tasks = slices.Delete(s.tasks, i, i+1)
	return task, nil
}

// Get returns a copy of the task with the given ID.
func (s *Store) Get(id int) (domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return domain.Task{}, domain.NewNotFoundError(id)
	}
	return s.tasks[i], nil
}

// List returns copies of the tasks matching filter in insertion order.
func (s *Store) List(filter domain.TaskFilter) []domain.Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]domain.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		if filter.Matches(t) {
			result = append(result, t)
		}
	}
	return result
}

// indexOf returns the slice index of the task, or -1. Caller holds mu.
func (s *Store) indexOf(id int) int {
	return slices.IndexFunc(s.tasks, func(t domain.Task) bool {
		return t.ID == id
	})
}
