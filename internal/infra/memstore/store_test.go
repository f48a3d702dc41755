package memstore

import (
	"sync"
	"testing"

	"github.com/runoshun/todo/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func texts(tasks []domain.Task) []string {
	out := make([]string, len(tasks))
	for i, t := range tasks {
		out[i] = t.Text
	}
	return out
}

func TestStore_Insert_AssignsIncreasingIDs(t *testing.T) {
	s := New()

	a := s.Insert("Learn Rust")
	b := s.Insert("Understand ownership")
	c := s.Insert("Master pattern matching")

	assert.Equal(t, []int{1, 2, 3}, []int{a.ID, b.ID, c.ID})
	assert.False(t, c.Completed)

	all := s.List(domain.FilterAll)
	require.Len(t, all, 3)
	last := all[len(all)-1]
	assert.Equal(t, "Master pattern matching", last.Text)
	assert.False(t, last.Completed)
}

func TestStore_Insert_EmptyTextAllowed(t *testing.T) {
	s := New()

	task := s.Insert("")

	assert.Equal(t, 1, task.ID)
	assert.Equal(t, "", task.Text)
}

func TestStore_Insert_IDsNeverReused(t *testing.T) {
	s := New()
	s.Insert("a")
	second := s.Insert("b")

	_, err := s.Remove(second.ID)
	require.NoError(t, err)

	third := s.Insert("c")
	assert.Equal(t, 3, third.ID, "removed ids are not reissued")
}

func TestStore_Toggle(t *testing.T) {
	s := New()
	s.Insert("a")

	require.NoError(t, s.Toggle(1))
	got, err := s.Get(1)
	require.NoError(t, err)
	assert.True(t, got.Completed)

	require.NoError(t, s.Toggle(1))
	got, err = s.Get(1)
	require.NoError(t, err)
	assert.False(t, got.Completed)
}

func TestStore_Toggle_NotFound(t *testing.T) {
	s := New()
	s.Insert("a")
	before := s.List(domain.FilterAll)

	err := s.Toggle(99)

	assert.ErrorIs(t, err, domain.ErrTaskNotFound)
	var nf *domain.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, 99, nf.ID)
	assert.Equal(t, before, s.List(domain.FilterAll))
}

func TestStore_Remove_PreservesOrder(t *testing.T) {
	s := New()
	s.Insert("a")
	s.Insert("b")
	s.Insert("c")

	removed, err := s.Remove(2)

	require.NoError(t, err)
	assert.Equal(t, "b", removed.Text)
	assert.Equal(t, []string{"a", "c"}, texts(s.List(domain.FilterAll)))
}

func TestStore_Remove_NotFound(t *testing.T) {
	s := New()
	s.Insert("a")

	_, err := s.Remove(5)

	assert.ErrorIs(t, err, domain.ErrTaskNotFound)
	assert.Equal(t, []string{"a"}, texts(s.List(domain.FilterAll)))
}

func TestStore_Get_NotFound(t *testing.T) {
	_, err := New().Get(1)
	assert.ErrorIs(t, err, domain.ErrTaskNotFound)
}

func TestStore_List_Filters(t *testing.T) {
	s := New()
	s.Insert("a")
	s.Insert("b")
	s.Insert("c")
	require.NoError(t, s.Toggle(1))
	require.NoError(t, s.Toggle(3))

	all := s.List(domain.FilterAll)
	completed := s.List(domain.FilterCompleted)
	pending := s.List(domain.FilterPending)

	assert.Equal(t, []string{"a", "c"}, texts(completed))
	assert.Equal(t, []string{"b"}, texts(pending))
	assert.Equal(t, len(all), len(completed)+len(pending))
	for _, c := range completed {
		assert.NotContains(t, pending, c)
	}
}

func TestStore_List_ReturnsCopies(t *testing.T) {
	s := New()
	s.Insert("a")

	list := s.List(domain.FilterAll)
	list[0].Completed = true
	list[0].Text = "mutated"

	got, err := s.Get(1)
	require.NoError(t, err)
	assert.Equal(t, "a", got.Text)
	assert.False(t, got.Completed)
}

func TestStore_ConcurrentInsert(t *testing.T) {
	s := New()
	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Insert("x")
		}()
	}
	wg.Wait()

	all := s.List(domain.FilterAll)
	require.Len(t, all, 50)
	seen := make(map[int]bool)
	for _, task := range all {
		assert.False(t, seen[task.ID], "duplicate id %d", task.ID)
		seen[task.ID] = true
	}
}
