package storage

import (
	"slices"

	"github.com/abatilo/taskmgr/internal/task"
)

// Store holds parsed tasks in category buckets. Categories are kept in
// ascending order; tasks within a bucket keep insertion order.
type Store struct {
	categories []string
	buckets    map[string][]task.Task
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{buckets: make(map[string][]task.Task)}
}

// Insert appends t to the bucket for category, creating the bucket on first use.
func (s *Store) Insert(category string, t task.Task) {
	if _, ok := s.buckets[category]; !ok {
		i, _ := slices.BinarySearch(s.categories, category)
		s.categories = slices.Insert(s.categories, i, category)
	}
	s.buckets[category] = append(s.buckets[category], t)
}

// Categories returns the category names in ascending order.
func (s *Store) Categories() []string {
	return slices.Clone(s.categories)
}

// Tasks returns the tasks in a category in insertion order.
func (s *Store) Tasks(category string) []task.Task {
	return slices.Clone(s.buckets[category])
}

// All returns every task, bucket by bucket in category order.
func (s *Store) All() []task.Task {
	var all []task.Task
	for _, category := range s.categories {
		all = append(all, s.buckets[category]...)
	}
	return all
}

// Len returns the total number of tasks.
func (s *Store) Len() int {
	n := 0
	for _, tasks := range s.buckets {
		n += len(tasks)
	}
	return n
}
