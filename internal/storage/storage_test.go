//nolint:testpackage // Tests require internal access for thorough testing
package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abatilo/taskmgr/internal/task"
)

func names(tasks []task.Task) []string {
	out := make([]string, len(tasks))
	for i, t := range tasks {
		out[i] = t.Name()
	}
	return out
}

func TestInsertKeepsCategoriesSorted(t *testing.T) {
	store := NewStore()

	store.Insert("work", task.New("a", "x"))
	store.Insert("home", task.New("b", "x"))
	store.Insert("errands", task.New("c", "x"))
	store.Insert("work", task.New("d", "x"))

	assert.Equal(t, []string{"errands", "home", "work"}, store.Categories())
	assert.Equal(t, 4, store.Len())
}

func TestInsertPreservesBucketOrder(t *testing.T) {
	store := NewStore()

	store.Insert("work", task.New("first", "x"))
	store.Insert("home", task.New("other", "x"))
	store.Insert("work", task.New("second", "x"))
	store.Insert("work", task.New("third", "x"))

	assert.Equal(t, []string{"first", "second", "third"}, names(store.Tasks("work")))
	assert.Equal(t, []string{"other"}, names(store.Tasks("home")))
	assert.Empty(t, store.Tasks("missing"))
}

func TestAllFlattensInCategoryOrder(t *testing.T) {
	store := NewStore()

	store.Insert("b", task.New("b1", "x"))
	store.Insert("a", task.New("a1", "x"))
	store.Insert("b", task.New("b2", "x"))
	store.Insert("a", task.New("a2", "x"))

	assert.Equal(t, []string{"a1", "a2", "b1", "b2"}, names(store.All()))
}

func TestCategoriesIsACopy(t *testing.T) {
	store := NewStore()
	store.Insert("a", task.New("a1", "x"))

	cats := store.Categories()
	require.Len(t, cats, 1)
	cats[0] = "mutated"

	assert.Equal(t, []string{"a"}, store.Categories())
}

func TestEmptyStore(t *testing.T) {
	store := NewStore()

	assert.Empty(t, store.Categories())
	assert.Empty(t, store.All())
	assert.Equal(t, 0, store.Len())
}
