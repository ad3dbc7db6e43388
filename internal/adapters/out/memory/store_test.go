package memory_test

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"orderbot/internal/adapters/out/memory"
	"orderbot/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_GetUpsertDelete(t *testing.T) {
	s := memory.NewStore()

	t.Run("get on absent session", func(t *testing.T) {
		ord, ok := s.Get("missing")
		assert.Nil(t, ord)
		assert.False(t, ok)
	})

	t.Run("upsert then get returns a copy", func(t *testing.T) {
		ord := order.NewOrder()
		require.NoError(t, ord.Add("pizza", 2))
		s.Upsert("s1", ord)

		got, ok := s.Get("s1")
		require.True(t, ok)
		qty, _ := got.Quantity("pizza")
		assert.Equal(t, 2, qty)

		// Mutating the copy must not leak into the store.
		require.NoError(t, got.Add("pizza", 10))
		again, _ := s.Get("s1")
		qty, _ = again.Quantity("pizza")
		assert.Equal(t, 2, qty)
	})

	t.Run("delete is idempotent", func(t *testing.T) {
		s.Delete("s1")
		s.Delete("s1")
		_, ok := s.Get("s1")
		assert.False(t, ok)
	})
}

func TestStore_Mutate(t *testing.T) {
	t.Run("creates on nil current", func(t *testing.T) {
		s := memory.NewStore()

		result := s.Mutate("s1", func(current *order.Order) *order.Order {
			require.Nil(t, current)
			ord := order.NewOrder()
			require.NoError(t, ord.Add("pizza", 1))
			return ord
		})

		require.NotNil(t, result)
		qty, _ := result.Quantity("pizza")
		assert.Equal(t, 1, qty)
		assert.Equal(t, 1, s.Len())
	})

	t.Run("nil return removes the entry", func(t *testing.T) {
		s := memory.NewStore()
		ord := order.NewOrder()
		require.NoError(t, ord.Add("pizza", 1))
		s.Upsert("s1", ord)

		result := s.Mutate("s1", func(*order.Order) *order.Order { return nil })

		assert.Nil(t, result)
		_, ok := s.Get("s1")
		assert.False(t, ok)
	})

	t.Run("concurrent mutate on one session loses no updates", func(t *testing.T) {
		s := memory.NewStore()
		const workers = 50

		var wg sync.WaitGroup
		for range workers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				s.Mutate("s1", func(current *order.Order) *order.Order {
					if current == nil {
						current = order.NewOrder()
					}
					_ = current.Add("pizza", 1)
					return current
				})
			}()
		}
		wg.Wait()

		got, ok := s.Get("s1")
		require.True(t, ok)
		qty, _ := got.Quantity("pizza")
		assert.Equal(t, workers, qty)
	})
}

func TestStore_CrossSessionIsolation(t *testing.T) {
	s := memory.NewStore()
	const sessions = 20

	var wg sync.WaitGroup
	for i := range sessions {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id := fmt.Sprintf("session-%d", i)
			s.Mutate(id, func(current *order.Order) *order.Order {
				ord := order.NewOrder()
				_ = ord.Add("pizza", i+1)
				return ord
			})
		}()
	}
	wg.Wait()

	assert.Equal(t, sessions, s.Len())
	for i := range sessions {
		got, ok := s.Get(fmt.Sprintf("session-%d", i))
		require.True(t, ok)
		qty, _ := got.Quantity("pizza")
		assert.Equal(t, i+1, qty)
	}
}

func TestStore_Sweep(t *testing.T) {
	s := memory.NewStore()

	stale := order.NewOrder()
	require.NoError(t, stale.Add("pizza", 1))
	s.Upsert("stale", stale)

	// Leave enough of a gap that the sweep cutoff separates the entries.
	time.Sleep(20 * time.Millisecond)

	fresh := order.NewOrder()
	require.NoError(t, fresh.Add("lassi", 1))
	s.Upsert("fresh", fresh)

	swept := s.Sweep(10 * time.Millisecond)

	assert.Equal(t, 1, swept)
	_, ok := s.Get("stale")
	assert.False(t, ok)
	_, ok = s.Get("fresh")
	assert.True(t, ok)
}
