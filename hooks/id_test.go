package hooks

import (
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

// ============== Counter 测试 ==============

func TestCounter_ZeroValue(t *testing.T) {
	var c Counter

	assert.Equal(t, ID(0), c.Peek())
	assert.Equal(t, ID(0), c.Next())
	assert.Equal(t, ID(1), c.Next())
	assert.Equal(t, ID(2), c.Peek())
}

func TestCounter_Advance(t *testing.T) {
	var c Counter

	c.Advance(9)
	assert.Equal(t, ID(10), c.Next())

	// 不会回退
	c.Advance(3)
	assert.Equal(t, ID(11), c.Next())

	c.Advance(11)
	assert.Equal(t, ID(12), c.Peek())
}

func TestCounter_AdvanceMax(t *testing.T) {
	var c Counter
	first := c.Next()

	c.Advance(MaxID)

	assert.Equal(t, MaxID, c.Peek())
	// 耗尽后不会回绕，MaxID 与 first 都不会被再次分配
	assert.PanicsWithValue(t, "hookutil.hooks: id counter exhausted", func() { c.Next() })
	assert.Equal(t, MaxID, c.Peek())
	assert.Equal(t, ID(0), first)
}

func TestCounter_NextBeforeMax(t *testing.T) {
	var c Counter

	c.Advance(math.MaxUint64 - 2)

	assert.Equal(t, ID(math.MaxUint64-1), c.Next())
	assert.Panics(t, func() { c.Next() })
}

func TestCounter_ConcurrentNextIsUnique(t *testing.T) {
	var c Counter
	const workers, perWorker = 8, 500

	var (
		mu   sync.Mutex
		seen = make(map[ID]struct{}, workers*perWorker)
		wg   sync.WaitGroup
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ids := make([]ID, 0, perWorker)
			for j := 0; j < perWorker; j++ {
				ids = append(ids, c.Next())
			}
			mu.Lock()
			defer mu.Unlock()
			for _, id := range ids {
				seen[id] = struct{}{}
			}
		}()
	}
	wg.Wait()

	assert.Len(t, seen, workers*perWorker)
	assert.Equal(t, ID(workers*perWorker), c.Peek())
}

// ============== NextID 测试 ==============

func TestNextID_StrictlyIncreasing(t *testing.T) {
	prev := NextID()
	for i := 0; i < 100; i++ {
		id := NextID()
		assert.Greater(t, uint64(id), uint64(prev))
		prev = id
	}
	assert.Greater(t, uint64(PeekID()), uint64(prev))
}
