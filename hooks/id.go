package hooks

import (
	"math"
	"sync/atomic"
)

// ID 是钩子在注册表中的唯一标识。
//
// ID 在进程范围内单调递增，所有注册表和句柄共享同一个计数器，永不复用。
type ID uint64

// Counter 是单调递增的 ID 计数器，并发安全。
//
// 零值可以直接使用，第一个分配的 ID 为 0。
// Counter 没有重置操作，只会增长。
type Counter struct {
	next atomic.Uint64 // next 是下一个将要分配的 ID
}

// MaxID 是保留值，计数器永远不会分配它。
// 计数器到达 MaxID 即视为耗尽。
const MaxID ID = math.MaxUint64

// Next 分配并返回一个新的 ID。
//
// 计数器耗尽（已到达 MaxID）时 panic，而不是回绕到 0 重复分配。
func (c *Counter) Next() ID {
	for {
		cur := c.next.Load()
		if cur == uint64(MaxID) {
			panic("hookutil.hooks: id counter exhausted")
		}
		if c.next.CompareAndSwap(cur, cur+1) {
			return ID(cur)
		}
	}
}

// Peek 返回下一个将要分配的 ID，不会改变计数器。
func (c *Counter) Peek() ID {
	return ID(c.next.Load())
}

// Advance 将计数器推进到至少 id+1，保证之后分配的 ID 都大于 id。
//
// 如果计数器已经大于 id，不做任何修改；计数器永远不会回退。
// id 为 MaxID 时计数器进入耗尽状态，之后的 Next 会 panic。
func (c *Counter) Advance(id ID) {
	if id == MaxID {
		c.next.Store(uint64(MaxID))
		return
	}
	want := uint64(id) + 1
	for {
		cur := c.next.Load()
		if cur >= want {
			return
		}
		if c.next.CompareAndSwap(cur, want) {
			return
		}
	}
}

// defaultCounter 是进程范围的 ID 计数器，在进程启动时为 0。
var defaultCounter Counter

// NextID 从进程范围的计数器分配一个新的 ID。
func NextID() ID {
	return defaultCounter.Next()
}

// PeekID 返回进程范围计数器下一个将要分配的 ID。
func PeekID() ID {
	return defaultCounter.Peek()
}
