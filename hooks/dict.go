package hooks

import (
	"sync"
	"weak"

	"go.uber.org/zap"

	"github.com/qq1060656096/hookutil/maputil"
)

// Registry 是可以被 RemovableHandle 引用的钩子注册表。
//
// 只有本包的 Dict 实现了该接口。
type Registry interface {
	hookStore() *store
}

// Resolver 根据名称查找注册表，用于还原持久化的句柄。
//
// 如果名称对应的注册表不存在，返回 false。
type Resolver interface {
	ResolveRegistry(name string) (Registry, bool)
}

// store 是注册表的实际存储，与钩子类型无关。
//
// RemovableHandle 通过弱引用指向 store，不会延长它的生命周期。
type store struct {
	mu      sync.RWMutex             // mu 用于保护并发访问
	entries maputil.Ordered[ID, any] // entries 按注册顺序保存钩子
	closed  bool                     // closed 标记注册表是否已被销毁

	name   string      // name 是注册表名称
	logger *zap.Logger // logger 用于输出调试日志
}

// remove 删除指定 ID 的钩子。注册表已销毁或 ID 不存在时不做任何操作。
func (s *store) remove(id ID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	if s.entries.Delete(id) {
		s.logger.Debug("hook removed", zap.String("registry", s.name), zap.Uint64("id", uint64(id)))
	}
}

// contains 判断注册表是否存活并且包含指定 ID。
func (s *store) contains(id ID) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return !s.closed && s.entries.Has(id)
}

// liveName 返回存活注册表的名称，注册表已销毁时返回 false。
func (s *store) liveName() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.name, !s.closed
}

// Dict 是按注册顺序保存钩子的注册表，键为 ID。
//
// Dict 的生命周期由持有者（通常是某个需要钩子的对象）控制，
// 通过 Add 注册钩子时返回的 RemovableHandle 只弱引用 Dict：
//   - Dict 被 Close 或被垃圾回收后，句柄的 Remove 变为空操作
//   - 句柄不会阻止 Dict 被回收
//
// 类型参数:
//   - H: 钩子类型，通常是函数类型
type Dict[H any] struct {
	s *store
}

// NewDict 创建一个新的空注册表。
func NewDict[H any](opts ...Option) *Dict[H] {
	o := newOptions(opts)
	return &Dict[H]{
		s: &store{
			name:   o.name,
			logger: o.logger,
		},
	}
}

func (d *Dict[H]) hookStore() *store {
	if d == nil {
		return nil
	}
	return d.s
}

// Name 返回注册表名称。
func (d *Dict[H]) Name() string {
	return d.s.name
}

// Add 注册一个钩子，返回可用于移除该钩子的句柄。
//
// ID 从进程范围的计数器分配。如果注册表已经销毁，
// 钩子不会被保存，返回一个失效句柄。
func (d *Dict[H]) Add(hook H) *RemovableHandle {
	d.s.mu.Lock()
	defer d.s.mu.Unlock()

	if d.s.closed {
		return &RemovableHandle{}
	}

	id := NextID()
	d.s.entries.Set(id, hook)
	d.s.logger.Debug("hook added", zap.String("registry", d.s.name), zap.Uint64("id", uint64(id)))
	return &RemovableHandle{ref: weak.Make(d.s), id: id}
}

// Set 使用调用方分配的 ID 注册钩子。
//
// 用于还原已持久化的钩子：计数器会被推进到至少 id+1。
// 如果 ID 已存在，只替换钩子，保持原有顺序。
func (d *Dict[H]) Set(id ID, hook H) *RemovableHandle {
	d.s.mu.Lock()
	if !d.s.closed {
		d.s.entries.Set(id, hook)
	}
	d.s.mu.Unlock()

	return NewHandle(d, id)
}

// Get 获取指定 ID 的钩子。
func (d *Dict[H]) Get(id ID) (H, bool) {
	d.s.mu.RLock()
	defer d.s.mu.RUnlock()

	v, ok := d.s.entries.Get(id)
	if !ok {
		var zero H
		return zero, false
	}
	hook, _ := v.(H)
	return hook, true
}

// Contains 判断指定 ID 的钩子是否存在。
func (d *Dict[H]) Contains(id ID) bool {
	return d.s.contains(id)
}

// Delete 删除指定 ID 的钩子，返回删除前是否存在。
func (d *Dict[H]) Delete(id ID) bool {
	d.s.mu.Lock()
	defer d.s.mu.Unlock()
	return d.s.entries.Delete(id)
}

// Len 返回已注册的钩子数量。
func (d *Dict[H]) Len() int {
	d.s.mu.RLock()
	defer d.s.mu.RUnlock()
	return d.s.entries.Len()
}

// IDs 按注册顺序返回所有钩子的 ID。
func (d *Dict[H]) IDs() []ID {
	d.s.mu.RLock()
	defer d.s.mu.RUnlock()
	return d.s.entries.Keys()
}

// Hooks 按注册顺序返回所有钩子。
func (d *Dict[H]) Hooks() []H {
	d.s.mu.RLock()
	defer d.s.mu.RUnlock()

	hooks := make([]H, 0, d.s.entries.Len())
	d.s.entries.Range(func(_ ID, v any) bool {
		hook, _ := v.(H)
		hooks = append(hooks, hook)
		return true
	})
	return hooks
}

// entry 是 Range 遍历时使用的快照记录。
type entry[H any] struct {
	id   ID
	hook H
}

func (d *Dict[H]) entries() []entry[H] {
	d.s.mu.RLock()
	defer d.s.mu.RUnlock()

	list := make([]entry[H], 0, d.s.entries.Len())
	d.s.entries.Range(func(id ID, v any) bool {
		hook, _ := v.(H)
		list = append(list, entry[H]{id: id, hook: hook})
		return true
	})
	return list
}

// Range 按注册顺序遍历钩子，fn 返回 false 时停止。
//
// 遍历的是调用时的快照，fn 中可以安全地移除钩子。
func (d *Dict[H]) Range(fn func(id ID, hook H) bool) {
	for _, e := range d.entries() {
		if !fn(e.id, e.hook) {
			return
		}
	}
}

// Snapshot 返回 ID 到钩子的映射副本。
func (d *Dict[H]) Snapshot() map[ID]H {
	return maputil.MapBy(d.entries(),
		func(e entry[H]) ID { return e.id },
		func(e entry[H]) H { return e.hook },
	)
}

// Clear 移除所有钩子，注册表仍然可用。
func (d *Dict[H]) Clear() {
	d.s.mu.Lock()
	defer d.s.mu.Unlock()
	d.s.entries.Clear()
}

// Close 销毁注册表。
//
// 销毁后所有钩子被丢弃，Add 返回失效句柄，
// 所有已发出句柄的 Remove 都变为空操作。重复调用是安全的。
func (d *Dict[H]) Close() {
	d.s.mu.Lock()
	defer d.s.mu.Unlock()

	if d.s.closed {
		return
	}
	d.s.closed = true
	d.s.entries.Clear()
	d.s.logger.Debug("hook registry closed", zap.String("registry", d.s.name))
}

// Closed 判断注册表是否已经销毁。
func (d *Dict[H]) Closed() bool {
	d.s.mu.RLock()
	defer d.s.mu.RUnlock()
	return d.s.closed
}
