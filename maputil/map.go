package maputil

// MapGet 从 map 中获取指定 key 对应的值。
// 返回值 v 表示对应的值，ok 表示 key 是否存在。
//
// 功能相当于：
//
//	v, ok := m[key]
//
// 但可以在泛型或函数式场景下直接使用。
func MapGet[K comparable, V any](m map[K]V, key K) (V, bool) {
	v, ok := m[key]
	return v, ok
}

// MapBy 根据给定的 key 和 value 提取函数，将切片转换为 map。
//
// 返回的 map 中，每个切片元素都会生成一条记录。
// 如果多个元素生成相同的 key，后面的元素会覆盖前面的值。
func MapBy[T any, K comparable, V any](list []T, key func(T) K, value func(T) V) map[K]V {
	m := make(map[K]V, len(list))
	for _, v := range list {
		m[key(v)] = value(v)
	}
	return m
}

// entry 是 Ordered 内部保存的一条记录。
type entry[K comparable, V any] struct {
	key  K    // key 是记录的键
	val  V    // val 是记录的值
	live bool // live 为 false 表示该记录已被删除，等待压缩
}

// Ordered 是一个按插入顺序遍历的泛型 map。
//
// 特点:
//   - 遍历顺序与 key 首次插入的顺序一致
//   - 对已存在的 key 调用 Set 只更新值，不改变位置
//   - Delete 为均摊 O(1)，被删除的记录在积累到一定数量后统一压缩
//
// 零值可以直接使用。Ordered 不是并发安全的，调用方需要自行加锁。
type Ordered[K comparable, V any] struct {
	entries []entry[K, V] // entries 按插入顺序保存所有记录（包含已删除的记录）
	index   map[K]int     // index 记录 key 在 entries 中的下标
	dead    int           // dead 是 entries 中已删除记录的数量
}

// NewOrdered 创建一个空的 Ordered，capacity 为预分配的容量。
func NewOrdered[K comparable, V any](capacity int) *Ordered[K, V] {
	if capacity < 0 {
		capacity = 0
	}
	return &Ordered[K, V]{
		entries: make([]entry[K, V], 0, capacity),
		index:   make(map[K]int, capacity),
	}
}

// Set 设置 key 对应的值。
//
// 返回值:
//   - true: key 是新插入的，追加到末尾
//   - false: key 已存在，仅更新值
func (o *Ordered[K, V]) Set(key K, val V) bool {
	if o.index == nil {
		o.index = make(map[K]int)
	}
	if i, ok := o.index[key]; ok {
		o.entries[i].val = val
		return false
	}
	o.index[key] = len(o.entries)
	o.entries = append(o.entries, entry[K, V]{key: key, val: val, live: true})
	return true
}

// Get 获取 key 对应的值，ok 表示 key 是否存在。
func (o *Ordered[K, V]) Get(key K) (V, bool) {
	i, ok := o.index[key]
	if !ok {
		var zero V
		return zero, false
	}
	return o.entries[i].val, true
}

// Has 判断 key 是否存在。
func (o *Ordered[K, V]) Has(key K) bool {
	_, ok := o.index[key]
	return ok
}

// Delete 删除 key 对应的记录，返回 key 删除前是否存在。
func (o *Ordered[K, V]) Delete(key K) bool {
	i, ok := o.index[key]
	if !ok {
		return false
	}
	delete(o.index, key)
	o.entries[i] = entry[K, V]{}
	o.dead++

	// 已删除的记录超过一半时压缩
	if o.dead*2 >= len(o.entries) {
		o.compact()
	}
	return true
}

// compact 移除 entries 中所有已删除的记录，并重建 index。
func (o *Ordered[K, V]) compact() {
	live := o.entries[:0]
	for _, e := range o.entries {
		if !e.live {
			continue
		}
		o.index[e.key] = len(live)
		live = append(live, e)
	}
	// 清理尾部残留，避免继续引用已删除的值
	clear(o.entries[len(live):])
	o.entries = live
	o.dead = 0
}

// Len 返回记录数量。
func (o *Ordered[K, V]) Len() int {
	return len(o.index)
}

// Keys 按插入顺序返回所有 key。
func (o *Ordered[K, V]) Keys() []K {
	keys := make([]K, 0, o.Len())
	for _, e := range o.entries {
		if e.live {
			keys = append(keys, e.key)
		}
	}
	return keys
}

// Values 按插入顺序返回所有值。
func (o *Ordered[K, V]) Values() []V {
	vals := make([]V, 0, o.Len())
	for _, e := range o.entries {
		if e.live {
			vals = append(vals, e.val)
		}
	}
	return vals
}

// Range 按插入顺序遍历所有记录，fn 返回 false 时停止遍历。
//
// 遍历期间不允许修改 Ordered。
func (o *Ordered[K, V]) Range(fn func(key K, val V) bool) {
	for _, e := range o.entries {
		if !e.live {
			continue
		}
		if !fn(e.key, e.val) {
			return
		}
	}
}

// Clear 删除所有记录。
func (o *Ordered[K, V]) Clear() {
	clear(o.entries)
	o.entries = o.entries[:0]
	o.index = make(map[K]int)
	o.dead = 0
}
