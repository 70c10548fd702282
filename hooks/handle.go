package hooks

import "weak"

// RemovableHandle 是用于移除已注册钩子的句柄。
//
// 句柄只弱引用注册表，不会延长注册表的生命周期：
//   - 注册表存活且包含该 ID 时，Remove 删除对应钩子
//   - 注册表已销毁（Close 或被垃圾回收）或钩子已被移除时，Remove 为空操作
//
// Remove 可以重复调用，效果与调用一次相同，永远不会返回错误。
//
// 句柄可以持久化为 (注册表名称或 null, ID)，参见 MarshalJSON 与 DecodeHandle。
type RemovableHandle struct {
	ref weak.Pointer[store] // ref 是注册表存储的弱引用，零值表示失效句柄
	id  ID                  // id 是钩子在注册表中的 ID
}

// NewHandle 为注册表 reg 中 ID 为 id 的钩子创建句柄。
//
// 进程范围的计数器会被推进到至少 id+1，保证之后分配的 ID 不会重复。
// reg 为 nil 时返回失效句柄，它的 Remove 永远是空操作。
func NewHandle(reg Registry, id ID) *RemovableHandle {
	defaultCounter.Advance(id)

	h := &RemovableHandle{id: id}
	if reg == nil {
		return h
	}
	if s := reg.hookStore(); s != nil {
		h.ref = weak.Make(s)
	}
	return h
}

// ID 返回钩子的 ID。
func (h *RemovableHandle) ID() ID {
	if h == nil {
		return 0
	}
	return h.id
}

// Remove 从注册表中移除钩子。
//
// 注册表已不存在或钩子已被移除时不做任何操作。
func (h *RemovableHandle) Remove() {
	if h == nil {
		return
	}
	if s := h.ref.Value(); s != nil {
		s.remove(h.id)
	}
}

// Alive 判断注册表是否仍然存在并且包含该钩子。
func (h *RemovableHandle) Alive() bool {
	if h == nil {
		return false
	}
	s := h.ref.Value()
	return s != nil && s.contains(h.id)
}

// registryName 返回持久化时使用的注册表名称。
//
// 失效句柄、注册表已销毁或未命名时返回 false，持久化为 null。
func (h *RemovableHandle) registryName() (string, bool) {
	if h == nil {
		return "", false
	}
	s := h.ref.Value()
	if s == nil {
		return "", false
	}
	name, live := s.liveName()
	if !live || name == "" {
		return "", false
	}
	return name, true
}
