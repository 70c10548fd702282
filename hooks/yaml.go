package hooks

import "gopkg.in/yaml.v3"

// handleState 是句柄在 YAML 中的持久化形式。
type handleState struct {
	Registry *string `yaml:"registry"`
	ID       *uint64 `yaml:"id"`
}

// rawHandleState 保留 registry 的原始节点，以便区分字符串、null 与其他标量。
type rawHandleState struct {
	Registry yaml.Node `yaml:"registry"`
	ID       *uint64   `yaml:"id"`
}

// MarshalYAML 将句柄持久化为 (registry, id)，规则同 MarshalJSON。
func (h *RemovableHandle) MarshalYAML() (any, error) {
	id := uint64(h.ID())
	st := handleState{ID: &id}
	if name, ok := h.registryName(); ok {
		st.Registry = &name
	}
	return st, nil
}

// UnmarshalYAML 使用 SetDefaultResolver 设置的 Resolver 还原句柄。
//
// registry 为 null 或缺失时得到失效句柄。
//
// 可能返回的错误:
//   - ErrInvalidHandleState: 不是 mapping，id 缺失、不是非负整数或等于 MaxID，
//     或 registry 既不是字符串也不是 null
func (h *RemovableHandle) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return NewErrInvalidHandleState("handle state is not a mapping")
	}

	var st rawHandleState
	if err := value.Decode(&st); err != nil {
		return wrapErrInvalidHandleState(err)
	}
	if st.ID == nil {
		return NewErrInvalidHandleState("missing id")
	}
	if ID(*st.ID) == MaxID {
		return NewErrInvalidHandleState("id out of range")
	}

	name, err := registryNameFromNode(&st.Registry)
	if err != nil {
		return err
	}

	*h = *restoreHandle(name, ID(*st.ID), getDefaultResolver())
	return nil
}

// registryNameFromNode 解析 registry 节点：缺失或 null 返回 nil。
func registryNameFromNode(node *yaml.Node) (*string, error) {
	if node.Kind == 0 {
		return nil, nil
	}
	if node.Kind != yaml.ScalarNode {
		return nil, NewErrInvalidHandleState("registry is neither a string nor null")
	}
	switch node.ShortTag() {
	case "!!null":
		return nil, nil
	case "!!str":
		name := node.Value
		return &name, nil
	default:
		return nil, NewErrInvalidHandleState("registry is neither a string nor null")
	}
}
