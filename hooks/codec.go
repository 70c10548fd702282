package hooks

import (
	"bytes"
	"strconv"
	"sync"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// 持久化格式中的字段名。
const (
	fieldRegistry = "registry"
	fieldID       = "id"
)

var (
	resolverMu      sync.RWMutex
	defaultResolver Resolver
)

// SetDefaultResolver 设置 UnmarshalJSON 与 UnmarshalYAML 使用的 Resolver。
//
// 未设置时，反序列化得到的句柄都是失效句柄。
func SetDefaultResolver(r Resolver) {
	resolverMu.Lock()
	defer resolverMu.Unlock()
	defaultResolver = r
}

func getDefaultResolver() Resolver {
	resolverMu.RLock()
	defer resolverMu.RUnlock()
	return defaultResolver
}

// MarshalJSON 将句柄持久化为 JSON：
//
//	{"registry":"<name>","id":K}
//
// 失效句柄、注册表已销毁或未命名时 registry 为 null。
func (h *RemovableHandle) MarshalJSON() ([]byte, error) {
	if h == nil {
		return []byte("null"), nil
	}

	var (
		data = []byte("{}")
		err  error
	)
	if name, ok := h.registryName(); ok {
		data, err = sjson.SetBytes(data, fieldRegistry, name)
	} else {
		data, err = sjson.SetRawBytes(data, fieldRegistry, []byte("null"))
	}
	if err != nil {
		return nil, err
	}
	return sjson.SetRawBytes(data, fieldID, strconv.AppendUint(nil, uint64(h.id), 10))
}

// DecodeHandle 从 JSON 还原句柄，r 用于根据名称找回注册表。
//
// 还原规则:
//   - registry 为 null 或缺失时，返回失效句柄
//   - r 为 nil 或找不到对应注册表时，同样返回失效句柄
//   - 进程范围的计数器会被推进到至少 id+1
//
// 可能返回的错误:
//   - ErrInvalidHandleState: 输入不是 JSON 对象，或 id 缺失、不是非负整数、等于 MaxID，
//     或 registry 既不是字符串也不是 null
func DecodeHandle(data []byte, r Resolver) (*RemovableHandle, error) {
	if !gjson.ValidBytes(data) {
		return nil, NewErrInvalidHandleState("malformed json")
	}
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return nil, NewErrInvalidHandleState("handle state is not an object")
	}

	idField := root.Get(fieldID)
	if idField.Type != gjson.Number {
		return nil, NewErrInvalidHandleState("missing id")
	}
	id, err := strconv.ParseUint(idField.Raw, 10, 64)
	if err != nil {
		return nil, NewErrInvalidHandleState("id is not an unsigned integer")
	}
	if ID(id) == MaxID {
		return nil, NewErrInvalidHandleState("id out of range")
	}

	var name *string
	switch reg := root.Get(fieldRegistry); reg.Type {
	case gjson.Null:
	case gjson.String:
		s := reg.String()
		name = &s
	default:
		return nil, NewErrInvalidHandleState("registry is neither a string nor null")
	}

	return restoreHandle(name, ID(id), r), nil
}

// restoreHandle 根据持久化的 (注册表名称, ID) 创建句柄。
func restoreHandle(name *string, id ID, r Resolver) *RemovableHandle {
	var reg Registry
	if name != nil && r != nil {
		if found, ok := r.ResolveRegistry(*name); ok {
			reg = found
		}
	}
	return NewHandle(reg, id)
}

// UnmarshalJSON 使用 SetDefaultResolver 设置的 Resolver 还原句柄，规则同 DecodeHandle。
//
// 输入为 JSON null 时句柄被置为失效句柄，不返回错误。
func (h *RemovableHandle) UnmarshalJSON(data []byte) error {
	if string(bytes.TrimSpace(data)) == "null" {
		*h = RemovableHandle{}
		return nil
	}
	restored, err := DecodeHandle(data, getDefaultResolver())
	if err != nil {
		return err
	}
	*h = *restored
	return nil
}
