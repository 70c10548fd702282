package hooks

import (
	"errors"
	"fmt"
)

// 预定义的哨兵错误，可使用 errors.Is 进行判断。
//
// 注意：移除钩子（RemovableHandle.Remove）永远不会返回错误，
// 这里的错误只用于句柄状态的反序列化。
var (
	// ErrInvalidHandleState 表示持久化的句柄状态格式不正确。
	// 当 DecodeHandle、UnmarshalJSON 或 UnmarshalYAML 无法解析输入时返回此错误。
	ErrInvalidHandleState = errors.New("hookutil.hooks: invalid handle state")
)

// NewErrInvalidHandleState 创建一个包含具体原因的句柄状态错误。
//
// 返回的错误可以通过 errors.Is(err, ErrInvalidHandleState) 进行判断。
func NewErrInvalidHandleState(reason string) error {
	return fmt.Errorf("%s: %w", reason, ErrInvalidHandleState)
}

// wrapErrInvalidHandleState 把底层解码错误包装为句柄状态错误。
//
// 返回的错误同时可以通过 errors.Is(err, ErrInvalidHandleState)
// 与 errors.As 找回 cause。
func wrapErrInvalidHandleState(cause error) error {
	return fmt.Errorf("%w: %w", ErrInvalidHandleState, cause)
}
