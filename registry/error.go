package registry

import (
	"errors"
	"fmt"
)

// 预定义的哨兵错误，可使用 errors.Is 进行判断。
//
// 示例:
//
//	_, err := g.Get(ctx, "forward")
//	if errors.Is(err, registry.ErrRegistryNotFound) {
//	    // 注册表未注册或已被注销
//	}
var (
	// ErrGroupNotFound 表示请求的组不存在（未添加或已被关闭）。
	ErrGroupNotFound = errors.New("hookutil.registry: group not found")

	// ErrRegistryNotFound 表示组内没有该名称的钩子注册表。
	ErrRegistryNotFound = errors.New("hookutil.registry: hook registry not found")

	// ErrCloseRegistryFailed 表示销毁注册表前 Closer 返回了错误。
	// 此时注册表仍然已经被销毁。
	ErrCloseRegistryFailed = errors.New("hookutil.registry: close hook registry failed")

	// ErrPingRegistryFailed 表示 Ping 时 Opener 拒绝了注册表配置。
	ErrPingRegistryFailed = errors.New("hookutil.registry: ping hook registry failed")

	// ErrInvalidGroupName 表示组名为空或包含 "/"。
	// 这样的组发出的句柄无法通过 ResolveRegistry 找回。
	ErrInvalidGroupName = errors.New("hookutil.registry: invalid group name")
)

// NewErrGroupNotFound 返回包含组名的 ErrGroupNotFound。
func NewErrGroupNotFound(groupName string) error {
	return fmt.Errorf("group %q: %w", groupName, ErrGroupNotFound)
}

// NewErrRegistryNotFound 返回包含完整注册表名称的 ErrRegistryNotFound。
func NewErrRegistryNotFound(groupName, name string) error {
	return fmt.Errorf("hook registry %q: %w", FullName(groupName, name), ErrRegistryNotFound)
}

// NewErrCloseRegistryFailed 返回同时包装 ErrCloseRegistryFailed 与原始错误的错误，
// 两者都可以通过 errors.Is 判断。
func NewErrCloseRegistryFailed(groupName, name string, err error) error {
	return fmt.Errorf("hook registry %q: %w: %w", FullName(groupName, name), ErrCloseRegistryFailed, err)
}

// NewErrPingRegistryFailed 返回同时包装 ErrPingRegistryFailed 与原始错误的错误。
func NewErrPingRegistryFailed(groupName, name string, err error) error {
	return fmt.Errorf("hook registry %q: %w: %w", FullName(groupName, name), ErrPingRegistryFailed, err)
}

// NewErrInvalidGroupName 返回包含组名的 ErrInvalidGroupName。
func NewErrInvalidGroupName(groupName string) error {
	return fmt.Errorf("group %q: %w", groupName, ErrInvalidGroupName)
}
