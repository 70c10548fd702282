package registry

import (
	"context"

	"github.com/qq1060656096/hookutil/hooks"
)

// Manager 是钩子注册表管理器的顶层接口，负责管理多个注册表组。
//
// Manager 同时实现了 hooks.Resolver，可以根据 "<组名>/<注册表名>"
// 找回已打开的注册表，用于还原持久化的句柄。
//
// 类型参数:
//   - C: 配置类型，用于创建注册表
//   - H: 钩子类型
type Manager[C any, H any] interface {
	hooks.Resolver

	// Group 根据名称获取注册表组。
	// 如果组不存在，返回 ErrGroupNotFound 错误。
	Group(name string) (Group[C, H], error)

	// MustGroup 根据名称获取注册表组。
	// 如果组不存在，会触发 panic。
	MustGroup(name string) Group[C, H]

	// AddGroup 添加一个新的注册表组。
	// 组名为空或包含 "/" 时触发 panic（ErrInvalidGroupName）。
	// 返回值表示组是否已经存在：
	//   - false: 组是新创建的
	//   - true: 组已经存在（不会重新创建）
	AddGroup(name string) bool

	// ListGroupNames 返回所有已注册的组名列表。
	ListGroupNames() []string

	// Close 关闭管理器中所有已打开的注册表。
	// 返回关闭过程中遇到的所有错误。
	// 调用后，管理器将被重置为空状态。
	Close(ctx context.Context) []error
}
