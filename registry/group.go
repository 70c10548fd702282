package registry

import (
	"context"

	"github.com/qq1060656096/hookutil/hooks"
)

// Group 是注册表组接口，用于管理一组相关的钩子注册表。
//
// 每个注册表通过唯一的名称标识，注册表采用惰性初始化策略，
// 即只有在首次通过 Get 或 MustGet 访问时才会创建。
//
// Group 同样实现了 hooks.Resolver，但只能找回本组内的注册表。
//
// 类型参数:
//   - C: 配置类型，用于创建注册表
//   - H: 钩子类型
type Group[C any, H any] interface {
	hooks.Resolver

	// Name 返回组名。
	Name() string

	// Get 根据名称获取注册表。
	//
	// 如果注册表尚未创建，会调用 Opener 进行惰性初始化。
	// 后续调用将直接返回已创建的注册表。
	//
	// 可能返回的错误:
	//   - ErrGroupNotFound: 组不存在
	//   - ErrRegistryNotFound: 注册表未注册
	//   - Opener 返回的错误: 注册表创建失败
	Get(ctx context.Context, name string) (*hooks.Dict[H], error)

	// MustGet 根据名称获取注册表。
	// 如果获取失败，会触发 panic。
	MustGet(ctx context.Context, name string) *hooks.Dict[H]

	// Config 返回注册表注册时的配置。
	Config(ctx context.Context, name string) (C, error)

	// MustConfig 返回注册表注册时的配置。
	// 如果获取失败，会触发 panic。
	MustConfig(ctx context.Context, name string) C

	// Register 向组中注册一个新的注册表配置。
	//
	// 注意：此方法只保存配置，不会立即创建注册表。
	// 注册表将在首次通过 Get 访问时惰性初始化。
	//
	// 返回值:
	//   - isNew: true 表示新注册成功，false 表示名称已存在（不会覆盖）
	//   - err: 目前始终为 nil，保留用于将来扩展
	Register(ctx context.Context, name string, cfg C) (isNew bool, err error)

	// Unregister 从组中注销指定注册表。
	//
	// 如果注册表已创建，会先调用 Closer，然后销毁注册表，
	// 该注册表发出的所有句柄随之失效。
	// 如果注册表不存在，返回 ErrRegistryNotFound 错误。
	Unregister(ctx context.Context, name string) error

	// List 返回组内所有已注册的注册表名称列表。
	List() []string

	// Close 关闭组内所有已创建的注册表。
	// 返回关闭过程中遇到的所有错误。
	// 调用后，整个组将从管理器中移除。
	Close(ctx context.Context) []error

	// Ping 使用已注册的配置调用 Opener，验证注册表能否创建。
	//
	// Ping 不会将注册表保存到组中。
	Ping(ctx context.Context, name string) error
}
