package registry

import (
	"context"

	"github.com/qq1060656096/hookutil/hooks"
)

// Opener 是钩子注册表打开器函数类型。
//
// Opener 根据配置生成创建注册表（hooks.Dict）所需的选项，
// 在 Group.Get 首次访问注册表时会被调用（惰性初始化），Group.Ping 也会调用它。
//
// 注册表名称由管理器统一设置为 "<组名>/<注册表名>"，
// Opener 返回的 hooks.WithName 会被覆盖。
//
// 类型参数:
//   - C: 配置类型
//
// 参数:
//   - ctx: 上下文，可用于超时控制和取消操作
//   - cfg: 注册表配置，由 Register 时传入
//
// 返回值:
//   - []hooks.Option: 创建注册表的选项
//   - error: 配置无效时的错误，nil 表示成功
//
// 示例:
//
//	opener := func(ctx context.Context, cfg HookConfig) ([]hooks.Option, error) {
//	    if cfg.Disabled {
//	        return nil, errors.New("hooks disabled")
//	    }
//	    return []hooks.Option{hooks.WithLogger(cfg.Logger)}, nil
//	}
type Opener[C any] func(ctx context.Context, cfg C) ([]hooks.Option, error)
