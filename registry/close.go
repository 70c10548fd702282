package registry

import (
	"context"

	"github.com/qq1060656096/hookutil/hooks"
)

// Closer 是钩子注册表关闭器函数类型。
//
// Closer 在注册表被销毁前调用，可用于清理钩子持有的资源。
// 在以下场景会被调用：
//   - Group.Unregister 注销注册表时
//   - Group.Close 关闭整个组时
//   - Manager.Close 关闭整个管理器时
//
// 类型参数:
//   - H: 钩子类型
//
// 参数:
//   - ctx: 上下文，可用于超时控制和取消操作
//   - d: 即将被销毁的注册表
//
// 返回值:
//   - error: 关闭过程中的错误，nil 表示成功
//
// 注意:
//   - Closer 可以为 nil
//   - 无论 Closer 是否返回错误，注册表都会被销毁（hooks.Dict.Close），
//     此后该注册表发出的所有句柄的 Remove 都是空操作
//
// 示例:
//
//	closer := func(ctx context.Context, d *hooks.Dict[Hook]) error {
//	    for _, h := range d.Hooks() {
//	        h.Flush(ctx)
//	    }
//	    return nil
//	}
type Closer[H any] func(ctx context.Context, d *hooks.Dict[H]) error
