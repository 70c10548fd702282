package hooks

import "io"

var _ io.Closer = (*RemovableHandle)(nil)

// Close 移除钩子，始终返回 nil。
//
// 用于在作用域结束时自动移除钩子：
//
//	h := dict.Add(hook)
//	defer h.Close()
func (h *RemovableHandle) Close() error {
	h.Remove()
	return nil
}

// Scoped 执行 fn，并在 fn 结束时移除 h 对应的钩子。
//
// 无论 fn 正常返回、返回错误还是发生 panic，钩子都会被移除；
// fn 的错误原样返回，panic 在移除后继续向上传播。
//
// 示例:
//
//	err := hooks.Scoped(dict.Add(trace), func() error {
//	    return run(ctx)
//	})
func Scoped(h *RemovableHandle, fn func() error) error {
	defer h.Remove()
	return fn()
}
