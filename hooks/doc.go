/*
Package hooks 提供了钩子注册表以及用于移除钩子的句柄。

# 概述

hooks 包解决的问题很简单：调用方注册钩子后拿到一个句柄，
之后可以通过句柄移除该钩子，而句柄与注册表互不关心对方的生命周期。

  - 注册表（Dict）：按注册顺序保存 ID 到钩子的映射，由持有者控制生命周期
  - 句柄（RemovableHandle）：弱引用注册表并记录 ID，Remove 是幂等的空操作安全调用
  - ID 计数器：进程范围单调递增，所有注册表共享，永不复用

# 核心概念

## Dict（注册表）

	dict := hooks.NewDict[func(ctx context.Context) error](hooks.WithName("module/forward"))

	h1 := dict.Add(logHook)
	h2 := dict.Add(traceHook)

	for _, hook := range dict.Hooks() { // 按注册顺序
	    _ = hook(ctx)
	}

## RemovableHandle（句柄）

	h1.Remove() // 移除 logHook
	h1.Remove() // 再次调用无任何效果

	dict.Close()
	h2.Remove() // 注册表已销毁，空操作

句柄通过 weak.Pointer 引用注册表，不会阻止注册表被垃圾回收；
注册表被回收后句柄同样变为空操作。

## 作用域

句柄实现了 io.Closer，可以配合 defer 使用：

	h := dict.Add(hook)
	defer h.Close()

或者使用 Scoped，在函数返回、出错或 panic 时都会移除钩子：

	err := hooks.Scoped(dict.Add(hook), func() error {
	    return run(ctx)
	})

# 持久化

句柄持久化为 (注册表名称或 null, ID)：

	data, _ := json.Marshal(h) // {"registry":"module/forward","id":3}

	h, err := hooks.DecodeHandle(data, resolver)

还原规则:
  - registry 为 null（失效句柄、注册表已销毁或未命名）时，还原为失效句柄，Remove 永远是空操作
  - Resolver 找不到注册表时同样还原为失效句柄
  - 还原时计数器被推进到至少 id+1，之后分配的 ID 不会与之重复
  - id 等于 MaxID（计数器保留值）时返回 ErrInvalidHandleState
  - UnmarshalJSON 遇到 JSON null 时得到失效句柄，不返回错误

同样支持 YAML（gopkg.in/yaml.v3）。

# 错误处理

移除钩子没有任何错误：注册表不存在、钩子已被移除都视为成功的空操作。
只有反序列化格式错误时返回 ErrInvalidHandleState，可使用 errors.Is 判断。

# 并发安全

约定在单个 goroutine 中使用。注册表内部仍使用读写锁（sync.RWMutex）保护，
ID 计数器使用原子操作，并发调用不会产生数据竞争。
*/
package hooks
