/*
Package registry 提供了按名称分组管理钩子注册表的框架。

# 概述

registry 包在 hooks 包的基础上，管理多个具名的钩子注册表（hooks.Dict），支持：
  - 分组管理：将注册表按组（例如 "module"、"tensor"）进行分类
  - 惰性初始化：注册表仅在首次访问时才会被创建
  - 并发安全：所有操作都是线程安全的
  - 句柄还原：管理器实现了 hooks.Resolver，可以把持久化的句柄还原到原注册表

# 核心概念

## Manager（管理器）

Manager 是顶层管理接口，负责管理多个注册表组。

主要功能：
  - AddGroup: 添加新的注册表组
  - Group/MustGroup: 获取指定名称的注册表组
  - ListGroupNames: 列出所有组名
  - ResolveRegistry: 根据 "<组名>/<注册表名>" 找回已创建的注册表
  - Close: 销毁所有已创建的注册表

## Group（注册表组）

Group 是一组相关注册表的容器，每个注册表通过唯一名称标识。

主要功能：
  - Register: 注册配置（此时不会创建注册表）
  - Get/MustGet: 获取注册表（首次调用时会触发惰性初始化）
  - Config/MustConfig: 获取注册时的配置
  - Unregister: 注销并销毁注册表
  - List: 列出组内所有注册表名称
  - Ping: 验证配置能否创建注册表
  - Close: 销毁组内所有注册表

## Opener（打开器）

Opener 根据配置生成创建注册表所需的选项：

	type Opener[C any] func(ctx context.Context, cfg C) ([]hooks.Option, error)

## Closer（关闭器）

Closer 在注册表销毁前调用：

	type Closer[H any] func(ctx context.Context, d *hooks.Dict[H]) error

# 使用示例

## 基础用法

	type Hook func(ctx context.Context, grad []float64) []float64

	type HookConfig struct {
	    Debug bool
	}

	mgr := registry.New[HookConfig, Hook](
	    func(ctx context.Context, cfg HookConfig) ([]hooks.Option, error) {
	        return nil, nil
	    },
	    nil,
	    registry.WithLogger(logger),
	)

	mgr.AddGroup("module")
	g := mgr.MustGroup("module")
	g.Register(ctx, "forward", HookConfig{})

	dict := g.MustGet(ctx, "forward") // 名称为 "module/forward"
	h := dict.Add(myHook)
	defer h.Close()

## 销毁与失效句柄

注销或关闭注册表时，注册表会被销毁（hooks.Dict.Close），
它发出的所有句柄的 Remove 都变为空操作：

	g.Unregister(ctx, "forward")
	h.Remove() // 空操作，不会报错

## 句柄持久化

	data, _ := json.Marshal(h) // {"registry":"module/forward","id":3}

	restored, err := hooks.DecodeHandle(data, mgr)
	restored.Remove()

# 错误处理

包中定义了以下错误类型：

  - ErrGroupNotFound: 指定的组不存在
  - ErrRegistryNotFound: 指定的注册表不存在
  - ErrCloseRegistryFailed: Closer 返回了错误
  - ErrPingRegistryFailed: Ping 时 Opener 返回了错误
  - ErrInvalidGroupName: 组名为空或包含 "/"（AddGroup 以 panic 报告）

可以使用 errors.Is 进行错误类型判断。

# 并发安全

所有公开的方法都是并发安全的，内部使用读写锁（sync.RWMutex）保护：

  - 读操作（Get 已创建的注册表、Config、List、ResolveRegistry）使用读锁
  - 写操作（Register、Unregister、Close、惰性初始化）使用写锁
*/
package registry
