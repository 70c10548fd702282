package registry

import (
	"context"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/qq1060656096/hookutil/hooks"
)

// defaultGroupName 是使用 NewGroup 创建单组管理器时的默认组名。
const defaultGroupName = "defaultGroup"

// nameSeparator 分隔完整注册表名称中的组名和注册表名。
const nameSeparator = "/"

// Option 是管理器的可选配置项。
type Option func(*options)

type options struct {
	logger *zap.Logger // logger 用于输出日志，同时传递给创建的注册表
}

// WithLogger 设置日志记录器，为 nil 时不输出日志。
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// New 创建一个新的钩子注册表管理器。
//
// 参数:
//   - opener: 注册表打开器，用于根据配置生成注册表选项
//   - closer: 注册表关闭器，在注册表销毁前调用（可以为 nil）
//   - opts: 可选配置
//
// 类型参数:
//   - C: 配置类型
//   - H: 钩子类型
func New[C any, H any](opener Opener[C], closer Closer[H], opts ...Option) Manager[C, H] {
	return newManager(opener, closer, opts)
}

func newManager[C any, H any](opener Opener[C], closer Closer[H], opts []Option) *manager[C, H] {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = zap.NewNop()
	}
	return &manager[C, H]{
		groups: make(map[string]map[string]*connection[C, H]),
		opener: opener,
		closer: closer,
		logger: o.logger,
	}
}

// FullName 返回注册表的完整名称 "<组名>/<注册表名>"。
//
// 管理器创建的注册表使用完整名称命名，句柄持久化时写入的也是完整名称。
func FullName(groupName, name string) string {
	return groupName + nameSeparator + name
}

// connection 表示一个注册表的内部状态。
//
// 类型参数:
//   - C: 配置类型
//   - H: 钩子类型
type connection[C any, H any] struct {
	cfg   C              // cfg 是创建注册表所需的配置
	val   *hooks.Dict[H] // val 是已创建的注册表
	ready bool           // ready 标记注册表是否已通过 opener 完成初始化
}

// manager 是 Manager 接口的具体实现，负责管理多个注册表组。
//
// 类型参数:
//   - C: 配置类型
//   - H: 钩子类型
type manager[C any, H any] struct {
	mu     sync.RWMutex                            // mu 用于保护并发访问
	groups map[string]map[string]*connection[C, H] // groups 存储所有注册表组，外层 key 为组名，内层 key 为注册表名

	opener Opener[C]   // opener 用于生成注册表选项
	closer Closer[H]   // closer 在注册表销毁前调用（可为 nil）
	logger *zap.Logger // logger 用于输出日志
}

// open 调用 opener 创建注册表，注册表名称固定为完整名称。
func (m *manager[C, H]) open(ctx context.Context, groupName, name string, cfg C) (*hooks.Dict[H], error) {
	opts, err := m.opener(ctx, cfg)
	if err != nil {
		return nil, err
	}
	// opener 返回的选项可以覆盖 logger，名称始终由管理器决定
	all := make([]hooks.Option, 0, len(opts)+2)
	all = append(all, hooks.WithLogger(m.logger))
	all = append(all, opts...)
	all = append(all, hooks.WithName(FullName(groupName, name)))
	return hooks.NewDict[H](all...), nil
}

// shutdown 调用 closer 并销毁已创建的注册表。
//
// closer 返回错误时注册表仍然会被销毁。
func (m *manager[C, H]) shutdown(ctx context.Context, groupName, name string, conn *connection[C, H]) error {
	if !conn.ready {
		return nil
	}
	defer conn.val.Close()

	if m.closer == nil {
		return nil
	}
	if err := m.closer(ctx, conn.val); err != nil {
		return NewErrCloseRegistryFailed(groupName, name, err)
	}
	return nil
}

// Group 根据名称获取注册表组。
//
// 如果指定名称的组不存在，返回 ErrGroupNotFound 错误。
func (m *manager[C, H]) Group(name string) (Group[C, H], error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if _, ok := m.groups[name]; !ok {
		return nil, NewErrGroupNotFound(name)
	}

	return &group[C, H]{
		name: name,
		m:    m,
	}, nil
}

// Close 关闭管理器中所有已创建的注册表。
//
// 遍历所有组中的所有注册表，对已创建（ready=true）的注册表调用 closer 并销毁。
// 关闭完成后，管理器将被重置为空状态（所有组和注册表配置都会被清除）。
//
// 返回值:
//   - []error: 关闭过程中遇到的所有错误，每个错误都包含组名和注册表名信息
func (m *manager[C, H]) Close(ctx context.Context) []error {
	m.mu.Lock()
	defer m.mu.Unlock()

	var errs []error

	for groupName, groupMap := range m.groups {
		for name, conn := range groupMap {
			if err := m.shutdown(ctx, groupName, name, conn); err != nil {
				errs = append(errs, err)
			}
		}
	}

	// 清空所有组
	m.groups = make(map[string]map[string]*connection[C, H])
	m.logger.Debug("hook registry manager closed", zap.Int("errors", len(errs)))
	return errs
}

// MustGroup 根据名称获取注册表组，如果组不存在则触发 panic。
func (m *manager[C, H]) MustGroup(name string) Group[C, H] {
	g, err := m.Group(name)
	if err != nil {
		panic(err)
	}
	return g
}

// AddGroup 添加一个新的注册表组。
//
// 组名不能为空，也不能包含 "/"，否则该组的注册表无法通过 ResolveRegistry 找回。
// 这属于调用方的编程错误，会触发 panic，与 MustGroup 一致。
//
// 返回值:
//   - false: 组是新创建的
//   - true: 组已经存在（未做任何修改）
func (m *manager[C, H]) AddGroup(name string) bool {
	if !validGroupName(name) {
		panic(NewErrInvalidGroupName(name))
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.groups[name]
	if !ok {
		m.groups[name] = make(map[string]*connection[C, H])
		return false
	}
	return true
}

// validGroupName 判断组名能否出现在完整注册表名称 "<组名>/<注册表名>" 中。
func validGroupName(name string) bool {
	return name != "" && !strings.Contains(name, nameSeparator)
}

// ListGroupNames 返回所有已注册的组名列表。
//
// 返回的列表顺序不保证固定（依赖 map 遍历顺序）。
func (m *manager[C, H]) ListGroupNames() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	groupNames := make([]string, 0, len(m.groups))
	for name := range m.groups {
		groupNames = append(groupNames, name)
	}
	return groupNames
}

// ResolveRegistry 根据完整名称 "<组名>/<注册表名>" 查找已创建的注册表。
//
// 只返回已经通过 Get 创建的注册表，不会触发惰性初始化：
// 尚未创建的注册表不可能发出过句柄。
func (m *manager[C, H]) ResolveRegistry(fullName string) (hooks.Registry, bool) {
	groupName, name, ok := strings.Cut(fullName, nameSeparator)
	if !ok {
		return nil, false
	}
	return m.resolve(groupName, name)
}

func (m *manager[C, H]) resolve(groupName, name string) (hooks.Registry, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	conn, ok := m.groups[groupName][name]
	if !ok || !conn.ready {
		return nil, false
	}
	return conn.val, true
}

// group 是 Group 接口的具体实现，代表一个注册表组。
//
// group 通过持有 manager 的引用来访问和操作注册表，
// 所有操作都会通过 manager 的锁来保证并发安全。
//
// 类型参数:
//   - C: 配置类型
//   - H: 钩子类型
type group[C any, H any] struct {
	name string         // name 是该组的唯一标识名称
	m    *manager[C, H] // m 是所属的管理器
}

// Name 返回组名。
func (g *group[C, H]) Name() string {
	return g.name
}

// Get 根据名称获取注册表，支持惰性初始化。
//
// 实现采用双重检查锁定（Double-Checked Locking）模式：
//  1. 首先使用读锁检查注册表是否已创建
//  2. 如果已创建，直接返回
//  3. 如果未创建，升级为写锁并调用 opener 创建注册表
//  4. 创建后标记为 ready，后续调用将直接返回
//
// 可能返回的错误:
//   - ErrGroupNotFound: 组不存在（可能已被关闭）
//   - ErrRegistryNotFound: 注册表未注册
//   - opener 返回的错误: 注册表创建失败
func (g *group[C, H]) Get(ctx context.Context, name string) (*hooks.Dict[H], error) {
	// 读锁：快速路径，检查注册表是否已创建
	g.m.mu.RLock()
	groupMap, ok := g.m.groups[g.name]
	if !ok {
		g.m.mu.RUnlock()
		return nil, NewErrGroupNotFound(g.name)
	}

	conn, ok := groupMap[name]
	if !ok {
		g.m.mu.RUnlock()
		return nil, NewErrRegistryNotFound(g.name, name)
	}

	if conn.ready {
		val := conn.val
		g.m.mu.RUnlock()
		return val, nil
	}
	g.m.mu.RUnlock()

	// 写锁：慢速路径，惰性创建注册表
	g.m.mu.Lock()
	defer g.m.mu.Unlock()

	// 双重检查：在获取写锁期间，其他 goroutine 可能已删除组或注册表
	groupMap, ok = g.m.groups[g.name]
	if !ok {
		return nil, NewErrGroupNotFound(g.name)
	}

	conn, ok = groupMap[name]
	if !ok {
		return nil, NewErrRegistryNotFound(g.name, name)
	}

	if conn.ready {
		return conn.val, nil
	}

	val, err := g.m.open(ctx, g.name, name, conn.cfg)
	if err != nil {
		return nil, err
	}

	conn.val = val
	conn.ready = true
	g.m.logger.Debug("hook registry opened", zap.String("registry", val.Name()))
	return val, nil
}

// MustGet 根据名称获取注册表，如果获取失败则触发 panic。
func (g *group[C, H]) MustGet(ctx context.Context, name string) *hooks.Dict[H] {
	val, err := g.Get(ctx, name)
	if err != nil {
		panic(err)
	}
	return val
}

// Config 返回注册表注册时的配置。
//
// 可能返回的错误:
//   - ErrGroupNotFound: 组不存在
//   - ErrRegistryNotFound: 注册表未注册
func (g *group[C, H]) Config(_ context.Context, name string) (C, error) {
	var zero C

	g.m.mu.RLock()
	defer g.m.mu.RUnlock()

	groupMap, ok := g.m.groups[g.name]
	if !ok {
		return zero, NewErrGroupNotFound(g.name)
	}
	conn, ok := groupMap[name]
	if !ok {
		return zero, NewErrRegistryNotFound(g.name, name)
	}
	return conn.cfg, nil
}

// MustConfig 返回注册表注册时的配置，如果获取失败则触发 panic。
func (g *group[C, H]) MustConfig(ctx context.Context, name string) C {
	cfg, err := g.Config(ctx, name)
	if err != nil {
		panic(err)
	}
	return cfg
}

// Register 向组中注册一个新的注册表配置。
//
// 注意事项:
//   - 此方法只保存配置，不会立即创建注册表
//   - 注册表将在首次通过 Get 访问时惰性初始化
//   - 如果名称已存在，不会覆盖原有配置
//   - 如果组不存在（已被关闭），会自动重新创建组
//
// 返回值:
//   - isNew: true 表示新注册成功，false 表示名称已存在
//   - err: 目前始终为 nil，保留用于将来扩展
func (g *group[C, H]) Register(_ context.Context, name string, cfg C) (bool, error) {
	g.m.mu.Lock()
	defer g.m.mu.Unlock()

	groupMap, ok := g.m.groups[g.name]
	if !ok {
		groupMap = make(map[string]*connection[C, H])
		g.m.groups[g.name] = groupMap
	}

	if _, exists := groupMap[name]; exists {
		return false, nil
	}

	groupMap[name] = &connection[C, H]{cfg: cfg}
	return true, nil
}

// Unregister 从组中注销指定注册表。
//
// 如果注册表已创建（ready=true），会先调用 closer，再销毁注册表。
// closer 的错误只记录日志，注册表仍会被移除。
//
// 返回值:
//   - ErrGroupNotFound: 组不存在
//   - ErrRegistryNotFound: 注册表不存在
//   - nil: 注销成功
func (g *group[C, H]) Unregister(ctx context.Context, name string) error {
	g.m.mu.Lock()
	defer g.m.mu.Unlock()

	groupMap, ok := g.m.groups[g.name]
	if !ok {
		return NewErrGroupNotFound(g.name)
	}

	conn, ok := groupMap[name]
	if !ok {
		return NewErrRegistryNotFound(g.name, name)
	}

	if err := g.m.shutdown(ctx, g.name, name, conn); err != nil {
		g.m.logger.Warn("close hook registry failed", zap.String("registry", FullName(g.name, name)), zap.Error(err))
	}

	delete(groupMap, name)
	return nil
}

// List 返回组内所有已注册的注册表名称列表。
//
// 返回的列表顺序不保证固定（依赖 map 遍历顺序）。
// 如果组不存在（已被关闭），返回空列表。
func (g *group[C, H]) List() []string {
	g.m.mu.RLock()
	defer g.m.mu.RUnlock()

	groupMap, ok := g.m.groups[g.name]
	if !ok {
		return nil
	}

	names := make([]string, 0, len(groupMap))
	for name := range groupMap {
		names = append(names, name)
	}
	return names
}

// Close 关闭组内所有已创建的注册表，并从管理器中移除整个组。
//
// 返回值:
//   - []error: 关闭过程中遇到的所有错误，每个错误都包含组名和注册表名信息
//   - nil: 组不存在（可能已被关闭）
func (g *group[C, H]) Close(ctx context.Context) []error {
	g.m.mu.Lock()
	defer g.m.mu.Unlock()

	groupMap, ok := g.m.groups[g.name]
	if !ok {
		return nil
	}

	var errs []error
	for name, conn := range groupMap {
		if err := g.m.shutdown(ctx, g.name, name, conn); err != nil {
			errs = append(errs, err)
		}
	}

	delete(g.m.groups, g.name)
	return errs
}

// Ping 使用已注册的配置调用 opener，验证注册表能否创建。
//
// 创建出的注册表会立即销毁，不会保存到组中。
//
// 可能返回的错误:
//   - ErrGroupNotFound: 组不存在
//   - ErrRegistryNotFound: 注册表未注册
//   - ErrPingRegistryFailed: opener 返回了错误
func (g *group[C, H]) Ping(ctx context.Context, name string) error {
	cfg, err := g.Config(ctx, name)
	if err != nil {
		return err
	}

	d, err := g.m.open(ctx, g.name, name, cfg)
	if err != nil {
		return NewErrPingRegistryFailed(g.name, name, err)
	}
	d.Close()
	return nil
}

// ResolveRegistry 根据完整名称查找本组内已创建的注册表。
func (g *group[C, H]) ResolveRegistry(fullName string) (hooks.Registry, bool) {
	groupName, name, ok := strings.Cut(fullName, nameSeparator)
	if !ok || groupName != g.name {
		return nil, false
	}
	return g.m.resolve(groupName, name)
}

// NewGroup 创建一个独立的注册表组（单组模式）。
//
// 此函数是 New 的简化版本，适用于不需要多组管理的场景。
// 它会创建一个内部 manager 并预创建一个默认组，直接返回该组的引用。
//
// 示例:
//
//	group := NewGroup(opener, closer)
//	group.Register(ctx, "forward", cfg)
//	dict, err := group.Get(ctx, "forward")
//	h := dict.Add(hook)
func NewGroup[C any, H any](
	opener Opener[C],
	closer Closer[H],
	opts ...Option,
) Group[C, H] {
	m := newManager(opener, closer, opts)

	// 预创建默认 group，使用 defaultGroupName 作为组名
	m.groups[defaultGroupName] = make(map[string]*connection[C, H])
	return &group[C, H]{
		name: defaultGroupName,
		m:    m,
	}
}
