package hooks

import "go.uber.org/zap"

// options 是创建 Dict 时的可选配置。
type options struct {
	name   string      // name 是注册表名称，持久化句柄时使用
	logger *zap.Logger // logger 用于输出调试日志
}

// Option 是 Dict 的可选配置项。
type Option func(*options)

// WithName 设置注册表名称。
//
// 名称会在句柄持久化时写入，反序列化时通过 Resolver 找回注册表。
// 未命名的注册表，其句柄持久化后只能还原为失效句柄。
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

// WithLogger 设置日志记录器，为 nil 时不输出日志。
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

func newOptions(opts []Option) options {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = zap.NewNop()
	}
	return o
}
