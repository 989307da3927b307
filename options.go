package sqrtgo

import (
	"github.com/hupe1980/sqrtgo/executor"
)

type options struct {
	executor   executor.Executor
	poolConfig executor.Config
	logger     *Logger
	metrics    MetricsCollector
}

// Option configures Calculator construction.
type Option func(*options)

// WithExecutor injects the executor that offloaded computations run on.
//
// The calculator does not take ownership: Close leaves an injected executor
// running, since it may be shared. Pass executor.Sync{} in tests for
// deterministic inline execution.
func WithExecutor(e executor.Executor) Option {
	return func(o *options) {
		o.executor = e
	}
}

// WithPoolConfig configures the worker pool the calculator builds when no
// executor is injected. Ignored when WithExecutor is used.
func WithPoolConfig(cfg executor.Config) Option {
	return func(o *options) {
		o.poolConfig = cfg
	}
}

// WithLogger configures a logger for operation logging.
// If nil is passed, logging is disabled (the default).
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithMetricsCollector configures a metrics collector for monitoring
// operations. Pass nil to disable metrics collection (the default).
//
// Example with BasicMetricsCollector:
//
//	metrics := &sqrtgo.BasicMetricsCollector{}
//	calc := sqrtgo.New(sqrtgo.WithMetricsCollector(metrics))
func WithMetricsCollector(collector MetricsCollector) Option {
	return func(o *options) {
		if collector == nil {
			collector = NoopMetricsCollector{}
		}
		o.metrics = collector
	}
}

func applyOptions(optFns []Option) options {
	opts := options{
		logger:  NoopLogger(),
		metrics: NoopMetricsCollector{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	return opts
}
