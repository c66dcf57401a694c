package starfall

import "fmt"

// ConfigError 配置错误（数学模型缺项/权重表不合法），必须立即失败，禁止兜底
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("starfall: config error: %s: %s", e.Field, e.Reason)
}

func newConfigError(field, format string, args ...any) *ConfigError {
	return &ConfigError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// ValidationError 请求参数错误（下注金额/种子/模式不合法），在任何随机数生成前拒绝
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("starfall: invalid %s: %s", e.Field, e.Reason)
}

func newValidationError(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// InvariantError 不变量被破坏（连消超限/累加器为负/列守恒失败），携带种子与步数便于离线排查
type InvariantError struct {
	Seed   string
	Step   int64
	Reason string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("starfall: invariant violation at step %d (seed=%s): %s", e.Step, e.Seed, e.Reason)
}

func newInvariantError(seed string, step int64, format string, args ...any) *InvariantError {
	return &InvariantError{Seed: seed, Step: step, Reason: fmt.Sprintf(format, args...)}
}
