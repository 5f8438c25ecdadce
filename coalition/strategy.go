package coalition

import "fmt"

// StrategyType 定义联盟优化目标。
type StrategyType string

const (
	StrategyMaximizeUtility  StrategyType = "maximize_utility"
	StrategyMinimizeCost     StrategyType = "minimize_cost"
	StrategyBalanceResources StrategyType = "balance_resources"
	StrategyMaximizeCoverage StrategyType = "maximize_coverage"
)

// ParseStrategyType 解析策略类型字符串。
func ParseStrategyType(s string) (StrategyType, error) {
	switch t := StrategyType(s); t {
	case StrategyMaximizeUtility, StrategyMinimizeCost, StrategyBalanceResources, StrategyMaximizeCoverage:
		return t, nil
	}
	return "", fmt.Errorf("unknown strategy type %q", s)
}

// Param 是有序的命名参数。
type Param struct {
	Name  string  `json:"name" yaml:"name"`
	Value float64 `json:"value" yaml:"value"`
}

// Strategy 是策略类型加有序参数。
type Strategy struct {
	Type   StrategyType `json:"type" yaml:"type"`
	Params []Param      `json:"params,omitempty" yaml:"params,omitempty"`
}

// NewStrategy 创建不带参数的策略。
func NewStrategy(t StrategyType) Strategy {
	return Strategy{Type: t}
}

// WithParameter 返回追加了参数的副本，原值不受影响。
func (s Strategy) WithParameter(name string, value float64) Strategy {
	params := make([]Param, len(s.Params), len(s.Params)+1)
	copy(params, s.Params)
	s.Params = append(params, Param{Name: name, Value: value})
	return s
}

// Parameter 返回最后一次以 name 设置的参数值。
func (s Strategy) Parameter(name string) (float64, bool) {
	for i := len(s.Params) - 1; i >= 0; i-- {
		if s.Params[i].Name == name {
			return s.Params[i].Value, true
		}
	}
	return 0, false
}
