package federation

import "fmt"

// PolicyType 治理策略类型
type PolicyType string

const (
	PolicyVoting          PolicyType = "voting"
	PolicyDelegation      PolicyType = "delegation"
	PolicyAutonomy        PolicyType = "autonomy"
	PolicyResourceSharing PolicyType = "resource_sharing"
)

// DefaultThreshold 投票策略未配置 threshold 参数时使用的通过比例
const DefaultThreshold = 0.5

// ParsePolicyType 解析策略类型
func ParsePolicyType(s string) (PolicyType, error) {
	switch t := PolicyType(s); t {
	case PolicyVoting, PolicyDelegation, PolicyAutonomy, PolicyResourceSharing:
		return t, nil
	}
	return "", fmt.Errorf("unknown policy type %q", s)
}

// PolicyParam 有序策略参数
type PolicyParam struct {
	Name  string  `json:"name" yaml:"name"`
	Value float64 `json:"value" yaml:"value"`
}

// Policy 联邦治理策略
type Policy struct {
	Name   string        `json:"name" yaml:"name"`
	Type   PolicyType    `json:"type" yaml:"type"`
	Params []PolicyParam `json:"params,omitempty" yaml:"params,omitempty"`
}

// NewPolicy 创建策略
func NewPolicy(name string, t PolicyType) Policy {
	return Policy{Name: name, Type: t}
}

// WithParameter 返回追加参数后的副本
func (p Policy) WithParameter(name string, value float64) Policy {
	params := make([]PolicyParam, len(p.Params), len(p.Params)+1)
	copy(params, p.Params)
	p.Params = append(params, PolicyParam{Name: name, Value: value})
	return p
}

// Parameter 返回最后一次设置的参数值
func (p Policy) Parameter(name string) (float64, bool) {
	for i := len(p.Params) - 1; i >= 0; i-- {
		if p.Params[i].Name == name {
			return p.Params[i].Value, true
		}
	}
	return 0, false
}

// Threshold 返回 threshold 参数，缺省为 DefaultThreshold
func (p Policy) Threshold() float64 {
	if v, ok := p.Parameter("threshold"); ok {
		return v
	}
	return DefaultThreshold
}
