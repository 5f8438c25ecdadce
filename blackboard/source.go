package blackboard

import (
	"fmt"

	"github.com/BaSui01/agentpatterns/types"
)

// SourceType 知识源类型
type SourceType string

const (
	SourceSensor    SourceType = "sensor"
	SourceReasoning SourceType = "reasoning"
	SourcePlanning  SourceType = "planning"
	SourceLearning  SourceType = "learning"
)

// ParseSourceType 解析知识源类型
func ParseSourceType(s string) (SourceType, error) {
	switch t := SourceType(s); t {
	case SourceSensor, SourceReasoning, SourcePlanning, SourceLearning:
		return t, nil
	}
	return "", fmt.Errorf("unknown knowledge source type %q", s)
}

// KnowledgeSource 向黑板贡献知识的智能体
type KnowledgeSource struct {
	Agent    types.AgentID `json:"agent" yaml:"agent"`
	Type     SourceType    `json:"type" yaml:"type"`
	Priority uint32        `json:"priority" yaml:"priority"`
}
