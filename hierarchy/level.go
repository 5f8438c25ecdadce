package hierarchy

import "fmt"

// LevelType 层级类型
type LevelType string

const (
	LevelStrategic   LevelType = "strategic"
	LevelTactical    LevelType = "tactical"
	LevelOperational LevelType = "operational"
)

// ParseLevelType 解析层级类型
func ParseLevelType(s string) (LevelType, error) {
	switch t := LevelType(s); t {
	case LevelStrategic, LevelTactical, LevelOperational:
		return t, nil
	}
	return "", fmt.Errorf("unknown level type %q", s)
}

// Level 层级，Rank 越大权限越高
type Level struct {
	Name string    `json:"name" yaml:"name"`
	Type LevelType `json:"type" yaml:"type"`
	Rank uint32    `json:"rank" yaml:"rank"`
}

// NewLevel 创建层级
func NewLevel(name string, t LevelType, rank uint32) Level {
	return Level{Name: name, Type: t, Rank: rank}
}

// IsAbove 判断 l 是否严格高于 other
func (l Level) IsAbove(other Level) bool {
	return l.Rank > other.Rank
}
