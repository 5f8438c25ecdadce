package hierarchy

import "github.com/BaSui01/agentpatterns/types"

// Delegation 一次任务委派记录
type Delegation struct {
	From           types.AgentID `json:"from" yaml:"from"`
	To             types.AgentID `json:"to" yaml:"to"`
	Task           string        `json:"task" yaml:"task"`
	AuthorityLevel uint32        `json:"authority_level" yaml:"authority_level"`
}
