package coalition

import (
	"fmt"

	"github.com/BaSui01/agentpatterns/types"
)

// FormationType 定义联盟的组建方式。
type FormationType string

const (
	FormationTopDown     FormationType = "top_down"
	FormationBottomUp    FormationType = "bottom_up"
	FormationNegotiation FormationType = "negotiation"
	FormationAuction     FormationType = "auction"
)

// ParseFormationType 解析组建方式字符串。
func ParseFormationType(s string) (FormationType, error) {
	switch t := FormationType(s); t {
	case FormationTopDown, FormationBottomUp, FormationNegotiation, FormationAuction:
		return t, nil
	}
	return "", fmt.Errorf("unknown formation type %q", s)
}

// Formation 记录一次组建过程：候选者与已选中者。
type Formation struct {
	kind       FormationType
	candidates []types.AgentID
	selected   []types.AgentID
}

// NewFormation 创建组建过程。
func NewFormation(kind FormationType) *Formation {
	return &Formation{kind: kind}
}

// AddCandidate 追加候选者，重复追加会被忽略。
func (f *Formation) AddCandidate(id types.AgentID) {
	if !contains(f.candidates, id) {
		f.candidates = append(f.candidates, id)
	}
}

// Select 选中一个候选者。非候选者或已选中者返回 false。
func (f *Formation) Select(id types.AgentID) bool {
	if !contains(f.candidates, id) || contains(f.selected, id) {
		return false
	}
	f.selected = append(f.selected, id)
	return true
}

func (f *Formation) Kind() FormationType { return f.kind }

// Candidates 返回候选者副本。
func (f *Formation) Candidates() []types.AgentID {
	return append([]types.AgentID(nil), f.candidates...)
}

// Selected 返回按选中顺序排列的副本。
func (f *Formation) Selected() []types.AgentID {
	return append([]types.AgentID(nil), f.selected...)
}

// IsComplete 至少选中一人即视为完成。
func (f *Formation) IsComplete() bool { return len(f.selected) > 0 }

// Form 用已选中的智能体生成联盟。
func (f *Formation) Form(name string) *Coalition {
	c := New(name)
	for _, id := range f.selected {
		c.AddMember(id)
	}
	return c
}

func contains(ids []types.AgentID, id types.AgentID) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
