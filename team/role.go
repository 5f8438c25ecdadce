package team

import "fmt"

// RoleType 定义成员在团队中的职能。
type RoleType string

const (
	RoleLeader      RoleType = "leader"
	RoleCoordinator RoleType = "coordinator"
	RoleExecutor    RoleType = "executor"
	RoleSpecialist  RoleType = "specialist"
)

// ParseRoleType 解析角色类型。
func ParseRoleType(s string) (RoleType, error) {
	switch t := RoleType(s); t {
	case RoleLeader, RoleCoordinator, RoleExecutor, RoleSpecialist:
		return t, nil
	}
	return "", fmt.Errorf("unknown role type %q", s)
}

// 角色定义了成员的名称、职能与职责列表.
type Role struct {
	Name             string   `json:"name" yaml:"name"`
	Type             RoleType `json:"type" yaml:"type"`
	Responsibilities []string `json:"responsibilities,omitempty" yaml:"responsibilities,omitempty"`
}

// NewRole 创建没有职责的角色。
func NewRole(name string, t RoleType) Role {
	return Role{Name: name, Type: t}
}

// WithResponsibility 返回追加了一项职责的副本。
func (r Role) WithResponsibility(responsibility string) Role {
	list := make([]string, len(r.Responsibilities), len(r.Responsibilities)+1)
	copy(list, r.Responsibilities)
	r.Responsibilities = append(list, responsibility)
	return r
}
