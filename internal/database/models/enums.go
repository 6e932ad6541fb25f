package models

// Role is the role a user holds at a church
type Role string

const (
	RoleSuperAdmin     Role = "SUPER_ADMIN"
	RoleAdmin          Role = "ADMIN"
	RoleSecretary      Role = "SECRETARY"
	RoleMinister       Role = "MINISTER"
	RoleDepartmentHead Role = "DEPARTMENT_HEAD"
)

// AllRoles lists every role in declaration order
var AllRoles = []Role{RoleSuperAdmin, RoleAdmin, RoleSecretary, RoleMinister, RoleDepartmentHead}

// IsValid checks if the Role is valid
func (r Role) IsValid() bool {
	switch r {
	case RoleSuperAdmin, RoleAdmin, RoleSecretary, RoleMinister, RoleDepartmentHead:
		return true
	}
	return false
}

// PlanningStatus is the service status of a member for one event department.
// A nil *PlanningStatus means "not assigned".
type PlanningStatus string

const (
	PlanningStatusEnService        PlanningStatus = "EN_SERVICE"
	PlanningStatusEnServiceDebrief PlanningStatus = "EN_SERVICE_DEBRIEF"
	PlanningStatusIndisponible     PlanningStatus = "INDISPONIBLE"
	PlanningStatusRemplacant       PlanningStatus = "REMPLACANT"
)

// IsValid checks if the PlanningStatus is valid
func (s PlanningStatus) IsValid() bool {
	switch s {
	case PlanningStatusEnService, PlanningStatusEnServiceDebrief, PlanningStatusIndisponible, PlanningStatusRemplacant:
		return true
	}
	return false
}

// IsServing reports whether the status puts the member on duty
func (s PlanningStatus) IsServing() bool {
	return s == PlanningStatusEnService || s == PlanningStatusEnServiceDebrief
}

// IsDebrief reports whether a possibly nil status is EN_SERVICE_DEBRIEF
func IsDebrief(s *PlanningStatus) bool {
	return s != nil && *s == PlanningStatusEnServiceDebrief
}
