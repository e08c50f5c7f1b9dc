package domain

// RoleType is the coarse-grained permission class of a user.
type RoleType string

const (
	RoleApplicant RoleType = "APPLICANT"
	RoleAdmin     RoleType = "ADMIN"
)

var roleDisplayNames = map[RoleType]string{
	RoleApplicant: "SOLICITANTE",
	RoleAdmin:     "ADMINISTRADOR",
}

// DisplayName returns the localized label shown to back-office operators.
func (t RoleType) DisplayName() string {
	if name, ok := roleDisplayNames[t]; ok {
		return name
	}
	return string(t)
}

func (t RoleType) Valid() bool {
	_, ok := roleDisplayNames[t]
	return ok
}

// Role is immutable once created; the core only reads it.
type Role struct {
	ID          string   `json:"id"`
	Type        RoleType `json:"roleType"`
	Description string   `json:"description"`
}

// DefaultRoles are the roles every deployment must provide.
func DefaultRoles() []Role {
	return []Role{
		{Type: RoleApplicant, Description: "Rol " + string(RoleApplicant)},
		{Type: RoleAdmin, Description: "Rol " + string(RoleAdmin)},
	}
}
