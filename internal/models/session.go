package models

import "slices"

type Role string

const (
	TokenTeamRole    Role = "Token Team"
	ShippingTeamRole Role = "Shipping Team"
)

var Roles = []Role{TokenTeamRole, ShippingTeamRole}

func (role Role) IsValid() bool {
	return slices.Contains(Roles, role)
}

// CanCreate is the creator tier.
func (role Role) CanCreate() bool {
	return role == TokenTeamRole
}

// CanProcess is the processor tier.
func (role Role) CanProcess() bool {
	return role == ShippingTeamRole
}

type Session struct {
	ID            string `json:"session_id"`
	Role          Role   `json:"role"`
	Authenticated bool   `json:"authenticated"`
}
