package models

// Role is the coarse global permission level of a member.
type Role string

const (
	RoleAdmin     Role = "ROLE_ADMIN"
	RoleModerator Role = "ROLE_MODERATOR"
	RoleUser      Role = "ROLE_USER"
	RoleNone      Role = "ROLE_NONE"
)

var roleRank = map[Role]int{
	RoleNone:      0,
	RoleUser:      1,
	RoleModerator: 2,
	RoleAdmin:     3,
}

// Valid reports whether r is a known role
func (r Role) Valid() bool {
	_, ok := roleRank[r]
	return ok
}

// AtLeast reports whether r is the same as or above required in the
// hierarchy ADMIN > MODERATOR > USER > NONE. Unknown roles rank below NONE.
func (r Role) AtLeast(required Role) bool {
	have, ok := roleRank[r]
	if !ok {
		return false
	}
	return have >= roleRank[required]
}

// Position is an organizational title, independent of role.
type Position string

const (
	PositionMember       Position = "member"
	PositionGuardian     Position = "guardian"
	PositionChairman     Position = "chairman"
	PositionViceChairman Position = "vice_chairman"
	PositionTreasurer    Position = "treasurer"
	PositionExMember     Position = "ex_member"
)

var positionPriority = map[Position]int{
	PositionGuardian:     5,
	PositionChairman:     4,
	PositionViceChairman: 3,
	PositionTreasurer:    2,
	PositionMember:       1,
	PositionExMember:     0,
}

// Valid reports whether p is a known position
func (p Position) Valid() bool {
	_, ok := positionPriority[p]
	return ok
}

// IsUnique reports whether at most one member may hold p.
func (p Position) IsUnique() bool {
	switch p {
	case PositionGuardian, PositionChairman, PositionViceChairman, PositionTreasurer:
		return true
	}
	return false
}

// Priority is the listing rank; higher sorts first.
func (p Position) Priority() int {
	return positionPriority[p]
}

// DateTimeLayout is the wire format for timestamps in responses and edit history.
const DateTimeLayout = "2006-01-02 15:04:05"

// DateLayout is the wire format for project dates.
const DateLayout = "2006-01-02"
