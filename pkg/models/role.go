package models

// Role is a guild role.
type Role struct {
	ID          RoleID `json:"id"`
	Name        string `json:"name"`
	Color       int    `json:"color"`
	Position    int    `json:"position"`
	Hoist       bool   `json:"hoist,omitempty"`
	Managed     bool   `json:"managed,omitempty"`
	Mentionable bool   `json:"mentionable,omitempty"`
}

// MentionID returns the role's identifier. Whether the resulting mention
// actually pings anyone is governed by the role's Mentionable flag and the
// sender's permissions, neither of which this package checks.
func (r Role) MentionID() RoleID { return r.ID }
