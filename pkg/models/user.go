package models

import "time"

// User is a Discord user account as seen by other users.
type User struct {
	ID            UserID `json:"id"`
	Username      string `json:"username"`
	Discriminator string `json:"discriminator"`
	Avatar        string `json:"avatar,omitempty"`
	Bot           bool   `json:"bot,omitempty"`
}

// MentionID returns the user's identifier.
func (u User) MentionID() UserID { return u.ID }

// CurrentUser is the account the client is authenticated as. It carries the
// private fields Discord only returns for the requesting user.
type CurrentUser struct {
	ID            UserID `json:"id"`
	Username      string `json:"username"`
	Discriminator string `json:"discriminator"`
	Avatar        string `json:"avatar,omitempty"`
	Bot           bool   `json:"bot,omitempty"`
	Email         string `json:"email,omitempty"`
	Verified      bool   `json:"verified,omitempty"`
	MFAEnabled    bool   `json:"mfa_enabled,omitempty"`
}

// MentionID returns the authenticated user's identifier.
func (u CurrentUser) MentionID() UserID { return u.ID }

// Member is a user's membership in a guild.
type Member struct {
	User     User      `json:"user"`
	Nick     string    `json:"nick,omitempty"`
	Roles    []RoleID  `json:"roles"`
	JoinedAt time.Time `json:"joined_at"`
	Deaf     bool      `json:"deaf,omitempty"`
	Mute     bool      `json:"mute,omitempty"`
}

// MentionID returns the identifier of the user the membership belongs to.
// Member mentions are user mentions; Discord has no separate syntax for
// them.
func (m Member) MentionID() UserID { return m.User.ID }
