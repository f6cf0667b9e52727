package models

// Emoji is a custom guild emoji.
type Emoji struct {
	ID       EmojiID  `json:"id"`
	Name     string   `json:"name"`
	Roles    []RoleID `json:"roles,omitempty"`
	Animated bool     `json:"animated,omitempty"`
	Managed  bool     `json:"managed,omitempty"`
}

// MentionID returns the emoji's identifier.
func (e Emoji) MentionID() EmojiID { return e.ID }
