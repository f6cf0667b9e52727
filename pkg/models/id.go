package models

// ChannelID identifies a channel of any variant: guild channels, group DMs
// and private channels share one identifier space.
type ChannelID Snowflake

func (id ChannelID) String() string { return Snowflake(id).String() }

// MentionID returns the identifier itself, letting a bare ChannelID be
// mentioned directly.
func (id ChannelID) MentionID() ChannelID { return id }

func (id ChannelID) MarshalJSON() ([]byte, error)  { return Snowflake(id).MarshalJSON() }
func (id *ChannelID) UnmarshalJSON(b []byte) error { return (*Snowflake)(id).UnmarshalJSON(b) }

// EmojiID identifies a custom guild emoji. Unicode emojis have no snowflake
// and are outside this package's model.
type EmojiID Snowflake

func (id EmojiID) String() string { return Snowflake(id).String() }

// MentionID returns the identifier itself, letting a bare EmojiID be
// mentioned directly.
func (id EmojiID) MentionID() EmojiID { return id }

func (id EmojiID) MarshalJSON() ([]byte, error)  { return Snowflake(id).MarshalJSON() }
func (id *EmojiID) UnmarshalJSON(b []byte) error { return (*Snowflake)(id).UnmarshalJSON(b) }

// RoleID identifies a guild role.
type RoleID Snowflake

func (id RoleID) String() string { return Snowflake(id).String() }

// MentionID returns the identifier itself, letting a bare RoleID be
// mentioned directly.
func (id RoleID) MentionID() RoleID { return id }

func (id RoleID) MarshalJSON() ([]byte, error)  { return Snowflake(id).MarshalJSON() }
func (id *RoleID) UnmarshalJSON(b []byte) error { return (*Snowflake)(id).UnmarshalJSON(b) }

// UserID identifies a user account.
type UserID Snowflake

func (id UserID) String() string { return Snowflake(id).String() }

// MentionID returns the identifier itself, letting a bare UserID be
// mentioned directly.
func (id UserID) MentionID() UserID { return id }

func (id UserID) MarshalJSON() ([]byte, error)  { return Snowflake(id).MarshalJSON() }
func (id *UserID) UnmarshalJSON(b []byte) error { return (*Snowflake)(id).UnmarshalJSON(b) }

// GuildID identifies a guild. Guilds are not mentionable; the type exists so
// channel records can carry their owning guild without falling back to a raw
// Snowflake.
type GuildID Snowflake

func (id GuildID) String() string { return Snowflake(id).String() }

func (id GuildID) MarshalJSON() ([]byte, error)  { return Snowflake(id).MarshalJSON() }
func (id *GuildID) UnmarshalJSON(b []byte) error { return (*Snowflake)(id).UnmarshalJSON(b) }
