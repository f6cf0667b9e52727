package models

// Group is a group direct-message channel.
type Group struct {
	ID            ChannelID `json:"id"`
	Name          string    `json:"name,omitempty"`
	Icon          string    `json:"icon,omitempty"`
	OwnerID       UserID    `json:"owner_id"`
	Recipients    []User    `json:"recipients,omitempty"`
	LastMessageID Snowflake `json:"last_message_id,omitempty"`
}

// MentionID returns the group channel's identifier.
func (g Group) MentionID() ChannelID { return g.ID }

// PrivateChannel is a one-to-one direct-message channel.
type PrivateChannel struct {
	ID            ChannelID `json:"id"`
	Recipients    []User    `json:"recipients,omitempty"`
	LastMessageID Snowflake `json:"last_message_id,omitempty"`
}

// MentionID returns the private channel's identifier.
func (p PrivateChannel) MentionID() ChannelID { return p.ID }

// TextChannel is a guild text channel.
type TextChannel struct {
	ID       ChannelID `json:"id"`
	GuildID  GuildID   `json:"guild_id"`
	Name     string    `json:"name"`
	Topic    string    `json:"topic,omitempty"`
	Position int       `json:"position"`
	NSFW     bool      `json:"nsfw,omitempty"`
}

// MentionID returns the text channel's identifier.
func (t TextChannel) MentionID() ChannelID { return t.ID }

// VoiceChannel is a guild voice channel.
type VoiceChannel struct {
	ID        ChannelID `json:"id"`
	GuildID   GuildID   `json:"guild_id"`
	Name      string    `json:"name"`
	Position  int       `json:"position"`
	Bitrate   int       `json:"bitrate,omitempty"`
	UserLimit int       `json:"user_limit,omitempty"`
}

// MentionID returns the voice channel's identifier.
func (v VoiceChannel) MentionID() ChannelID { return v.ID }

// CategoryChannel is a guild category; it groups other guild channels.
type CategoryChannel struct {
	ID       ChannelID `json:"id"`
	GuildID  GuildID   `json:"guild_id"`
	Name     string    `json:"name"`
	Position int       `json:"position"`
}

// MentionID returns the category's identifier.
func (c CategoryChannel) MentionID() ChannelID { return c.ID }

// GuildChannel is the union of the guild channel variants. Exactly one of
// the fields is set; the zero value has no variant and resolves to ID 0.
type GuildChannel struct {
	Category *CategoryChannel
	Text     *TextChannel
	Voice    *VoiceChannel
}

// ID returns the identifier of whichever variant is set.
func (g GuildChannel) ID() ChannelID {
	switch {
	case g.Category != nil:
		return g.Category.ID
	case g.Text != nil:
		return g.Text.ID
	case g.Voice != nil:
		return g.Voice.ID
	}
	return 0
}

// MentionID returns the identifier of whichever variant is set.
func (g GuildChannel) MentionID() ChannelID { return g.ID() }

// Channel is the union of every channel variant. Exactly one of the fields
// is set; the zero value has no variant and resolves to ID 0.
type Channel struct {
	Group   *Group
	Guild   *GuildChannel
	Private *PrivateChannel
}

// MentionID returns the identifier of whichever variant is set.
func (c Channel) MentionID() ChannelID {
	switch {
	case c.Group != nil:
		return c.Group.ID
	case c.Guild != nil:
		return c.Guild.ID()
	case c.Private != nil:
		return c.Private.ID
	}
	return 0
}
