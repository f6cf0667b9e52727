// Package discordgomention adapts [github.com/bwmarrin/discordgo] entities
// to mention formats.
//
// discordgo carries identifiers as strings, so unlike the core library every
// adapter function can fail: a malformed or empty identifier string is
// reported as an error. On success the returned [mention.Format] behaves
// exactly as one built from the model types directly.
package discordgomention

import (
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/rarity-rs/mention"
	"github.com/rarity-rs/mention/pkg/models"
)

// ErrNoUser is returned by [Member] for a member record without an embedded
// user.
var ErrNoUser = errors.New("member has no user")

// ErrUnicodeEmoji is returned by [Emoji] for a unicode emoji, which has no
// snowflake and therefore no mention syntax.
var ErrUnicodeEmoji = errors.New("unicode emoji has no id")

// User returns the mention format for a discordgo user.
func User(u *discordgo.User) (mention.Format[models.UserID], error) {
	id, err := models.ParseSnowflake(u.ID)
	if err != nil {
		return mention.Format[models.UserID]{}, fmt.Errorf("user: %w", err)
	}
	return mention.Of(models.UserID(id)), nil
}

// Member returns the mention format for a guild member's user.
func Member(m *discordgo.Member) (mention.Format[models.UserID], error) {
	if m.User == nil {
		return mention.Format[models.UserID]{}, fmt.Errorf("member: %w", ErrNoUser)
	}
	return User(m.User)
}

// Role returns the mention format for a discordgo role.
func Role(r *discordgo.Role) (mention.Format[models.RoleID], error) {
	id, err := models.ParseSnowflake(r.ID)
	if err != nil {
		return mention.Format[models.RoleID]{}, fmt.Errorf("role: %w", err)
	}
	return mention.Of(models.RoleID(id)), nil
}

// Emoji returns the mention format for a custom guild emoji. Unicode emojis
// carry no identifier and are rejected with [ErrUnicodeEmoji].
func Emoji(e *discordgo.Emoji) (mention.Format[models.EmojiID], error) {
	if e.ID == "" {
		return mention.Format[models.EmojiID]{}, fmt.Errorf("emoji: %w", ErrUnicodeEmoji)
	}
	id, err := models.ParseSnowflake(e.ID)
	if err != nil {
		return mention.Format[models.EmojiID]{}, fmt.Errorf("emoji: %w", err)
	}
	return mention.Of(models.EmojiID(id)), nil
}

// Channel returns the mention format for a discordgo channel. Every channel
// type mentions the same way, so the channel's Type field is not consulted.
func Channel(c *discordgo.Channel) (mention.Format[models.ChannelID], error) {
	id, err := models.ParseSnowflake(c.ID)
	if err != nil {
		return mention.Format[models.ChannelID]{}, fmt.Errorf("channel: %w", err)
	}
	return mention.Of(models.ChannelID(id)), nil
}
