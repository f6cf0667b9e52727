package mention

import (
	"github.com/rarity-rs/mention/pkg/models"
)

// ID is the closed set of identifier kinds that have a mention syntax.
type ID interface {
	models.ChannelID | models.EmojiID | models.RoleID | models.UserID
}

// Format holds one identifier ready to be rendered as a mention. It is an
// immutable value: two Formats compare equal exactly when they wrap the same
// kind of identifier with the same value.
//
// Construct Formats with [Of].
type Format[T ID] struct {
	id T
}

// ID returns the wrapped identifier.
func (f Format[T]) ID() T { return f.id }

// String renders the mention syntax for the wrapped identifier:
//
//	<#ID>        channel
//	<:emoji:ID>  emoji
//	<@&ID>       role
//	<@ID>        user
//
// The output depends only on the identifier's kind and value.
func (f Format[T]) String() string {
	switch id := any(f.id).(type) {
	case models.ChannelID:
		return "<#" + id.String() + ">"
	case models.EmojiID:
		return "<:emoji:" + id.String() + ">"
	case models.RoleID:
		return "<@&" + id.String() + ">"
	case models.UserID:
		return "<@" + id.String() + ">"
	}
	// Unreachable: ID admits no other kinds.
	return ""
}
