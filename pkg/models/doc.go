// Package models defines the Discord data model consumed by the
// [github.com/rarity-rs/mention] package: kind-tagged snowflake identifiers
// and the domain records that embed them.
//
// # Identifiers
//
// Every Discord entity is addressed by a [Snowflake], a 64-bit unsigned
// integer whose upper bits encode the entity's creation time. The package
// defines one identifier type per entity kind ([ChannelID], [EmojiID],
// [RoleID], [UserID], [GuildID]) so that identifiers of different kinds
// cannot be mixed up at compile time.
//
// Snowflakes travel as decimal strings on the Discord wire; the identifier
// types marshal and unmarshal JSON accordingly.
//
// # Records
//
// Records ([User], [Member], [Role], [Emoji], the channel types and the
// [Channel] and [GuildChannel] unions) carry the subset of Discord's wire
// fields that a mention-centric consumer needs. Each record embeds exactly
// one mentionable identifier and exposes it through a MentionID method.
package models
