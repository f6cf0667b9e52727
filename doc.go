// The [mention] package renders Discord mention syntax for the model types
// in [github.com/rarity-rs/mention/pkg/models].
//
// # Mentioning an entity
//
// Pass any supported value to [Of] and render the result into message text:
//
//	user := models.User{ID: 123, Username: "moon"}
//	text := fmt.Sprintf("Hey there, %s!", mention.Of(user))
//	// text == "Hey there, <@123>!"
//
// [Of] accepts bare identifiers ([models.ChannelID], [models.EmojiID],
// [models.RoleID], [models.UserID]) as well as the records that embed them:
// users, guild members, roles, emojis, and every channel variant including
// the [models.Channel] and [models.GuildChannel] unions. Values and pointers
// both work. Passing anything else does not compile.
//
// # Rendering
//
// A [Format] renders the wire syntax for its identifier's kind:
//
//	mention.Of(models.ChannelID(123)).String() // "<#123>"
//	mention.Of(models.EmojiID(123)).String()   // "<:emoji:123>"
//	mention.Of(models.RoleID(123)).String()    // "<@&123>"
//	mention.Of(models.UserID(123)).String()    // "<@123>"
//
// Rendering is a pure function of the identifier's kind and value; it never
// fails, allocates no shared state, and is safe to call from any number of
// goroutines.
//
// # Interop with other Discord libraries
//
// The [github.com/rarity-rs/mention/contrib/discordgomention] package adapts
// [github.com/bwmarrin/discordgo] entities, which carry string identifiers,
// into mention formats.
package mention
