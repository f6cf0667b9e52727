package mention_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/rarity-rs/mention"
	"github.com/rarity-rs/mention/pkg/models"
)

// Every record must mention identically to its embedded identifier.
func TestOf_recordDelegation(t *testing.T) {
	text := models.TextChannel{ID: 789, GuildID: 1, Name: "general"}
	voice := models.VoiceChannel{ID: 5, GuildID: 1, Name: "lounge"}
	category := models.CategoryChannel{ID: 6, GuildID: 1, Name: "misc"}
	group := models.Group{ID: 7, OwnerID: 456}
	private := models.PrivateChannel{ID: 8}
	guildText := models.GuildChannel{Text: &text}
	guildVoice := models.GuildChannel{Voice: &voice}
	guildCategory := models.GuildChannel{Category: &category}
	user := models.User{ID: 456, Username: "moon"}

	tests := []struct {
		name   string
		record fmt.Stringer
		id     fmt.Stringer
	}{
		{name: "user", record: mention.Of(user), id: mention.Of(user.ID)},
		{name: "current user", record: mention.Of(models.CurrentUser{ID: 456}), id: mention.Of(models.UserID(456))},
		{name: "member", record: mention.Of(models.Member{User: user}), id: mention.Of(user.ID)},
		{name: "role", record: mention.Of(models.Role{ID: 3, Name: "mods"}), id: mention.Of(models.RoleID(3))},
		{name: "emoji", record: mention.Of(models.Emoji{ID: 4, Name: "blobpats"}), id: mention.Of(models.EmojiID(4))},
		{name: "group", record: mention.Of(group), id: mention.Of(group.ID)},
		{name: "private channel", record: mention.Of(private), id: mention.Of(private.ID)},
		{name: "text channel", record: mention.Of(text), id: mention.Of(text.ID)},
		{name: "voice channel", record: mention.Of(voice), id: mention.Of(voice.ID)},
		{name: "category channel", record: mention.Of(category), id: mention.Of(category.ID)},
		{name: "guild channel text", record: mention.Of(guildText), id: mention.Of(text.ID)},
		{name: "guild channel voice", record: mention.Of(guildVoice), id: mention.Of(voice.ID)},
		{name: "guild channel category", record: mention.Of(guildCategory), id: mention.Of(category.ID)},
		{name: "channel group", record: mention.Of(models.Channel{Group: &group}), id: mention.Of(group.ID)},
		{name: "channel guild", record: mention.Of(models.Channel{Guild: &guildText}), id: mention.Of(text.ID)},
		{name: "channel private", record: mention.Of(models.Channel{Private: &private}), id: mention.Of(private.ID)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got, want := tt.record.String(), tt.id.String(); got != want {
				t.Errorf("record mention = %q, identifier mention = %q", got, want)
			}
		})
	}
}

// Spec'd member scenario: mentioning a membership mentions the embedded user.
func TestOf_memberMentionsUser(t *testing.T) {
	m := models.Member{User: models.User{ID: 456}, Nick: "moonchild"}
	if got := mention.Of(m).String(); got != "<@456>" {
		t.Errorf("Of(member).String() = %q, want %q", got, "<@456>")
	}
}

func TestOf_guildTextChannel(t *testing.T) {
	ch := models.TextChannel{ID: 789, Name: "general"}
	if got := mention.Of(ch).String(); got != "<#789>" {
		t.Errorf("Of(text channel).String() = %q, want %q", got, "<#789>")
	}
}

// Pointers must mention identically to the values they point to.
func TestOf_pointerValueSymmetry(t *testing.T) {
	id := models.ChannelID(123)
	user := models.User{ID: 456}
	current := models.CurrentUser{ID: 456}
	member := models.Member{User: user}
	role := models.Role{ID: 3}
	emoji := models.Emoji{ID: 4}
	group := models.Group{ID: 7}
	private := models.PrivateChannel{ID: 8}
	text := models.TextChannel{ID: 789}
	voice := models.VoiceChannel{ID: 5}
	category := models.CategoryChannel{ID: 6}
	guild := models.GuildChannel{Text: &text}
	channel := models.Channel{Guild: &guild}

	tests := []struct {
		name      string
		byValue   fmt.Stringer
		byPointer fmt.Stringer
	}{
		{name: "channel id", byValue: mention.Of(id), byPointer: mention.Of(&id)},
		{name: "user", byValue: mention.Of(user), byPointer: mention.Of(&user)},
		{name: "current user", byValue: mention.Of(current), byPointer: mention.Of(&current)},
		{name: "member", byValue: mention.Of(member), byPointer: mention.Of(&member)},
		{name: "role", byValue: mention.Of(role), byPointer: mention.Of(&role)},
		{name: "emoji", byValue: mention.Of(emoji), byPointer: mention.Of(&emoji)},
		{name: "group", byValue: mention.Of(group), byPointer: mention.Of(&group)},
		{name: "private channel", byValue: mention.Of(private), byPointer: mention.Of(&private)},
		{name: "text channel", byValue: mention.Of(text), byPointer: mention.Of(&text)},
		{name: "voice channel", byValue: mention.Of(voice), byPointer: mention.Of(&voice)},
		{name: "category channel", byValue: mention.Of(category), byPointer: mention.Of(&category)},
		{name: "guild channel", byValue: mention.Of(guild), byPointer: mention.Of(&guild)},
		{name: "channel", byValue: mention.Of(channel), byPointer: mention.Of(&channel)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got, want := tt.byPointer.String(), tt.byValue.String(); got != want {
				t.Errorf("pointer mention = %q, value mention = %q", got, want)
			}
		})
	}
}

// Rendering shares no state, so concurrent renderings of the same identifier
// must produce identical bytes.
func TestFormat_String_concurrent(t *testing.T) {
	const goroutines = 64
	results := make([]string, goroutines)

	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = mention.Of(models.UserID(456)).String()
		}(i)
	}
	wg.Wait()

	for i, got := range results {
		if got != "<@456>" {
			t.Errorf("goroutine %d rendered %q, want %q", i, got, "<@456>")
		}
	}
}
