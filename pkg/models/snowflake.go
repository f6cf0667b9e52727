package models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// discordEpoch is the first second of 2015 in Unix milliseconds, the zero
// point of Discord's snowflake timestamps.
const discordEpoch = 1420070400000

// Snowflake is a Discord snowflake: a 64-bit unsigned identifier whose bits
// 22..63 encode the entity's creation time in milliseconds since
// [discordEpoch].
//
// Prefer the kind-tagged identifier types ([ChannelID], [EmojiID], [RoleID],
// [UserID], [GuildID]) in APIs; Snowflake is the shared representation they
// are defined over.
type Snowflake uint64

// ParseSnowflake parses a decimal snowflake string as sent on the Discord
// wire.
func ParseSnowflake(s string) (Snowflake, error) {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("could not parse snowflake %q: %w", s, err)
	}
	return Snowflake(v), nil
}

// String returns the snowflake in its wire form: decimal digits with no
// leading zeros, separators, or sign.
func (s Snowflake) String() string {
	return strconv.FormatUint(uint64(s), 10)
}

// Time returns the creation time encoded in the snowflake's timestamp bits,
// in UTC.
func (s Snowflake) Time() time.Time {
	return time.UnixMilli(int64(s>>22) + discordEpoch).UTC()
}

// MarshalJSON encodes the snowflake as a decimal string, matching Discord's
// JSON encoding.
func (s Snowflake) MarshalJSON() ([]byte, error) {
	return strconv.AppendQuote(nil, s.String()), nil
}

// UnmarshalJSON decodes a decimal string into the snowflake.
func (s *Snowflake) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	v, err := ParseSnowflake(str)
	if err != nil {
		return err
	}
	*s = v
	return nil
}
