// Package contrib holds additional packages for the mention library.
//
// Everything under this directory extends the core library with interop and
// convenience features that are not part of the core API. It is outside of
// the backward compatibility guarantees provided by the core library;
// changes here may be breaking without following semantic versioning.
//
// The [github.com/rarity-rs/mention/contrib/discordgomention] package adapts
// github.com/bwmarrin/discordgo entities to mention formats.
package contrib
