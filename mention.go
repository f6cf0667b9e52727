package mention

// Mentionable is satisfied by any value that exposes exactly one mentionable
// identifier of kind T.
//
// The identifier types in [github.com/rarity-rs/mention/pkg/models] satisfy
// it by returning themselves; the record types return their embedded
// identifier (a [models.Member] returns the identifier of the user it
// embeds, the channel unions return the identifier of whichever variant is
// set). All implementations use value receivers, so a pointer to any
// supported value is itself supported.
type Mentionable[T ID] interface {
	MentionID() T
}

// Of returns the mention [Format] for v. It reads v's identifier and tags it
// with its kind; nothing is validated, and the call cannot fail. Types
// without a mentionable identifier are rejected at compile time.
func Of[T ID](v Mentionable[T]) Format[T] {
	return Format[T]{id: v.MentionID()}
}
