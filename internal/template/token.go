package template

// Kind identifies the type of a template token.
type Kind int

const (
	// KindLiteral is a single character copied into the filename as-is.
	KindLiteral Kind = iota

	// KindSeries is replaced with the configured series name.
	KindSeries

	// KindSeason is replaced with the season number, rendered as a plain
	// decimal with no padding.
	KindSeason

	// KindEpisode is replaced with the episode number, zero-padded to the
	// configured width.
	KindEpisode

	// KindTitle is replaced with the episode title fetched from the
	// metadata service, or the empty string when titles were not requested.
	KindTitle
)

// Token is one element of a parsed filename template.
//
// A template is an ordered sequence of tokens; the order directly determines
// output character order. Tokens are immutable once parsed.
type Token struct {
	Kind Kind

	// Literal holds the character for KindLiteral tokens.
	// It is unused for placeholder tokens.
	Literal rune
}

// RequiresTitle reports whether the template contains the {title}
// placeholder. The target resolver uses this to decide whether the metadata
// service must be consulted at all.
func RequiresTitle(tokens []Token) bool {
	for _, tok := range tokens {
		if tok.Kind == KindTitle {
			return true
		}
	}
	return false
}
