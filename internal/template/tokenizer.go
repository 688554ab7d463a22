package template

import "fmt"

// Placeholder names recognized between braces.
const (
	nameSeries  = "series"
	nameSeason  = "season"
	nameEpisode = "episode"
	nameTitle   = "title"
)

// ParseError describes a template string that violates the grammar.
//
// Position is the rune offset of the offending character within the
// template string.
type ParseError struct {
	Position int
	Message  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("template: %s at position %d", e.Message, e.Position)
}

// Tokenize parses a template string into an ordered token sequence.
//
// Placeholders are written between braces: {series}, {season}, {episode}
// and {title}. The doubled forms {{ and }} produce literal brace
// characters. Every other character, including whitespace and punctuation,
// becomes one literal token carrying that exact character.
//
// A *ParseError is returned for an unterminated placeholder, an unknown
// placeholder name, or a bare } that is not part of }}. No partial token
// sequence is returned on error.
//
// Example:
//
//	tokens, err := template.Tokenize("{series} {season}x{episode} {title}")
func Tokenize(s string) ([]Token, error) {
	runes := []rune(s)
	tokens := make([]Token, 0, len(runes))

	for i := 0; i < len(runes); {
		switch runes[i] {
		case '{':
			if i+1 < len(runes) && runes[i+1] == '{' {
				tokens = append(tokens, Token{Kind: KindLiteral, Literal: '{'})
				i += 2
				continue
			}

			end := -1
			for j := i + 1; j < len(runes); j++ {
				if runes[j] == '}' {
					end = j
					break
				}
			}
			if end < 0 {
				return nil, &ParseError{Position: i, Message: "unterminated placeholder"}
			}

			name := string(runes[i+1 : end])
			kind, ok := placeholderKind(name)
			if !ok {
				return nil, &ParseError{Position: i, Message: fmt.Sprintf("unknown placeholder %q", name)}
			}
			tokens = append(tokens, Token{Kind: kind})
			i = end + 1

		case '}':
			if i+1 < len(runes) && runes[i+1] == '}' {
				tokens = append(tokens, Token{Kind: KindLiteral, Literal: '}'})
				i += 2
				continue
			}
			return nil, &ParseError{Position: i, Message: "unescaped '}'"}

		default:
			tokens = append(tokens, Token{Kind: KindLiteral, Literal: runes[i]})
			i++
		}
	}

	return tokens, nil
}

// placeholderKind maps a placeholder name to its token kind.
func placeholderKind(name string) (Kind, bool) {
	switch name {
	case nameSeries:
		return KindSeries, true
	case nameSeason:
		return KindSeason, true
	case nameEpisode:
		return KindEpisode, true
	case nameTitle:
		return KindTitle, true
	}
	return 0, false
}
