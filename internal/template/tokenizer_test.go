package template

import (
	"errors"
	"testing"
)

func TestTokenize_Placeholders(t *testing.T) {
	tokens, err := Tokenize("{series} {season}x{episode} {title}")
	if err != nil {
		t.Fatalf("Tokenize() error = %v", err)
	}

	want := []Token{
		{Kind: KindSeries},
		{Kind: KindLiteral, Literal: ' '},
		{Kind: KindSeason},
		{Kind: KindLiteral, Literal: 'x'},
		{Kind: KindEpisode},
		{Kind: KindLiteral, Literal: ' '},
		{Kind: KindTitle},
	}

	if len(tokens) != len(want) {
		t.Fatalf("Tokenize() returned %d tokens, want %d", len(tokens), len(want))
	}
	for i, tok := range tokens {
		if tok != want[i] {
			t.Errorf("token %d = %+v, want %+v", i, tok, want[i])
		}
	}
}

func TestTokenize_LiteralOnly(t *testing.T) {
	tokens, err := Tokenize("Episode - ")
	if err != nil {
		t.Fatalf("Tokenize() error = %v", err)
	}
	for i, tok := range tokens {
		if tok.Kind != KindLiteral {
			t.Errorf("token %d kind = %v, want KindLiteral", i, tok.Kind)
		}
	}
	if len(tokens) != len("Episode - ") {
		t.Errorf("Tokenize() returned %d tokens, want %d", len(tokens), len("Episode - "))
	}
}

func TestTokenize_EscapedBraces(t *testing.T) {
	tokens, err := Tokenize("{{{series}}}")
	if err != nil {
		t.Fatalf("Tokenize() error = %v", err)
	}

	want := []Token{
		{Kind: KindLiteral, Literal: '{'},
		{Kind: KindSeries},
		{Kind: KindLiteral, Literal: '}'},
	}
	if len(tokens) != len(want) {
		t.Fatalf("Tokenize() returned %d tokens, want %d", len(tokens), len(want))
	}
	for i, tok := range tokens {
		if tok != want[i] {
			t.Errorf("token %d = %+v, want %+v", i, tok, want[i])
		}
	}
}

func TestTokenize_Empty(t *testing.T) {
	tokens, err := Tokenize("")
	if err != nil {
		t.Fatalf("Tokenize() error = %v", err)
	}
	if len(tokens) != 0 {
		t.Errorf("Tokenize(\"\") returned %d tokens, want 0", len(tokens))
	}
}

func TestTokenize_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"unterminated", "{series} {episo"},
		{"unknown placeholder", "{seris}"},
		{"empty placeholder", "{}"},
		{"bare closing brace", "series}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := Tokenize(tt.input)
			if err == nil {
				t.Fatalf("Tokenize(%q) succeeded, want error", tt.input)
			}
			var perr *ParseError
			if !errors.As(err, &perr) {
				t.Errorf("Tokenize(%q) error type = %T, want *ParseError", tt.input, err)
			}
			if tokens != nil {
				t.Errorf("Tokenize(%q) returned partial tokens on error", tt.input)
			}
		})
	}
}

func TestRequiresTitle(t *testing.T) {
	withTitle, err := Tokenize("{series} - {title}")
	if err != nil {
		t.Fatal(err)
	}
	withoutTitle, err := Tokenize("{series} {season}x{episode}")
	if err != nil {
		t.Fatal(err)
	}

	if !RequiresTitle(withTitle) {
		t.Error("RequiresTitle() = false for template containing {title}")
	}
	if RequiresTitle(withoutTitle) {
		t.Error("RequiresTitle() = true for template without {title}")
	}
}
