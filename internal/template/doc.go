// Package template parses filename templates into token sequences.
//
// A template describes the naming scheme for renamed episode files. It mixes
// literal text with brace placeholders:
//
//	{series}  - series name
//	{season}  - season number, plain decimal
//	{episode} - episode number, zero-padded to the configured width
//	{title}   - episode title from the metadata service
//
// Literal braces are escaped by doubling: {{ and }}.
//
// # Parsing
//
//	tokens, err := template.Tokenize("{series} {season}x{episode} {title}")
//	if err != nil {
//	    var perr *template.ParseError
//	    if errors.As(err, &perr) {
//	        fmt.Printf("bad template at %d: %s\n", perr.Position, perr.Message)
//	    }
//	}
//
// The resulting token sequence is consumed by the target package, which
// renders one destination path per episode file. Tokenize is one-directional:
// tokens do not remember the exact source text they came from.
package template
