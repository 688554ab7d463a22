package target

import (
	"path/filepath"
	"strconv"
	"strings"

	ioutils "github.com/Happy-Ferret/tv-renamer/internal/io"
	"github.com/Happy-Ferret/tv-renamer/internal/template"
)

// Destination renders the target path for a single episode file.
//
// The template tokens are rendered in order into a filename body: literals
// verbatim, {series} as cfg.SeriesName, {season} as a plain decimal,
// {episode} zero-padded to cfg.PadWidth, and {title} as the supplied title
// (empty when titles were not requested). The body is then sanitized, the
// source file's extension is appended when non-empty (case and value
// preserved), and the result is joined onto directory.
//
// Destination is pure and total: it never touches the filesystem and always
// returns a path, even for degenerate templates.
func (c *Config) Destination(directory, file string, episode int, title string) string {
	var body strings.Builder
	for _, tok := range c.Template {
		switch tok.Kind {
		case template.KindLiteral:
			body.WriteRune(tok.Literal)
		case template.KindSeries:
			body.WriteString(c.SeriesName)
		case template.KindSeason:
			body.WriteString(strconv.Itoa(c.SeasonNumber))
		case template.KindEpisode:
			body.WriteString(ioutils.PadNumber(episode, '0', c.PadWidth))
		case template.KindTitle:
			body.WriteString(title)
		}
	}

	name := ioutils.SanitizeName(body.String())
	if ext := strings.TrimPrefix(filepath.Ext(file), "."); ext != "" {
		name += "." + ext
	}

	return filepath.Join(directory, name)
}
