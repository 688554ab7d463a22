package scan

import (
	"path/filepath"
	"strconv"
	"strings"
)

// SeasonNumber derives a season number from the final component of path.
//
// The name is lowercased and classified: the literal forms "season0",
// "season 0" and "specials" map to season 0. Otherwise the substring
// "season" and all spaces are stripped and the remainder is parsed as a
// non-negative integer, so "Season12", "season 12" and "SEASON 12" all
// normalize to 12.
//
// Names that do not reduce to a number ("Extras", "Season 1 (Extended)")
// yield ok == false. That is the expected result for non-season directories,
// used by callers to skip them; it is not an error.
func SeasonNumber(path string) (number int, ok bool) {
	name := strings.ToLower(filepath.Base(path))

	switch name {
	case "season0", "season 0", "specials":
		return 0, true
	}

	name = strings.ReplaceAll(name, "season", "")
	name = strings.ReplaceAll(name, " ", "")
	n, err := strconv.Atoi(name)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}
