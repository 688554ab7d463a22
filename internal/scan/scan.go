// Package scan enumerates season directories and episode files beneath a
// series directory, in deterministic sorted order.
//
// Listings are a snapshot: the filesystem is read once per call with no
// staleness guarantee between the scan and any later rename. Callers must
// tolerate concurrent external changes invalidating the returned lists.
package scan

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// Failure reasons surfaced by Seasons and Episodes. They distinguish whether
// the directory itself, one of its entries, or an entry's metadata could not
// be read; match with errors.Is.
var (
	ErrReadDirectory = errors.New("unable to read directory")
	ErrReadEntry     = errors.New("unable to read directory entry")
	ErrReadMetadata  = errors.New("unable to read entry metadata")
)

// Seasons lists the immediate subdirectories of directory, sorted ascending
// by their full path string. Files are excluded.
func Seasons(directory string) ([]string, error) {
	return list(directory, true)
}

// Episodes lists the immediate regular files of directory, sorted ascending
// by their full path string. Subdirectories are excluded.
func Episodes(directory string) ([]string, error) {
	return list(directory, false)
}

func list(directory string, wantDirs bool) ([]string, error) {
	f, err := os.Open(directory)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %v", ErrReadDirectory, directory, err)
	}
	defer f.Close()

	entries, err := f.ReadDir(-1)
	if err != nil {
		return nil, fmt.Errorf("%w in %s: %v", ErrReadEntry, directory, err)
	}

	var paths []string
	for _, entry := range entries {
		info, err := entry.Info()
		if err != nil {
			return nil, fmt.Errorf("%w for %s: %v", ErrReadMetadata, entry.Name(), err)
		}
		if wantDirs {
			if info.IsDir() {
				paths = append(paths, filepath.Join(directory, entry.Name()))
			}
		} else if info.Mode().IsRegular() {
			paths = append(paths, filepath.Join(directory, entry.Name()))
		}
	}

	sort.Strings(paths)
	return paths, nil
}
