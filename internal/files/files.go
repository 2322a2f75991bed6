/*
PURPOSE:
  Filename conveniences for the experiment's on-disk layout: extension
  filtered directory listings and lookup of the synthetic data files that
  were generated from a given original dataset.

REQUIREMENTS:
  User-specified:
  - List a directory's files by extension, optionally with the directory
    prefix attached.
  - Resolve an original data id (e.g. D3) to its synthetic CSV files, which
    follow the SD<id digits>Q<quality>_<run>.csv naming scheme.

  Implementation-discovered:
  - The synthetic-file pattern must anchor at the name start, otherwise an
    id like D3 would also match files generated for D13 under some naming
    accidents; the digits are quoted into the pattern verbatim.

ARCHITECTURE INTEGRATION:
  - Called by: internal/cli (synthetic-files command)
  - Uses: internal/config for the synthetic data directory (via caller)

ERROR HANDLING:
  - Unreadable directories propagate as wrapped errors.
  - An original data id without digits after its leading letter is an error.

USAGE:
  names, err := files.Filenames(dir, ".csv", false)
  sd, err := files.SyntheticDataFiles(cfg.Folders.SyntheticDir, "D3")

RELATED FILES:
  - internal/config/config.go

MAINTENANCE:
  - Update the pattern if the synthetic data naming scheme changes.
*/

package files

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// Filenames lists the regular files in dir whose names end with ext.
// With withDir set, each name is returned joined to dir; otherwise bare
// names are returned. Entries come back in lexical order.
func Filenames(dir, ext string, withDir bool) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", dir, err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ext) {
			continue
		}
		if withDir {
			names = append(names, filepath.Join(dir, entry.Name()))
		} else {
			names = append(names, entry.Name())
		}
	}

	return names, nil
}

// SyntheticDataFiles returns the synthetic CSV filenames in sdDir that were
// generated from the original dataset originalID. The id's leading letter is
// dropped and the remaining digits select files named SD<digits>Q<q>_<n>.csv.
func SyntheticDataFiles(sdDir, originalID string) ([]string, error) {
	if len(originalID) < 2 {
		return nil, fmt.Errorf("original data id %q is too short", originalID)
	}

	pattern, err := regexp.Compile(fmt.Sprintf(`^SD(%s)Q\d+_\d+\.csv`, regexp.QuoteMeta(originalID[1:])))
	if err != nil {
		return nil, fmt.Errorf("building pattern for %q: %w", originalID, err)
	}

	names, err := Filenames(sdDir, ".csv", false)
	if err != nil {
		return nil, err
	}

	var matched []string
	for _, name := range names {
		if pattern.MatchString(name) {
			matched = append(matched, name)
		}
	}

	return matched, nil
}
