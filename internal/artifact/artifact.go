/*
PURPOSE:
  Loads the serialized model artifacts a training run leaves behind. Each
  artifact is one gob-encoded bundle describing what was trained, on which
  dataset, with which parameters, and how it scored.

REQUIREMENTS:
  User-specified:
  - Collect every artifact under a directory, subdirectories included
    (runs are grouped in per-method folders).
  - Keep raw parameter strings; typing them is internal/params' job.

  Implementation-discovered:
  - Walk order must be deterministic so repeated loads produce identical
    listings; filepath.WalkDir's lexical order covers that.
  - A file that is not a gob bundle fails the load with its path named,
    rather than being skipped silently.

ARCHITECTURE INTEGRATION:
  - Called by: internal/cli (artifacts command)
  - Consumed with: internal/params (Params cleaning)

ERROR HANDLING:
  - Unreadable trees and undecodable files propagate as wrapped errors.

IMPLEMENTATION RULES:
  - Use encoding/gob; all fields are concrete types so no registration is
    required.

USAGE:
  arts, err := artifact.LoadDir(cfg.Folders.ArtifactsDir)

RELATED FILES:
  - internal/params/params.go

MAINTENANCE:
  - Bump carefully: gob is tolerant of added fields but renames break old
    bundles.
*/

package artifact

import (
	"encoding/gob"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

// Artifact is one serialized bundle from a training run.
type Artifact struct {
	Name      string
	Dataset   string
	Method    string
	CreatedAt time.Time
	Params    map[string]string
	Metrics   map[string]float64
}

// Save writes one artifact bundle to path.
func Save(path string, a Artifact) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating artifact %s: %w", path, err)
	}

	if err := gob.NewEncoder(f).Encode(a); err != nil {
		f.Close()
		return fmt.Errorf("encoding artifact %s: %w", path, err)
	}
	return f.Close()
}

// LoadDir walks dir recursively and decodes every regular file as an
// artifact bundle. Results arrive in lexical walk order.
func LoadDir(dir string) ([]Artifact, error) {
	var artifacts []Artifact

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		a, err := loadFile(path)
		if err != nil {
			return err
		}
		artifacts = append(artifacts, a)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("loading artifacts from %s: %w", dir, err)
	}

	return artifacts, nil
}

func loadFile(path string) (Artifact, error) {
	f, err := os.Open(path)
	if err != nil {
		return Artifact{}, fmt.Errorf("opening artifact %s: %w", path, err)
	}
	defer f.Close()

	var a Artifact
	if err := gob.NewDecoder(f).Decode(&a); err != nil {
		return Artifact{}, fmt.Errorf("decoding artifact %s: %w", path, err)
	}
	return a, nil
}
