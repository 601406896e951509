package mapfs

import (
	"os"
	"path/filepath"
	"strings"
)

// MapFS is a flat collection of files gathered from possibly-scattered
// real paths, keyed by base filename: each entry maps a logical filename
// to wherever it actually lives on disk. WalkSQLCorpus builds one by
// collecting every *.sql file under a directory tree, so a corpus
// assembled from several subdirectories reads back as a single flat set.
type MapFS map[string]string

// WalkSQLCorpus walks dir and returns a MapFS containing every *.sql file
// found, keyed by base filename.
func WalkSQLCorpus(dir string) (MapFS, error) {
	m := make(MapFS)
	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.EqualFold(filepath.Ext(path), ".sql") {
			m.Add(path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (m MapFS) Add(path string) {
	filename := filepath.Base(path)
	m[filename] = path
}

// Files returns the logical filenames in m, in no particular order.
func (m MapFS) Files() []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	return names
}

// ReadFile reads the contents of the real path backing the logical
// filename name.
func (m MapFS) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(m[name])
}
