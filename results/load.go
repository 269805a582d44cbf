package results

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
)

// document is one raw results file awaiting parsing.
type document struct {
	name string
	data []byte
}

// LoadDataset loads trace records from a single JSON file or from every *.json
// file directly inside a directory.
//
// A missing path or a malformed single file is an error. In directory mode files
// are merged in alphabetical order (the last file wins on a duplicate trace name)
// and a file that cannot be read or parsed is skipped with a warning.
func LoadDataset(path string) (*Dataset, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("results path: %w", err)
	}
	if !info.IsDir() {
		return loadFile(path)
	}
	return loadDir(path)
}

func loadFile(path string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	ds, err := ParseDocument(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	logrus.Infof("Loaded %d traces from %s", ds.Len(), path)
	return ds, nil
}

func loadDir(dir string) (*Dataset, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("scanning results directory: %w", err)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		files = append(files, filepath.Join(dir, e.Name()))
	}
	sort.Strings(files)

	docs := make([]document, 0, len(files))
	for _, path := range files {
		data, err := os.ReadFile(path)
		if err != nil {
			logrus.Warnf("skipping results file %s: %v", path, err)
			continue
		}
		docs = append(docs, document{name: path, data: data})
	}

	ds := mergeDocuments(docs)
	logrus.Infof("Loaded %d traces from %d files in %s", ds.Len(), len(files), dir)
	return ds, nil
}

// mergeDocuments parses docs in order and merges them; unparsable documents are skipped.
func mergeDocuments(docs []document) *Dataset {
	merged := NewDataset()
	for _, doc := range docs {
		ds, err := ParseDocument(doc.data)
		if err != nil {
			logrus.Warnf("skipping results document %s: %v", doc.name, err)
			continue
		}
		for _, name := range ds.Names() {
			if _, dup := merged.Get(name); dup {
				logrus.Debugf("trace %q from %s replaces an earlier record", name, doc.name)
			}
		}
		merged.Merge(ds)
	}
	return merged
}
