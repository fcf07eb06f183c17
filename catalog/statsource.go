package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Column identifiers of the stat-backed source. The numbering follows
// the shell column layout, where column 1 is contractually the size.
const (
	colName     = 0
	colSize     = 1
	colItemType = 2
	colModified = 3
)

var statColumnNames = map[int]string{
	colName:     "Name",
	colSize:     "Größe",
	colItemType: "Elementtyp",
	colModified: "Änderungsdatum",
}

// StatSource is the portable MetadataSource backed by plain file stat
// calls. It exposes a small fixed column set with the same display
// conventions as a native shell source: locale-formatted sizes and
// dd.mm.yyyy timestamps.
type StatSource struct{}

// NewStatSource creates a stat-backed metadata source.
func NewStatSource() *StatSource {
	return &StatSource{}
}

// Folder opens dir for metadata queries.
func (s *StatSource) Folder(dir string) (Folder, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", dir, err)
	}
	return &statFolder{dir: abs}, nil
}

type statFolder struct {
	dir string
}

func (f *statFolder) ColumnName(id int) string {
	return statColumnNames[id]
}

func (f *statFolder) Entries() ([]Entry, error) {
	dirEntries, err := os.ReadDir(f.dir)
	if err != nil {
		return nil, err
	}
	entries := make([]Entry, 0, len(dirEntries))
	for _, de := range dirEntries {
		entries = append(entries, Entry{
			Name: de.Name(),
			Path: filepath.Join(f.dir, de.Name()),
			Dir:  de.IsDir(),
		})
	}
	return entries, nil
}

func (f *statFolder) Detail(name string, id int) string {
	switch id {
	case colName:
		return name
	case colSize, colItemType, colModified:
		info, err := os.Lstat(filepath.Join(f.dir, name))
		if err != nil {
			return ""
		}
		switch id {
		case colSize:
			if info.IsDir() {
				return ""
			}
			return formatSize(info.Size())
		case colItemType:
			return itemType(name, info.IsDir())
		case colModified:
			return info.ModTime().Format("02.01.2006 15:04")
		}
	}
	return ""
}

// itemType renders a coarse file-type label from the extension.
func itemType(name string, dir bool) string {
	if dir {
		return "Dateiordner"
	}
	ext := filepath.Ext(name)
	if ext == "" || ext == "." {
		return "Datei"
	}
	return strings.ToUpper(strings.TrimPrefix(ext, ".")) + "-Datei"
}
