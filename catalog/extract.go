package catalog

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// maxColumnID is the highest column identifier queried from a folder.
// Current Windows shell versions expose columns up to 320.
const maxColumnID = 320

// skippedColumns are identifiers that never yield useful per-file data:
// most are perpetually empty, the rest duplicate other columns or
// describe the folder instead of the file.
var skippedColumns = map[int]bool{
	37: true, 38: true, 39: true, 40: true, 41: true,
	59: true, 170: true, 171: true, 205: true, 206: true,
	207: true, 218: true, 296: true, // empty up to here
	57:  true, // total size
	165: true, // filename
	169: true, // space free
	190: true, // folder name
	191: true, // folder path
	192: true, // folder
	196: true, // type
	254: true, // space used
}

// progressInterval controls how often the extractor logs progress while
// working through a folder.
const progressInterval = 100

// chaptersField is the record field holding the joined chapter titles
// of an e-book's table of contents.
const chaptersField = "epub_chapters"

// ebookPrefix namespaces e-book metadata fields so they cannot collide
// with folder column names.
const ebookPrefix = "epub_"

// Extractor builds metadata records for the files of a directory.
type Extractor struct {
	source MetadataSource
	ebooks EbookReader
	log    *slog.Logger
	stats  *Stats
}

// NewExtractor creates an extractor. The stats object is owned by the
// caller and accumulates across Extract calls.
func NewExtractor(source MetadataSource, ebooks EbookReader, log *slog.Logger, stats *Stats) *Extractor {
	return &Extractor{
		source: source,
		ebooks: ebooks,
		log:    log,
		stats:  stats,
	}
}

// Extract returns one record per file directly inside dir. Directories
// are skipped; recursion is the walker's job.
func (e *Extractor) Extract(dir string) ([]*Record, error) {
	e.log.Info("In directory", "dir", dir)

	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", dir, ErrNotFound)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s: %w", dir, ErrNotDirectory)
	}
	e.stats.Dirs++

	folder, err := e.source.Folder(dir)
	if err != nil {
		return nil, err
	}
	columns := listColumns(folder)

	entries, err := folder.Entries()
	if err != nil {
		return nil, err
	}

	var records []*Record
	fileIndex := 0
	for _, entry := range entries {
		if entry.Dir {
			continue
		}
		e.stats.Files++
		if fileIndex%progressInterval == 0 {
			e.log.Info("Checking file in the current folder", "number", fileIndex)
		}
		fileIndex++

		rec := NewRecord(entry.Path)
		for _, col := range columns {
			value := folder.Detail(entry.Name, col.ID)
			if value == "" {
				continue
			}
			// Column 1 is "size".
			if col.ID == colSize {
				value = ToMegabytes(value)
			}
			rec.Set(col.Name, value)
		}

		if strings.Contains(strings.ToLower(filepath.Ext(entry.Name)), "epub") {
			e.enrichEbook(rec, entry.Path)
		}

		records = append(records, rec)
	}
	return records, nil
}

// listColumns collects the (id, name) pairs to query per file. The
// column set depends on the folder, so it is recomputed per directory.
func listColumns(folder Folder) []Column {
	columns := make([]Column, 0, maxColumnID+1-len(skippedColumns))
	for id := 0; id <= maxColumnID; id++ {
		if skippedColumns[id] {
			continue
		}
		columns = append(columns, Column{ID: id, Name: folder.ColumnName(id)})
	}
	return columns
}

// enrichEbook merges e-book metadata into the record. Enrichment is
// best-effort: a parse failure is counted and logged, the record keeps
// its folder metadata.
func (e *Extractor) enrichEbook(rec *Record, path string) {
	e.log.Debug("Found epub file, parsing additional metadata", "path", path)

	fields, chapters, err := e.ebooks.Metadata(path)
	if err != nil {
		e.stats.EbookFailures = append(e.stats.EbookFailures, path)
		e.log.Debug("Failed to parse ebook", "path", path, "error", err)
		return
	}

	if len(chapters) > 0 {
		rec.Set(chaptersField, strings.Join(chapters, "; "))
	}

	// Sorted merge keeps the discovered header order deterministic.
	keys := make([]string, 0, len(fields))
	for key := range fields {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		value := fields[key]
		if value == "" {
			continue
		}
		if !strings.Contains(key, "epub") {
			key = ebookPrefix + key
		}
		rec.Set(key, value)
	}
}
