package catalog

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

// fakeFolder serves canned column and value tables.
type fakeFolder struct {
	names   map[int]string
	entries []Entry
	details map[string]map[int]string
}

func (f *fakeFolder) ColumnName(id int) string { return f.names[id] }

func (f *fakeFolder) Entries() ([]Entry, error) { return f.entries, nil }

func (f *fakeFolder) Detail(name string, id int) string { return f.details[name][id] }

type fakeSource struct {
	folder *fakeFolder
}

func (s *fakeSource) Folder(dir string) (Folder, error) { return s.folder, nil }

// fakeEbooks returns fixed metadata or a fixed error.
type fakeEbooks struct {
	fields   map[string]string
	chapters []string
	err      error
}

func (e *fakeEbooks) Metadata(path string) (map[string]string, []string, error) {
	return e.fields, e.chapters, e.err
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestExtractor(folder *fakeFolder, ebooks EbookReader, stats *Stats) *Extractor {
	return NewExtractor(&fakeSource{folder: folder}, ebooks, testLogger(), stats)
}

func TestExtractSingleFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "story.txt")

	folder := &fakeFolder{
		names: map[int]string{0: "Name", 1: "Größe"},
		entries: []Entry{
			{Name: "story.txt", Path: path, Dir: false},
		},
		details: map[string]map[int]string{
			"story.txt": {0: "story.txt", 1: "1,90 KB"},
		},
	}
	stats := &Stats{}
	records, err := newTestExtractor(folder, &fakeEbooks{}, stats).Extract(dir)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("Expected 1 record, got %d", len(records))
	}

	rec := records[0]
	if filepath.Base(rec.Path()) != "story.txt" {
		t.Errorf("Wrong path field: %s", rec.Path())
	}
	if v, _ := rec.Get("Name"); v != "story.txt" {
		t.Errorf("Wrong Name column: %s", v)
	}
	// The size column goes through the unit converter.
	if v, _ := rec.Get("Größe"); v != "0,01 MB" {
		t.Errorf("Expected converted size 0,01 MB, got %s", v)
	}
	if stats.Files != 1 || stats.Dirs != 1 {
		t.Errorf("Wrong counters: files=%d dirs=%d", stats.Files, stats.Dirs)
	}
}

func TestExtractSkipsDirectories(t *testing.T) {
	dir := t.TempDir()
	folder := &fakeFolder{
		names: map[int]string{0: "Name"},
		entries: []Entry{
			{Name: "sub", Path: filepath.Join(dir, "sub"), Dir: true},
		},
	}
	stats := &Stats{}
	records, err := newTestExtractor(folder, &fakeEbooks{}, stats).Extract(dir)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("Expected no records for a directory entry, got %d", len(records))
	}
	if stats.Files != 0 {
		t.Errorf("Directory must not count as file, files=%d", stats.Files)
	}
}

func TestExtractEmptyDir(t *testing.T) {
	dir := t.TempDir()
	folder := &fakeFolder{names: map[int]string{0: "Name"}}
	records, err := newTestExtractor(folder, &fakeEbooks{}, &Stats{}).Extract(dir)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("Expected empty result, got %d records", len(records))
	}
}

func TestExtractMissingDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "does-not-exist")
	_, err := newTestExtractor(&fakeFolder{}, &fakeEbooks{}, &Stats{}).Extract(dir)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestExtractPathIsFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "file.txt")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := newTestExtractor(&fakeFolder{}, &fakeEbooks{}, &Stats{}).Extract(path)
	if !errors.Is(err, ErrNotDirectory) {
		t.Errorf("Expected ErrNotDirectory, got %v", err)
	}
}

func TestExtractEbookMerge(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "book.epub")

	folder := &fakeFolder{
		names: map[int]string{0: "Name"},
		entries: []Entry{
			{Name: "book.epub", Path: path, Dir: false},
		},
		details: map[string]map[int]string{
			"book.epub": {0: "book.epub"},
		},
	}
	ebooks := &fakeEbooks{
		fields: map[string]string{
			"title":        "A Book",
			"authors":      "Jane Doe",
			"epub_version": "2.0",
			"empty":        "",
		},
		chapters: []string{"One", "Two"},
	}
	stats := &Stats{}
	records, err := newTestExtractor(folder, ebooks, stats).Extract(dir)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("Expected 1 record, got %d", len(records))
	}

	rec := records[0]
	if v, _ := rec.Get("epub_title"); v != "A Book" {
		t.Errorf("Expected prefixed title field, got %q", v)
	}
	if v, _ := rec.Get("epub_authors"); v != "Jane Doe" {
		t.Errorf("Expected prefixed authors field, got %q", v)
	}
	// Keys already carrying "epub" keep their name.
	if v, _ := rec.Get("epub_version"); v != "2.0" {
		t.Errorf("Expected epub_version unprefixed, got %q", v)
	}
	if v, _ := rec.Get("epub_chapters"); v != "One; Two" {
		t.Errorf("Expected joined chapters, got %q", v)
	}
	if _, ok := rec.Get("epub_empty"); ok {
		t.Error("Empty metadata values must not be merged")
	}
	if stats.FailedEbooks() != 0 {
		t.Errorf("Unexpected ebook failures: %v", stats.EbookFailures)
	}
}

func TestExtractEbookFailure(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.epub")

	folder := &fakeFolder{
		names: map[int]string{0: "Name"},
		entries: []Entry{
			{Name: "broken.epub", Path: path, Dir: false},
		},
		details: map[string]map[int]string{
			"broken.epub": {0: "broken.epub"},
		},
	}
	ebooks := &fakeEbooks{err: errors.New("not a zip")}
	stats := &Stats{}
	records, err := newTestExtractor(folder, ebooks, stats).Extract(dir)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}

	// The parse failure must not lose the folder metadata record.
	if len(records) != 1 {
		t.Fatalf("Expected 1 record, got %d", len(records))
	}
	if v, _ := records[0].Get("Name"); v != "broken.epub" {
		t.Errorf("Folder metadata missing after ebook failure: %q", v)
	}
	if stats.FailedEbooks() != 1 {
		t.Errorf("Expected 1 ebook failure, got %d", stats.FailedEbooks())
	}
	if stats.EbookFailures[0] != path {
		t.Errorf("Wrong failure path: %s", stats.EbookFailures[0])
	}
}

func TestListColumnsSkipSet(t *testing.T) {
	folder := &fakeFolder{names: map[int]string{0: "Name", 1: "Größe", 57: "GesamtGröße"}}
	columns := listColumns(folder)

	want := maxColumnID + 1 - len(skippedColumns)
	if len(columns) != want {
		t.Errorf("Expected %d columns, got %d", want, len(columns))
	}
	for _, col := range columns {
		if skippedColumns[col.ID] {
			t.Errorf("Skipped column %d was listed", col.ID)
		}
	}
	if columns[0].ID != 0 || columns[0].Name != "Name" {
		t.Errorf("Expected column 0 first, got %+v", columns[0])
	}
}
