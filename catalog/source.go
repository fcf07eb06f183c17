package catalog

// Column describes one metadata column of a folder: a numeric identifier
// and its display name. Which identifiers carry a name depends on the
// metadata source and host system.
type Column struct {
	ID   int
	Name string
}

// Entry is one visible child of a folder.
type Entry struct {
	Name string
	Path string // absolute native path
	Dir  bool
}

// Folder exposes the metadata columns of a single directory.
type Folder interface {
	// ColumnName returns the display name of a column, or "" if the
	// column does not exist on this source.
	ColumnName(id int) string

	// Entries lists the visible children of the folder.
	Entries() ([]Entry, error)

	// Detail returns the display value of a column for the named entry.
	// An empty string means the column does not apply to the entry.
	Detail(name string, id int) string
}

// MetadataSource opens folders for metadata queries. It abstracts the
// platform facility that backs the per-file columns (such as the shell
// automation interface on Windows), so tests can substitute canned
// column and value tables.
type MetadataSource interface {
	Folder(dir string) (Folder, error)
}
