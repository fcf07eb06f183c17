package catalog

import (
	"github.com/JanEricNitschke/PathToCsv/epub"
)

// EbookReader extracts metadata from an e-book file. Implementations
// return a map of flat metadata fields plus the chapter titles of the
// table of contents.
type EbookReader interface {
	Metadata(path string) (fields map[string]string, chapters []string, err error)
}

// EpubReader reads EPUB files with the epub package.
type EpubReader struct{}

// NewEpubReader creates an EPUB-backed ebook reader.
func NewEpubReader() *EpubReader {
	return &EpubReader{}
}

// Metadata opens the EPUB at path and returns its metadata fields and
// chapter titles.
func (e *EpubReader) Metadata(path string) (map[string]string, []string, error) {
	r, err := epub.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer r.Close()
	return r.MetadataMap(), r.ChapterTitles(), nil
}
