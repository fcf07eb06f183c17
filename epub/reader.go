// Package epub reads metadata from EPUB 2 and EPUB 3 files.
package epub

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"

	"golang.org/x/text/encoding/charmap"
)

// Container is the structure for META-INF/container.xml
type Container struct {
	XMLName   xml.Name   `xml:"urn:oasis:names:tc:opendocument:xmlns:container container"`
	Version   string     `xml:"version,attr"`
	RootFiles []RootFile `xml:"rootfiles>rootfile"`
}

type RootFile struct {
	FullPath  string `xml:"full-path,attr"`
	MediaType string `xml:"media-type,attr"`
}

// Reader provides read access to the metadata of one EPUB file.
type Reader struct {
	zipReader *zip.Reader
	closer    io.Closer

	// OpfPath is the location of the OPF file relative to root
	OpfPath string

	// Package is the parsed OPF structure
	Package *Package
}

// Open opens an EPUB file for reading.
func Open(filepath string) (*Reader, error) {
	z, err := zip.OpenReader(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to open zip: %w", err)
	}

	r := &Reader{
		zipReader: &z.Reader,
		closer:    z,
	}

	if err := r.parseContainer(); err != nil {
		r.Close()
		return nil, fmt.Errorf("failed to parse container: %w", err)
	}

	if err := r.parseOPF(); err != nil {
		r.Close()
		return nil, fmt.Errorf("failed to parse OPF: %w", err)
	}

	return r, nil
}

// Close closes the underlying zip file.
func (r *Reader) Close() error {
	if r.closer != nil {
		return r.closer.Close()
	}
	return nil
}

// parseContainer reads META-INF/container.xml to find the OPF file.
func (r *Reader) parseContainer() error {
	f, err := r.openFile("META-INF/container.xml")
	if err != nil {
		return fmt.Errorf("container.xml missing: %w", err)
	}
	defer f.Close()

	var c Container
	if err := xml.NewDecoder(f).Decode(&c); err != nil {
		return fmt.Errorf("malformed container.xml: %w", err)
	}

	if len(c.RootFiles) == 0 {
		return fmt.Errorf("no rootfile found in container.xml")
	}

	// Standard says application/oebps-package+xml; take the first match.
	for _, rf := range c.RootFiles {
		if rf.MediaType == "application/oebps-package+xml" {
			r.OpfPath = rf.FullPath
			return nil
		}
	}

	// Fallback: take the first one
	r.OpfPath = c.RootFiles[0].FullPath
	return nil
}

// parseOPF reads and parses the OPF file using the path found in container.xml.
func (r *Reader) parseOPF() error {
	f, err := r.openFile(r.OpfPath)
	if err != nil {
		return fmt.Errorf("OPF file %s missing: %w", r.OpfPath, err)
	}
	defer f.Close()

	// Use a tolerant decoder
	d := xml.NewDecoder(f)
	d.Strict = false
	d.CharsetReader = charsetReader

	var pkg Package
	if err := d.Decode(&pkg); err != nil {
		return fmt.Errorf("malformed OPF: %w", err)
	}

	r.Package = &pkg
	return nil
}

// openFile helps find a file in the zip by name.
// Standard zip names use forward slashes and are case sensitive.
func (r *Reader) openFile(name string) (io.ReadCloser, error) {
	for _, f := range r.zipReader.File {
		if f.Name == name {
			return f.Open()
		}
	}
	return nil, fmt.Errorf("file not found: %s", name)
}

// readFile returns the full content of a file in the zip.
func (r *Reader) readFile(name string) ([]byte, error) {
	f, err := r.openFile(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}

// charsetReader handles the non-UTF-8 declarations that show up in OPF
// files from older conversion tools. Windows-1252 is a superset of
// ISO-8859-1 but they need separate decoders for the 0x80-0x9F range.
func charsetReader(charset string, input io.Reader) (io.Reader, error) {
	switch charset {
	case "UTF-8", "utf-8", "UTF8", "utf8":
		return input, nil
	case "ISO-8859-1", "iso-8859-1", "Latin1", "latin1":
		return charmap.ISO8859_1.NewDecoder().Reader(input), nil
	case "Windows-1252", "windows-1252":
		return charmap.Windows1252.NewDecoder().Reader(input), nil
	default:
		return input, nil
	}
}
