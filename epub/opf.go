package epub

import "encoding/xml"

// XML Namespaces
const (
	NsDC  = "http://purl.org/dc/elements/1.1/"
	NsOPF = "http://www.idpf.org/2007/opf"
	NsXML = "http://www.w3.org/XML/1998/namespace"
)

// Package is the root element of the OPF file.
// It supports both EPUB 2.0 and EPUB 3.x attributes.
type Package struct {
	XMLName          xml.Name `xml:"http://www.idpf.org/2007/opf package"`
	Version          string   `xml:"version,attr"`
	UniqueIdentifier string   `xml:"unique-identifier,attr"`

	Metadata Metadata `xml:"metadata"`
	Manifest Manifest `xml:"manifest"`
	Spine    Spine    `xml:"spine"`
}

// Metadata contains publication metadata.
// It handles the union of EPUB 2 (DC elements) and EPUB 3 (Meta properties).
type Metadata struct {
	XMLName xml.Name `xml:"metadata"`

	Titles       []SimpleMeta `xml:"http://purl.org/dc/elements/1.1/ title"`
	Creators     []AuthorMeta `xml:"http://purl.org/dc/elements/1.1/ creator"`
	Subjects     []SimpleMeta `xml:"http://purl.org/dc/elements/1.1/ subject"`
	Descriptions []SimpleMeta `xml:"http://purl.org/dc/elements/1.1/ description"`
	Publishers   []SimpleMeta `xml:"http://purl.org/dc/elements/1.1/ publisher"`
	Dates        []SimpleMeta `xml:"http://purl.org/dc/elements/1.1/ date"`
	Identifiers  []IDMeta     `xml:"http://purl.org/dc/elements/1.1/ identifier"`
	Languages    []SimpleMeta `xml:"http://purl.org/dc/elements/1.1/ language"`

	// Meta covers both the EPUB 2 name/content form and the
	// EPUB 3 property form with inner text.
	Meta []Meta `xml:"meta"`
}

// SimpleMeta represents basic DC elements like <dc:title>Value</dc:title>
type SimpleMeta struct {
	Value string `xml:",chardata"`
	ID    string `xml:"id,attr,omitempty"`
	Lang  string `xml:"http://www.w3.org/XML/1998/namespace lang,attr,omitempty"`
}

// AuthorMeta represents creator/contributor
type AuthorMeta struct {
	SimpleMeta
	FileAs string `xml:"http://www.idpf.org/2007/opf file-as,attr,omitempty"`
	Role   string `xml:"http://www.idpf.org/2007/opf role,attr,omitempty"`
}

// IDMeta represents <dc:identifier>
type IDMeta struct {
	Value  string `xml:",chardata"`
	ID     string `xml:"id,attr,omitempty"`
	Scheme string `xml:"http://www.idpf.org/2007/opf scheme,attr,omitempty"`
}

// Meta represents the generic <meta> tag.
type Meta struct {
	ID string `xml:"id,attr,omitempty"`

	// EPUB 2 Attributes
	Name    string `xml:"name,attr,omitempty"`
	Content string `xml:"content,attr,omitempty"`

	// EPUB 3 Attributes
	Property string `xml:"property,attr,omitempty"`
	Refines  string `xml:"refines,attr,omitempty"`

	// Value is the inner text content (Used in EPUB 3 mainly)
	Value string `xml:",chardata"`
}

// Manifest lists all files in the EPUB.
type Manifest struct {
	Items []Item `xml:"item"`
}

type Item struct {
	ID         string `xml:"id,attr"`
	Href       string `xml:"href,attr"`
	MediaType  string `xml:"media-type,attr"`
	Properties string `xml:"properties,attr,omitempty"` // EPUB 3 (e.g., "nav")
}

// Spine defines the reading order.
type Spine struct {
	Toc      string    `xml:"toc,attr,omitempty"` // EPUB 2 NCX reference
	ItemRefs []ItemRef `xml:"itemref"`
}

type ItemRef struct {
	IDRef string `xml:"idref,attr"`
}
