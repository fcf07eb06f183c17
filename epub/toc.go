package epub

import (
	"path"
	"strings"

	"github.com/beevik/etree"
)

// ChapterTitles returns the chapter titles from the table of contents.
// EPUB 2 books carry an NCX document, EPUB 3 books a nav document; both
// are tried in that order. Extraction is best-effort: a missing or
// broken table of contents yields nil rather than an error.
func (r *Reader) ChapterTitles() []string {
	if href := r.ncxHref(); href != "" {
		if titles := r.ncxTitles(href); len(titles) > 0 {
			return titles
		}
	}
	if href := r.navHref(); href != "" {
		return r.navTitles(href)
	}
	return nil
}

// ncxHref resolves the NCX document via the spine toc reference, falling
// back to the manifest media type.
func (r *Reader) ncxHref() string {
	for _, item := range r.Package.Manifest.Items {
		if item.ID == r.Package.Spine.Toc && r.Package.Spine.Toc != "" {
			return r.resolveHref(item.Href)
		}
	}
	for _, item := range r.Package.Manifest.Items {
		if item.MediaType == "application/x-dtbncx+xml" {
			return r.resolveHref(item.Href)
		}
	}
	return ""
}

// navHref finds the EPUB 3 nav document in the manifest.
func (r *Reader) navHref() string {
	for _, item := range r.Package.Manifest.Items {
		for prop := range strings.FieldsSeq(item.Properties) {
			if prop == "nav" {
				return r.resolveHref(item.Href)
			}
		}
	}
	return ""
}

// resolveHref turns a manifest href into a zip path relative to the OPF.
func (r *Reader) resolveHref(href string) string {
	return path.Clean(path.Join(path.Dir(r.OpfPath), href))
}

// ncxTitles extracts navPoint labels from an NCX document.
func (r *Reader) ncxTitles(href string) []string {
	doc, err := r.readXML(href)
	if err != nil {
		return nil
	}
	var titles []string
	for _, el := range doc.FindElements("//navPoint/navLabel/text") {
		if title := strings.TrimSpace(el.Text()); title != "" {
			titles = append(titles, title)
		}
	}
	return titles
}

// navTitles extracts anchor texts from the toc nav of an EPUB 3 nav
// document. Without an explicit epub:type="toc" nav the first nav wins.
func (r *Reader) navTitles(href string) []string {
	doc, err := r.readXML(href)
	if err != nil {
		return nil
	}
	navs := doc.FindElements("//nav")
	if len(navs) == 0 {
		return nil
	}
	toc := navs[0]
	for _, nav := range navs {
		if nav.SelectAttrValue("epub:type", "") == "toc" {
			toc = nav
			break
		}
	}
	var titles []string
	for _, a := range toc.FindElements(".//a") {
		if title := strings.TrimSpace(flattenText(a)); title != "" {
			titles = append(titles, title)
		}
	}
	return titles
}

// readXML parses a zip member with permissive settings. Nav documents are
// XHTML and frequently carry entities or stray markup that a strict
// parser rejects.
func (r *Reader) readXML(href string) (*etree.Document, error) {
	data, err := r.readFile(href)
	if err != nil {
		return nil, err
	}
	doc := etree.NewDocument()
	doc.ReadSettings.Permissive = true
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, err
	}
	return doc, nil
}

// flattenText collects the text content of an element and its children.
func flattenText(el *etree.Element) string {
	var sb strings.Builder
	sb.WriteString(el.Text())
	for _, child := range el.ChildElements() {
		sb.WriteString(flattenText(child))
		sb.WriteString(child.Tail())
	}
	return sb.String()
}
