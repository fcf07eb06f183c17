package epub

import (
	"sort"
	"strings"
)

// GetTitle returns the first title found.
func (pkg *Package) GetTitle() string {
	if len(pkg.Metadata.Titles) > 0 {
		return pkg.Metadata.Titles[0].Value
	}
	return ""
}

// GetAuthors returns all creators as a list of author names.
// Single dc:creator values that pack multiple authors behind common
// delimiters (&, 、, ;, " and ") are split up.
func (pkg *Package) GetAuthors() []string {
	var authors []string
	for _, creator := range pkg.Metadata.Creators {
		authors = append(authors, splitAuthors(creator.Value)...)
	}
	return dedupe(authors)
}

var authorDelimiters = []string{" & ", "&", "、", " and ", "；", ";"}

func splitAuthors(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	for _, delim := range authorDelimiters {
		if !strings.Contains(s, delim) {
			continue
		}
		var result []string
		for _, p := range strings.Split(s, delim) {
			if p = strings.TrimSpace(p); p != "" {
				result = append(result, p)
			}
		}
		if len(result) > 1 {
			return result
		}
	}
	return []string{s}
}

// dedupe removes duplicates while preserving order.
func dedupe(items []string) []string {
	seen := make(map[string]bool)
	var result []string
	for _, item := range items {
		if !seen[item] {
			seen[item] = true
			result = append(result, item)
		}
	}
	return result
}

// GetDescription returns the description.
func (pkg *Package) GetDescription() string {
	if len(pkg.Metadata.Descriptions) > 0 {
		return pkg.Metadata.Descriptions[0].Value
	}
	return ""
}

// GetLanguage returns the language.
func (pkg *Package) GetLanguage() string {
	if len(pkg.Metadata.Languages) > 0 {
		return pkg.Metadata.Languages[0].Value
	}
	return ""
}

// GetPublisher returns the publisher.
func (pkg *Package) GetPublisher() string {
	if len(pkg.Metadata.Publishers) > 0 {
		return pkg.Metadata.Publishers[0].Value
	}
	return ""
}

// GetPublishDate returns the publication date.
func (pkg *Package) GetPublishDate() string {
	if len(pkg.Metadata.Dates) > 0 {
		return pkg.Metadata.Dates[0].Value
	}
	return ""
}

// GetSubjects returns a list of tags.
func (pkg *Package) GetSubjects() []string {
	var subjects []string
	for _, s := range pkg.Metadata.Subjects {
		if s.Value != "" {
			subjects = append(subjects, s.Value)
		}
	}
	return subjects
}

// GetSeries returns the series name from the Calibre meta tag.
func (pkg *Package) GetSeries() string {
	return pkg.metaContent("calibre:series")
}

// GetSeriesIndex returns the series index from the Calibre meta tag.
func (pkg *Package) GetSeriesIndex() string {
	return pkg.metaContent("calibre:series_index")
}

func (pkg *Package) metaContent(name string) string {
	for _, m := range pkg.Metadata.Meta {
		if m.Name == name {
			return m.Content
		}
	}
	return ""
}

// GetIdentifiers returns all identifiers as a scheme-to-value map.
// UUID identifiers are skipped as they are typically not user-relevant.
func (pkg *Package) GetIdentifiers() map[string]string {
	result := make(map[string]string)
	for _, id := range pkg.Metadata.Identifiers {
		scheme, value := parseIdentifier(id.Scheme, id.Value)
		if scheme != "" && scheme != "uuid" && scheme != "unknown" {
			result[scheme] = value
		}
	}
	return result
}

// parseIdentifier extracts scheme and value from an identifier, handling
// the URN notation ("urn:isbn:978...") and the plain "scheme:value"
// notation in addition to the opf:scheme attribute.
func parseIdentifier(scheme, value string) (string, string) {
	if scheme != "" && scheme != "unknown" {
		return normalizeScheme(scheme), value
	}

	lower := strings.ToLower(value)
	if strings.HasPrefix(lower, "urn:") {
		parts := strings.SplitN(value, ":", 3)
		if len(parts) == 3 {
			return normalizeScheme(parts[1]), parts[2]
		}
	}

	if strings.HasPrefix(lower, "uuid:") {
		return "uuid", value[5:]
	}

	if parts := strings.SplitN(value, ":", 2); len(parts) == 2 && parts[0] != "" {
		return normalizeScheme(parts[0]), parts[1]
	}

	return "unknown", value
}

func normalizeScheme(scheme string) string {
	scheme = strings.ToLower(strings.TrimSpace(scheme))
	return strings.TrimPrefix(scheme, "urn:")
}

// MetadataMap flattens the package metadata into non-empty string fields.
// The key set follows the Python epub_meta library so downstream column
// names stay stable: title, authors, language, publisher,
// publication_date, subject, description, identifiers, series,
// series_index, epub_version.
func (r *Reader) MetadataMap() map[string]string {
	pkg := r.Package
	fields := map[string]string{
		"title":            pkg.GetTitle(),
		"authors":          strings.Join(pkg.GetAuthors(), ", "),
		"language":         pkg.GetLanguage(),
		"publisher":        pkg.GetPublisher(),
		"publication_date": pkg.GetPublishDate(),
		"subject":          strings.Join(pkg.GetSubjects(), ", "),
		"description":      pkg.GetDescription(),
		"identifiers":      joinIdentifiers(pkg.GetIdentifiers()),
		"series":           pkg.GetSeries(),
		"series_index":     pkg.GetSeriesIndex(),
		"epub_version":     pkg.Version,
	}
	for key, value := range fields {
		if value == "" {
			delete(fields, key)
		}
	}
	return fields
}

func joinIdentifiers(ids map[string]string) string {
	if len(ids) == 0 {
		return ""
	}
	schemes := make([]string, 0, len(ids))
	for scheme := range ids {
		schemes = append(schemes, scheme)
	}
	sort.Strings(schemes)
	pairs := make([]string, 0, len(schemes))
	for _, scheme := range schemes {
		pairs = append(pairs, scheme+":"+ids[scheme])
	}
	return strings.Join(pairs, ", ")
}
