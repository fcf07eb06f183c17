package catalog

// CollectFieldNames returns the union of all field names across the
// records, in first-seen order, de-duplicated, with the path field
// forced first. The CSV header must contain every field that shows up
// for any file.
func CollectFieldNames(records []*Record) []string {
	names := []string{PathField}
	seen := map[string]bool{PathField: true}
	for _, rec := range records {
		for _, key := range rec.Keys() {
			if !seen[key] {
				seen[key] = true
				names = append(names, key)
			}
		}
	}
	return names
}
