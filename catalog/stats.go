package catalog

// Stats accumulates the counters of one crawl run.
type Stats struct {
	Files         int
	Dirs          int
	EbookFailures []string
}

// FailedEbooks returns the number of e-books that could not be parsed.
func (s *Stats) FailedEbooks() int {
	return len(s.EbookFailures)
}
