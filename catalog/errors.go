package catalog

import "errors"

var (
	// ErrNotFound indicates that the directory to crawl does not exist.
	ErrNotFound = errors.New("could not find the given directory")

	// ErrNotDirectory indicates that the path points to a file.
	ErrNotDirectory = errors.New("path has to be for a directory")
)
