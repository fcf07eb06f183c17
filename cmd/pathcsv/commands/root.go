package commands

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/JanEricNitschke/PathToCsv/catalog"
)

// outputFile is the name of the CSV written into the crawled directory.
const outputFile = "contents.csv"

// logFile is the name of the log written in debug mode.
const logFile = "crawl.log"

var (
	crawlDir  string
	recursive bool
	debug     bool
)

func init() {
	rootCmd.Flags().StringVar(&crawlDir, "dir", ".", "Directory that should be crawled")
	rootCmd.Flags().BoolVarP(&recursive, "recursive", "r", false, "Also recursively parse all subdirectories")
	rootCmd.Flags().BoolVarP(&debug, "debug", "d", false, "Enable debug output")
}

var rootCmd = &cobra.Command{
	Use:   "pathcsv",
	Short: "Crawl a path and write a CSV file with file information",
	Long: `Pathcsv crawls a directory, collects per-file metadata columns plus
e-book metadata for EPUB files, and writes everything to a contents.csv
inside the crawled directory.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCrawl()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runCrawl() error {
	info, err := os.Stat(crawlDir)
	if err != nil {
		return fmt.Errorf("could not find the path to be crawled %s: %w", crawlDir, catalog.ErrNotFound)
	}
	if !info.IsDir() {
		return fmt.Errorf("the given path %s does not point to a directory: %w", crawlDir, catalog.ErrNotDirectory)
	}

	logger, closeLog, err := newLogger(crawlDir, debug)
	if err != nil {
		return err
	}
	defer closeLog()

	mode := "non recursively"
	if recursive {
		mode = "recursively"
	}
	logger.Info("Running crawl", "dir", crawlDir, "mode", mode)

	stats := &catalog.Stats{}
	extractor := catalog.NewExtractor(catalog.NewStatSource(), catalog.NewEpubReader(), logger, stats)

	var records []*catalog.Record
	if recursive {
		for dir := range catalog.Directories(crawlDir) {
			dirRecords, err := extractor.Extract(dir)
			if err != nil {
				return err
			}
			records = append(records, dirRecords...)
		}
	} else {
		records, err = extractor.Extract(crawlDir)
		if err != nil {
			return err
		}
	}

	fieldNames := catalog.CollectFieldNames(records)

	csvPath := filepath.Join(crawlDir, outputFile)
	logger.Info("Writing results", "path", csvPath)
	if err := catalog.WriteCSV(csvPath, records, fieldNames); err != nil {
		return err
	}

	logger.Info("Crawl finished", "files", stats.Files, "dirs", stats.Dirs)
	if stats.FailedEbooks() > 0 {
		logger.Info("Errors occurred when parsing epub files", "failures", stats.FailedEbooks())
	}
	return nil
}

// newLogger builds the run logger. Debug mode writes verbose output to a
// log file inside the crawled directory; normal mode logs to stdout.
func newLogger(dir string, debug bool) (*slog.Logger, func(), error) {
	if !debug {
		handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
		return slog.New(handler), func() {}, nil
	}

	f, err := os.Create(filepath.Join(dir, logFile))
	if err != nil {
		return nil, nil, fmt.Errorf("creating log file: %w", err)
	}
	handler := slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})
	return slog.New(handler), func() { f.Close() }, nil
}
