package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/JanEricNitschke/PathToCsv/catalog"
	"github.com/JanEricNitschke/PathToCsv/epub"
)

func init() {
	rootCmd.AddCommand(auditCmd)
}

var auditCmd = &cobra.Command{
	Use:   "audit [directory]",
	Short: "Scan EPUBs under a directory for errors (read-only)",
	Long: `Audit recursively checks every .epub file below the given directory:
each file must open cleanly and carry a title. Nothing is written.`,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAudit(args[0])
	},
}

func runAudit(root string) error {
	if _, err := os.Stat(root); err != nil {
		return fmt.Errorf("could not find the path to audit %s: %w", root, catalog.ErrNotFound)
	}

	success := 0
	failed := 0
	for dir := range catalog.Directories(root) {
		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		for _, entry := range entries {
			if entry.IsDir() || !strings.HasSuffix(strings.ToLower(entry.Name()), ".epub") {
				continue
			}
			path := filepath.Join(dir, entry.Name())
			ep, err := epub.Open(path)
			if err != nil {
				fmt.Printf("[FAIL] %s: %v\n", path, err)
				failed++
				continue
			}
			if ep.Package.GetTitle() == "" {
				fmt.Printf("[WARN] %s: No Title\n", path)
			}
			ep.Close()
			success++
		}
	}

	fmt.Printf("Audit complete. Success: %d, Failed: %d\n", success, failed)
	return nil
}
