package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/closespark/stackscanner/internal/db"
	"github.com/closespark/stackscanner/internal/scanner"
)

var scanCmd = &cobra.Command{
	Use:   "scan [domains...]",
	Short: "Scan domains for HubSpot usage",
	Long:  "Fingerprints each domain for HubSpot via weighted page, header, external-source, and inline-script signals, extracts portal IDs, and crawls contact pages for emails on positive detections.",
	RunE:  runScan,
}

var (
	scanConfigPath  string
	scanFile        string
	scanOut         string
	scanMaxPages    int
	scanNoEmails    bool
	scanUseBrowser  bool
	scanConcurrency int
	scanVerbose     bool
	scanSave        bool
)

func init() {
	scanCmd.Flags().StringVarP(&scanConfigPath, "config", "c", "", "Path to JSON config file")
	scanCmd.Flags().StringVarP(&scanFile, "file", "f", "", "File with one domain per line")
	scanCmd.Flags().StringVarP(&scanOut, "out", "o", "", "Write JSON results to file instead of stdout")
	scanCmd.Flags().IntVar(&scanMaxPages, "max-pages", 0, "Maximum pages for the email crawl (including the homepage)")
	scanCmd.Flags().BoolVar(&scanNoEmails, "no-emails", false, "Skip the email crawl")
	scanCmd.Flags().BoolVar(&scanUseBrowser, "use-browser", false, "Render thin SPA shells in a headless browser")
	scanCmd.Flags().IntVar(&scanConcurrency, "concurrency", 0, "Concurrent domain scans")
	scanCmd.Flags().BoolVarP(&scanVerbose, "verbose", "v", false, "Print progress to stderr")
	scanCmd.Flags().BoolVar(&scanSave, "save", false, "Persist results to the configured database")

	rootCmd.AddCommand(scanCmd)
}

func runScan(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings(scanConfigPath)
	if err != nil {
		return err
	}

	domains, err := readDomains(args, scanFile)
	if err != nil {
		return err
	}

	opts := scanner.DefaultOptions()
	opts.CrawlEmails = !scanNoEmails && !cfg.NoEmails
	opts.UseBrowser = scanUseBrowser || cfg.UseBrowser
	opts.Verbose = scanVerbose || cfg.Verbose
	if scanMaxPages > 0 {
		opts.MaxPages = scanMaxPages
	} else if cfg.MaxPages > 0 {
		opts.MaxPages = cfg.MaxPages
	}
	if scanConcurrency > 0 {
		opts.Concurrency = scanConcurrency
	} else if cfg.Concurrency > 0 {
		opts.Concurrency = cfg.Concurrency
	}

	s := buildScanner(cfg, opts)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	results := s.ScanDomains(ctx, domains, progressPrinter(opts.Verbose))

	detected := 0
	for _, r := range results {
		if r.HubSpotDetected {
			detected++
		}
	}
	fmt.Fprintf(os.Stderr, "Scanned %d domains, HubSpot detected on %d\n", len(results), detected)

	if scanSave {
		if cfg.DatabaseURL == "" {
			return fmt.Errorf("--save requires DATABASE_URL or database_url in the config file")
		}
		store, err := db.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return err
		}
		defer store.Close()
		if err := store.Migrate(ctx); err != nil {
			return err
		}
		for _, r := range results {
			if _, err := store.SaveScan(ctx, r.Domain, "hubspot", r); err != nil {
				return err
			}
		}
	}

	return writeJSON(results, scanOut)
}
