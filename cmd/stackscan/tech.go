package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/closespark/stackscanner/internal/db"
	"github.com/closespark/stackscanner/internal/scanner"
)

var techCmd = &cobra.Command{
	Use:   "tech [domains...]",
	Short: "Scan domains for the full technology registry",
	Long:  "Fingerprints each domain across the full registry of marketing, commerce, and infrastructure technologies, scores the detected stack by outreach value, harvests contact emails, and optionally composes a persona outreach email for the top technology.",
	RunE:  runTech,
}

var (
	techConfigPath  string
	techFile        string
	techOut         string
	techMaxPages    int
	techNoEmails    bool
	techUseBrowser  bool
	techConcurrency int
	techVerbose     bool
	techSave        bool
	techCompose     bool
	techFrom        string
)

func init() {
	techCmd.Flags().StringVarP(&techConfigPath, "config", "c", "", "Path to JSON config file")
	techCmd.Flags().StringVarP(&techFile, "file", "f", "", "File with one domain per line")
	techCmd.Flags().StringVarP(&techOut, "out", "o", "", "Write JSON results to file instead of stdout")
	techCmd.Flags().IntVar(&techMaxPages, "max-pages", 0, "Maximum pages for the email crawl (including the homepage)")
	techCmd.Flags().BoolVar(&techNoEmails, "no-emails", false, "Skip the email crawl")
	techCmd.Flags().BoolVar(&techUseBrowser, "use-browser", false, "Render thin SPA shells in a headless browser")
	techCmd.Flags().IntVar(&techConcurrency, "concurrency", 0, "Concurrent domain scans")
	techCmd.Flags().BoolVarP(&techVerbose, "verbose", "v", false, "Print progress to stderr")
	techCmd.Flags().BoolVar(&techSave, "save", false, "Persist results to the configured database")
	techCmd.Flags().BoolVar(&techCompose, "email", false, "Compose a persona outreach email per domain")
	techCmd.Flags().StringVar(&techFrom, "from", "", "Sender address for composed emails (overrides the configured default)")

	rootCmd.AddCommand(techCmd)
}

func runTech(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings(techConfigPath)
	if err != nil {
		return err
	}

	domains, err := readDomains(args, techFile)
	if err != nil {
		return err
	}

	opts := scanner.DefaultOptions()
	opts.CrawlEmails = !techNoEmails && !cfg.NoEmails
	opts.UseBrowser = techUseBrowser || cfg.UseBrowser
	opts.Verbose = techVerbose || cfg.Verbose
	opts.DefaultFrom = techFrom
	if techMaxPages > 0 {
		opts.MaxPages = techMaxPages
	} else if cfg.MaxPages > 0 {
		opts.MaxPages = cfg.MaxPages
	}
	if techConcurrency > 0 {
		opts.Concurrency = techConcurrency
	} else if cfg.Concurrency > 0 {
		opts.Concurrency = cfg.Concurrency
	}

	s := buildScanner(cfg, opts)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	results := s.ScanTechnologiesBatch(ctx, domains, techCompose, progressPrinter(opts.Verbose))

	detected := 0
	for _, r := range results {
		if len(r.Technologies) > 0 {
			detected++
		}
	}
	fmt.Fprintf(os.Stderr, "Scanned %d domains, technologies detected on %d\n", len(results), detected)

	if techSave {
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
			if _, err := store.SaveScan(ctx, r.Domain, "tech", r); err != nil {
				return err
			}
		}
	}

	return writeJSON(results, techOut)
}
