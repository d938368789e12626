package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/closespark/stackscanner/internal/config"
	"github.com/closespark/stackscanner/internal/emails"
	"github.com/closespark/stackscanner/internal/outreach"
	"github.com/closespark/stackscanner/internal/scanner"
)

// loadSettings merges the optional JSON config file over environment
// defaults and validates the result.
func loadSettings(configPath string) (*config.Config, error) {
	cfg := config.FromEnv()

	if configPath != "" {
		fileCfg, err := config.LoadConfig(configPath)
		if err != nil {
			return nil, err
		}
		merged := fileCfg.MergeWithDefaults(*cfg)
		cfg = &merged
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// readDomains collects domains from positional args or a file with one
// domain per line. Blank lines and # comments are skipped.
func readDomains(args []string, file string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	if file == "" {
		return nil, fmt.Errorf("no domains: pass them as arguments or use --file")
	}

	f, err := os.Open(file)
	if err != nil {
		return nil, fmt.Errorf("failed to open domains file %s: %w", file, err)
	}
	defer f.Close()

	var domains []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		domains = append(domains, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read domains file %s: %w", file, err)
	}
	if len(domains) == 0 {
		return nil, fmt.Errorf("domains file %s is empty", file)
	}
	return domains, nil
}

// buildScanner assembles the harvester, composer, and scanner from settings.
func buildScanner(cfg *config.Config, opts scanner.Options) *scanner.Scanner {
	blocklist := emails.EmptyBlocklist()
	if cfg.BlocklistPath != "" {
		blocklist = emails.LoadBlocklist(cfg.BlocklistPath)
	}
	harvester := emails.NewHarvester(blocklist)

	composer := outreach.NewComposer(cfg.PersonaMap, cfg.ResolvedDefaultPersona(), cfg.Company, nil)

	if opts.DefaultFrom == "" {
		opts.DefaultFrom = cfg.DefaultFrom()
	}
	return scanner.New(harvester, composer, opts)
}

// writeJSON pretty-prints v to a file, or stdout when path is empty.
func writeJSON(v any, path string) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	if path == "" {
		fmt.Println(string(data))
		return nil
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write results file %s: %w", path, err)
	}
	return nil
}

// progressPrinter reports scan progress on stderr.
func progressPrinter(verbose bool) scanner.ProgressFunc {
	if !verbose {
		return nil
	}
	return func(current, total int, domain string) {
		fmt.Fprintf(os.Stderr, "[%d/%d] scanning %s\n", current, total, domain)
	}
}
