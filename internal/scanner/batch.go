package scanner

import (
	"context"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/closespark/stackscanner/internal/detect"
)

// ProgressFunc is called as each domain starts scanning. current counts
// started scans, not finished ones.
type ProgressFunc func(current, total int, domain string)

// ScanDomains runs the HubSpot scan over many domains with a bounded worker
// pool. A failing domain produces a result with its error field set and
// never affects the others; results keep input order.
func (s *Scanner) ScanDomains(ctx context.Context, domains []string, progress ProgressFunc) []*detect.DetectionResult {
	results := make([]*detect.DetectionResult, len(domains))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.opts.Concurrency)

	var started int64
	for i, domain := range domains {
		g.Go(func() error {
			if progress != nil {
				progress(int(atomic.AddInt64(&started, 1)), len(domains), domain)
			}
			results[i] = s.ScanDomain(ctx, domain)
			return nil
		})
	}

	// Workers never return errors; per-domain failures live in the results.
	_ = g.Wait()
	return results
}

// ScanTechnologiesBatch runs the multi-technology scan over many domains
// with the same pooling and isolation as ScanDomains.
func (s *Scanner) ScanTechnologiesBatch(ctx context.Context, domains []string, generateEmail bool, progress ProgressFunc) []*TechScanResult {
	results := make([]*TechScanResult, len(domains))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.opts.Concurrency)

	var started int64
	for i, domain := range domains {
		g.Go(func() error {
			if progress != nil {
				progress(int(atomic.AddInt64(&started, 1)), len(domains), domain)
			}
			results[i] = s.ScanTechnologies(ctx, domain, generateEmail)
			return nil
		})
	}

	_ = g.Wait()
	return results
}
