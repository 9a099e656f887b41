package application

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/plugforge/plugforge/internal/domain"
)

// AuditService validates a batch of plugin directories. Invocations run
// concurrently because they share no mutable state: each plugin gets its
// own ResultSet and report. History persistence happens after the fan-out,
// on a single goroutine.
type AuditService struct {
	validate    *ValidateService
	history     domain.AuditHistory
	concurrency int
	saveHistory bool
}

func NewAuditService(validate *ValidateService, history domain.AuditHistory, concurrency int, saveHistory bool) *AuditService {
	if concurrency < 1 {
		concurrency = 1
	}
	return &AuditService{
		validate:    validate,
		history:     history,
		concurrency: concurrency,
		saveHistory: saveHistory,
	}
}

// Audit validates every path with the same check set and functional flag.
// Results keep the order the paths were given in; a failed invocation
// (inaccessible path) becomes an error entry, never aborts the batch.
func (s *AuditService) Audit(ctx context.Context, rootPath string, paths []string, names []string, functional bool) ([]domain.AuditResult, error) {
	results := make([]domain.AuditResult, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)

	for i, path := range paths {
		g.Go(func() error {
			report, err := s.validate.Validate(gctx, path, names, functional)
			if err != nil {
				results[i] = domain.AuditResult{Err: err.Error()}
				return nil
			}
			results[i] = domain.AuditResult{Report: report}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if s.saveHistory && s.history != nil {
		s.persistHistory(rootPath, results)
	}

	return results, nil
}

func (s *AuditService) persistHistory(rootPath string, results []domain.AuditResult) {
	now := time.Now().UTC().Format(time.RFC3339)
	for _, r := range results {
		if r.Report == nil {
			continue
		}
		entry := domain.AuditEntry{
			Timestamp:  now,
			Plugin:     r.Report.PluginName,
			Path:       r.Report.PluginPath,
			Score:      r.Report.Summary.Score,
			Passed:     r.Report.Summary.Success,
			CommitHash: r.Report.CommitHash,
		}
		// History is best effort; an unwritable directory must not fail the audit.
		_ = s.history.Save(rootPath, entry)
	}
}
