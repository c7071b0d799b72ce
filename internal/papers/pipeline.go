package papers

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/henrybloomingdale/get-papers-list/internal/eutils"
)

// Source resolves a query to PMIDs and fetches their records.
// *eutils.Client implements it.
type Source interface {
	ResolveIDs(ctx context.Context, query string, maxResults int) ([]string, error)
	FetchRecords(ctx context.Context, pmids []string) ([]eutils.Record, error)
}

// Report summarizes one pipeline run.
type Report struct {
	Papers      []Paper
	Resolved    int // PMIDs returned by the search
	Fetched     int // records returned by the fetch
	ParseErrors []error
}

// Pipeline runs search, fetch and extraction in sequence.
type Pipeline struct {
	source    Source
	extractor *Extractor
	logger    *zap.Logger
}

// NewPipeline returns a Pipeline reading from source. A nil extractor
// selects NewExtractor() and a nil logger disables diagnostics.
func NewPipeline(source Source, extractor *Extractor, logger *zap.Logger) *Pipeline {
	if extractor == nil {
		extractor = NewExtractor()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Pipeline{source: source, extractor: extractor, logger: logger}
}

// FetchAndFilter returns the papers matching query that have at least one
// company-affiliated author, in the order the records were fetched.
// Search or fetch failures abort the run; unparseable records are skipped.
func (p *Pipeline) FetchAndFilter(ctx context.Context, query string, maxResults int) ([]Paper, error) {
	rep, err := p.Run(ctx, query, maxResults)
	if err != nil {
		return nil, err
	}
	return rep.Papers, nil
}

// Run is FetchAndFilter with per-stage counts and the skipped records'
// errors.
func (p *Pipeline) Run(ctx context.Context, query string, maxResults int) (*Report, error) {
	ids, err := p.source.ResolveIDs(ctx, query, maxResults)
	if err != nil {
		return nil, fmt.Errorf("resolving ids: %w", err)
	}
	p.logger.Debug("resolved ids", zap.String("query", query), zap.Int("count", len(ids)))

	records, err := p.source.FetchRecords(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("fetching records: %w", err)
	}
	p.logger.Debug("fetched records", zap.Int("count", len(records)))

	rep := &Report{
		Papers:   []Paper{},
		Resolved: len(ids),
		Fetched:  len(records),
	}
	for i, rec := range records {
		res := p.extractor.ParseRecord(rec)
		switch {
		case res.Err != nil:
			p.logger.Debug("skipping record", zap.Int("index", i), zap.Error(res.Err))
			rep.ParseErrors = append(rep.ParseErrors, res.Err)
		case res.Paper != nil:
			rep.Papers = append(rep.Papers, *res.Paper)
		}
	}

	p.logger.Debug("pipeline finished",
		zap.Int("resolved", rep.Resolved),
		zap.Int("fetched", rep.Fetched),
		zap.Int("papers", len(rep.Papers)),
		zap.Int("parse_errors", len(rep.ParseErrors)),
	)
	return rep, nil
}
