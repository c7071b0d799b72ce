package papers

import (
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/henrybloomingdale/get-papers-list/internal/affil"
	"github.com/henrybloomingdale/get-papers-list/internal/eutils"
)

// Result is the outcome of parsing one record. Exactly one of three cases
// holds: Paper is set (the record qualifies), Err is set (the record could
// not be parsed), or both are nil (the record was read but does not qualify).
type Result struct {
	Paper *Paper
	Err   error
}

// Extractor builds Papers from PubMed records.
type Extractor struct {
	classifier    *affil.Classifier
	dedupeAuthors bool
	logger        *zap.Logger
}

// ExtractorOption configures an Extractor.
type ExtractorOption func(*Extractor)

// WithClassifier sets the affiliation classifier. Defaults to affil.Default().
func WithClassifier(c *affil.Classifier) ExtractorOption {
	return func(e *Extractor) {
		if c != nil {
			e.classifier = c
		}
	}
}

// WithDedupedAuthors lists each non-academic author at most once per paper.
// By default an author is listed once per qualifying affiliation.
func WithDedupedAuthors() ExtractorOption {
	return func(e *Extractor) { e.dedupeAuthors = true }
}

// WithLogger sets the diagnostics logger.
func WithLogger(l *zap.Logger) ExtractorOption {
	return func(e *Extractor) {
		if l != nil {
			e.logger = l
		}
	}
}

// NewExtractor returns an Extractor configured by opts.
func NewExtractor(opts ...ExtractorOption) *Extractor {
	e := &Extractor{
		classifier: affil.Default(),
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ParseRecord decodes rec and returns its Paper when at least one author
// has a non-academic affiliation and at least one affiliation names a
// company.
func (e *Extractor) ParseRecord(rec eutils.Record) Result {
	article, err := rec.Decode()
	if err != nil {
		return Result{Err: &ParseError{PMID: salvagePMID(rec.Raw), Err: err}}
	}
	return Result{Paper: e.Extract(article)}
}

// Extract applies the affiliation heuristics to an already decoded article.
// It returns nil when the article does not qualify.
func (e *Extractor) Extract(a *eutils.Article) *Paper {
	var (
		authors   []string
		companies []string
		email     string
	)
	seenCompany := make(map[string]struct{})

	for _, au := range a.Authors {
		if len(au.Affiliations) == 0 {
			continue
		}
		listed := false
		for _, aff := range au.Affiliations {
			if e.classifier.IsNonAcademic(aff) {
				if !listed || !e.dedupeAuthors {
					authors = append(authors, au.FullName())
					listed = true
				}
				for _, company := range e.classifier.ExtractCompanyNames([]string{aff}) {
					if _, dup := seenCompany[company]; dup {
						continue
					}
					seenCompany[company] = struct{}{}
					companies = append(companies, company)
				}
			}
			if email == "" {
				email = findEmail(aff)
			}
		}
	}

	if len(authors) == 0 || len(companies) == 0 {
		return nil
	}
	return &Paper{
		PubmedID:            a.PMID,
		Title:               a.Title,
		PublicationDate:     a.PubDate.String(),
		NonAcademicAuthors:  authors,
		CompanyAffiliations: companies,
		CorrespondingEmail:  email,
	}
}

var pmidPattern = regexp.MustCompile(`<PMID[^>]*>\s*(\d+)\s*</PMID>`)

// salvagePMID pulls the PMID out of markup too broken to decode.
func salvagePMID(raw []byte) string {
	if m := pmidPattern.FindSubmatch(raw); m != nil {
		return string(m[1])
	}
	return ""
}

// findEmail returns the first whitespace-separated token of s that looks
// like an email address, without trailing punctuation.
func findEmail(s string) string {
	if !strings.Contains(s, "@") {
		return ""
	}
	for _, tok := range strings.Fields(s) {
		if strings.Contains(tok, "@") && strings.Contains(tok, ".") {
			return strings.TrimRight(tok, ";,.")
		}
	}
	return ""
}
