// Package affil classifies author affiliation strings as academic or
// non-academic and picks out the ones that name a company.
//
// Classification is a case-insensitive substring lookup against two keyword
// lists. There is no entity recognition: a qualifying affiliation string is
// itself reported as the company name.
package affil

import "strings"

// Keywords holds the keyword lists driving classification.
type Keywords struct {
	// Academic keywords mark an affiliation as academic when any of them
	// occurs in it.
	Academic []string `yaml:"academic"`

	// Company keywords mark a non-academic affiliation as a company.
	Company []string `yaml:"company"`
}

var (
	defaultAcademic = []string{
		"university", "institute", "college", "hospital", "school", "center",
		"centre", "faculty", "department", "academy", "lab", "laboratory",
	}
	defaultCompany = []string{
		"pharma", "biotech", "inc", "ltd", "llc", "gmbh", "corp", "company",
		"co.", "s.a.", "s.p.a.", "plc", "ag", "industries",
	}
)

// DefaultKeywords returns a fresh copy of the built-in keyword lists.
func DefaultKeywords() Keywords {
	return Keywords{
		Academic: append([]string(nil), defaultAcademic...),
		Company:  append([]string(nil), defaultCompany...),
	}
}

// Classifier applies a fixed set of keywords. It is immutable after
// construction and safe for concurrent use.
type Classifier struct {
	academic []string
	company  []string
}

// New returns a Classifier for kw. Keywords are lower-cased and copied, so
// later changes to kw do not affect the classifier. Empty entries are
// dropped since they would match every affiliation.
func New(kw Keywords) *Classifier {
	return &Classifier{
		academic: normalize(kw.Academic),
		company:  normalize(kw.Company),
	}
}

// Default returns a Classifier using DefaultKeywords.
func Default() *Classifier {
	return New(DefaultKeywords())
}

func normalize(words []string) []string {
	out := make([]string, 0, len(words))
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w != "" {
			out = append(out, w)
		}
	}
	return out
}

// Keywords returns a copy of the lists in use.
func (c *Classifier) Keywords() Keywords {
	return Keywords{
		Academic: append([]string(nil), c.academic...),
		Company:  append([]string(nil), c.company...),
	}
}

// IsNonAcademic reports whether affiliation contains none of the academic
// keywords.
func (c *Classifier) IsNonAcademic(affiliation string) bool {
	return !containsAny(strings.ToLower(affiliation), c.academic)
}

// IsCompany reports whether affiliation is non-academic and contains a
// company keyword.
func (c *Classifier) IsCompany(affiliation string) bool {
	lower := strings.ToLower(affiliation)
	return !containsAny(lower, c.academic) && containsAny(lower, c.company)
}

// ExtractCompanyNames returns the trimmed affiliation strings that qualify
// as companies, without duplicates, in first-seen order.
func (c *Classifier) ExtractCompanyNames(affiliations []string) []string {
	var names []string
	seen := make(map[string]struct{}, len(affiliations))
	for _, aff := range affiliations {
		if !c.IsCompany(aff) {
			continue
		}
		name := strings.TrimSpace(aff)
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	return names
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
