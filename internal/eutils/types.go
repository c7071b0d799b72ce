// Package eutils provides the PubMed ID resolver and record fetcher built
// on NCBI E-utilities.
package eutils

import "strings"

// Record is one <PubmedArticle> entry of an EFetch response. It keeps the
// entry's raw markup so that a malformed record can be rejected on its own
// without discarding its siblings; call Decode to read its fields.
type Record struct {
	Raw []byte `xml:",innerxml"`
}

// Article holds the fields of a PubMed record used for affiliation
// filtering.
type Article struct {
	PMID    string   `json:"pmid"`
	Title   string   `json:"title"`
	PubDate PubDate  `json:"pub_date"`
	Authors []Author `json:"authors"`
}

// PubDate is the journal issue publication date. Any part may be empty.
type PubDate struct {
	Year  string `json:"year,omitempty"`
	Month string `json:"month,omitempty"`
	Day   string `json:"day,omitempty"`
}

// String joins the present parts with hyphens, e.g. "2024-Mar-05" or "2023".
func (d PubDate) String() string {
	parts := make([]string, 0, 3)
	for _, p := range []string{d.Year, d.Month, d.Day} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, "-")
}

// Author represents an article author and every affiliation recorded for them.
type Author struct {
	LastName     string   `json:"last_name"`
	ForeName     string   `json:"fore_name"`
	Affiliations []string `json:"affiliations,omitempty"`
}

// FullName returns "ForeName LastName" trimmed of surrounding whitespace.
// Either part may be empty.
func (a Author) FullName() string {
	return strings.TrimSpace(a.ForeName + " " + a.LastName)
}
