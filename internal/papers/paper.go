// Package papers turns PubMed records into Papers: articles with at least
// one author affiliated with a company.
package papers

import "strings"

// Columns are the output column headers, in Row order.
var Columns = []string{
	"PubmedID",
	"Title",
	"Publication Date",
	"Non-academic Author(s)",
	"Company Affiliation(s)",
	"Corresponding Author Email",
}

// listSep joins multi-valued columns.
const listSep = "; "

// Paper is an article with at least one non-academic author and at least
// one company affiliation. Papers are built by the Extractor and not
// modified afterwards.
type Paper struct {
	PubmedID            string   `json:"pubmed_id"`
	Title               string   `json:"title"`
	PublicationDate     string   `json:"publication_date"`
	NonAcademicAuthors  []string `json:"non_academic_authors"`
	CompanyAffiliations []string `json:"company_affiliations"`
	CorrespondingEmail  string   `json:"corresponding_email,omitempty"`
}

// Row renders the paper as one output row matching Columns.
func (p Paper) Row() []string {
	return []string{
		p.PubmedID,
		p.Title,
		p.PublicationDate,
		strings.Join(p.NonAcademicAuthors, listSep),
		strings.Join(p.CompanyAffiliations, listSep),
		p.CorrespondingEmail,
	}
}
