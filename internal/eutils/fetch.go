package eutils

import (
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"net/url"
	"strings"

	"github.com/henrybloomingdale/get-papers-list/internal/ncbi"
)

const efetchEndpoint = "efetch.fcgi"

// XML structures for parsing PubMed EFetch responses.

type pubmedArticleSet struct {
	Records []Record `xml:"PubmedArticle"`
}

type pubmedArticle struct {
	Citation medlineCitation `xml:"MedlineCitation"`
}

type medlineCitation struct {
	PMID    xmlText    `xml:"PMID"`
	Article xmlArticle `xml:"Article"`
}

type xmlArticle struct {
	Journal      xmlJournal    `xml:"Journal"`
	ArticleTitle xmlText       `xml:"ArticleTitle"`
	AuthorList   xmlAuthorList `xml:"AuthorList"`
}

type xmlJournal struct {
	JournalIssue xmlJournalIssue `xml:"JournalIssue"`
}

type xmlJournalIssue struct {
	PubDate xmlPubDate `xml:"PubDate"`
}

type xmlPubDate struct {
	Year  string `xml:"Year"`
	Month string `xml:"Month"`
	Day   string `xml:"Day"`
}

type xmlAuthorList struct {
	Authors []xmlAuthor `xml:"Author"`
}

type xmlAuthor struct {
	LastName        string               `xml:"LastName"`
	ForeName        string               `xml:"ForeName"`
	AffiliationInfo []xmlAffiliationInfo `xml:"AffiliationInfo"`
}

type xmlAffiliationInfo struct {
	Affiliation xmlText `xml:"Affiliation"`
}

// xmlText collects all character data of an element, including text nested
// in inline markup such as <i> or <sup> that PubMed leaves in titles.
type xmlText string

func (t *xmlText) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	var b strings.Builder
	depth := 1
	for depth > 0 {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch v := tok.(type) {
		case xml.StartElement:
			depth++
		case xml.EndElement:
			depth--
		case xml.CharData:
			b.Write(v)
		}
	}
	*t = xmlText(b.String())
	return nil
}

// FetchRecords retrieves the PubMed records for the given PMIDs in a single
// batched EFetch request. Records are returned in document order. An empty
// id list returns no records without touching the network.
func (c *Client) FetchRecords(ctx context.Context, pmids []string) ([]Record, error) {
	if len(pmids) == 0 {
		return []Record{}, nil
	}

	params := url.Values{}
	params.Set("db", "pubmed")
	params.Set("id", strings.Join(pmids, ","))
	params.Set("retmode", "xml")

	body, err := c.DoGet(ctx, efetchEndpoint, params)
	if err != nil {
		return nil, fmt.Errorf("fetch request failed: %w", err)
	}

	records, err := parseRecords(body)
	if err != nil {
		return nil, &ncbi.FetchError{Endpoint: efetchEndpoint, Err: err}
	}
	return records, nil
}

// parseRecords splits an EFetch document into its PubmedArticle entries.
func parseRecords(data []byte) ([]Record, error) {
	var set pubmedArticleSet
	if err := xml.Unmarshal(data, &set); err != nil {
		return nil, fmt.Errorf("parsing PubMed XML: %w", err)
	}
	if set.Records == nil {
		return []Record{}, nil
	}
	return set.Records, nil
}

// Decode parses the record's markup into an Article.
func (r Record) Decode() (*Article, error) {
	var buf bytes.Buffer
	buf.Grow(len(r.Raw) + 32)
	buf.WriteString("<PubmedArticle>")
	buf.Write(r.Raw)
	buf.WriteString("</PubmedArticle>")

	var pa pubmedArticle
	if err := xml.Unmarshal(buf.Bytes(), &pa); err != nil {
		return nil, fmt.Errorf("decoding PubmedArticle: %w", err)
	}
	return convertArticle(pa), nil
}

func convertArticle(pa pubmedArticle) *Article {
	mc := pa.Citation
	xa := mc.Article
	pd := xa.Journal.JournalIssue.PubDate

	a := &Article{
		PMID:  strings.TrimSpace(string(mc.PMID)),
		Title: string(xa.ArticleTitle),
		PubDate: PubDate{
			Year:  strings.TrimSpace(pd.Year),
			Month: strings.TrimSpace(pd.Month),
			Day:   strings.TrimSpace(pd.Day),
		},
	}

	for _, au := range xa.AuthorList.Authors {
		author := Author{
			LastName: au.LastName,
			ForeName: au.ForeName,
		}
		for _, ai := range au.AffiliationInfo {
			if aff := string(ai.Affiliation); aff != "" {
				author.Affiliations = append(author.Affiliations, aff)
			}
		}
		a.Authors = append(a.Authors, author)
	}

	return a
}
