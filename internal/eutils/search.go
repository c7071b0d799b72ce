package eutils

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/henrybloomingdale/get-papers-list/internal/ncbi"
)

const esearchEndpoint = "esearch.fcgi"

// ErrEmptyQuery is returned when ResolveIDs is called without a query.
var ErrEmptyQuery = errors.New("search query cannot be empty")

// esearchResponse represents the raw JSON response from ESearch.
type esearchResponse struct {
	Result *esearchResult `json:"esearchresult"`
}

type esearchResult struct {
	Count  string   `json:"count"`
	IDList []string `json:"idlist"`
	// ERROR is set, with idlist absent, when NCBI rejects the query but
	// still answers 200.
	ERROR string `json:"ERROR"`
}

// ResolveIDs runs an ESearch query against PubMed and returns at most
// maxResults PMIDs in the order the service ranked them. A maxResults of
// zero or less selects DefaultMaxResults.
func (c *Client) ResolveIDs(ctx context.Context, query string, maxResults int) ([]string, error) {
	if strings.TrimSpace(query) == "" {
		return nil, ErrEmptyQuery
	}
	if maxResults <= 0 {
		maxResults = DefaultMaxResults
	}

	params := url.Values{}
	params.Set("db", "pubmed")
	params.Set("term", query)
	params.Set("retmax", strconv.Itoa(maxResults))
	params.Set("retmode", "json")

	body, err := c.DoGet(ctx, esearchEndpoint, params)
	if err != nil {
		return nil, fmt.Errorf("search request failed: %w", err)
	}

	var resp esearchResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, &ncbi.FetchError{Endpoint: esearchEndpoint, Err: fmt.Errorf("parsing search response: %w", err)}
	}
	if resp.Result == nil {
		return nil, &ncbi.FetchError{Endpoint: esearchEndpoint, Err: errors.New("search response has no esearchresult")}
	}

	if resp.Result.ERROR != "" {
		return nil, &ncbi.FetchError{Endpoint: esearchEndpoint, Err: fmt.Errorf("search rejected: %s", resp.Result.ERROR)}
	}
	if resp.Result.IDList == nil {
		return nil, &ncbi.FetchError{Endpoint: esearchEndpoint, Err: errors.New("search response has no idlist")}
	}
	return resp.Result.IDList, nil
}
