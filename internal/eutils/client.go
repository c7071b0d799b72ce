package eutils

import (
	"github.com/henrybloomingdale/get-papers-list/internal/ncbi"
)

const (
	// DefaultBaseURL is the NCBI E-utilities base URL.
	DefaultBaseURL = ncbi.DefaultBaseURL

	// DefaultMaxResults bounds ResolveIDs when the caller passes no limit.
	DefaultMaxResults = 100
)

// Client resolves PubMed queries to PMIDs and fetches their records.
// It embeds ncbi.BaseClient for common parameters and response size guards.
type Client struct {
	*ncbi.BaseClient
}

// Option configures a Client (alias for ncbi.Option).
type Option = ncbi.Option

// Re-export ncbi options so callers only need this package.
var (
	WithBaseURL    = ncbi.WithBaseURL
	WithAPIKey     = ncbi.WithAPIKey
	WithTool       = ncbi.WithTool
	WithEmail      = ncbi.WithEmail
	WithHTTPClient = ncbi.WithHTTPClient
	WithTimeout    = ncbi.WithTimeout
	WithLogger     = ncbi.WithLogger
)

// NewClient creates a new E-utilities client with the given options.
func NewClient(opts ...Option) *Client {
	return &Client{BaseClient: ncbi.NewBaseClient(opts...)}
}
