package eutils

import (
	"os"
	"path/filepath"
	"testing"
)

func loadTestdata(t *testing.T, filename string) []byte {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("..", "..", "testdata", filename))
	if err != nil {
		t.Fatalf("failed to load testdata/%s: %v", filename, err)
	}
	return data
}

func newTestClient(srvURL string) *Client {
	return NewClient(
		WithBaseURL(srvURL),
		WithAPIKey("test-key"),
		WithTool("get-papers-list"),
		WithEmail("test@example.com"),
	)
}
