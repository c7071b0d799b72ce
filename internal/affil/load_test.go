package affil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKeywords_Overrides(t *testing.T) {
	kw, err := ParseKeywords([]byte("academic:\n  - university\n  - clinic\n"))
	require.NoError(t, err)

	assert.Equal(t, []string{"university", "clinic"}, kw.Academic)
	assert.Equal(t, DefaultKeywords().Company, kw.Company, "absent list keeps defaults")
}

func TestParseKeywords_ExplicitEmpty(t *testing.T) {
	kw, err := ParseKeywords([]byte("company: []\n"))
	require.NoError(t, err)

	assert.Empty(t, kw.Company)
	assert.Equal(t, DefaultKeywords().Academic, kw.Academic)
}

func TestParseKeywords_EmptyDocument(t *testing.T) {
	kw, err := ParseKeywords(nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultKeywords(), kw)
}

func TestParseKeywords_UnknownField(t *testing.T) {
	_, err := ParseKeywords([]byte("academics: [university]\n"))
	assert.Error(t, err)
}

func TestParseKeywords_Malformed(t *testing.T) {
	_, err := ParseKeywords([]byte("academic: [university\n"))
	assert.Error(t, err)
}

func TestLoadKeywords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keywords.yaml")
	require.NoError(t, os.WriteFile(path, []byte("company: [holdings]\n"), 0o644))

	kw, err := LoadKeywords(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"holdings"}, kw.Company)

	c := New(kw)
	assert.True(t, c.IsCompany("Berkshire Holdings"))
}

func TestLoadKeywords_Missing(t *testing.T) {
	_, err := LoadKeywords(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
