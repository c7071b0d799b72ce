package affil

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsNonAcademic_AcademicKeywords(t *testing.T) {
	c := Default()
	tests := []string{
		"Dept. of Biology, Harvard University",
		"Cancer Research Institute",
		"Imperial College London",
		"Massachusetts General Hospital, Boston",
		"Harvard Medical School",
		"Broad Center for Genomics",
		"Centre for Drug Design",
		"Faculty of Medicine",
		"Department of Chemistry",
		"Chinese Academy of Sciences",
		"Jackson Lab",
		"Cold Spring Harbor LABORATORY",
		"UNIVERSITY OF TOKYO",
	}
	for _, aff := range tests {
		t.Run(aff, func(t *testing.T) {
			assert.False(t, c.IsNonAcademic(aff))
		})
	}
}

func TestIsNonAcademic_NoKeyword(t *testing.T) {
	c := Default()
	for _, aff := range []string{
		"Acme Biotech Inc.",
		"Roche Pharma AG",
		"MIT, Cambridge",
		"",
	} {
		t.Run(aff, func(t *testing.T) {
			assert.True(t, c.IsNonAcademic(aff))
		})
	}
}

func TestIsNonAcademic_SubstringMatch(t *testing.T) {
	// "lab" matches inside unrelated words; the heuristic is a plain
	// substring lookup.
	assert.False(t, Default().IsNonAcademic("Collaborative Genomics Ltd"))
}

func TestExtractCompanyNames(t *testing.T) {
	c := Default()

	assert.Equal(t, []string{"Acme Biotech Inc."}, c.ExtractCompanyNames([]string{"Acme Biotech Inc."}))
	assert.Empty(t, c.ExtractCompanyNames([]string{"Cancer Research Institute"}))
	assert.Empty(t, c.ExtractCompanyNames([]string{"MIT, Cambridge"}))
	assert.Empty(t, c.ExtractCompanyNames(nil))
}

func TestExtractCompanyNames_TrimAndDedupe(t *testing.T) {
	c := Default()
	got := c.ExtractCompanyNames([]string{
		"  Roche Pharma AG  ",
		"Roche Pharma AG",
		"Novartis Pharma AG",
		"University of Basel",
	})
	assert.Equal(t, []string{"Roche Pharma AG", "Novartis Pharma AG"}, got)
}

func TestExtractCompanyNames_KeepsCase(t *testing.T) {
	got := Default().ExtractCompanyNames([]string{"GENENTECH INC, South San Francisco"})
	require.Len(t, got, 1)
	assert.Equal(t, "GENENTECH INC, South San Francisco", got[0])
}

func TestExtractCompanyNames_Idempotent(t *testing.T) {
	c := Default()
	input := []string{"Acme Biotech Inc.", "Pfizer Ltd", "Stanford University", "Acme Biotech Inc."}

	first := c.ExtractCompanyNames(input)
	second := c.ExtractCompanyNames(input)
	assert.Equal(t, first, second)
	assert.ElementsMatch(t, first, c.ExtractCompanyNames(first))
}

func TestCompanyKeywords(t *testing.T) {
	c := Default()
	for _, aff := range []string{
		"Helix Pharmaceuticals",
		"Vertex Biotech SE",
		"Amgen Inc",
		"Oxford Nanopore Ltd",
		"Genomix LLC",
		"Bayer GmbH",
		"Merck Corp",
		"The Dow Chemical Company",
		"Takeda Co., Osaka",
		"Grifols S.A.",
		"Chiesi Farmaceutici S.p.A.",
		"GSK plc",
		"Siemens AG",
		"Mitsubishi Heavy Industries",
	} {
		t.Run(aff, func(t *testing.T) {
			assert.True(t, c.IsCompany(aff), "expected %q to be a company", aff)
		})
	}
}

func TestNew_CustomKeywords(t *testing.T) {
	c := New(Keywords{
		Academic: []string{"  Clinic "},
		Company:  []string{"Holdings", ""},
	})

	assert.False(t, c.IsNonAcademic("Mayo CLINIC"))
	assert.True(t, c.IsNonAcademic("Harvard University"))
	assert.True(t, c.IsCompany("Big Holdings, Zurich"))
	assert.False(t, c.IsCompany("Acme Biotech Inc."))

	kw := c.Keywords()
	assert.Equal(t, []string{"clinic"}, kw.Academic)
	assert.Equal(t, []string{"holdings"}, kw.Company)
}

func TestNew_CopiesInput(t *testing.T) {
	kw := Keywords{Academic: []string{"university"}, Company: []string{"inc"}}
	c := New(kw)
	kw.Academic[0] = "zzz"

	assert.False(t, c.IsNonAcademic("Some University"))
}

func TestDefaultKeywords_FreshCopy(t *testing.T) {
	kw := DefaultKeywords()
	kw.Academic[0] = "mutated"
	assert.Equal(t, "university", DefaultKeywords().Academic[0])
	assert.Len(t, DefaultKeywords().Academic, 12)
	assert.Len(t, DefaultKeywords().Company, 14)
}

func TestClassifierKeywordsAreLowercase(t *testing.T) {
	for _, kw := range Default().Keywords().Company {
		assert.Equal(t, strings.ToLower(kw), kw)
	}
}
