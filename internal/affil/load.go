package affil

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadKeywords reads keyword overrides from a YAML file of the form
//
//	academic: [university, institute]
//	company: [pharma, inc]
//
// A list that is absent from the file keeps its built-in default; a list
// given explicitly as empty disables that keyword class.
func LoadKeywords(path string) (Keywords, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Keywords{}, fmt.Errorf("reading keywords file: %w", err)
	}
	kw, err := ParseKeywords(data)
	if err != nil {
		return Keywords{}, fmt.Errorf("keywords file %s: %w", path, err)
	}
	return kw, nil
}

// ParseKeywords decodes YAML keyword overrides on top of DefaultKeywords.
func ParseKeywords(data []byte) (Keywords, error) {
	var raw struct {
		Academic *[]string `yaml:"academic"`
		Company  *[]string `yaml:"company"`
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil && !errors.Is(err, io.EOF) {
		return Keywords{}, fmt.Errorf("parsing keywords: %w", err)
	}

	kw := DefaultKeywords()
	if raw.Academic != nil {
		kw.Academic = *raw.Academic
	}
	if raw.Company != nil {
		kw.Company = *raw.Company
	}
	return kw, nil
}
