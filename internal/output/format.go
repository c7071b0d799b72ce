// Package output renders filtered papers for the console and for export files.
package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/henrybloomingdale/get-papers-list/internal/papers"
)

// OutputConfig controls which output mode(s) are active.
type OutputConfig struct {
	JSON     bool   // Structured JSON
	Human    bool   // Rich terminal output with color
	Full     bool   // Show every author and affiliation (human mode)
	CSVFile  string // Export results to this CSV path
	XLSXFile string // Export results to this XLSX path
}

// exporting reports whether results go to a file instead of the console.
func (c OutputConfig) exporting() bool {
	return c.CSVFile != "" || c.XLSXFile != ""
}

// WritePapers exports papers to the configured files and renders them to w.
// When a file export is requested, console rendering only happens for the
// JSON and human modes; plain CSV is not echoed.
func WritePapers(w io.Writer, list []papers.Paper, cfg OutputConfig) error {
	if cfg.CSVFile != "" {
		if err := writeCSVFile(cfg.CSVFile, list); err != nil {
			return fmt.Errorf("CSV export failed: %w", err)
		}
	}
	if cfg.XLSXFile != "" {
		if err := writeXLSXFile(cfg.XLSXFile, list); err != nil {
			return fmt.Errorf("XLSX export failed: %w", err)
		}
	}
	switch {
	case cfg.JSON:
		return writeJSON(w, list)
	case cfg.Human:
		return formatPapersHuman(w, list, cfg.Full)
	case cfg.exporting():
		return nil
	}
	return writeCSV(w, list)
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
