package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/henrybloomingdale/get-papers-list/internal/papers"
)

// writeCSV writes a header row followed by one row per paper.
func writeCSV(w io.Writer, list []papers.Paper) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(papers.Columns); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}
	for _, p := range list {
		if err := cw.Write(p.Row()); err != nil {
			return fmt.Errorf("writing CSV row for PMID %s: %w", p.PubmedID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func writeCSVFile(path string, list []papers.Paper) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating CSV file: %w", err)
	}
	if err := writeCSV(f, list); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
