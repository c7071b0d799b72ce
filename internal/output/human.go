package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/henrybloomingdale/get-papers-list/internal/papers"
)

// --- Styles ---

var (
	cyan       = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	bold       = lipgloss.NewStyle().Bold(true)
	dim        = lipgloss.NewStyle().Faint(true)
	yellow     = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	magenta    = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
	labelStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("4"))
	boxStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("6")).
			Padding(0, 1)
)

// truncate cuts a string to maxLen runes, appending "…" if truncated.
func truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	return string(r[:maxLen-1]) + "…"
}

func formatPapersHuman(w io.Writer, list []papers.Paper, full bool) error {
	if len(list) == 0 {
		fmt.Fprintln(w, "🔬 No papers with company-affiliated authors.")
		return nil
	}

	fmt.Fprintln(w, bold.Render(fmt.Sprintf("🔬 %d papers with company-affiliated authors", len(list))))
	fmt.Fprintln(w)

	if full {
		for i, p := range list {
			if i > 0 {
				fmt.Fprintln(w)
			}
			formatPaperCard(w, p)
		}
		return nil
	}

	rows := make([][]string, 0, len(list))
	for _, p := range list {
		company := ""
		if len(p.CompanyAffiliations) > 0 {
			company = p.CompanyAffiliations[0]
			if n := len(p.CompanyAffiliations) - 1; n > 0 {
				company = truncate(company, 36) + dim.Render(fmt.Sprintf(" +%d", n))
			} else {
				company = truncate(company, 40)
			}
		}
		rows = append(rows, []string{
			cyan.Render(p.PubmedID),
			bold.Render(truncate(p.Title, 50)),
			p.PublicationDate,
			company,
			yellow.Render(p.CorrespondingEmail),
		})
	}

	t := table.New().
		Headers("PMID", "Title", "Date", "Company", "Email").
		Rows(rows...).
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("8"))).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("4"))
			}
			return lipgloss.NewStyle()
		})

	fmt.Fprintln(w, t.Render())
	fmt.Fprintln(w)
	fmt.Fprintln(w, dim.Render("💾 Use --file papers.csv or --xlsx papers.xlsx to export"))
	return nil
}

func formatPaperCard(w io.Writer, p papers.Paper) {
	meta := cyan.Render("PMID: " + p.PubmedID)
	if p.PublicationDate != "" {
		meta += dim.Render(" · ") + p.PublicationDate
	}
	fmt.Fprintln(w, boxStyle.Render(bold.Render(p.Title)+"\n"+meta))
	fmt.Fprintln(w)

	fmt.Fprintf(w, "  %s %s\n", labelStyle.Render("Non-academic authors:"), strings.Join(p.NonAcademicAuthors, ", "))
	fmt.Fprintf(w, "  %s\n", labelStyle.Render("Company affiliations:"))
	for _, c := range p.CompanyAffiliations {
		fmt.Fprintf(w, "    %s %s\n", magenta.Render("├"), c)
	}
	if p.CorrespondingEmail != "" {
		fmt.Fprintf(w, "  %s %s\n", labelStyle.Render("Email:"), yellow.Render(p.CorrespondingEmail))
	}
}
