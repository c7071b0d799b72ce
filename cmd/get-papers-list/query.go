package main

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
)

var yearPattern = regexp.MustCompile(`^\d{4}$`)

// buildQuery joins the positional arguments and appends --type and --year
// filters in PubMed syntax.
func buildQuery(args []string) (string, error) {
	query := strings.TrimSpace(strings.Join(args, " "))
	if query == "" {
		return "", fmt.Errorf("query cannot be empty")
	}

	// Multi-word publication types must be quoted.
	if flagType != "" {
		typeMap := map[string]string{
			"review":        `"review"[pt]`,
			"trial":         `"clinical trial"[pt]`,
			"meta-analysis": `"meta-analysis"[pt]`,
			"randomized":    `"randomized controlled trial"[pt]`,
			"case-report":   `"case reports"[pt]`,
		}
		if mapped, ok := typeMap[strings.ToLower(flagType)]; ok {
			query += " AND " + mapped
		} else {
			query += fmt.Sprintf(` AND "%s"[pt]`, flagType)
		}
	}

	if flagYear != "" {
		minYear, maxYear, err := parseYearRange(flagYear)
		if err != nil {
			return "", err
		}
		if minYear == maxYear {
			query += fmt.Sprintf(" AND %s[pdat]", minYear)
		} else {
			query += fmt.Sprintf(" AND %s:%s[pdat]", minYear, maxYear)
		}
	}

	return query, nil
}

// parseYearRange accepts "YYYY" or "YYYY-YYYY" with an ascending range.
func parseYearRange(s string) (string, string, error) {
	parts := strings.SplitN(strings.TrimSpace(s), "-", 2)
	minYear := strings.TrimSpace(parts[0])
	maxYear := minYear
	if len(parts) == 2 {
		maxYear = strings.TrimSpace(parts[1])
	}
	if !yearPattern.MatchString(minYear) || !yearPattern.MatchString(maxYear) {
		return "", "", fmt.Errorf("invalid --year %q: expected YYYY or YYYY-YYYY", s)
	}
	if minYear > maxYear {
		return "", "", fmt.Errorf("invalid --year %q: range must be ascending", s)
	}
	return minYear, maxYear, nil
}

// validateFlags rejects flag combinations before any request is made.
func validateFlags() error {
	if flagMaxResults < 0 {
		return fmt.Errorf("--max-results must not be negative, got %d", flagMaxResults)
	}
	if flagJSON && flagHuman {
		return fmt.Errorf("--json and --human are mutually exclusive")
	}
	if flagFull && !flagHuman {
		return fmt.Errorf("--full requires --human")
	}
	if flagXLSX != "" && !strings.EqualFold(filepath.Ext(flagXLSX), ".xlsx") {
		return fmt.Errorf("--xlsx file must end in .xlsx, got %q", flagXLSX)
	}
	return nil
}
