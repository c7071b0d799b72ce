package papers

import "fmt"

// ParseError reports a record that could not be inspected. It only ever
// excludes that record from the results.
type ParseError struct {
	PMID string // empty when the record could not be decoded far enough
	Err  error
}

func (e *ParseError) Error() string {
	if e.PMID == "" {
		return fmt.Sprintf("parsing record: %v", e.Err)
	}
	return fmt.Sprintf("parsing record %s: %v", e.PMID, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
