package locales

import (
	"errors"
	"fmt"

	"translation-manager/core/reconcile"
)

// Result is the outcome of one operation on one document.
type Result struct {
	// Locale is the document identifier.
	Locale string `json:"locale"`
	// Summary lists the changes applied (or planned, in a dry run).
	Summary reconcile.Summary `json:"summary"`
	// Saved is set when the document was written back.
	Saved bool `json:"saved"`
	// Err is the failure for this document, if any.
	Err error `json:"-"`
}

// Report is the set of per-document results of one command.
type Report []Result

// Failed returns the number of documents that could not be processed.
func (r Report) Failed() int {
	n := 0
	for _, res := range r {
		if res.Err != nil {
			n++
		}
	}
	return n
}

// Err joins the per-document failures, or returns nil when every document succeeded.
func (r Report) Err() error {
	var errs []error
	for _, res := range r {
		if res.Err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", res.Locale, res.Err))
		}
	}
	return errors.Join(errs...)
}

// Total merges the summaries of every document.
func (r Report) Total() reconcile.Summary {
	var total reconcile.Summary
	for _, res := range r {
		total.Merge(res.Summary)
	}
	return total
}
