// Package locales runs the translation maintenance commands over a set of
// locale documents.
//
// Unlike the core packages, which operate on two in-memory trees, this package
// owns the document lifecycle: list the documents in the store, load the
// primary (reference) locale, apply an operation to every other document and
// save it back.
//
// # Operations
//
//   - Alphabetize: rewrites every document in canonical form.
//   - CopyNewKeys: copies keys missing from each locale (reconcile.PropagateMissing).
//   - TrimDeadKeys: removes keys the primary does not have (reconcile.PruneExtraneous).
//   - RemoveKey: deletes one dotted key from every document, primary included.
//   - Translate: runs an interactive review.Session for one locale.
//
// # Failure Isolation
//
// A document that fails to load, reconcile or save is reported in its Result
// and the remaining documents are still processed. Only failures that affect
// every document (listing the store, loading the primary) abort the run.
package locales
