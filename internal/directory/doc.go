// Package directory holds the employee record type and the pure transform
// pipeline the views render from.
//
// # Pipeline
//
// Every render runs the current page of records through Apply:
//
//	records (fetch order) → Sort(key, order) → Filter(term) → view
//
// Sort is stable and collation-aware (golang.org/x/text/collate), so names
// and emails order the way a human reader expects for the configured locale.
// Filter uses Unicode case folding rather than ASCII lowercasing. At the data
// sizes involved (one fetched page) nothing is memoized.
//
// There is no client-side pagination step. A page is whatever the upstream
// returned; the pipeline can only shrink it.
package directory
