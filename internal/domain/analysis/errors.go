package analysis

import "errors"

// ErrScrapeFailed indicates page text extraction failed; the analyzer and
// the sink must not run for that request.
var ErrScrapeFailed = errors.New("scraping failed")
