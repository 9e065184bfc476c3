package analysis

// ReportID identifier type
type ReportID string

// ErrorKey discriminates the failure variant of a Record: when analysis
// fails, the record collapses to a single-field map carrying this key.
const ErrorKey = "Error"

// RequiredFields is the field set the completion service is instructed to
// return. The model is trusted to honor it; nothing re-validates the shape.
var RequiredFields = []string{
	"Product Name",
	"Brand",
	"Animal Materials",
	"Material Composition",
	"Manufacturing Country",
	"Sustainability Practices",
	"Labor Conditions",
	"Animal Welfare Policies",
	"Transparency Level",
	"Historical Brand Insights",
	"Detailed Analysis",
	"Related Links",
	"Overall Ethical Rating",
}

// Record is one ethical assessment as returned by the completion service.
// Kept as a plain map so unexpected model output round-trips untouched to
// both the HTTP response and the store.
type Record map[string]any

// ErrorRecord builds the failure variant.
func ErrorRecord(msg string) Record {
	return Record{ErrorKey: msg}
}

// IsError reports whether r is the failure variant.
func (r Record) IsError() bool {
	_, ok := r[ErrorKey]
	return ok
}

// Clone returns a shallow copy, so detached persistence never shares a map
// with the response encoder.
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// Report is the persisted shape: the record plus the source URL and the
// sink-added timestamp in epoch seconds. The ID is process-local (artifact
// keys, logs) and is not written to the store.
type Report struct {
	ID        ReportID `json:"id,omitempty"`
	URL       string   `json:"url"`
	Timestamp float64  `json:"timestamp"`
	Record    Record   `json:"record"`
}
