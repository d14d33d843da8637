package pullpush

import "encoding/json"

// apiResponse is the PullPush submission-search envelope. Items are kept as
// raw JSON so the verbatim payload can be persisted to the raw store before
// any interpretation.
type apiResponse struct {
	Data []json.RawMessage `json:"data"`
}
