package httptransport

type RunbookResponse struct {
	Code  string   `json:"code"`
	Title string   `json:"title"`
	Steps []string `json:"steps"`
}

// ErrorResponse carries known_codes so an unknown reason code reports the
// full set of codes the service understands.
type ErrorResponse struct {
	Code       string   `json:"code"`
	Message    string   `json:"message"`
	KnownCodes []string `json:"known_codes,omitempty"`
}
