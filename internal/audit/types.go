package audit

// Type is the dimension a website is critiqued along.
type Type string

const (
	TypeSEO  Type = "seo"
	TypeUIUX Type = "uiux"
)

// Valid reports whether t is one of the supported audit types.
func (t Type) Valid() bool {
	return t == TypeSEO || t == TypeUIUX
}

// Result is a structured, model-generated critique of one URL. It lives only
// for the request that produced it unless the visitor asks for the full
// report, in which case it is embedded in an audit_report lead.
type Result struct {
	Score           int      `json:"score"`
	Issues          []string `json:"issues"`
	Recommendations []string `json:"recommendations"`
	LoadTime        float64  `json:"loadTime"`

	// Fallback marks a canned result substituted for unparsable model
	// output, so callers can tell a degraded answer from a real one.
	Fallback bool `json:"fallback,omitempty"`
}
