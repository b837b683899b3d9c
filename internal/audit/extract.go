package audit

import (
	"encoding/json"
	"regexp"
)

// Reasoning models sometimes emit a <think> block despite being told not to.
var thinkBlockPattern = regexp.MustCompile(`(?s)<think>.*?</think>`)

// Greedy first-{ to last-} match. Good enough for "a JSON object possibly
// wrapped in prose"; anything trickier falls through to the full-text parse.
var jsonObjectPattern = regexp.MustCompile(`(?s)\{.*\}`)

// Defaults substituted per-field when the model omits one.
const (
	defaultScore    = 60
	defaultLoadTime = 1.5
)

// rawResult tolerates partial model output: absent fields stay nil.
type rawResult struct {
	Score           *float64 `json:"score"`
	Issues          []string `json:"issues"`
	Recommendations []string `json:"recommendations"`
	LoadTime        *float64 `json:"loadTime"`
}

// extractResult sanitizes raw model text and pulls a Result out of it.
// It reports ok=false only when no JSON object can be parsed at all.
func extractResult(text string) (Result, bool) {
	text = thinkBlockPattern.ReplaceAllString(text, "")

	var raw rawResult
	if match := jsonObjectPattern.FindString(text); match != "" {
		if err := json.Unmarshal([]byte(match), &raw); err == nil {
			return coerce(raw), true
		}
	}
	if err := json.Unmarshal([]byte(text), &raw); err == nil {
		return coerce(raw), true
	}
	return Result{}, false
}

// coerce fills per-field defaults for anything the model left out. Present
// values pass through unclamped; the response records what the model said.
func coerce(raw rawResult) Result {
	res := Result{
		Score:           defaultScore,
		Issues:          []string{},
		Recommendations: []string{},
		LoadTime:        defaultLoadTime,
	}
	if raw.Score != nil {
		res.Score = int(*raw.Score)
	}
	if raw.Issues != nil {
		res.Issues = raw.Issues
	}
	if raw.Recommendations != nil {
		res.Recommendations = raw.Recommendations
	}
	if raw.LoadTime != nil {
		res.LoadTime = *raw.LoadTime
	}
	return res
}

// fallbackResult is the canned answer returned when the model output holds no
// parsable JSON. Deliberately indistinguishable from a real (if vague) audit
// apart from the fallback flag.
func fallbackResult() Result {
	return Result{
		Score:           75,
		Issues:          []string{"Unable to analyze website due to technical issues"},
		Recommendations: []string{"Please try again or contact support"},
		LoadTime:        1.5,
		Fallback:        true,
	}
}
