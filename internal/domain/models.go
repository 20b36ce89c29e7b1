package domain

import "time"

// Status classifies the outcome of a single check. Threshold crossings
// (slow, alert) are classifications, not failures; only error marks a
// check that could not complete.
type Status string

const (
	StatusOK    Status = "ok"
	StatusSlow  Status = "slow"
	StatusAlert Status = "alert"
	StatusError Status = "error"
)

// Target is one URL to check, immutable for the run.
type Target struct {
	URL      string `json:"url"`
	Selector string `json:"selector,omitempty"` // overrides the script-wide selector when set
	Label    string `json:"label,omitempty"`
}

// CheckResult is the outcome record for one Target.
//
// HTTPStatus and Price are pointers so "no response" / "no price"
// serialize as null rather than a misleading zero.
type CheckResult struct {
	URL        string    `json:"url"`
	Status     Status    `json:"status"`
	HTTPStatus *int      `json:"http_status"`
	ElapsedMS  float64   `json:"elapsed_ms"`
	Price      *float64  `json:"price,omitempty"`
	Screenshot string    `json:"screenshot,omitempty"`
	Error      string    `json:"error,omitempty"`
	CheckedAt  time.Time `json:"checked_at"`
}

// TargetsFromURLs wraps plain URLs as Targets, preserving order.
func TargetsFromURLs(urls []string) []Target {
	out := make([]Target, 0, len(urls))
	for _, u := range urls {
		out = append(out, Target{URL: u})
	}
	return out
}
