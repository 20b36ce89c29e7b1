package domain

import "fmt"

// Severity is the notification level derived from a run's results.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
	SeverityFailure Severity = "failure"
)

// Summary aggregates the results of one run.
type Summary struct {
	Total  int
	OK     int
	Slow   int
	Alert  int
	Errors int
}

func Summarize(results []CheckResult) Summary {
	s := Summary{Total: len(results)}
	for _, r := range results {
		switch r.Status {
		case StatusSlow:
			s.Slow++
		case StatusAlert:
			s.Alert++
		case StatusError:
			s.Errors++
		default:
			s.OK++
		}
	}
	return s
}

// Severity maps the aggregate to a notification level: any hard error
// is a failure; threshold crossings alone are a warning.
func (s Summary) Severity() Severity {
	switch {
	case s.Errors > 0:
		return SeverityFailure
	case s.Slow > 0 || s.Alert > 0:
		return SeverityWarning
	default:
		return SeveritySuccess
	}
}

// ExitCode is what the script should exit with: nonzero only when a
// target ended in a hard error state.
func (s Summary) ExitCode() int {
	if s.Errors > 0 {
		return 1
	}
	return 0
}

func (s Summary) String() string {
	return fmt.Sprintf("%d checked: %d ok, %d slow, %d alert, %d error",
		s.Total, s.OK, s.Slow, s.Alert, s.Errors)
}
