package notify

import (
	"fmt"

	"github.com/hamed0406/webwatch/internal/domain"
)

// ResultDetails turns every non-ok result into one detail line for the
// notification body.
func ResultDetails(results []domain.CheckResult) []Detail {
	var out []Detail
	for _, r := range results {
		if r.Status == domain.StatusOK {
			continue
		}
		var v string
		switch {
		case r.Error != "":
			v = r.Error
		case r.Status == domain.StatusSlow:
			v = fmt.Sprintf("slow: %.0f ms", r.ElapsedMS)
		case r.Status == domain.StatusAlert && r.Price != nil:
			v = fmt.Sprintf("price %.2f at or below limit", *r.Price)
		default:
			v = string(r.Status)
		}
		out = append(out, Detail{Label: r.URL, Value: v})
	}
	return out
}
