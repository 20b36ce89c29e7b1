package report

import (
	"context"

	"github.com/hamed0406/webwatch/internal/domain"
)

// Sink receives one CheckResult per processed target. Append is called
// incrementally from the check loop so partial progress survives a
// later crash; Close finalizes whatever the sink buffers.
type Sink interface {
	Append(ctx context.Context, r domain.CheckResult) error
	Close() error
}
