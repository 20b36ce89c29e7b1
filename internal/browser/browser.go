package browser

import "context"

// Page is the small slice of headless-browser behavior the check
// scripts need. Every operation honors the deadline on ctx and returns
// a plain error on navigation timeouts or missing elements.
type Page interface {
	// Navigate loads url and returns the HTTP status of the main
	// document (the last one received when redirects are followed).
	Navigate(ctx context.Context, url string) (int, error)
	// Text returns the visible text of the first element matching the
	// CSS selector.
	Text(ctx context.Context, selector string) (string, error)
	// Fill types value into the first element matching the selector.
	Fill(ctx context.Context, selector, value string) error
	// Click clicks the first element matching the selector.
	Click(ctx context.Context, selector string) error
	// Screenshot captures the full page as PNG at path.
	Screenshot(ctx context.Context, path string) error
}
