package report

import (
	"crypto/sha256"
	"encoding/hex"
	"path/filepath"
	"strings"
	"time"
)

const slugMax = 48

// ShotPath builds a deterministic screenshot filename from the capture
// time and the target URL: a readable slug truncated to a fixed length
// plus a short URL hash so truncated slugs cannot collide.
func ShotPath(dir string, ts time.Time, rawURL string) string {
	sum := sha256.Sum256([]byte(rawURL))
	name := ts.Format("20060102-150405") + "_" + slugify(rawURL) + "_" + hex.EncodeToString(sum[:4]) + ".png"
	return filepath.Join(dir, name)
}

func slugify(rawURL string) string {
	s := strings.ToLower(rawURL)
	s = strings.TrimPrefix(s, "https://")
	s = strings.TrimPrefix(s, "http://")

	var b strings.Builder
	lastDash := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash && b.Len() > 0 {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	out := strings.TrimSuffix(b.String(), "-")
	if len(out) > slugMax {
		out = out[:slugMax]
	}
	if out == "" {
		out = "target"
	}
	return out
}
