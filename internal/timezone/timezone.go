package timezone

import "time"

// Location is the single timezone every report timestamp and
// notification footer is rendered in, regardless of where the CI
// runner happens to be.
var Location = time.UTC

func Now() time.Time {
	return time.Now().In(Location)
}
