package cache

import (
	"time"
)

// TimeUntilNextListingRefresh returns the duration until the next 08:00 KST,
// shortly before the Korean exchange opens. The cached listing snapshot is
// kept until then.
func TimeUntilNextListingRefresh() time.Duration {
	loc, _ := time.LoadLocation("Asia/Seoul")
	now := time.Now().In(loc)

	next := time.Date(now.Year(), now.Month(), now.Day(), 8, 0, 0, 0, loc)

	// If today's 08:00 has already passed, use tomorrow's
	if now.After(next) {
		next = next.Add(24 * time.Hour)
	}

	return next.Sub(now)
}
