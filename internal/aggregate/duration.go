package aggregate

import (
	"fmt"
	"time"
)

// FormatDuration renders d as "Ns" below one minute and "Mm Ns" from one minute up.
// Both parts are truncated to whole units.
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	seconds := int64(d / time.Second)
	if d >= time.Minute {
		return fmt.Sprintf("%dm %ds", seconds/60, seconds%60)
	}
	return fmt.Sprintf("%ds", seconds)
}

// stepDuration converts a raw nanosecond value; nil stays nil.
func stepDuration(raw *int64) *time.Duration {
	if raw == nil {
		return nil
	}
	d := time.Duration(*raw)
	return &d
}
