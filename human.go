package irctext

import (
	"fmt"
	"time"
)

// Ordinal returns the ordinal representation of an integer, e.g. 1 => "1st".
func Ordinal(n int) string {
	suffix := "th"
	if n%100/10 != 1 {
		switch n % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return fmt.Sprintf("%d%s", n, suffix)
}

// RelativeTime renders an elapsed duration as a coarse human-readable
// phrase like "an hour ago" or "3 months ago". Negative durations read
// "just now".
func RelativeTime(d time.Duration) string {
	if d < 0 {
		return "just now"
	}
	days := int(d.Hours()) / 24
	seconds := int(d.Seconds()) - days*86400

	if days == 0 {
		switch {
		case seconds < 10:
			return "just now"
		case seconds < 60:
			return fmt.Sprintf("%d seconds ago", seconds)
		case seconds < 120:
			return "a minute ago"
		case seconds < 3600:
			return fmt.Sprintf("%d minutes ago", seconds/60)
		case seconds < 7200:
			return "an hour ago"
		default:
			return fmt.Sprintf("%d hours ago", seconds/3600)
		}
	}
	switch {
	case days == 1:
		return "Yesterday"
	case days < 7:
		return fmt.Sprintf("%d days ago", days)
	case days < 31:
		return fmt.Sprintf("%d weeks ago", days/7)
	case days < 365:
		return fmt.Sprintf("%d months ago", days/30)
	}
	return fmt.Sprintf("%d years ago", days/365)
}
