package core

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var durationPattern = regexp.MustCompile(`(\d+)([dhm])`)

// ParseRestrictionDuration parses a compact duration string such as "1d5h30m"
// into a duration. Components may appear in any order and repeat. It returns
// ok=false when the string contains no recognizable component, which callers
// treat as "no expiry".
func ParseRestrictionDuration(s string) (time.Duration, bool) {
	matches := durationPattern.FindAllStringSubmatch(strings.ToLower(s), -1)
	if len(matches) == 0 {
		return 0, false
	}

	var total time.Duration
	for _, match := range matches {
		amount, err := strconv.Atoi(match[1])
		if err != nil {
			return 0, false
		}
		switch match[2] {
		case "d":
			total += time.Duration(amount) * 24 * time.Hour
		case "h":
			total += time.Duration(amount) * time.Hour
		case "m":
			total += time.Duration(amount) * time.Minute
		}
	}
	return total, true
}
