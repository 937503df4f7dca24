// Package clock renders game-clock values in a single display form.
package clock

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/okian/courtside/internal/domain/normalize"
)

// Missing is rendered for absent or empty clock values.
const Missing = "-"

const secondsPerMinute = 60

var (
	minutesSeconds = regexp.MustCompile(`^(\d{1,2}):(\d{2})$`)
	isoDuration    = regexp.MustCompile(`(?i)^PT(?:(\d+)H)?(?:(\d+)M)?(?:(\d+(?:\.\d+)?)S)?$`)
)

// Normalize converts v into "minutes:SS". It accepts "M:SS"/"MM:SS" strings,
// ISO-8601 durations such as "PT11M30.00S", and numeric seconds (numbers or
// numeric strings). Fractional seconds are floored. Unrecognized values,
// booleans and negative seconds are returned in their string form; nil and
// empty strings yield Missing.
func Normalize(v any) string {
	if v == nil {
		return Missing
	}

	s, isString := v.(string)
	if !isString {
		if _, isBool := v.(bool); isBool {
			return fmt.Sprint(v)
		}
		if secs, ok := normalize.Number(v); ok && secs >= 0 {
			return fromSeconds(secs)
		}
		return fmt.Sprint(v)
	}

	s = strings.TrimSpace(s)
	if s == "" {
		return Missing
	}
	if m := minutesSeconds.FindStringSubmatch(s); m != nil {
		minutes, _ := strconv.Atoi(m[1])
		return format(minutes, atoi(m[2]))
	}
	if m := isoDuration.FindStringSubmatch(s); m != nil {
		hours := atoi(m[1])
		minutes := atoi(m[2])
		var seconds int
		if m[3] != "" {
			f, _ := strconv.ParseFloat(m[3], 64)
			seconds = int(math.Floor(f))
		}
		return format(hours*secondsPerMinute+minutes+seconds/secondsPerMinute, seconds%secondsPerMinute)
	}
	if secs, ok := normalize.Number(s); ok && secs >= 0 {
		return fromSeconds(secs)
	}
	return s
}

func fromSeconds(total float64) string {
	whole := int(math.Floor(total))
	minutes := int(math.Floor(float64(whole) / secondsPerMinute))
	seconds := whole - minutes*secondsPerMinute
	return format(minutes, seconds)
}

func format(minutes, seconds int) string {
	return fmt.Sprintf("%d:%02d", minutes, seconds)
}

func atoi(s string) int {
	if s == "" {
		return 0
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
