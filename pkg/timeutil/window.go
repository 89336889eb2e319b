// Package timeutil parses the human time inputs the CLI accepts: look-ahead
// windows such as "3d" and calendar dates such as "tomorrow" or "3/14".
package timeutil

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DefaultWindow is the look-ahead used when none is given.
const DefaultWindow = "1w"

const day = 24 * time.Hour

var (
	segment = regexp.MustCompile(`^\s*(\d+)\s*([a-z]+)`)

	// units maps every accepted spelling to its length.
	units = map[string]time.Duration{}

	// labels renders a window largest unit first.
	labels = []struct {
		label string
		value time.Duration
	}{
		{"w", 7 * day},
		{"d", day},
		{"h", time.Hour},
		{"m", time.Minute},
		{"s", time.Second},
	}
)

func init() {
	for d, names := range map[time.Duration][]string{
		time.Second: {"s", "sec", "secs", "second", "seconds"},
		time.Minute: {"m", "min", "mins", "minute", "minutes"},
		time.Hour:   {"h", "hr", "hrs", "hour", "hours"},
		day:         {"d", "day", "days"},
		7 * day:     {"w", "wk", "wks", "week", "weeks"},
	} {
		for _, n := range names {
			units[n] = d
		}
	}
}

// ParseWindow parses a window such as "3d", "1w" or "1w2d6h" and returns the
// duration with its compact label. Empty input means DefaultWindow.
func ParseWindow(input string) (time.Duration, string, error) {
	rest := strings.ToLower(strings.TrimSpace(input))
	if rest == "" {
		rest = DefaultWindow
	}

	var total time.Duration
	for strings.TrimSpace(rest) != "" {
		m := segment.FindStringSubmatch(rest)
		if m == nil {
			return 0, "", fmt.Errorf("timeutil: invalid window segment %q", strings.TrimSpace(rest))
		}
		n, err := strconv.ParseInt(m[1], 10, 64)
		if err != nil {
			return 0, "", fmt.Errorf("timeutil: invalid window value %q: %w", m[1], err)
		}
		unit, ok := units[m[2]]
		if !ok {
			return 0, "", fmt.Errorf("timeutil: unsupported window unit %q", m[2])
		}
		if n > math.MaxInt64/int64(unit) || time.Duration(n)*unit > math.MaxInt64-total {
			return 0, "", fmt.Errorf("timeutil: window %q too large", strings.TrimSpace(input))
		}
		total += time.Duration(n) * unit
		rest = rest[len(m[0]):]
	}

	if total <= 0 {
		return 0, "", fmt.Errorf("timeutil: window must be greater than zero")
	}
	return total, FormatWindow(total), nil
}

// FormatWindow renders d with w/d/h/m/s tokens, e.g. "1w2d".
func FormatWindow(d time.Duration) string {
	if d < time.Second {
		return "0s"
	}
	var b strings.Builder
	for _, u := range labels {
		if d < u.value {
			continue
		}
		n := d / u.value
		d -= n * u.value
		fmt.Fprintf(&b, "%d%s", n, u.label)
	}
	return b.String()
}
