package source

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseISODuration parses the ISO 8601 duration form the video APIs use
// (PT#H#M#S, optionally with a leading P#D) into whole seconds.
func ParseISODuration(s string) (int, error) {
	if s == "" {
		return 0, fmt.Errorf("empty duration")
	}

	rest, ok := strings.CutPrefix(s, "P")
	if !ok {
		return 0, fmt.Errorf("invalid duration %q: missing P prefix", s)
	}

	var total, components int
	datePart := rest
	timePart := ""
	if i := strings.IndexByte(rest, 'T'); i >= 0 {
		datePart, timePart = rest[:i], rest[i+1:]
	}

	if datePart != "" {
		n, ok, err := cutUnit(&datePart, 'D')
		if err != nil {
			return 0, fmt.Errorf("invalid duration %q: %w", s, err)
		}
		if ok {
			total += n * 86400
			components++
		}
		if datePart != "" {
			return 0, fmt.Errorf("invalid duration %q: unexpected %q", s, datePart)
		}
	}

	for _, unit := range []struct {
		suffix byte
		sec    int
	}{{'H', 3600}, {'M', 60}, {'S', 1}} {
		n, ok, err := cutUnit(&timePart, unit.suffix)
		if err != nil {
			return 0, fmt.Errorf("invalid duration %q: %w", s, err)
		}
		if ok {
			total += n * unit.sec
			components++
		}
	}
	if timePart != "" {
		return 0, fmt.Errorf("invalid duration %q: unexpected %q", s, timePart)
	}
	if components == 0 {
		return 0, fmt.Errorf("invalid duration %q: no components", s)
	}

	return total, nil
}

// cutUnit consumes a leading "<digits><suffix>" component from *s.
// The second return reports whether the component was present.
func cutUnit(s *string, suffix byte) (int, bool, error) {
	i := strings.IndexByte(*s, suffix)
	if i < 0 {
		return 0, false, nil
	}
	n, err := strconv.Atoi((*s)[:i])
	if err != nil {
		return 0, false, fmt.Errorf("bad %c component: %v", suffix, err)
	}
	*s = (*s)[i+1:]
	return n, true, nil
}
