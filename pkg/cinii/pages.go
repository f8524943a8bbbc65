// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package cinii

import (
	"fmt"
	"strconv"
	"strings"
)

// PageSpec is the pages filter: either a single Page or a PageRange.
// A single page matches items whose starting or ending page equals it; a
// range matches items whose starting page equals Start or whose ending page
// equals End.
type PageSpec interface {
	wire() string
}

// Page is a single page number.
type Page int

func (p Page) wire() string { return strconv.Itoa(int(p)) }

// PageRange is a start/end page pair.
type PageRange struct {
	Start int
	End   int
}

func (r PageRange) wire() string { return fmt.Sprintf("%d-%d", r.Start, r.End) }

// ParsePageSpec accepts "5" or "10-20".
func ParsePageSpec(s string) (PageSpec, error) {
	s = strings.TrimSpace(s)
	if start, end, ok := strings.Cut(s, "-"); ok {
		a, err := strconv.Atoi(strings.TrimSpace(start))
		if err != nil {
			return nil, fmt.Errorf("invalid page range %q: %w", s, err)
		}
		b, err := strconv.Atoi(strings.TrimSpace(end))
		if err != nil {
			return nil, fmt.Errorf("invalid page range %q: %w", s, err)
		}
		return PageRange{Start: a, End: b}, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil, fmt.Errorf("invalid page %q: %w", s, err)
	}
	return Page(n), nil
}
