package scene

import "strings"

// joinList joins items the way a sentence does: one item stands alone, two
// are joined with a single " and ", three or more are comma-separated with
// " and " before the last (no Oxford comma). An empty list yields "".
//
// This is the one list-joining rule in the package; the overview clause and
// the footprint phrases both go through it.
func joinList(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	case 2:
		return items[0] + " and " + items[1]
	default:
		var b strings.Builder
		b.WriteString(strings.Join(items[:len(items)-1], ", "))
		b.WriteString(" and ")
		b.WriteString(items[len(items)-1])
		return b.String()
	}
}

// pluralize appends a plural "s" when count is not one. Labels come from the
// classifier as singular nouns; irregular plurals are not attempted.
func pluralize(label string, count int) string {
	if count == 1 {
		return label
	}
	return label + "s"
}

// footprint accumulates which grid cells a category's instances occupy.
// It drives the aggregate multi-instance phrasing: rather than narrating
// each instance separately, the narrator reports the overall spread.
type footprint struct {
	left, center, right bool
	top, middle, bottom bool
}

// add marks the cells covered by one instance's zone.
func (f *footprint) add(z Zone) {
	switch z.Horizontal {
	case HorizontalLeft:
		f.left = true
	case HorizontalRight:
		f.right = true
	default:
		f.center = true
	}
	switch z.Vertical {
	case VerticalTop:
		f.top = true
	case VerticalBottom:
		f.bottom = true
	default:
		f.middle = true
	}
}

// horizontalPhrase maps the horizontal flags to a spoken spread. Total over
// all eight combinations; no flags yields the empty string.
func (f footprint) horizontalPhrase() string {
	switch {
	case f.left && f.center && f.right:
		return "across the entire view"
	case f.left && f.right:
		return "on both sides"
	default:
		parts := make([]string, 0, 2)
		if f.left {
			parts = append(parts, "on the left side")
		}
		if f.center {
			parts = append(parts, "in the center")
		}
		if f.right {
			parts = append(parts, "on the right side")
		}
		return joinList(parts)
	}
}

// verticalPhrase maps the vertical flags to a spoken spread, same structure
// as horizontalPhrase.
func (f footprint) verticalPhrase() string {
	switch {
	case f.top && f.middle && f.bottom:
		return "from top to bottom"
	case f.top && f.bottom:
		return "at the top and bottom"
	default:
		parts := make([]string, 0, 2)
		if f.top {
			parts = append(parts, "at the top")
		}
		if f.middle {
			parts = append(parts, "in the middle")
		}
		if f.bottom {
			parts = append(parts, "at the bottom")
		}
		return joinList(parts)
	}
}

// phrase concatenates the horizontal and vertical spreads. Either half may
// be empty; the result never carries a dangling "and" or stray space.
func (f footprint) phrase() string {
	h := f.horizontalPhrase()
	v := f.verticalPhrase()
	switch {
	case h == "":
		return v
	case v == "":
		return h
	default:
		return h + " " + v
	}
}
