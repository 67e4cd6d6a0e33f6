package scene

import "testing"

func TestJoinList(t *testing.T) {
	tests := []struct {
		name  string
		items []string
		want  string
	}{
		{"empty", nil, ""},
		{"one", []string{"1 person"}, "1 person"},
		{"two", []string{"1 person", "1 cup"}, "1 person and 1 cup"},
		{"three", []string{"1 person", "1 cup", "2 chairs"}, "1 person, 1 cup and 2 chairs"},
		{"four", []string{"a", "b", "c", "d"}, "a, b, c and d"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := joinList(tt.items); got != tt.want {
				t.Errorf("Got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPluralize(t *testing.T) {
	if got := pluralize("person", 1); got != "person" {
		t.Errorf("Got %q, want person", got)
	}
	if got := pluralize("cup", 3); got != "cups" {
		t.Errorf("Got %q, want cups", got)
	}
}

func TestFootprint_HorizontalTable(t *testing.T) {
	tests := []struct {
		name                string
		left, center, right bool
		want                string
	}{
		{"all three", true, true, true, "across the entire view"},
		{"both sides", true, false, true, "on both sides"},
		{"left only", true, false, false, "on the left side"},
		{"center only", false, true, false, "in the center"},
		{"right only", false, false, true, "on the right side"},
		{"left and center", true, true, false, "on the left side and in the center"},
		{"center and right", false, true, true, "in the center and on the right side"},
		{"none", false, false, false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := footprint{left: tt.left, center: tt.center, right: tt.right}
			if got := f.horizontalPhrase(); got != tt.want {
				t.Errorf("Got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFootprint_VerticalTable(t *testing.T) {
	tests := []struct {
		name                string
		top, middle, bottom bool
		want                string
	}{
		{"all three", true, true, true, "from top to bottom"},
		{"top and bottom", true, false, true, "at the top and bottom"},
		{"top only", true, false, false, "at the top"},
		{"middle and bottom", false, true, true, "in the middle and at the bottom"},
		{"none", false, false, false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := footprint{top: tt.top, middle: tt.middle, bottom: tt.bottom}
			if got := f.verticalPhrase(); got != tt.want {
				t.Errorf("Got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFootprint_CombinedPhrase(t *testing.T) {
	f := footprint{left: true, right: true, middle: true}
	want := "on both sides in the middle"
	if got := f.phrase(); got != want {
		t.Errorf("Got %q, want %q", got, want)
	}

	// No flags at all: empty phrase, never a dangling "and".
	empty := footprint{}
	if got := empty.phrase(); got != "" {
		t.Errorf("Empty footprint should phrase to empty string, got %q", got)
	}
}

func TestFootprint_Add(t *testing.T) {
	var f footprint
	f.add(Zone{Horizontal: HorizontalLeft, Vertical: VerticalTop})
	f.add(Zone{Horizontal: HorizontalRight, Vertical: VerticalTop})

	if !f.left || !f.right || f.center {
		t.Errorf("Horizontal flags wrong: %+v", f)
	}
	if !f.top || f.middle || f.bottom {
		t.Errorf("Vertical flags wrong: %+v", f)
	}
}
