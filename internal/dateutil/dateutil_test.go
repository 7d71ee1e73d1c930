package dateutil

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestCompile(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		format  string
		want    string
		wantErr error
	}{
		{"empty compiles the post format", "", "2006-01-02 15:04:05", nil},
		{"every token", "YYYY YY MMMM MMM MM M DD D HH mm ss", "2006 06 January Jan 01 1 02 2 15 04 05", nil},
		{"minutes are lowercase", "HH:mm", "15:04", nil},
		{"separators are kept", "(YYYY/MM/DD)", "(2006/01/02)", nil},
		{"bare D is a token", "Date: YYYY", "2ate: 2006", nil},
		{"brackets escape words", "[Date]: YYYY", "Date: 2006", nil},
		{"brackets escape tokens", "[YYYY]-MM", "YYYY-01", nil},
		{"empty brackets vanish", "YYYY[]MM", "200601", nil},
		{"first close ends the literal", "[a[b]c", "a[bc", nil},
		{"preset", "european", "02/01/2006", nil},
		{"preset ignores case", "Long", "January 2, 2006", nil},
		{"unclosed bracket", "[Date YYYY", "", ErrInvalidDateFormat},
		{"too long", strings.Repeat("-", MaxDateFormatLength+1), "", ErrInvalidDateFormat},
		{"at the limit", strings.Repeat("-", MaxDateFormatLength), strings.Repeat("-", MaxDateFormatLength), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Compile(tt.format)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("Compile(%q) error = %v, want %v", tt.format, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Compile(%q) unexpected error: %v", tt.format, err)
			}
			if got.GoLayout() != tt.want {
				t.Errorf("Compile(%q) = %q, want %q", tt.format, got.GoLayout(), tt.want)
			}
		})
	}
}

func TestLayout_Format(t *testing.T) {
	t.Parallel()

	modTime := time.Date(2012, 3, 12, 12, 22, 12, 0, time.UTC)

	tests := []struct {
		format string
		want   string
	}{
		{"", "2012-03-12 12:22:12"},
		{"post", "2012-03-12 12:22:12"},
		{"iso", "2012-03-12"},
		{"us", "03/12/2012"},
		{"LONG", "March 12, 2012"},
		{"DD/MM/YYYY HH:mm", "12/03/2012 12:22"},
		{"[on] D MMM", "on 12 Mar"},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			t.Parallel()

			l, err := Compile(tt.format)
			if err != nil {
				t.Fatalf("Compile(%q) unexpected error: %v", tt.format, err)
			}
			if got := l.Format(modTime); got != tt.want {
				t.Errorf("Format() with %q = %q, want %q", tt.format, got, tt.want)
			}
		})
	}
}

func TestFormatDate(t *testing.T) {
	t.Parallel()

	got, err := FormatDate(time.Date(2024, 1, 5, 8, 0, 9, 0, time.UTC), "D M YY")
	if err != nil {
		t.Fatalf("FormatDate() unexpected error: %v", err)
	}
	if got != "5 1 24" {
		t.Errorf("FormatDate() = %q, want %q", got, "5 1 24")
	}

	if _, err := FormatDate(time.Time{}, "[YYYY"); !errors.Is(err, ErrInvalidDateFormat) {
		t.Errorf("FormatDate() error = %v, want ErrInvalidDateFormat", err)
	}
}
