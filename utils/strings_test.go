package utils

import "testing"

func TestSlugifyFolder(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"New York", "new-york"},
		{"  Tokyo  ", "tokyo"},
		{"san_francisco-ca", "san-francisco-ca"},
		{"成都", "成都"},
		{"", "unknown"},
	}
	for _, tc := range cases {
		if got := SlugifyFolder(tc.in); got != tc.want {
			t.Errorf("SlugifyFolder(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
