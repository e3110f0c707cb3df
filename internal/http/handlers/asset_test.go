package handlers

import (
	"reflect"
	"testing"
)

func TestParseTags(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"   ", nil},
		{`["hero","brand"]`, []string{"hero", "brand"}},
		{`[" hero ", "", "brand"]`, []string{"hero", "brand"}},
		{"hero,brand", []string{"hero", "brand"}},
		{`["hero", 1, true]`, []string{"hero", "1", "true"}},
		{`[2.5]`, []string{"2.5"}},
		{" hero , , brand ", []string{"hero", "brand"}},
		{`["unclosed`, []string{`["unclosed`}},
		{"solo", []string{"solo"}},
	}
	for _, tc := range cases {
		if got := parseTags(tc.in); !reflect.DeepEqual(got, tc.want) {
			t.Fatalf("parseTags(%q): got=%v want=%v", tc.in, got, tc.want)
		}
	}
}
