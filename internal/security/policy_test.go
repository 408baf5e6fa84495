package security_test

import (
	"testing"

	"github.com/adilbekov/recipebox-api/internal/security"
)

func TestValidPassword(t *testing.T) {
	cases := []struct {
		name string
		pw   string
		want bool
	}{
		{"ok", "Abcdef1!", true},
		{"ok long", "Abcdefghij123456!@#$", true},
		{"too short", "Abc1!", false},
		{"too long", "Abcdefghij123456!@#$x", false},
		{"no upper", "abcdef1!", false},
		{"no lower", "ABCDEF1!", false},
		{"no digit", "Abcdefg!", false},
		{"no symbol", "Abcdefg1", false},
		{"whitespace", "Abcde f1!", false},
		{"tab", "Abcdef1!\t", false},
		{"empty", "", false},
	}
	for _, tc := range cases {
		if got := security.ValidPassword(tc.pw); got != tc.want {
			t.Errorf("%s: ValidPassword(%q)=%v want %v", tc.name, tc.pw, got, tc.want)
		}
	}
}
