package cli

import "testing"

func TestTruncate(t *testing.T) {
	cases := []struct {
		in   string
		n    int
		want string
	}{
		{"short", 10, "short"},
		{"exactly-ten", 11, "exactly-ten"},
		{"a-very-long-resume-id", 10, "a-very-lo…"},
		{"résumé-candidaté-long", 10, "résumé-ca…"},
		{"日本語の履歴書エントリ", 6, "日本語の履…"},
	}
	for _, c := range cases {
		if got := truncate(c.in, c.n); got != c.want {
			t.Fatalf("truncate(%q, %d) = %q; want %q", c.in, c.n, got, c.want)
		}
	}
}
