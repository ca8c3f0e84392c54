package reader

import (
	"testing"

	"github.com/ashmeltin/nothing/internal/common/interface/literal"
	"github.com/ashmeltin/nothing/internal/script/heap"
)

func TestRead(t *testing.T) {
	for _, c := range []struct {
		text     string
		expected string
	}{
		{"foo", "foo"},
		{"42", "42"},
		{"10.0", "10"},
		{"()", "()"},
		{"(a b c)", "(a b c)"},
		{"(10.0 . 5.0)", "(10 . 5)"},
		{"(a (b . c) d)", "(a (b . c) d)"},
		{"'x", "(quote x)"},
		{"'(a b)", "(quote (a b))"},
		{"(set x 5)", "(set x 5)"},
		{`(rect-apply-force "platform1" (10.0 . 5.0))`,
			"(rect-apply-force $'platform1' (10 . 5))"},
		{"  spaced\t", "spaced"},
		{"a ; trailing comment", "a"},
	} {
		h := heap.New()

		expr, err := Read(h, c.text)
		if err != nil {
			t.Fatalf("%q: unexpected error: %s", c.text, err)
		}

		if s := literal.String(expr); s != c.expected {
			t.Fatalf("%q: expected %q; got %q", c.text, c.expected, s)
		}
	}
}

func TestReadIsTotal(t *testing.T) {
	for _, text := range []string{
		"",
		"(",
		")",
		"(a",
		"(a . b c)",
		"(a .)",
		"a b",
		`"unterminated`,
		"'",
	} {
		h := heap.New()

		if _, err := Read(h, text); err == nil {
			t.Fatalf("%q: expected a parse error", text)
		}
	}
}

func TestReadStrings(t *testing.T) {
	h := heap.New()

	expr, err := Read(h, `"two\nlines"`)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	if s := literal.String(expr); s != `$'two\nlines'` {
		t.Fatalf("expected escapes to be decoded; got %q", s)
	}
}
