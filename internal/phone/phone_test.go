package phone

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestFormat(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"", ""},
		{"123", "123"},
		{"1234", "(123) 4"},
		{"123456", "(123) 456"},
		{"1234567", "(123) 456-7"},
		{"1234567890", "(123) 456-7890"},
		{"12345678901", "(123) 456-7890"},
		{"(123) 456-7890", "(123) 456-7890"},
		{"+1 555.010.9999 ext", "(155) 501-0999"},
		{"abc", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Format(tc.in), "Format(%q)", tc.in)
	}
}

func TestFormatIsStableOnItsOwnOutput(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		raw := rapid.String().Draw(rt, "raw")
		once := Format(raw)
		if twice := Format(once); twice != once {
			rt.Fatalf("Format(%q) = %q, reformatted %q", raw, once, twice)
		}
		if d := Digits(once); d != Digits(raw) {
			rt.Fatalf("digits changed: %q vs %q", d, Digits(raw))
		}
	})
}

func TestDigitsNeverExceedMax(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		raw := rapid.StringMatching(`[0-9() .\-+]{0,40}`).Draw(rt, "raw")
		d := Digits(raw)
		if len(d) > MaxDigits {
			rt.Fatalf("too many digits: %q", d)
		}
		if strings.Trim(d, "0123456789") != "" {
			rt.Fatalf("non-digit kept: %q", d)
		}
	})
}
