// Package phone formats North American phone numbers as they are typed.
package phone

import "strings"

// MaxDigits is the number of significant digits kept; extra input is dropped.
const MaxDigits = 10

// Digits strips everything but ASCII digits and truncates to MaxDigits.
func Digits(raw string) string {
	var sb strings.Builder
	for _, r := range raw {
		if r < '0' || r > '9' {
			continue
		}
		sb.WriteRune(r)
		if sb.Len() == MaxDigits {
			break
		}
	}
	return sb.String()
}

// Format renders raw as (XXX) XXX-XXXX, progressively:
//
//	1-3 digits  -> 123
//	4-6 digits  -> (123) 456
//	7-10 digits -> (123) 456-7890
func Format(raw string) string {
	d := Digits(raw)
	switch {
	case len(d) <= 3:
		return d
	case len(d) <= 6:
		return "(" + d[:3] + ") " + d[3:]
	default:
		return "(" + d[:3] + ") " + d[3:6] + "-" + d[6:]
	}
}
