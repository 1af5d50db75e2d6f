package format

import (
    "fmt"
    "strings"
    "time"
)

// FmtCurrency formats an amount in minor units.
// Example: FmtCurrency(29900, "USD") => "$299"
// Whole-dollar USD amounts drop the cents.
func FmtCurrency(minor int64, currency string) string {
    currency = strings.ToUpper(currency)
    switch currency {
    case "USD", "":
        neg := minor < 0
        if neg { minor = -minor }
        major := minor / 100
        cents := minor % 100
        out := "$" + thousandSep(major)
        if cents != 0 { out += fmt.Sprintf(".%02d", cents) }
        if neg { return "-" + out }
        return out
    default:
        // generic minor units
        return fmt.Sprintf("%s %s", currency, thousandSep(minor))
    }
}

func thousandSep(n int64) string {
    s := fmt.Sprintf("%d", n)
    neg := false
    if strings.HasPrefix(s, "-") { neg = true; s = s[1:] }
    var b strings.Builder
    for i, c := range s {
        if i != 0 && (len(s)-i)%3 == 0 { b.WriteByte(',') }
        b.WriteRune(c)
    }
    if neg { return "-" + b.String() }
    return b.String()
}

// FmtDate formats a date for article bylines, e.g. "Jan 2, 2006".
func FmtDate(t time.Time) string {
    if t.IsZero() { return "" }
    return t.Format("Jan 2, 2006")
}

// ISODate formats a date for <time datetime> and JSON-LD.
func ISODate(t time.Time) string {
    if t.IsZero() { return "" }
    return t.Format("2006-01-02")
}

// ReadingTime renders a reading estimate, e.g. "4 min read".
func ReadingTime(minutes int) string {
    if minutes < 1 { minutes = 1 }
    return fmt.Sprintf("%d min read", minutes)
}
