package payment

import "strings"

// NormalizePhone converts a locally formatted Indonesian phone number into
// its international 62-prefixed form:
//
//	"081234567890"   → "6281234567890"
//	"+6281234567890" → "6281234567890"
//	"6281234567890"  → "6281234567890"
//
// Everything except digits and a plus sign is stripped first, so inputs like
// "0812-3456 7890" work too. Numbers that already carry another country code
// are left as-is.
func NormalizePhone(raw string) string {
	if raw == "" {
		return ""
	}

	var b strings.Builder
	for _, r := range raw {
		if (r >= '0' && r <= '9') || r == '+' {
			b.WriteRune(r)
		}
	}
	v := b.String()

	if strings.HasPrefix(v, "0") {
		return "62" + v[1:]
	}
	if strings.HasPrefix(v, "+62") {
		return "62" + v[3:]
	}
	return v
}
