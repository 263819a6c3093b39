package credential

// Redact reduces a secret to a short prefix…suffix form safe for cache
// keys and logs. Full secrets must never appear in either.
func Redact(secret string) string {
	if secret == "" {
		return "(none)"
	}
	r := []rune(secret)
	if len(r) <= 8 {
		// Too short to split meaningfully; keep edges only.
		return string(r[:1]) + "…" + string(r[len(r)-1:])
	}
	return string(r[:4]) + "…" + string(r[len(r)-4:])
}
