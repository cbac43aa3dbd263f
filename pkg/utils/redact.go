package utils

// Redact returns a log-safe rendering of a secret value: the first two
// characters followed by "***". Values too short to keep a prefix are
// replaced entirely.
func Redact(value string) string {
	if len(value) <= 4 {
		return "***"
	}
	return value[:2] + "***"
}
