package domain

// FingerprintRetention is the maximum number of fingerprints kept in the cache.
const FingerprintRetention = 100

// CapFingerprints truncates the history to the most recent FingerprintRetention
// entries, preserving order. The input slice is not modified.
func CapFingerprints(fingerprints []string) []string {
	if len(fingerprints) <= FingerprintRetention {
		return fingerprints
	}
	return fingerprints[len(fingerprints)-FingerprintRetention:]
}
