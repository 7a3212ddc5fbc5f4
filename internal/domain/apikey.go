package domain

// APIKeyLength is the exact number of characters in a well-formed api key.
const APIKeyLength = 4

// IsValidKey reports whether raw is a well-formed api key: exactly four
// characters, each a lowercase ASCII letter. It is the cheap first filter
// applied to the apikey header before any store connection is opened.
func IsValidKey(raw string) bool {
	if len(raw) != APIKeyLength {
		return false
	}
	for i := 0; i < len(raw); i++ {
		if raw[i] < 'a' || raw[i] > 'z' {
			return false
		}
	}
	return true
}
