package domain

import "github.com/microcosm-cc/bluemonday"

// SecuritySanitizer strips markup from user-supplied strings before they are
// stored or forwarded to external channels.
type SecuritySanitizer struct {
	policy *bluemonday.Policy
}

func NewSecuritySanitizer() *SecuritySanitizer {
	return &SecuritySanitizer{policy: bluemonday.StrictPolicy()}
}

func (s *SecuritySanitizer) SanitizeString(input string) string {
	return s.policy.Sanitize(input)
}

func (s *SecuritySanitizer) SanitizeStrings(inputs ...string) []string {
	result := make([]string, len(inputs))
	for i, input := range inputs {
		result[i] = s.policy.Sanitize(input)
	}
	return result
}
