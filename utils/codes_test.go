package utils

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateAuthorizationNumber(t *testing.T) {
	pattern := regexp.MustCompile(`^AUTH-[A-F0-9]{12}$`)
	for i := 0; i < 50; i++ {
		assert.Regexp(t, pattern, GenerateAuthorizationNumber())
	}
}

func TestGenerateApprovalCode(t *testing.T) {
	pattern := regexp.MustCompile(`^AP[A-F0-9]{8}$`)
	for i := 0; i < 50; i++ {
		assert.Regexp(t, pattern, GenerateApprovalCode())
	}
}

func TestGenerateRejectionCode(t *testing.T) {
	pattern := regexp.MustCompile(`^N/A-[a-f0-9]{8}$`)
	for i := 0; i < 50; i++ {
		assert.Regexp(t, pattern, GenerateRejectionCode())
	}
}

func TestGeneratedCodesAreUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		code := GenerateAuthorizationNumber()
		assert.False(t, seen[code], "duplicate authorization number %s", code)
		seen[code] = true
	}
}
