package utils

import (
	"strings"

	"github.com/google/uuid"
)

// GenerateAuthorizationNumber returns a prescription authorization number
// in the form "AUTH-" followed by 12 uppercase hex characters.
func GenerateAuthorizationNumber() string {
	return "AUTH-" + randomHex(12)
}

// GenerateApprovalCode returns a service approval code in the form "AP"
// followed by 8 uppercase hex characters.
func GenerateApprovalCode() string {
	return "AP" + randomHex(8)
}

// GenerateRejectionCode returns the placeholder authorization recorded on
// rejected approvals, "N/A-" followed by 8 hex characters.
func GenerateRejectionCode() string {
	return "N/A-" + strings.ToLower(randomHex(8))
}

func randomHex(n int) string {
	return strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", ""))[:n]
}
