package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"regexp"
	"strings"
)

var indianMobilePattern = regexp.MustCompile(`^[6-9]\d{9}$`)

// ValidatePhone validates an Indian mobile number and normalizes it to
// country-code form without the plus sign (e.g. 919876543210).
func ValidatePhone(phone string) (bool, string, error) {
	stripped := strings.ReplaceAll(phone, "-", "")
	stripped = strings.ReplaceAll(stripped, " ", "")
	stripped = strings.ReplaceAll(stripped, "+", "")

	// Remove country code or trunk prefix if present
	if strings.HasPrefix(stripped, "91") && len(stripped) == 12 {
		stripped = stripped[2:]
	} else if strings.HasPrefix(stripped, "0") {
		stripped = stripped[1:]
	}

	if !indianMobilePattern.MatchString(stripped) {
		return false, "", fmt.Errorf("invalid mobile number format")
	}

	return true, "91" + stripped, nil
}

// GenerateOTPCode generates a numeric one-time code of the given length
func GenerateOTPCode(length int) (string, error) {
	var sb strings.Builder
	for i := 0; i < length; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", fmt.Errorf("failed to generate random digit: %w", err)
		}
		sb.WriteString(n.String())
	}
	return sb.String(), nil
}
