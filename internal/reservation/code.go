package reservation

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"regexp"
)

// Confirmation codes are short human-presentable identifiers handed to
// guests, independent of the internal record id. The generator is pure and
// stateless; uniqueness is enforced by the store's unique index, and the
// booking flow regenerates on the rare collision.

const codePrefix = "RES-"

var codePattern = regexp.MustCompile(`^RES-\d{5}$`)

// GenerateCode returns a confirmation code of the form RES-NNNNN with a
// 5-digit random suffix.
func GenerateCode() string {
	n, err := rand.Int(rand.Reader, big.NewInt(100000))
	if err != nil {
		// crypto/rand reading from the OS source does not fail in practice
		panic(fmt.Sprintf("reservation: crypto/rand failed: %v", err))
	}
	return fmt.Sprintf("%s%05d", codePrefix, n.Int64())
}

// ValidCode reports whether code matches the confirmation code format.
func ValidCode(code string) bool {
	return codePattern.MatchString(code)
}
