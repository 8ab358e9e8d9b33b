package addr

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrInvalid is returned when an address fails the format check. The HTTP
// layer maps it to a 400-class response; everything else is a 500.
var ErrInvalid = errors.New("invalid address")

var hexAddrRe = regexp.MustCompile(`^0x[0-9a-fA-F]{40}$`)

// Validate checks that addr is a 0x-prefixed 40-hex-char address.
func Validate(addr string) error {
	if addr == "" {
		return fmt.Errorf("%w: empty", ErrInvalid)
	}
	if !hexAddrRe.MatchString(addr) {
		return fmt.Errorf("%w: %q", ErrInvalid, addr)
	}
	return nil
}

// Normalize lowercases an address. Normalization happens once at the
// pipeline boundary; downstream code compares addresses byte-for-byte.
func Normalize(addr string) string {
	return strings.ToLower(addr)
}

// ValidateAndNormalize validates an address and returns its lowercase form.
func ValidateAndNormalize(addr string) (string, error) {
	if err := Validate(addr); err != nil {
		return "", err
	}
	return Normalize(addr), nil
}

// Short returns the display fallback for an address: first 6 and last 4
// characters. Non-address ids shorter than 10 characters pass through.
func Short(addr string) string {
	if len(addr) < 10 {
		return addr
	}
	return addr[:6] + "..." + addr[len(addr)-4:]
}
