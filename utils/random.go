package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"time"
)

func GenerateCode(n int) (string, error) {
	// Make a slice of nBytes random bytes.
	byt := make([]byte, n)

	// Read into the slice.
	if _, err := rand.Read(byt); err != nil {
		return "", err
	}

	// Return the hexadecimal string.
	return strings.ToUpper(hex.EncodeToString(byt)), nil
}

// NewID builds a record id from a short prefix, the current time and a random
// suffix, e.g. "e_1735689600123_A3F9".
func NewID(prefix string) string {
	code, err := GenerateCode(2)
	if err != nil {
		code = "0000"
	}
	return fmt.Sprintf("%s_%d_%s", prefix, time.Now().UnixMilli(), code)
}
