package utils

import (
	"crypto/rand"
)

// GenerateConfirmationCode returns a short code customers quote at pickup.
func GenerateConfirmationCode() string {
	const letters = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	b := make([]byte, 6)
	rand.Read(b)
	for i := range b {
		b[i] = letters[int(b[i])%len(letters)]
	}
	return string(b)
}
