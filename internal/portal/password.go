package portal

import (
	"crypto/rand"
	"encoding/hex"
	"strings"
)

// GeneratePassword returns an 8-character uppercase hex password for a new
// team. Teams are told to change it after first login.
func GeneratePassword() (string, error) {
	buf := make([]byte, 4)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return strings.ToUpper(hex.EncodeToString(buf)), nil
}
