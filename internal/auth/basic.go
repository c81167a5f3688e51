package auth

import (
	"encoding/base64"
	"strings"
)

// decodeBasic extracts the email/password pair from a
// "Basic <base64(email:password)>" Authorization header.
func decodeBasic(header string) (email, password string, ok bool) {
	payload, found := strings.CutPrefix(header, "Basic ")
	if !found {
		return "", "", false
	}

	decoded, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", "", false
	}

	email, password, found = strings.Cut(string(decoded), ":")
	if !found || email == "" || password == "" {
		return "", "", false
	}

	return email, password, true
}
