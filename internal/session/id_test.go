package session_test

import (
	"strings"
	"testing"

	"github.com/kweenDev/alx-files-manager/internal/session"
)

func TestGenerateToken(t *testing.T) {
	seen := make(map[string]bool)

	for i := 0; i < 100; i++ {
		token, err := session.GenerateToken()
		if err != nil {
			t.Fatalf("GenerateToken() failed: %v", err)
		}
		if token == "" {
			t.Fatal("GenerateToken() returned an empty token")
		}
		if strings.ContainsAny(token, "+/=") {
			t.Errorf("GenerateToken() = %q, not url-safe", token)
		}
		if seen[token] {
			t.Fatalf("GenerateToken() repeated %q", token)
		}
		seen[token] = true
	}
}
