package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDigestDeterministic(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "Known vector (default admin password)",
			input:    "password",
			expected: "5e884898da28047151d0e56f8dc6292773603d0d6aabbdd62a11ef721d1542d8",
		},
		{
			name:     "Empty string",
			input:    "",
			expected: "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Digest(tt.input))
			assert.Equal(t, Digest(tt.input), Digest(tt.input))
		})
	}
}

func TestDigestDistinguishesInputs(t *testing.T) {
	assert.NotEqual(t, Digest("password"), Digest("passwore"))
	assert.NotEqual(t, Digest("a"), Digest("A"))
}

func TestGenerateSecretToken(t *testing.T) {
	a, err := GenerateSecretToken()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := GenerateSecretToken()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(a) != 64 {
		t.Errorf("expected 64 hex chars, got %d", len(a))
	}
	if a == b {
		t.Error("two generated tokens collided")
	}
}

func TestVerify(t *testing.T) {
	token, err := GenerateSecretToken()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	stored := Digest(token)

	assert.True(t, Verify(token, stored))
	assert.False(t, Verify(token+"0", stored))
	assert.False(t, Verify("", stored))
}
