package telemetry

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePIILevel(t *testing.T) {
	tests := []struct {
		input string
		want  PIILevel
	}{
		{"none", PIILevelNone},
		{"FULL", PIILevelFull},
		{" hashed ", PIILevelHashed},
		{"", PIILevelHashed},
		{"bogus", PIILevelHashed},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ParsePIILevel(tt.input))
		})
	}
}

func TestSanitizePrompt_None(t *testing.T) {
	s := NewSanitizer(PIILevelNone, "image-api")
	assert.Equal(t, "[REDACTED]", s.SanitizePrompt("a cat owned by jane@example.com"))
	assert.Equal(t, "[REDACTED]", s.SanitizeUserID("u1"))
}

func TestSanitizePrompt_Full(t *testing.T) {
	s := NewSanitizer(PIILevelFull, "image-api")
	assert.Equal(t, "a cat owned by jane@example.com", s.SanitizePrompt("a cat owned by jane@example.com"))
	assert.Equal(t, "u1", s.SanitizeUserID("u1"))
}

func TestSanitizePrompt_Hashed(t *testing.T) {
	s := NewSanitizer(PIILevelHashed, "image-api")

	tests := []struct {
		name    string
		input   string
		absent  string
		present string
	}{
		{"email", "portrait of jane.doe@example.com", "jane.doe@example.com", "[EMAIL:"},
		{"phone", "billboard reading 555-123-4567", "555-123-4567", "[PHONE:"},
		{"ssn", "card with 123-45-6789 printed", "123-45-6789", "[SSN:REDACTED]"},
		{"credit card", "a receipt for 4111 1111 1111 1111", "4111", "[CC:REDACTED]"},
		{"ip", "server 192.168.1.20 in a rack", "192.168.1.20", "[IP:"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := s.SanitizePrompt(tt.input)
			assert.NotContains(t, result, tt.absent)
			assert.Contains(t, result, tt.present)
		})
	}
}

func TestSanitize_HashesAreStablePerSalt(t *testing.T) {
	a := NewSanitizer(PIILevelHashed, "salt-a")
	b := NewSanitizer(PIILevelHashed, "salt-b")

	assert.Equal(t, a.SanitizeUserID("u1"), a.SanitizeUserID("u1"))
	assert.NotEqual(t, a.SanitizeUserID("u1"), b.SanitizeUserID("u1"))
	assert.Len(t, a.SanitizeUserID("u1"), 8)
	assert.Empty(t, a.SanitizeUserID(""))
}

func TestSanitizePrompt_Truncates(t *testing.T) {
	s := NewSanitizer(PIILevelFull, "")
	long := strings.Repeat("é", 150)

	result := s.SanitizePrompt(long)

	assert.True(t, strings.HasSuffix(result, "..."))
	assert.Equal(t, strings.Repeat("é", 100)+"...", result)
}
