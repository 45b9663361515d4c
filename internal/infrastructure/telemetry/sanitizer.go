package telemetry

import (
	"crypto/sha256"
	"encoding/hex"
	"regexp"
	"strings"
	"unicode/utf8"
)

// PIILevel controls how much user content reaches logs and span attributes.
type PIILevel string

const (
	// PIILevelNone redacts user content entirely.
	PIILevelNone PIILevel = "none"
	// PIILevelHashed replaces detected PII with salted hashes.
	PIILevelHashed PIILevel = "hashed"
	// PIILevelFull logs content as received.
	PIILevelFull PIILevel = "full"
)

const redacted = "[REDACTED]"

// maxPromptLength bounds how much of a prompt is written to a log line.
const maxPromptLength = 100

type piiRule struct {
	label   string
	pattern *regexp.Regexp
	hashed  bool
}

// Sanitizer scrubs prompts and user IDs before they are logged.
type Sanitizer struct {
	level PIILevel
	salt  string
	rules []piiRule
}

// ParsePIILevel maps a configuration value to a PIILevel, defaulting to hashed.
func ParsePIILevel(value string) PIILevel {
	switch PIILevel(strings.ToLower(strings.TrimSpace(value))) {
	case PIILevelNone:
		return PIILevelNone
	case PIILevelFull:
		return PIILevelFull
	default:
		return PIILevelHashed
	}
}

// NewSanitizer creates a sanitizer; salt keeps hashes stable per deployment.
func NewSanitizer(level PIILevel, salt string) *Sanitizer {
	return &Sanitizer{
		level: level,
		salt:  salt,
		// SSN and card numbers run before phone so their digits are not half-matched.
		rules: []piiRule{
			{label: "EMAIL", pattern: regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`), hashed: true},
			{label: "SSN", pattern: regexp.MustCompile(`\b\d{3}-\d{2}-\d{4}\b`)},
			{label: "CC", pattern: regexp.MustCompile(`\b\d{4}[- ]?\d{4}[- ]?\d{4}[- ]?\d{4}\b`)},
			{label: "PHONE", pattern: regexp.MustCompile(`\b\d{3}[-.\s]?\d{3}[-.\s]?\d{4}\b`), hashed: true},
			{label: "IP", pattern: regexp.MustCompile(`\b(?:\d{1,3}\.){3}\d{1,3}\b`), hashed: true},
		},
	}
}

// Level returns the configured level.
func (s *Sanitizer) Level() PIILevel {
	return s.level
}

// SanitizePrompt prepares a prompt for logging. The result is truncated.
func (s *Sanitizer) SanitizePrompt(prompt string) string {
	switch s.level {
	case PIILevelNone:
		return redacted
	case PIILevelFull:
		return truncate(prompt, maxPromptLength)
	default:
		return truncate(s.scrub(prompt), maxPromptLength)
	}
}

// SanitizeUserID prepares a user identifier for logging.
func (s *Sanitizer) SanitizeUserID(userID string) string {
	if userID == "" {
		return ""
	}
	switch s.level {
	case PIILevelNone:
		return redacted
	case PIILevelFull:
		return userID
	default:
		return s.hash(userID)
	}
}

func (s *Sanitizer) scrub(input string) string {
	out := input
	for _, rule := range s.rules {
		label := rule.label
		hashed := rule.hashed
		out = rule.pattern.ReplaceAllStringFunc(out, func(match string) string {
			if hashed {
				return "[" + label + ":" + s.hash(match) + "]"
			}
			return "[" + label + ":REDACTED]"
		})
	}
	return out
}

func (s *Sanitizer) hash(data string) string {
	sum := sha256.Sum256([]byte(data + s.salt))
	return hex.EncodeToString(sum[:])[:8]
}

func truncate(value string, limit int) string {
	if utf8.RuneCountInString(value) <= limit {
		return value
	}
	runes := []rune(value)
	return string(runes[:limit]) + "..."
}
