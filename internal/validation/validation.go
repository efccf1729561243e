// Package validation provides input validation utilities
package validation

import (
	"fmt"
	"regexp"
	"strings"
)

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

const (
	minPasswordLen = 6
	maxPasswordLen = 128
	maxTitleLen    = 200
	maxContentLen  = 50000
	maxAuthorLen   = 100
)

// ValidateName checks the display name supplied at registration.
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("name is required")
	}
	if len(name) > maxAuthorLen {
		return fmt.Errorf("name must not exceed %d characters", maxAuthorLen)
	}
	return nil
}

// ValidateEmail checks that an email address is well formed.
func ValidateEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return fmt.Errorf("email is required")
	}
	if !emailRegex.MatchString(email) {
		return fmt.Errorf("email address is not valid")
	}
	return nil
}

// ValidatePassword checks if a password meets length requirements.
func ValidatePassword(password string) error {
	if len(password) < minPasswordLen {
		return fmt.Errorf("password must be at least %d characters long", minPasswordLen)
	}
	if len(password) > maxPasswordLen {
		return fmt.Errorf("password must not exceed %d characters", maxPasswordLen)
	}
	return nil
}

// ValidateTitle checks a post title before it is submitted.
func ValidateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("title is required")
	}
	if len(title) > maxTitleLen {
		return fmt.Errorf("title must not exceed %d characters", maxTitleLen)
	}
	return nil
}

// ValidateContent checks post content before it is submitted.
func ValidateContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return fmt.Errorf("content is required")
	}
	if len(content) > maxContentLen {
		return fmt.Errorf("content must not exceed %d characters", maxContentLen)
	}
	return nil
}

// ValidateAuthor checks the author display name on a post.
func ValidateAuthor(author string) error {
	if strings.TrimSpace(author) == "" {
		return fmt.Errorf("author is required")
	}
	if len(author) > maxAuthorLen {
		return fmt.Errorf("author must not exceed %d characters", maxAuthorLen)
	}
	return nil
}

// ValidateComment checks comment text; the only rule is non-empty after trimming.
func ValidateComment(content string) error {
	if strings.TrimSpace(content) == "" {
		return fmt.Errorf("comment text is required")
	}
	return nil
}
