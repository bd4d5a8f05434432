// Package whatsapp builds wa.me deep links carrying a prefilled message.
package whatsapp

import (
	"errors"
	"net/url"
	"strings"
)

// ErrPhoneNotConfigured means no usable destination number was given.
var ErrPhoneNotConfigured = errors.New("destination phone not configured")

// NormalizePhone strips everything that is not a digit. wa.me expects the
// international number without '+', spaces or punctuation.
func NormalizePhone(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Link returns https://wa.me/<digits>?text=<encoded message>.
func Link(phone, text string) (string, error) {
	digits := NormalizePhone(phone)
	if digits == "" {
		return "", ErrPhoneNotConfigured
	}
	return "https://wa.me/" + digits + "?text=" + url.QueryEscape(text), nil
}
