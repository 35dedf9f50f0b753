package core

import (
	"net/url"
	"strings"
	"unicode"
)

// TelLink returns a tel: URI for phone with whitespace removed.
func TelLink(phone string) string {
	return "tel:" + strings.Join(strings.Fields(phone), "")
}

// WhatsAppLink returns a wa.me link built from the digits of phone, or "" if
// phone has no digits.
func WhatsAppLink(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return ""
	}
	return "https://wa.me/" + b.String()
}

// MapURL returns link when set, otherwise a maps search for query.
// Returns "" when both are empty.
func MapURL(link, query string) string {
	if link != "" {
		return link
	}
	if strings.TrimSpace(query) == "" {
		return ""
	}
	return "https://maps.google.com/?q=" + url.QueryEscape(query)
}

// SplitName splits a display name into its first word and the rest.
func SplitName(name string) (first, last string) {
	fields := strings.FieldsFunc(name, unicode.IsSpace)
	if len(fields) == 0 {
		return "", ""
	}
	return fields[0], strings.Join(fields[1:], " ")
}
