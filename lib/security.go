package lib

import (
	"net/url"
	"strings"
)

// Redacted replaces secrets in logs
const Redacted = "xxxxx"

func IsKeyValueBlacklisted(key string) bool {
	list := []string{
		"PASSWORD",
		"SECRET",
	}

	for _, term := range list {
		if strings.Contains(strings.ToUpper(key), term) {
			return true
		}
	}

	return false
}

// RedactURI hides password of userinfo part in the uri.
// The username is kept, so logs still tell which account is used.
// Unparsable input is returned fully redacted.
func RedactURI(uri string) string {
	u, err := url.Parse(uri)
	if err != nil {
		return Redacted
	}
	if u.User == nil {
		return uri
	}
	if _, ok := u.User.Password(); !ok {
		return uri
	}
	u.User = url.UserPassword(u.User.Username(), Redacted)
	return u.String()
}
