package imessage

import (
	"fmt"
	"strings"

	"golang.org/x/net/idna"
)

// NormalizeHandle normalizes an iMessage account handle identifier.
// Phone-shaped handles (E.164, leading '+') pass through unchanged;
// email-shaped handles have their domain normalized to ASCII (punycode)
// form so that visually-equivalent Unicode domains compare equal.
func NormalizeHandle(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("imessage: empty handle")
	}
	if strings.HasPrefix(raw, "+") {
		return raw, nil
	}

	at := strings.LastIndex(raw, "@")
	if at < 0 {
		return raw, nil
	}
	local, domain := raw[:at], raw[at+1:]
	if local == "" || domain == "" {
		return "", fmt.Errorf("imessage: malformed email handle %q", raw)
	}
	asciiDomain, err := idna.ToASCII(domain)
	if err != nil {
		return "", fmt.Errorf("imessage: normalize domain %q: %w", domain, err)
	}
	return strings.ToLower(local) + "@" + asciiDomain, nil
}
