package money

import (
	"net/url"
	"strings"
)

// NormalizePhone strips non-digits and prefixes the Indian country code when
// missing.
func NormalizePhone(phone string) string {
	var digits strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	clean := digits.String()
	if strings.HasPrefix(clean, "91") && len(clean) > 10 {
		return clean
	}
	return "91" + clean
}

// WhatsAppURL builds a wa.me deep link for a templated reminder message.
func WhatsAppURL(phone, msg string) string {
	return "https://wa.me/" + NormalizePhone(phone) + "?text=" + url.QueryEscape(msg)
}
