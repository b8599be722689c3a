package validators

import (
	"net"
	"strings"
)

// IsEmailFormatValid is the cheap structural check run before any DNS work.
func IsEmailFormatValid(email string) bool {
	at := strings.LastIndex(email, "@")
	return at > 0 && at < len(email)-1 && !strings.ContainsAny(email, " \t")
}

// IsEmailDomainValid resolves the domain part and accepts any address whose
// domain has MX or A/AAAA records. Resolution failures count as invalid.
func IsEmailDomainValid(email string) bool {
	if !IsEmailFormatValid(email) {
		return false
	}

	domain := email[strings.LastIndex(email, "@")+1:]

	if mx, err := net.LookupMX(domain); err == nil && len(mx) > 0 {
		return true
	}

	if ips, err := net.LookupIP(domain); err == nil && len(ips) > 0 {
		return true
	}

	return false
}
