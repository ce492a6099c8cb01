package mail

import "strings"

// ExtractRouteToken recovers the routing token from a "To:" header
// value: the leading run of characters of the first address up to the
// first '@' or '+'. A "+tag" suffix is a subaddress and is excluded, so
// one mailbox can serve per-domain unique receiving addresses. Returns
// ("", false) when the header is missing or malformed.
func ExtractRouteToken(toHeader string) (string, bool) {
	addr := strings.TrimSpace(toHeader)
	if i := strings.Index(addr, ","); i >= 0 {
		addr = strings.TrimSpace(addr[:i])
	}

	// Accept both bare addresses and "Display Name <addr>" forms.
	if i := strings.Index(addr, "<"); i >= 0 {
		addr = addr[i+1:]
		if j := strings.Index(addr, ">"); j >= 0 {
			addr = addr[:j]
		}
	}

	at := strings.Index(addr, "@")
	if at < 0 {
		return "", false
	}

	token := addr[:at]
	if plus := strings.Index(token, "+"); plus >= 0 {
		token = token[:plus]
	}
	if token == "" {
		return "", false
	}
	return token, true
}
