package perplexity

import (
	"fmt"
	"net/url"
	"strings"
)

const (
	defaultBaseURL = "https://api.perplexity.ai"
	defaultHost    = "api.perplexity.ai"
)

// normalizeBaseURL applies the default origin and strips trailing slashes so
// path joins in the adapter stay predictable.
func normalizeBaseURL(baseURL string) string {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return defaultBaseURL
	}
	return strings.TrimRight(baseURL, "/")
}

// ValidateBaseURL rejects override origins that would send the API key
// somewhere unexpected. Only plain https origins whose host appears in the
// allow-list pass; with no list configured, the provider's own API host is
// the single allowed value.
func ValidateBaseURL(baseURL string, allowedHosts []string) error {
	baseURL = normalizeBaseURL(baseURL)
	u, err := url.Parse(baseURL)
	if err != nil {
		return fmt.Errorf("invalid PERPLEXITY_BASE_URL: %w", err)
	}
	switch {
	case !u.IsAbs() || u.Hostname() == "":
		return badBaseURL(baseURL, "absolute URL with host is required")
	case u.User != nil:
		return badBaseURL(baseURL, "userinfo is not allowed")
	case u.RawQuery != "" || u.Fragment != "":
		return badBaseURL(baseURL, "query and fragment are not allowed")
	case !strings.EqualFold(u.Scheme, "https"):
		return badBaseURL(baseURL, "https is required")
	}

	host := strings.ToLower(u.Hostname())
	if !hostAllowed(host, allowedHosts) {
		return badBaseURL(baseURL, fmt.Sprintf("host %q is not in PERPLEXITY_ALLOWED_HOSTS", host))
	}
	return nil
}

func badBaseURL(baseURL, reason string) error {
	return fmt.Errorf("invalid PERPLEXITY_BASE_URL %q: %s", baseURL, reason)
}

// hostAllowed checks host against the allow-list. Entries may be bare
// hostnames or full origins; scheme prefixes and ports are ignored. An empty
// or all-blank list means only the default API host.
func hostAllowed(host string, allowedHosts []string) bool {
	seen := false
	for _, entry := range allowedHosts {
		v := strings.ToLower(strings.TrimSpace(entry))
		v = strings.TrimPrefix(v, "https://")
		v = strings.TrimPrefix(v, "http://")
		v = strings.Trim(v, "/")
		if i := strings.IndexByte(v, ':'); i >= 0 {
			v = v[:i]
		}
		if v == "" {
			continue
		}
		seen = true
		if v == host {
			return true
		}
	}
	if !seen {
		return host == defaultHost
	}
	return false
}
