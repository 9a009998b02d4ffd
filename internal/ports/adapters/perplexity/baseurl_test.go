package perplexity

import (
	"strings"
	"testing"
)

func TestValidateBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		baseURL string
		hosts   []string
		wantErr string
	}{
		{name: "empty defaults ok", baseURL: ""},
		{name: "default host ok", baseURL: "https://api.perplexity.ai"},
		{name: "trailing slash ok", baseURL: "https://api.perplexity.ai/"},
		{name: "custom allowed host", baseURL: "https://proxy.internal", hosts: []string{"proxy.internal"}},
		{name: "http rejected", baseURL: "http://api.perplexity.ai", wantErr: "https is required"},
		{name: "unknown host rejected", baseURL: "https://evil.example", wantErr: "not in PERPLEXITY_ALLOWED_HOSTS"},
		{name: "userinfo rejected", baseURL: "https://u:p@api.perplexity.ai", wantErr: "userinfo"},
		{name: "query rejected", baseURL: "https://api.perplexity.ai?x=1", wantErr: "query and fragment"},
		{name: "relative rejected", baseURL: "api.perplexity.ai", wantErr: "absolute URL"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateBaseURL(tc.baseURL, tc.hosts)
			if tc.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("error %v, want contains %q", err, tc.wantErr)
			}
		})
	}
}

func TestHostAllowed(t *testing.T) {
	hosts := []string{" https://Proxy.Internal:8443/ ", "", "api.perplexity.ai"}
	if !hostAllowed("proxy.internal", hosts) {
		t.Fatal("origin-style entry should match its bare host")
	}
	if !hostAllowed("api.perplexity.ai", hosts) {
		t.Fatal("plain host entry should match")
	}
	if hostAllowed("evil.example", hosts) {
		t.Fatal("unlisted host must not match")
	}
	if !hostAllowed("api.perplexity.ai", []string{" ", ""}) {
		t.Fatal("all-blank list should fall back to the default host")
	}
}
