package handler

import "testing"

func TestRefererPage(t *testing.T) {
	tests := []struct {
		name     string
		referer  string
		expected string
	}{
		{
			name:     "empty referer",
			referer:  "",
			expected: "",
		},
		{
			name:     "https url keeps path",
			referer:  "https://app.pharmaconnect.example/companies?q=acme",
			expected: "/companies",
		},
		{
			name:     "host only is root",
			referer:  "http://localhost:3000",
			expected: "/",
		},
		{
			name:     "invalid url",
			referer:  "not-a-valid-url",
			expected: "",
		},
		{
			name:     "url without host",
			referer:  "/just/a/path",
			expected: "",
		},
		{
			name:     "non-http scheme",
			referer:  "ftp://example.com/file",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := refererPage(tt.referer)
			if result != tt.expected {
				t.Errorf("refererPage(%q) = %q, want %q", tt.referer, result, tt.expected)
			}
		})
	}
}
