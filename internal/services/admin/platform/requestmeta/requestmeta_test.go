package requestmeta

import (
	"crypto/tls"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestHasSameOriginProof(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		host    string
		origin  string
		referer string
		tls     bool
		proto   string
		policy  SchemePolicy
		want    bool
	}{
		{name: "matching origin", host: "admin.local:8082", origin: "http://admin.local:8082", want: true},
		{name: "default port", host: "admin.local", origin: "http://admin.local:80", want: true},
		{name: "referer fallback", host: "admin.local:8082", referer: "http://admin.local:8082/deposits?x=1", want: true},
		{name: "other host", host: "admin.local:8082", origin: "http://evil.local:8082"},
		{name: "other port", host: "admin.local:8082", origin: "http://admin.local:9000"},
		{name: "scheme mismatch", host: "admin.local", origin: "https://admin.local"},
		{name: "tls request", host: "admin.local", origin: "https://admin.local", tls: true, want: true},
		{name: "null origin", host: "admin.local", origin: "null"},
		{name: "no proof", host: "admin.local"},
		{name: "forwarded ignored by default", host: "admin.local", origin: "https://admin.local", proto: "https"},
		{name: "forwarded trusted", host: "admin.local", origin: "https://admin.local", proto: "https", policy: SchemePolicy{TrustForwardedProto: true}, want: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			req := httptest.NewRequest(http.MethodPost, "/deposits/1/review", nil)
			req.Host = tc.host
			if tc.origin != "" {
				req.Header.Set("Origin", tc.origin)
			}
			if tc.referer != "" {
				req.Header.Set("Referer", tc.referer)
			}
			if tc.proto != "" {
				req.Header.Set("X-Forwarded-Proto", tc.proto)
			}
			if tc.tls {
				req.TLS = &tls.ConnectionState{}
			}
			if got := HasSameOriginProof(req, tc.policy); got != tc.want {
				t.Fatalf("HasSameOriginProof = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestIsHTTPS(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if IsHTTPS(req, SchemePolicy{}) {
		t.Fatal("plain request reported as https")
	}
	req.TLS = &tls.ConnectionState{}
	if !IsHTTPS(req, SchemePolicy{}) {
		t.Fatal("tls request not reported as https")
	}
	if IsHTTPS(nil, SchemePolicy{}) {
		t.Fatal("nil request reported as https")
	}
}
