package update

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestVersionLess(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"1.0.0", "1.0.1", true},
		{"v1.2.0", "v1.10.0", true},
		{"1.10.0", "1.2.0", false},
		{"1.0.0", "1.0.0", false},
		{"v2.0", "v2.0.1", true},
		{"1.0.0", "garbage", false},
		{"dev", "v1.0.0", true},
	}
	for _, tt := range tests {
		if got := versionLess(tt.a, tt.b); got != tt.want {
			t.Errorf("versionLess(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestCheck(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"tag_name":"v1.4.0","html_url":"https://example.com/releases/v1.4.0"}`)
	}))
	defer srv.Close()

	res, err := NewChecker(srv.URL).Check(context.Background(), "v1.3.2")
	if err != nil {
		t.Fatalf("Check() error = %v", err)
	}
	if !res.Outdated {
		t.Error("Check() Outdated = false, want true")
	}
	if res.Latest != "v1.4.0" {
		t.Errorf("Check() Latest = %q, want %q", res.Latest, "v1.4.0")
	}
	if res.UpdateURL != "https://example.com/releases/v1.4.0" {
		t.Errorf("Check() UpdateURL = %q", res.UpdateURL)
	}
}

func TestCheck_UpToDate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"tag_name":"v1.3.2","html_url":"https://example.com"}`)
	}))
	defer srv.Close()

	res, err := NewChecker(srv.URL).Check(context.Background(), "v1.3.2")
	if err != nil {
		t.Fatalf("Check() error = %v", err)
	}
	if res.Outdated {
		t.Error("Check() Outdated = true, want false")
	}
}

func TestCheck_BadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusForbidden)
	}))
	defer srv.Close()

	if _, err := NewChecker(srv.URL).Check(context.Background(), "v1.0.0"); err == nil {
		t.Error("Check() error = nil, want error on non-200")
	}
}
