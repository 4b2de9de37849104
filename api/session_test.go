package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestCookieSessionIssue(t *testing.T) {
	for _, secure := range []bool{false, true} {
		rec := httptest.NewRecorder()
		CookieSession{Secure: secure}.Issue(rec)

		cookies := rec.Result().Cookies()
		if len(cookies) != 1 {
			t.Fatalf("expected one cookie, got %d", len(cookies))
		}
		c := cookies[0]
		if c.Name != "session" || c.Value != "authenticated" {
			t.Errorf("cookie = %s=%s", c.Name, c.Value)
		}
		if c.MaxAge != 86400 || c.Path != "/" || !c.HttpOnly || c.SameSite != http.SameSiteLaxMode {
			t.Errorf("unexpected cookie attributes: %+v", c)
		}
		if c.Secure != secure {
			t.Errorf("Secure = %v, want %v", c.Secure, secure)
		}
	}
}

func TestCookieSessionValidate(t *testing.T) {
	tests := []struct {
		name   string
		cookie *http.Cookie
		want   bool
	}{
		{"no cookie", nil, false},
		{"authenticated", &http.Cookie{Name: "session", Value: "authenticated"}, true},
		{"other value", &http.Cookie{Name: "session", Value: "admin"}, false},
		{"other cookie", &http.Cookie{Name: "sid", Value: "authenticated"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.cookie != nil {
				req.AddCookie(tt.cookie)
			}
			if got := (CookieSession{}).Validate(req); got != tt.want {
				t.Errorf("Validate = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCookieSessionRevoke(t *testing.T) {
	rec := httptest.NewRecorder()
	CookieSession{}.Revoke(rec)

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("expected one cookie, got %d", len(cookies))
	}
	if c := cookies[0]; c.Name != "session" || c.Value != "" || c.MaxAge >= 0 {
		t.Errorf("revoked cookie should be expired, got %+v", c)
	}
}
