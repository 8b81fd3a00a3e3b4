// Package flash carries one-time notices across the redirect that follows
// an admin write.
package flash

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/louisbranch/cashdesk/internal/services/admin/platform/requestmeta"
)

// CookieName is the cookie holding the pending notice.
const CookieName = "cashdesk_flash"

// maxMessageLength bounds free-text messages so the cookie stays small.
const maxMessageLength = 512

// Kind selects the notice presentation.
type Kind string

const (
	KindSuccess Kind = "success"
	KindInfo    Kind = "info"
	KindWarning Kind = "warning"
	KindError   Kind = "error"
)

// Notice is one flash message. Key is a localization key; Message is
// verbatim text such as a backend error and is shown when Key is blank.
type Notice struct {
	Kind    Kind   `json:"kind"`
	Key     string `json:"key,omitempty"`
	Message string `json:"message,omitempty"`
}

// Success builds a success notice for a localization key.
func Success(key string) Notice {
	return Notice{Kind: KindSuccess, Key: key}
}

// Failure builds an error notice from verbatim text.
func Failure(message string) Notice {
	return Notice{Kind: KindError, Message: message}
}

// Writer stores and reads notices under one scheme policy.
type Writer struct {
	Policy requestmeta.SchemePolicy
}

// Write stores notice for the next page render.
func (f Writer) Write(w http.ResponseWriter, r *http.Request, notice Notice) {
	if w == nil {
		return
	}
	normalized, ok := normalize(notice)
	if !ok {
		return
	}
	payload, err := json.Marshal(normalized)
	if err != nil {
		return
	}
	http.SetCookie(w, f.cookie(r, base64.RawURLEncoding.EncodeToString(payload), 0))
}

// ReadAndClear returns the pending notice and expires its cookie.
func (f Writer) ReadAndClear(w http.ResponseWriter, r *http.Request) (Notice, bool) {
	if r == nil {
		return Notice{}, false
	}
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return Notice{}, false
	}
	if w != nil {
		http.SetCookie(w, f.cookie(r, "", -1))
	}
	return decode(cookie.Value)
}

func (f Writer) cookie(r *http.Request, value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		Secure:   requestmeta.IsHTTPS(r, f.Policy),
		SameSite: http.SameSiteLaxMode,
		MaxAge:   maxAge,
	}
}

func decode(raw string) (Notice, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Notice{}, false
	}
	decoded, err := base64.RawURLEncoding.DecodeString(raw)
	if err != nil {
		return Notice{}, false
	}
	var notice Notice
	if err := json.Unmarshal(decoded, &notice); err != nil {
		return Notice{}, false
	}
	return normalize(notice)
}

func normalize(notice Notice) (Notice, bool) {
	notice.Key = strings.TrimSpace(notice.Key)
	notice.Message = strings.TrimSpace(notice.Message)
	if len(notice.Message) > maxMessageLength {
		notice.Message = notice.Message[:maxMessageLength]
	}
	if notice.Key == "" && notice.Message == "" {
		return Notice{}, false
	}
	notice.Kind = Kind(strings.ToLower(strings.TrimSpace(string(notice.Kind))))
	switch notice.Kind {
	case KindSuccess, KindInfo, KindWarning, KindError:
		return notice, true
	default:
		return Notice{}, false
	}
}
