package i18n

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"golang.org/x/text/language"
)

func TestResolveTag(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		url     string
		cookie  string
		accept  string
		want    language.Tag
		persist bool
	}{
		{name: "default", url: "/", want: language.AmericanEnglish},
		{name: "param", url: "/?lang=pt-BR", want: language.BrazilianPortuguese, persist: true},
		{name: "param base language", url: "/?lang=pt", want: language.BrazilianPortuguese, persist: true},
		{name: "unknown param falls through", url: "/?lang=xx", cookie: "pt-BR", want: language.BrazilianPortuguese},
		{name: "cookie", url: "/", cookie: "pt-BR", want: language.BrazilianPortuguese},
		{name: "accept language", url: "/", accept: "pt-BR,pt;q=0.9", want: language.BrazilianPortuguese},
		{name: "unsupported accept", url: "/", accept: "ja", want: language.AmericanEnglish},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			req := httptest.NewRequest(http.MethodGet, tc.url, nil)
			if tc.cookie != "" {
				req.AddCookie(&http.Cookie{Name: LangCookieName, Value: tc.cookie})
			}
			if tc.accept != "" {
				req.Header.Set("Accept-Language", tc.accept)
			}
			got, persist := ResolveTag(req)
			if got != tc.want || persist != tc.persist {
				t.Fatalf("ResolveTag = %v, %v; want %v, %v", got, persist, tc.want, tc.persist)
			}
		})
	}
}

func TestSetLanguageCookie(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	SetLanguageCookie(rec, language.BrazilianPortuguese)
	cookies := rec.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != LangCookieName || cookies[0].Value != "pt-BR" {
		t.Fatalf("cookies = %#v", cookies)
	}
}

func TestPrinterTranslatesCatalogKeys(t *testing.T) {
	t.Parallel()

	if got := Printer(language.AmericanEnglish).Sprintf("nav.deposits"); got != "Deposits" {
		t.Fatalf("en nav.deposits = %q", got)
	}
	if got := Printer(language.BrazilianPortuguese).Sprintf("nav.deposits"); got != "Depósitos" {
		t.Fatalf("pt-BR nav.deposits = %q", got)
	}
}
