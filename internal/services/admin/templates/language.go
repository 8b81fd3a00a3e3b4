package templates

import (
	"net/url"

	admini18n "github.com/louisbranch/cashdesk/internal/services/admin/i18n"
)

// LanguageOption is one entry of the language menu.
type LanguageOption struct {
	Tag    string
	Label  string
	URL    string
	Active bool
}

// LanguageOptions returns the supported languages with the active one marked.
func LanguageOptions(page PageContext) []LanguageOption {
	supported := admini18n.Supported()
	options := make([]LanguageOption, 0, len(supported))
	for _, tag := range supported {
		options = append(options, LanguageOption{
			Tag:    tag.String(),
			Label:  T(page.Loc, admini18n.LanguageKey(tag)),
			URL:    LanguageURL(page, tag.String()),
			Active: tag.String() == page.Lang,
		})
	}
	return options
}

// LanguageURL returns the current URL with the lang parameter replaced.
func LanguageURL(page PageContext, tag string) string {
	values, err := url.ParseQuery(page.CurrentQuery)
	if err != nil {
		values = url.Values{}
	}
	values.Set(admini18n.LangParam, tag)
	path := page.CurrentPath
	if path == "" {
		path = "/"
	}
	return path + "?" + values.Encode()
}
