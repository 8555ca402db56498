package middleware

import (
	"sort"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"pagecraft-backend/internal/service"
	"pagecraft-backend/pkg/lang"
)

// LanguageNegotiationMiddleware resolves the request language from the "lang"
// query parameter or the Accept-Language header, constrained to the site's
// enabled languages. The outcome lands in the context under "language" and
// "supported_languages".
func LanguageNegotiationMiddleware(languages *service.LanguageService) gin.HandlerFunc {
	return func(c *gin.Context) {
		defaultLang, supported, _ := languages.Resolve()
		language := negotiateLanguage(c.Query("lang"), c.GetHeader("Accept-Language"), defaultLang, supported)

		c.Set("language", language)
		c.Set("supported_languages", supported)
		c.Writer.Header().Set("Content-Language", language)

		c.Next()
	}
}

func negotiateLanguage(explicit, acceptHeader, defaultLang string, supported []string) string {
	if normalized, err := lang.Normalize(explicit); err == nil {
		if containsLanguage(supported, normalized) {
			return normalized
		}
		if base := matchBaseLanguage(normalized, supported); base != "" {
			return base
		}
	}

	for _, pref := range parseAcceptLanguage(acceptHeader) {
		if containsLanguage(supported, pref) {
			return pref
		}
		if base := matchBaseLanguage(pref, supported); base != "" {
			return base
		}
	}

	if defaultLang == "" && len(supported) > 0 {
		defaultLang = supported[0]
	}
	if defaultLang == "" {
		defaultLang = lang.Default
	}
	return defaultLang
}

func containsLanguage(list []string, code string) bool {
	for _, item := range list {
		if strings.EqualFold(item, code) {
			return true
		}
	}
	return false
}

// matchBaseLanguage maps a regional code such as "fr-ca" onto an enabled
// language sharing its base.
func matchBaseLanguage(code string, list []string) string {
	base := strings.SplitN(code, "-", 2)[0]
	for _, candidate := range list {
		if candidate == base || strings.HasPrefix(candidate, base+"-") {
			return candidate
		}
	}
	return ""
}

func parseAcceptLanguage(header string) []string {
	if strings.TrimSpace(header) == "" {
		return nil
	}

	type entry struct {
		code   string
		weight float64
		index  int
	}

	parts := strings.Split(header, ",")
	entries := make([]entry, 0, len(parts))

	for idx, part := range parts {
		segment := strings.TrimSpace(part)
		if segment == "" {
			continue
		}

		weight := 1.0
		code := segment

		if semi := strings.Index(segment, ";"); semi != -1 {
			code = strings.TrimSpace(segment[:semi])
			for _, param := range strings.Split(segment[semi+1:], ";") {
				kv := strings.SplitN(strings.TrimSpace(param), "=", 2)
				if len(kv) == 2 && kv[0] == "q" {
					if parsed, err := strconv.ParseFloat(kv[1], 64); err == nil {
						weight = parsed
					}
				}
			}
		}

		normalized, err := lang.Normalize(code)
		if err != nil {
			continue
		}
		entries = append(entries, entry{code: normalized, weight: weight, index: idx})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].weight == entries[j].weight {
			return entries[i].index < entries[j].index
		}
		return entries[i].weight > entries[j].weight
	})

	result := make([]string, 0, len(entries))
	for _, item := range entries {
		result = append(result, item.code)
	}
	return result
}
