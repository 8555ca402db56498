package validator

import (
	"regexp"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"
)

var (
	sanitizer *bluemonday.Policy
	stripper  *bluemonday.Policy
)

func Init() {
	sanitizer = bluemonday.UGCPolicy()
	stripper = bluemonday.StrictPolicy()

	if engine, ok := binding.Validator.Engine().(*validator.Validate); ok {
		registerCustomValidations(engine)
	}
}

func registerCustomValidations(v *validator.Validate) {
	v.RegisterValidation("slug", validateSlug)
	v.RegisterValidation("fieldpath", validateFieldPath)
	v.RegisterValidation("langcode", validateLanguageCode)
}

// SanitizeHTML cleans user-authored rich text, keeping the markup a landing
// page editor legitimately produces (links, lists, emphasis).
func SanitizeHTML(html string) string {
	return sanitizer.Sanitize(html)
}

// SanitizeString strips all markup from a plain-text value.
func SanitizeString(s string) string {
	return stripper.Sanitize(s)
}

var slugRegex = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

func validateSlug(fl validator.FieldLevel) bool {
	return slugRegex.MatchString(fl.Field().String())
}

var fieldPathRegex = regexp.MustCompile(`^[a-zA-Z0-9_]+(?:\.[a-zA-Z0-9_]+)*$`)

// validateFieldPath accepts dotted field paths such as "media.src" or
// "form.fields.2.label".
func validateFieldPath(fl validator.FieldLevel) bool {
	return fieldPathRegex.MatchString(fl.Field().String())
}

var langRegex = regexp.MustCompile(`^[a-zA-Z]{2,8}(?:-[a-zA-Z]{2,3})?$`)

func validateLanguageCode(fl validator.FieldLevel) bool {
	value := strings.TrimSpace(fl.Field().String())
	if value == "" {
		return true
	}
	return langRegex.MatchString(value)
}
