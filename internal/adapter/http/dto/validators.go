package dto

import (
	"html"
	"reflect"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("eth_wallet", validateWallet)
	}
}

// validateWallet accepts a 0x-prefixed 20-byte hex address in any case.
func validateWallet(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	return strings.HasPrefix(s, "0x") && common.IsHexAddress(s)
}

// NormalizeWallet lowercases an address so one wallet maps to one ledger key.
func NormalizeWallet(addr string) string {
	return strings.ToLower(strings.TrimSpace(addr))
}

// SanitizeStruct trims whitespace and HTML-escapes every exported string
// field (including *string) of a struct pointer. Fields tagged
// `sanitize:"trim"` are only trimmed.
func SanitizeStruct(v interface{}) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr || rv.Elem().Kind() != reflect.Struct {
		return
	}
	sanitizeFields(rv.Elem())
}

func sanitizeFields(rv reflect.Value) {
	rt := rv.Type()
	for i := 0; i < rv.NumField(); i++ {
		f := rv.Field(i)
		if !f.CanSet() {
			continue
		}
		trimOnly := rt.Field(i).Tag.Get("sanitize") == "trim"
		switch f.Kind() {
		case reflect.String:
			f.SetString(sanitize(f.String(), trimOnly))
		case reflect.Ptr:
			if f.IsNil() {
				continue
			}
			elem := f.Elem()
			if elem.Kind() == reflect.String {
				elem.SetString(sanitize(elem.String(), trimOnly))
			}
		}
	}
}

func sanitize(s string, trimOnly bool) string {
	s = strings.TrimSpace(s)
	if trimOnly {
		return s
	}
	return html.EscapeString(s)
}
