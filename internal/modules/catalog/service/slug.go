package service

import (
	"strings"
	"unicode"
)

// slugify 生成只含 [a-z0-9-] 的 slug，非 ASCII 字符被丢弃
func slugify(s string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		switch {
		case r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)):
			b.WriteRune(r)
			lastDash = false
		case !lastDash && (r == ' ' || r == '-' || r == '_' || r == '.' || r == '/'):
			b.WriteByte('-')
			lastDash = true
		}
	}
	return strings.TrimRight(b.String(), "-")
}

// resolveSlug 优先使用显式 slug，否则从名称生成；都为空时使用 fallback
func resolveSlug(explicit, name, fallback string) string {
	if slug := slugify(explicit); slug != "" {
		return slug
	}
	if slug := slugify(name); slug != "" {
		return slug
	}
	return fallback
}
