package http

import (
	"fmt"
	"strings"
	"unicode"

	pkgstrings "github.com/placemarks-app/placemarks/pkg/strings"
)

func getRouteName(method, path string) string {
	path = strings.Map(func(r rune) rune {
		if unicode.Is(unicode.Latin, r) || unicode.IsDigit(r) {
			return r
		}

		if r == '{' || r == '}' {
			return -1
		}

		return '_'
	}, strings.Trim(path, "/"))

	return pkgstrings.ToSnakeCase(fmt.Sprintf("%s_%s", strings.ToLower(method), path))
}
