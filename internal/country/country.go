// Package country converts ISO 3166-1 alpha-2 residence codes into the
// alpha-3 codes the choropleth collaborator expects.
package country

import (
	"strings"

	"github.com/biter777/countries"
)

// Alpha3 resolves a 2-letter country code (case-insensitive) to its
// 3-letter equivalent. It never fails hard: unknown or malformed input
// reports ok=false and the caller excludes the row from the map.
func Alpha3(alpha2 string) (string, bool) {
	code := strings.ToUpper(strings.TrimSpace(alpha2))
	if len(code) != 2 {
		return "", false
	}

	c := countries.ByName(code)
	if c == countries.Unknown {
		return "", false
	}

	return c.Alpha3(), true
}
