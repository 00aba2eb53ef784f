// Package migrations holds the versioned atlas migration directory.
package migrations

import (
	"embed"
	"io/fs"
	"slices"
	"strings"
)

//go:embed *.sql atlas.sum
var FS embed.FS

// SetupSQL concatenates every migration in apply order. It is what an operator
// runs by hand when the bookings table is missing.
func SetupSQL() (string, error) {
	names, err := fs.Glob(FS, "*.sql")
	if err != nil {
		return "", err
	}
	slices.Sort(names)

	var b strings.Builder
	for _, name := range names {
		content, err := fs.ReadFile(FS, name)
		if err != nil {
			return "", err
		}
		b.WriteString("-- " + name + "\n")
		b.Write(content)
		b.WriteString("\n")
	}
	return b.String(), nil
}
