package assets

import (
	"embed"
)

//go:embed mysteries.json
var FS embed.FS

// MysteriesJSON returns the raw embedded default catalog.
func MysteriesJSON() ([]byte, error) {
	return FS.ReadFile("mysteries.json")
}
