package embeddata

import "embed"

//go:embed about.md tips.json
var embeddedFS embed.FS

// ReadAboutMD returns the contents of about.md.
func ReadAboutMD() ([]byte, error) {
	return embeddedFS.ReadFile("about.md")
}

// ReadTips returns the contents of tips.json.
func ReadTips() ([]byte, error) {
	return embeddedFS.ReadFile("tips.json")
}
