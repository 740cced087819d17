package gochart

import "fmt"

// Render tree compatibility. Minor grows when a chart kind or tree field is
// added; Major changes when an existing field changes meaning.
const (
	TreeMajor = 1
	TreeMinor = 1
	TreePatch = 0
)

// Version is printed by `gochart --version`. Release builds may stamp it with
// -ldflags "-X github.com/VantageDataChat/GoChart.Version=...".
var Version = fmt.Sprintf("%d.%d.%d", TreeMajor, TreeMinor, TreePatch)
