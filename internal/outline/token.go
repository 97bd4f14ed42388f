package outline

import "strings"

// DepthMarker is the character whose leading run encodes a row's depth in
// structure-edit tokens: depth = (number of leading markers) - 1.
const DepthMarker = '#'

// FormatDepth renders a depth as its token form, a run of depth+1 markers.
func FormatDepth(depth int) string {
	if depth < 0 {
		depth = 0
	}
	return strings.Repeat(string(DepthMarker), depth+1)
}

// ParseDepth extracts a depth from a structure-edit token by counting the
// leading run of markers. Anything after the run is ignored. The result is
// clamped at zero, so a token with no leading markers parses to depth 0
// rather than -1.
func ParseDepth(token string) int {
	count := 0
	for _, r := range token {
		if r != DepthMarker {
			break
		}
		count++
	}
	if count <= 1 {
		return 0
	}
	return count - 1
}
