// Package severity models the four Burp issue severity levels and the
// threshold policy used to decide whether an issue fails the build.
package severity

import "fmt"

// Level is one of the four severity names reported by the scanner.
// Names are matched exactly as the scanner emits them; no case folding.
type Level string

const (
	Information Level = "Information"
	Low         Level = "Low"
	Medium      Level = "Medium"
	High        Level = "High"
)

// Levels lists the known levels in ascending rank order.
var Levels = []Level{Information, Low, Medium, High}

// IsValid reports whether l is one of the four known levels.
func (l Level) IsValid() bool {
	switch l {
	case Information, Low, Medium, High:
		return true
	}
	return false
}

// Rank returns the fixed ordinal of the level: Information=0, Low=1,
// Medium=2, High=3. Comparisons must always go through the rank, never
// through the string value.
func (l Level) Rank() int {
	switch l {
	case Information:
		return 0
	case Low:
		return 1
	case Medium:
		return 2
	case High:
		return 3
	}
	return -1
}

// Meets reports whether l is at or above the threshold.
func (l Level) Meets(threshold Level) bool {
	return l.Rank() >= threshold.Rank()
}

func (l Level) String() string {
	return string(l)
}

// Parse validates a raw severity name from input. Unknown names are an
// error, not a default.
func Parse(name string) (Level, error) {
	l := Level(name)
	if !l.IsValid() {
		return "", fmt.Errorf("unknown severity level %q (expected one of %v)", name, Levels)
	}
	return l, nil
}
