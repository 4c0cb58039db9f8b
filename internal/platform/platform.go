// Package platform identifies the platform family that path handling
// should follow.
package platform

import (
	"runtime"
	"strings"
)

const Windows = "windows"

// Detector reports the platform identifier.
type Detector struct {
	// GOOS overrides the detected platform. If empty, uses runtime.GOOS.
	GOOS string
}

// Detect returns the lower-cased platform identifier.
func (d *Detector) Detect() string {
	goos := strings.TrimSpace(d.GOOS)
	if goos == "" {
		goos = runtime.GOOS
	}
	return strings.ToLower(goos)
}

// Current returns the platform of the running binary.
func Current() string {
	return (&Detector{}).Detect()
}

func IsWindowsFamily(p string) bool {
	return strings.EqualFold(p, Windows)
}

// Separators returns every byte accepted as a path separator on p.
// The first one is the separator used when joining.
func Separators(p string) string {
	if IsWindowsFamily(p) {
		return `\/`
	}
	return "/"
}

func Separator(p string) byte {
	return Separators(p)[0]
}
