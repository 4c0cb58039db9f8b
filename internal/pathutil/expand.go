// Package pathutil expands a leading ~ in paths to the user's home directory.
package pathutil

import (
	"os"
	"strings"
	"tildex/internal/platform"
)

const (
	Marker = "~"

	// DefaultProfileEnv holds the user profile directory on Windows.
	DefaultProfileEnv = "USERPROFILE"

	// DefaultWindowsHome is used on Windows when neither the home directory
	// nor the profile variable can be determined.
	DefaultWindowsHome = `C:\Users\Default`

	rootHome = "/"
)

// Source names the step that produced the home directory used for a path.
type Source string

const (
	SourceUnchanged  Source = "unchanged"
	SourceHome       Source = "home"
	SourceProfileEnv Source = "profile-env"
	SourceDefault    Source = "default"
	SourceRoot       Source = "root"
)

// Result is an expanded path together with where its home prefix came from.
type Result struct {
	Path   string
	Source Source
}

// Expander expands ~ using a fixed platform and fallback chain.
// The zero value follows the running platform and the real environment.
// An Expander is safe for concurrent use once configured.
type Expander struct {
	// Platform selects separators and the fallback chain. If empty, uses the
	// running platform.
	Platform string

	// HomeDir resolves the home directory. If nil, uses os.UserHomeDir.
	// An error or an empty result counts as unavailable.
	HomeDir func() (string, error)

	// LookupEnv reads the profile variable. If nil, uses os.LookupEnv.
	LookupEnv func(string) (string, bool)

	// ProfileEnv is the variable consulted on Windows. Defaults to
	// DefaultProfileEnv.
	ProfileEnv string

	// WindowsDefault is the last resort on Windows. Defaults to
	// DefaultWindowsHome.
	WindowsDefault string
}

// Expand replaces a leading ~ with the current user's home directory,
// falling back per platform when it cannot be determined.
// Paths that do not start with ~ are returned unchanged.
func Expand(path string) string {
	return (&Expander{}).Expand(path)
}

func (e *Expander) Expand(path string) string {
	return e.Resolve(path).Path
}

// Resolve expands path and reports which step supplied the home directory.
//
// Only a ~ that forms the whole first component is expanded: "~", "~/x"
// (and "~\x" on Windows). "~user/x" and "a~b" are returned unchanged.
func (e *Expander) Resolve(path string) Result {
	plat := e.platform()
	seps := platform.Separators(plat)

	rest, ok := stripMarker(path, seps)
	if !ok {
		return Result{Path: path, Source: SourceUnchanged}
	}

	home, src := e.home(plat)
	return Result{
		Path:   join(home, rest, seps),
		Source: src,
	}
}

func (e *Expander) platform() string {
	return (&platform.Detector{GOOS: e.Platform}).Detect()
}

func (e *Expander) home(plat string) (string, Source) {
	homeDir := e.HomeDir
	if homeDir == nil {
		homeDir = os.UserHomeDir
	}
	if home, err := homeDir(); err == nil && home != "" {
		return home, SourceHome
	}

	if !platform.IsWindowsFamily(plat) {
		return rootHome, SourceRoot
	}

	lookupEnv := e.LookupEnv
	if lookupEnv == nil {
		lookupEnv = os.LookupEnv
	}
	name := e.ProfileEnv
	if name == "" {
		name = DefaultProfileEnv
	}
	if v, ok := lookupEnv(name); ok && v != "" {
		return v, SourceProfileEnv
	}

	if e.WindowsDefault != "" {
		return e.WindowsDefault, SourceDefault
	}
	return DefaultWindowsHome, SourceDefault
}

// stripMarker removes the leading marker and the separators after it.
// It reports false when path does not start with a bare ~ component.
func stripMarker(path, seps string) (string, bool) {
	rest, ok := strings.CutPrefix(path, Marker)
	if !ok {
		return "", false
	}
	if rest == "" {
		return "", true
	}
	if strings.IndexByte(seps, rest[0]) < 0 {
		return "", false
	}
	return strings.TrimLeft(rest, seps), true
}

// join appends rest to home without cleaning either side.
func join(home, rest, seps string) string {
	if rest == "" {
		return home
	}
	if strings.IndexByte(seps, home[len(home)-1]) >= 0 {
		return home + rest
	}
	return home + seps[:1] + rest
}
