package tui

import (
	"fmt"
	"io"
	"tildex/internal/config"

	"github.com/charmbracelet/huh"
)

// FallbackForm asks for the Windows fallback settings.
type FallbackForm struct {
	input      io.Reader
	accessible bool
}

func NewFallbackForm() *FallbackForm {
	return &FallbackForm{}
}

func (f *FallbackForm) WithInput(r io.Reader) *FallbackForm {
	f.input = r
	f.accessible = true
	return f
}

// Collect prompts for each fallback field, offering current as the default.
// Empty answers keep the current value.
func (f *FallbackForm) Collect(current config.Fallback) (config.Fallback, error) {
	profileEnv := current.ProfileEnv
	windowsDefault := current.WindowsDefault

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Environment variable holding the profile directory").
				Value(&profileEnv).
				Placeholder(current.ProfileEnv),
			huh.NewInput().
				Title("Home directory when nothing else resolves").
				Value(&windowsDefault).
				Placeholder(current.WindowsDefault),
		),
	).WithTheme(huh.ThemeCatppuccin())

	if f.input != nil {
		form = form.WithInput(f.input)
	}
	if f.accessible {
		form = form.WithAccessible(true)
	}

	if err := form.Run(); err != nil {
		return config.Fallback{}, fmt.Errorf("prompt cancelled: %w", err)
	}

	if profileEnv == "" {
		profileEnv = current.ProfileEnv
	}
	if windowsDefault == "" {
		windowsDefault = current.WindowsDefault
	}

	return config.Fallback{
		ProfileEnv:     profileEnv,
		WindowsDefault: windowsDefault,
	}, nil
}
