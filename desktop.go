package fdicons

import (
	"bytes"
	"os/exec"
	"strings"
)

// DefaultTheme returns the desktop environment's configured icon theme,
// probing dconf and then gsettings. Callers pass the result straight to
// Query.WithTheme; it gets no special treatment. Falls back to "hicolor"
// when neither tool answers.
func DefaultTheme() string {
	if theme := settingsOutput("dconf", "read", "/org/gnome/desktop/interface/icon-theme"); theme != "" {
		return theme
	}
	if theme := settingsOutput("gsettings", "get", "org.gnome.desktop.interface", "icon-theme"); theme != "" {
		return theme
	}
	return FallbackTheme
}

func settingsOutput(name string, args ...string) string {
	cmd := exec.Command(name, args...)
	out := new(bytes.Buffer)
	cmd.Stdout = out
	if err := cmd.Run(); err != nil {
		return ""
	}
	return strings.Trim(out.String(), "'\n ")
}
