package config

import (
	"os"
	"path/filepath"
	"strings"
)

// expandPath expands environment variables and a leading ~/ in p.
func expandPath(p string) string {
	if p == "" {
		return p
	}
	expanded := os.ExpandEnv(p)
	if expanded == "~" || strings.HasPrefix(expanded, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return expanded
		}
		return filepath.Join(home, strings.TrimPrefix(expanded[1:], "/"))
	}
	return expanded
}

// userConfigDir returns $XDG_CONFIG_HOME/todo, falling back to ~/.config/todo.
func userConfigDir() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, appName)
}

func findUserConfigFile() string {
	dir := userConfigDir()
	if dir == "" {
		return ""
	}
	path := filepath.Join(dir, userConfigName)
	if fileExists(path) {
		return path
	}
	return ""
}

func findProjectConfigFile() string {
	wd, err := os.Getwd()
	if err != nil {
		return ""
	}
	path := filepath.Join(wd, projectFileName)
	if fileExists(path) {
		return path
	}
	return ""
}
