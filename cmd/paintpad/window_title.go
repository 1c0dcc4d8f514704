package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/example/paintpad/internal/window"
)

func windowTitle(output string) string {
	parts := []string{window.ProgramTitle}

	if file := strings.TrimSpace(output); file != "" {
		parts = append(parts, filepath.Base(file))
	}

	var extras []string
	if v := strings.TrimSpace(version); v != "" && v != "dev" {
		extras = append(extras, fmt.Sprintf("v%s", v))
	}
	if c := strings.TrimSpace(commit); c != "" {
		extras = append(extras, fmt.Sprintf("commit %s", c))
	}

	title := strings.Join(parts, " - ")
	if len(extras) > 0 {
		title += " (" + strings.Join(extras, ", ") + ")"
	}
	return title
}
