package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/upmkit/upmkit/internal/names"
	"github.com/upmkit/upmkit/internal/scaffold"
)

// runForm asks for every package setting on r, showing the current value as
// the default. An empty answer keeps the default.
func runForm(r io.Reader, w io.Writer, cfg scaffold.Config) (scaffold.Config, error) {
	reader := bufio.NewReader(r)
	fmt.Fprintln(w, "Package info (press Enter to keep the value in brackets)")

	text := []struct {
		label string
		dst   *string
	}{
		{"Package Name", &cfg.PackageName},
		{"Display Name", &cfg.DisplayName},
		{"Description", &cfg.Description},
		{"Version", &cfg.Version},
		{"Sample One Name", &cfg.SampleOne},
		{"Sample Two Name", &cfg.SampleTwo},
	}
	for _, q := range text {
		answer, err := ask(reader, w, q.label, *q.dst)
		if err != nil {
			return cfg, err
		}
		*q.dst = answer
	}
	if !names.HasMarker(cfg.PackageName) {
		fmt.Fprintf(w, "Note: %q has no %s placeholder; it will be used as-is.\n", cfg.PackageName, names.Marker)
	}

	toggles := []struct {
		label string
		dst   *bool
	}{
		{"Include Runtime Folder", &cfg.IncludeRuntime},
		{"Include Editor Folder", &cfg.IncludeEditor},
		{"Include Tests Folder", &cfg.IncludeTests},
	}
	for _, q := range toggles {
		answer, err := askBool(reader, w, q.label, *q.dst)
		if err != nil {
			return cfg, err
		}
		*q.dst = answer
	}

	return cfg, nil
}

// ask prints a prompt and returns the trimmed answer or def when empty.
func ask(reader *bufio.Reader, w io.Writer, label, def string) (string, error) {
	if def != "" {
		fmt.Fprintf(w, "%s [%s]: ", label, def)
	} else {
		fmt.Fprintf(w, "%s: ", label)
	}
	line, err := reader.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", fmt.Errorf("reading %s: %w", strings.ToLower(label), err)
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return def, nil
	}
	return line, nil
}

// askBool accepts y/yes/n/no (any case); anything else is re-asked.
func askBool(reader *bufio.Reader, w io.Writer, label string, def bool) (bool, error) {
	hint := "y/N"
	if def {
		hint = "Y/n"
	}
	for {
		answer, err := ask(reader, w, label+" ("+hint+")", "")
		if err != nil {
			return def, err
		}
		switch strings.ToLower(answer) {
		case "":
			return def, nil
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		fmt.Fprintf(w, "Please answer y or n.\n")
	}
}
