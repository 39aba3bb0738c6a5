package main

import (
	"fmt"
	"os"

	"github.com/joshuapare/slotkit/internal/slotscript"
)

// loadScript opens and parses a script file.
func loadScript(path string) (*slotscript.Script, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open script: %w", err)
	}
	defer f.Close()

	sc, err := slotscript.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return sc, nil
}
