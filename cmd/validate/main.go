package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/jwebster45206/social-steps/pkg/grid"
	"github.com/jwebster45206/social-steps/pkg/scenario"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <pack.json>\n", os.Args[0])
		os.Exit(1)
	}

	if err := validateFile(os.Args[1]); err != nil {
		fmt.Fprintf(os.Stderr, "Validation failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Pack file is valid!")
}

func validateFile(filename string) error {
	fmt.Printf("Validating %s...\n", filename)

	baseName := filepath.Base(filename)
	if !strings.HasSuffix(baseName, ".json") {
		return fmt.Errorf("pack file must have .json extension: %s", baseName)
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	if !json.Valid(data) {
		return fmt.Errorf("file %s contains invalid JSON", filename)
	}

	var p scenario.Pack
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&p); err != nil {
		return fmt.Errorf("file %s failed strict JSON unmarshaling: %w", filename, err)
	}

	var errs []string
	for _, s := range p.Scenarios {
		if !isValidID(s.ID) {
			errs = append(errs, fmt.Sprintf("scenario id %q must be lowercase kebab-case (e.g. unclear-instruction)", s.ID))
		}
		for _, c := range s.Choices {
			if !isValidID(c.ID) {
				errs = append(errs, fmt.Sprintf("scenario %q: choice id %q must be lowercase kebab-case", s.ID, c.ID))
			}
		}
	}
	for _, n := range p.NPCs {
		if !isValidID(n.ID) {
			errs = append(errs, fmt.Sprintf("npc id %q must be lowercase kebab-case", n.ID))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("validation errors in %s:\n%s", filename, strings.Join(errs, "\n"))
	}

	// Packs are played on the built-in map, so NPC placement is checked
	// against it.
	if err := p.Validate(grid.Default()); err != nil {
		return fmt.Errorf("%s: %w", filename, err)
	}

	return nil
}

var idPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

func isValidID(id string) bool {
	return idPattern.MatchString(id)
}
