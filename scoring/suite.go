// SPDX-License-Identifier: MIT

package scoring

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

var suiteValidate = validator.New()

// Validate checks suite structure, every cart in it, and that explicit case
// ids are unique. Empty ids are allowed.
func (s Suite) Validate() error {
	if err := suiteValidate.Struct(s); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return fmt.Errorf("%w: %s failed %q", ErrInvalidSuite, verrs[0].Namespace(), verrs[0].Tag())
		}
		return fmt.Errorf("%w: %w", ErrInvalidSuite, err)
	}

	seen := make(map[string]int, len(s.Cases))
	for i, c := range s.Cases {
		if c.ID != "" {
			if j, dup := seen[c.ID]; dup {
				return fmt.Errorf("%w: %q at cases %d and %d", ErrDuplicateID, c.ID, j, i)
			}
			seen[c.ID] = i
		}
		if err := c.Observed.Validate(); err != nil {
			return fmt.Errorf("%w: case %d observed: %w", ErrInvalidSuite, i, err)
		}
		if err := c.Expected.Validate(); err != nil {
			return fmt.Errorf("%w: case %d expected: %w", ErrInvalidSuite, i, err)
		}
	}
	return nil
}

// LoadSuite decodes and validates a YAML suite from r.
func LoadSuite(r io.Reader) (Suite, error) {
	var s Suite
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return Suite{}, fmt.Errorf("scoring: decode suite: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Suite{}, err
	}
	return s, nil
}

// LoadSuiteFile loads a YAML suite from path.
func LoadSuiteFile(path string) (Suite, error) {
	f, err := os.Open(path)
	if err != nil {
		return Suite{}, fmt.Errorf("scoring: %w", err)
	}
	defer f.Close()

	s, err := LoadSuite(f)
	if err != nil {
		return Suite{}, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}
