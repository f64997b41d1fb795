// SPDX-License-Identifier: MIT

package menu

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// specValidate checks catalog documents. validator caches struct metadata
// and is safe for concurrent use.
var specValidate = validator.New()

// Validate runs the struct-tag checks on spec.
func Validate(spec Spec) error {
	if err := specValidate.Struct(spec); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return fmt.Errorf("%w: %s failed %q", ErrInvalidSpec, verrs[0].Namespace(), verrs[0].Tag())
		}
		return fmt.Errorf("%w: %w", ErrInvalidSpec, err)
	}
	return nil
}

// Load decodes a YAML catalog from r and builds it.
func Load(r io.Reader) (*Catalog, error) {
	var spec Spec
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&spec); err != nil {
		return nil, fmt.Errorf("menu: decode catalog: %w", err)
	}
	return New(spec)
}

// LoadFile loads a YAML catalog from path.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("menu: %w", err)
	}
	defer f.Close()

	c, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}
