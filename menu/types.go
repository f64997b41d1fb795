// SPDX-License-Identifier: MIT

package menu

import (
	"errors"

	"github.com/MikeHopcroft/PrixFixe-sub000/cart"
)

var (
	// ErrUnknownKey is returned by every lookup whose key does not name a
	// configuration of a known product.
	ErrUnknownKey = errors.New("menu: unknown key")

	// ErrUnknownProduct is returned when a PID is not in the catalog.
	ErrUnknownProduct = errors.New("menu: unknown product")

	// ErrMalformedKey indicates a key that does not parse as <pid>[:<coord>...].
	ErrMalformedKey = errors.New("menu: malformed key")

	// ErrBadCoordinate indicates a coordinate vector of the wrong length or
	// with an attribute position out of range.
	ErrBadCoordinate = errors.New("menu: bad attribute coordinate")

	// ErrUnknownDimension indicates a reference to an undeclared dimension
	// or a dimension index beyond a product's configuration.
	ErrUnknownDimension = errors.New("menu: unknown dimension")

	// ErrDuplicatePID indicates two products sharing one PID.
	ErrDuplicatePID = errors.New("menu: duplicate pid")

	// ErrDuplicateDimension indicates two dimensions sharing one name.
	ErrDuplicateDimension = errors.New("menu: duplicate dimension")

	// ErrInvalidSpec wraps struct validation failures of a catalog file.
	ErrInvalidSpec = errors.New("menu: invalid catalog")
)

// Spec is the on-disk catalog document.
type Spec struct {
	Dimensions []DimensionSpec `yaml:"dimensions" validate:"dive"`
	Products   []ProductSpec   `yaml:"products" validate:"required,min=1,dive"`
}

// DimensionSpec declares one attribute dimension and its ordered attributes.
type DimensionSpec struct {
	Name       string          `yaml:"name" validate:"required"`
	Attributes []AttributeSpec `yaml:"attributes" validate:"required,min=1,dive"`
}

// AttributeSpec is one selectable value of a dimension.
type AttributeSpec struct {
	Name   string `yaml:"name" validate:"required"`
	Hidden bool   `yaml:"hidden,omitempty"`
}

// ProductSpec declares a generic product.
//
// Defaults are the default attribute positions, one per dimension; all zeros
// when omitted. Specifics overrides composed names for individual keys.
type ProductSpec struct {
	PID        cart.PID          `yaml:"pid" validate:"gte=0"`
	Name       string            `yaml:"name" validate:"required"`
	Dimensions []string          `yaml:"dimensions,omitempty" validate:"dive,required"`
	Defaults   []int             `yaml:"defaults,omitempty" validate:"dive,gte=0"`
	Specifics  map[string]string `yaml:"specifics,omitempty" validate:"dive,keys,required,endkeys,required"`
}

// Attribute is a resolved attribute value.
type Attribute struct {
	Name   string
	Hidden bool
}

// Dimension is a resolved attribute dimension.
type Dimension struct {
	Name       string
	Attributes []Attribute
}

// Product is a resolved generic product.
type Product struct {
	PID        cart.PID
	Name       string
	Dimensions []*Dimension
	Defaults   []int

	names map[cart.Key]string // explicit specific names
}

// DefaultKey is the key of the product's default configuration.
func (p *Product) DefaultKey() cart.Key {
	return FormatKey(p.PID, p.Defaults)
}
