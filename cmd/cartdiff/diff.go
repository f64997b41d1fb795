// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"

	"github.com/MikeHopcroft/PrixFixe-sub000/cart"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newDiffCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "diff <observed.yaml> <expected.yaml>",
		Short: "Print the repairs turning one cart into another",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			observed, err := loadCart(args[0])
			if err != nil {
				return err
			}
			expected, err := loadCart(args[1])
			if err != nil {
				return err
			}

			r, err := a.repairer()
			if err != nil {
				return err
			}
			res, err := r.RepairCart(observed, expected)
			if err != nil {
				return err
			}
			renderDiff(cmd.OutOrStdout(), res)
			return nil
		},
	}
}

// loadCart decodes and validates a YAML cart file.
func loadCart(path string) (cart.Cart, error) {
	f, err := os.Open(path)
	if err != nil {
		return cart.Cart{}, err
	}
	defer f.Close()

	var c cart.Cart
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil {
		return cart.Cart{}, fmt.Errorf("%s: decode cart: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return cart.Cart{}, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}
