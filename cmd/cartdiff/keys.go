// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"

	"github.com/MikeHopcroft/PrixFixe-sub000/menu"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var keyStyle = lipgloss.NewStyle().Width(16)

func newKeysCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "keys",
		Short: "List every item key of the catalog with its name",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.menuPath == "" {
				return errors.New("--menu is required")
			}
			catalog, err := menu.LoadFile(a.menuPath)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			for _, p := range catalog.Products() {
				keys, err := catalog.Keys(p.PID)
				if err != nil {
					return err
				}
				for _, k := range keys {
					name, err := catalog.Name(k)
					if err != nil {
						return err
					}
					fmt.Fprintf(w, "%s %s\n", keyStyle.Render(string(k)), name)
				}
			}
			return nil
		},
	}
}
