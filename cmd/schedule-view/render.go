package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"scheduleView/internal/schedule"
	"scheduleView/internal/source"
)

func newRenderCmd() *cobra.Command {
	var (
		input    string
		selector string
		env      string
		dump     bool
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the schedule for a saved listing page once",
		RunE: func(cmd *cobra.Command, _ []string) error {
			log := setupLogger(env, os.Stderr)

			table, err := source.NewFile(input, selector).Fetch(cmd.Context())
			if err != nil {
				return err
			}

			if dump {
				records, err := schedule.Scrape(table)
				if err != nil {
					return err
				}

				enc := yaml.NewEncoder(cmd.OutOrStdout())
				defer enc.Close()

				return enc.Encode(schedule.Group(records))
			}

			fragment, err := schedule.NewRenderer(log, nil).Render(table)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), fragment)
			return err
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "saved HTML page holding the listing table")
	cmd.Flags().StringVar(&selector, "selector", "#tblSearchResults", "CSS selector of the listing table")
	cmd.Flags().StringVar(&env, "env", envProd, "logging environment (local, dev, prod)")
	cmd.Flags().BoolVar(&dump, "dump", false, "print the grouped listings as YAML instead of HTML")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}
