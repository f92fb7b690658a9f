package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func newValidateCmd() *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "validate FILE...",
		Short: "Check message files and print the converted payload",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, path := range args {
				message, err := readMessage(path)
				if err != nil {
					return err
				}

				data, err := message.Convert()
				if err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}

				if quiet {
					continue
				}

				payload, err := json.MarshalIndent(data, "", "  ")
				if err != nil {
					return fmt.Errorf("encoding %s: %w", path, err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(payload))
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "only report errors")

	return cmd
}
