package cmd

import (
	"github.com/spf13/cobra"
)

// presetsCmd represents the presets command.
var presetsCmd = newPresetsCmd()

func newPresetsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "presets",
		Short: "List property presets",
		Long:  "List the property presets accepted by search --preset, including those added in the config file.",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			workflow, done, err := buildWorkflow(cmd, false)
			if err != nil {
				return err
			}
			defer done()

			return workflow.Presets()
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(presetsCmd)
}
