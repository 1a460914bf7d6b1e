package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/animfind/internal/domain"
)

// clipsCmd represents the clips command.
var clipsCmd = newClipsCmd()

func newClipsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clips [name]",
		Short: "List animation clips and their binding counts",
		Long:  "List the animation clips of the project, optionally filtered by clip name (substring or * pattern).",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			workflow, done, err := buildWorkflow(cmd, true)
			if err != nil {
				return err
			}
			defer done()

			var name string
			if len(args) == 1 {
				name = args[0]
			}

			return workflow.ListClips(domain.ListArgs{Name: name})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(clipsCmd)
}
