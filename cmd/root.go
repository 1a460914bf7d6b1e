// Package cmd provides the root command and CLI setup for animfind.
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/animfind/internal/controller"
)

var projectFlag string
var configFlag string
var logLevelFlag string
var formatFlag string
var noTUIFlag bool

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "animfind",
		Short: "Find animated properties in Unity animation clips",
		Long: `animfind searches the animation clips of a Unity project for curves that
animate a given property on a given object.

The object is matched as a case-sensitive fragment of the binding path.
The property query is a case-insensitive substring, unless it contains
"*", in which case it must match the whole property name:

  animfind search -o Arm position        # any property containing "position"
  animfind search -o Arm "m_Local*.x"     # m_LocalPosition.x, m_LocalScale.x, ...
  animfind search -o Body --preset "_UDIMDiscardRow*"`,
		SilenceUsage: true,
	}
	cmd.PersistentFlags().StringVarP(&projectFlag, "project", "C", "", "Unity project directory (default: search upwards from the working directory)")
	cmd.PersistentFlags().StringVar(&configFlag, "config", "", "config file (default: <project>/.animfind.yaml)")
	cmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "log level: trace, debug, info, warn or error")
	cmd.PersistentFlags().StringVarP(&formatFlag, "format", "f", "", "output format: "+controller.FormatUsage())
	cmd.PersistentFlags().BoolVar(&noTUIFlag, "no-tui", false, "plain output even when attached to a terminal")

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
