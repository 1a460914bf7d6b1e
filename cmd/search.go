package cmd

import (
	"errors"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/animfind/internal/domain"
	m "github.com/mouse-blink/animfind/internal/model"
)

var searchObjectFlag string
var searchSelectedFlag string
var searchPropertyFlag string
var searchPresetFlag string
var searchShowAssetFlag bool

// searchCmd represents the search command.
var searchCmd = newSearchCmd()

const searchLongDescription = `Search every animation clip for bindings on an object that animate a property.

--object is a case-sensitive fragment of the binding path. When it is omitted
the last segment of --selected is used instead.

The property may be given as an argument or with --property. A property
without "*" matches any property name containing it, ignoring case. A
property with "*" must match the whole name, "*" standing for any run of
characters. --preset replaces the property with one of the presets listed by
"animfind presets"; "None" keeps it.

Press q while a search is running to cancel it; the matches found so far are
kept. Ctrl+C does the same in plain output mode.`

func newSearchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search [property]",
		Short: "Find clips that animate a property on an object",
		Long:  searchLongDescription,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			property := searchPropertyFlag
			if len(args) == 1 {
				if property != "" && property != args[0] {
					return errors.New("property given both as argument and --property")
				}

				property = args[0]
			}

			workflow, done, err := buildWorkflow(cmd, true)
			if err != nil {
				return err
			}
			defer done()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			_, err = workflow.Search(ctx, domain.SearchArgs{
				Query: m.Query{
					ObjectPath: searchObjectFlag,
					Property:   property,
					Selected:   searchSelectedFlag,
				},
				Preset: searchPresetFlag,
			})

			return err
		},
	}
	cmd.Flags().StringVarP(&searchObjectFlag, "object", "o", "", "binding path fragment of the animated object (case-sensitive)")
	cmd.Flags().StringVar(&searchSelectedFlag, "selected", "", "hierarchy path of the selected object; its name is used when --object is empty")
	cmd.Flags().StringVarP(&searchPropertyFlag, "property", "p", "", "property query, substring or * wildcard pattern")
	cmd.Flags().StringVar(&searchPresetFlag, "preset", "", "property preset to use instead of the property query")
	cmd.Flags().BoolVar(&searchShowAssetFlag, "show-asset", false, "add the clip asset path to table output")

	return cmd
}

func init() {
	rootCmd.AddCommand(searchCmd)
}
