package cmd

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/animfind/internal/adapter"
	"github.com/mouse-blink/animfind/internal/config"
	"github.com/mouse-blink/animfind/internal/controller"
	"github.com/mouse-blink/animfind/internal/domain"
	"github.com/mouse-blink/animfind/internal/logger"
)

// buildWorkflow assembles the workflow for one command invocation. The
// returned func must be called once the command is done.
var buildWorkflow = newProjectWorkflow

func newProjectWorkflow(cmd *cobra.Command, requireProject bool) (domain.Workflow, func(), error) {
	start := config.ProjectDir(projectFlag, os.LookupEnv)

	root, err := adapter.FindProjectRoot(start)
	if err != nil {
		if requireProject {
			return nil, nil, err
		}

		root = start
	}

	cfg, err := config.LoadProject(root, configFlag)
	if err != nil {
		return nil, nil, err
	}

	if cmd.Flags().Changed("log-level") {
		cfg.Log.Level = logLevelFlag
	}

	if cmd.Flags().Changed("format") {
		cfg.Output.Format = formatFlag
	}

	if f := cmd.Flags().Lookup("show-asset"); f != nil && f.Changed {
		cfg.Output.ShowAsset = f.Value.String() == "true"
	}

	format, err := controller.ParseFormat(cfg.Output.Format)
	if err != nil {
		return nil, nil, err
	}

	useTTY := !noTUIFlag && format == controller.FormatTable && controller.IsTTY(cmd.OutOrStdout())

	// Log lines would tear the alternate screen, so hold them until the TUI exits.
	var logWriter io.Writer = cmd.ErrOrStderr()

	var held *bytes.Buffer
	if useTTY {
		held = &bytes.Buffer{}
		logWriter = held
	}

	log := logger.NewConsoleLogger(logWriter, cfg.Log.Level)
	log.LogDebug(fmt.Sprintf("project root %s", root))

	assets := adapter.NewLocalAssetDatabase(root,
		adapter.WithIncludes(cfg.Search.Include...),
		adapter.WithExcludes(cfg.Search.Exclude...),
		adapter.WithAnimFileAdapter(adapter.NewLocalAnimFileAdapter(cfg.Search.ObjectReferences)),
	)

	ui := controller.NewUI(cmd, useTTY,
		controller.WithFormat(format),
		controller.WithAssetColumn(cfg.Output.ShowAsset),
	)

	done := func() {
		if held != nil && held.Len() > 0 {
			_, _ = cmd.ErrOrStderr().Write(held.Bytes())
		}
	}

	return domain.NewWorkflow(assets, ui, log, domain.WithPresets(cfg.Presets...)), done, nil
}
