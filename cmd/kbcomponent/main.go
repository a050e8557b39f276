package main

import (
	"context"
	"os"

	"github.com/arthur-debert/kbcomponent/internal/cli"
	"github.com/arthur-debert/kbcomponent/pkg/ui"
	"github.com/rs/zerolog/log"
)

func main() {
	rootCmd := cli.NewRootCmd()
	err := rootCmd.ExecuteContext(context.Background())
	if err == nil {
		return
	}

	// sync action failures have already written their message to stderr
	if !cli.Reported(err) {
		log.Debug().Err(err).Msg("Command failed")
		if renderer, rerr := ui.NewRenderer(ui.FormatAuto, os.Stderr); rerr == nil {
			_ = renderer.RenderError(err)
		}
	}
	os.Exit(cli.ExitCode(err))
}
