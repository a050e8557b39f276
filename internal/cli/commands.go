package cli

import (
	stderrors "errors"
	"fmt"
	"os"

	"github.com/arthur-debert/kbcomponent/internal/version"
	"github.com/arthur-debert/kbcomponent/pkg/component"
	"github.com/arthur-debert/kbcomponent/pkg/config"
	"github.com/arthur-debert/kbcomponent/pkg/datadir"
	"github.com/arthur-debert/kbcomponent/pkg/dispatcher"
	"github.com/arthur-debert/kbcomponent/pkg/errors"
	"github.com/arthur-debert/kbcomponent/pkg/logging"
	"github.com/arthur-debert/kbcomponent/pkg/ui"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// exitFunc terminates the process after a failed sync action
var exitFunc = os.Exit

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	var (
		verbosity int
		dataDir   string
		action    string
	)

	rootCmd := &cobra.Command{
		Use:     "kbcomponent",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Example: MsgRootExample,
		Version: version.Version,
		Args:    cobra.NoArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			overrides := map[string]interface{}{}
			if action != "" {
				overrides["action"] = action
			}

			dd := openDataDir(dataDir)
			cfg, err := config.Load(dd, overrides)
			if err != nil {
				return err
			}

			c, err := component.New(cfg, dd,
				dispatcher.WithOutput(cmd.OutOrStdout()),
				dispatcher.WithErrorOutput(cmd.ErrOrStderr()),
				dispatcher.WithExit(func(code int) { exitFunc(code) }),
			)
			if err != nil {
				return err
			}

			_, err = c.ExecuteAction(cmd.Context())
			return err
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.Flags().StringVar(&dataDir, "data-dir", "", MsgFlagDataDir)
	rootCmd.Flags().StringVar(&action, "action", "", MsgFlagAction)

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newActionsCmd())

	return rootCmd
}

func openDataDir(dir string) *datadir.DataDir {
	fs := afero.NewOsFs()
	if dir == "" {
		return datadir.FromEnv(fs)
	}
	return datadir.New(fs, dir)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Long:  MsgVersionLong,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, MsgVersionFormat, version.Version)
			if version.Commit != "" {
				fmt.Fprintf(out, MsgCommitFormat, version.Commit)
			}
			if version.Date != "" {
				fmt.Fprintf(out, MsgBuiltFormat, version.Date)
			}
		},
	}
}

func newActionsCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "actions",
		Short: MsgActionsShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := ui.ParseFormat(format)
			if err != nil {
				return errors.Wrap(err, errors.ErrInvalidInput, "invalid --format")
			}

			// listing needs no configuration file
			cfg, err := config.FromMap(map[string]interface{}{})
			if err != nil {
				return err
			}
			c, err := component.New(cfg, datadir.FromEnv(afero.NewOsFs()))
			if err != nil {
				return err
			}

			renderer, err := ui.NewRenderer(f, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			return renderer.RenderResult(c.Registry().Actions())
		},
	}
	cmd.Flags().StringVar(&format, "format", "auto", MsgFlagFormat)
	return cmd
}

// ExitCode maps the error returned by the root command to a process exit
// status: 0 on success, 1 for sync action failures and user-reported
// failures, 2 for anything else.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *dispatcher.ExitError
	if stderrors.As(err, &exitErr) {
		return exitErr.Code
	}
	if errors.IsUserReported(err) {
		return 1
	}
	return 2
}

// Reported reports whether err has already been written to stderr by a
// sync action failure
func Reported(err error) bool {
	var exitErr *dispatcher.ExitError
	return stderrors.As(err, &exitErr)
}
