package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// errAborted marks a session that ended on a broken input channel. The reporter has
// already told the player, so Execute only sets the exit code.
var errAborted = errors.New("session aborted")

// Execute runs the command tree against os.Args and returns the first error.
func Execute() error {
	cmd := newRootCmd()
	err := cmd.Execute()
	if err != nil && !errors.Is(err, errAborted) {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	return err
}

// rootOptions are the persistent flags shared by every subcommand.
type rootOptions struct {
	configPath string
	logLevel   string
	logFormat  string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "guess",
		Short:         "Guess the secret number",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "YAML config file")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level (trace|debug|info|warn|error|disabled)")
	cmd.PersistentFlags().StringVar(&opts.logFormat, "log-format", "", "log format (json|console)")

	cmd.AddCommand(newPlayCmd(opts))
	cmd.AddCommand(newVersionCmd())
	return cmd
}
