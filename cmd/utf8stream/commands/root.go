package commands

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pavanmanishd/utf8stream"
	"github.com/pavanmanishd/utf8stream/internal/cli"
)

var (
	// Global flags
	verbose      bool
	formatOutput string
)

var rootCmd = &cobra.Command{
	Use:   "utf8stream",
	Short: "Inspect how text splits into clusters",
	Long: `utf8stream - inspect the clusters a utf8stream.Stream sees in a piece of text.

Text is taken from the arguments, joined by single spaces. With no
arguments it is read from stdin, minus one trailing newline.

Examples:
  utf8stream split 'red❤️heart'
  echo 'fire👩🏽‍🚒fighter' | utf8stream split -o json
  utf8stream get 3 'red❤️heart'
  utf8stream pop --count 3 test`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log every resolved cluster")
	rootCmd.PersistentFlags().StringVarP(&formatOutput, "output", "o", "yaml", "output format (yaml, json, raw)")
}

// readInput returns args joined by spaces, or stdin when args is empty.
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	text := strings.TrimSuffix(string(data), "\n")
	return strings.TrimSuffix(text, "\r"), nil
}

func output(cmd *cobra.Command, result any) error {
	return cli.Output(result, cli.OutputOptions{
		Format: cli.OutputFormat(formatOutput),
		Writer: cmd.OutOrStdout(),
	})
}

func logCluster(c utf8stream.Cluster) {
	slog.Debug("resolved cluster",
		"text", c.Text,
		"start", c.Start,
		"end", c.End,
		"len", c.Len,
	)
}
