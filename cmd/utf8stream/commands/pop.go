package commands

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pavanmanishd/utf8stream"
)

var popCount int

// PopResult is the output of the pop command.
type PopResult struct {
	Popped    []string `json:"popped" yaml:"popped"`
	Remaining string   `json:"remaining" yaml:"remaining"`
}

// String renders the popped units, one per line, for raw output.
func (r PopResult) String() string {
	if len(r.Popped) == 0 {
		return ""
	}
	return strings.Join(r.Popped, "\n") + "\n"
}

var popCmd = &cobra.Command{
	Use:   "pop [text...]",
	Short: "Pop clusters off the end of the text",
	RunE: func(cmd *cobra.Command, args []string) error {
		if popCount < 1 {
			return fmt.Errorf("invalid --count %d: must be at least 1", popCount)
		}
		text, err := readInput(cmd, args)
		if err != nil {
			return err
		}
		s := utf8stream.New(text)
		res := PopResult{Popped: []string{}}
		for range popCount {
			unit, ok := s.Pop()
			if !ok {
				slog.Debug("stream exhausted", "popped", len(res.Popped))
				break
			}
			res.Popped = append(res.Popped, unit)
		}
		res.Remaining = s.String()
		return output(cmd, res)
	},
}

func init() {
	popCmd.Flags().IntVarP(&popCount, "count", "n", 1, "number of clusters to pop")
	rootCmd.AddCommand(popCmd)
}
