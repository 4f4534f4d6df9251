package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/pavanmanishd/utf8stream"
)

// GetResult is the output of the get command.
type GetResult struct {
	Text    string `json:"text" yaml:"text"`
	Start   int    `json:"start" yaml:"start"`
	End     int    `json:"end" yaml:"end"`
	Len     int    `json:"len" yaml:"len"`
	Present bool   `json:"present" yaml:"present"`
}

// String returns the resolved text for raw output.
func (r GetResult) String() string {
	if !r.Present {
		return ""
	}
	return r.Text + "\n"
}

var getCmd = &cobra.Command{
	Use:   "get <index> [text...]",
	Short: "Resolve the cluster covering a byte offset",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		index, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid index %q: %w", args[0], err)
		}
		text, err := readInput(cmd, args[1:])
		if err != nil {
			return err
		}
		s := utf8stream.New(text)
		c := s.Cluster(index)
		logCluster(c)
		_, present := s.Get(index)
		return output(cmd, GetResult{
			Text:    c.Text,
			Start:   c.Start,
			End:     c.End,
			Len:     c.Len,
			Present: present,
		})
	},
}

func init() {
	rootCmd.AddCommand(getCmd)
}
