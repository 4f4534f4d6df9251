package commands

import (
	"strings"

	"github.com/rivo/uniseg"
	"github.com/spf13/cobra"

	"github.com/pavanmanishd/utf8stream"
)

var splitReverse bool

// ClusterRow is one cluster in split output.
type ClusterRow struct {
	Start int    `json:"start" yaml:"start"`
	Len   int    `json:"len" yaml:"len"`
	Width int    `json:"width" yaml:"width"`
	Text  string `json:"text" yaml:"text"`
}

// SplitResult is the output of the split command.
type SplitResult struct {
	Bytes     int          `json:"bytes" yaml:"bytes"`
	Clusters  int          `json:"clusters" yaml:"clusters"`
	Graphemes int          `json:"graphemes" yaml:"graphemes"`
	Width     int          `json:"width" yaml:"width"`
	Units     []ClusterRow `json:"units" yaml:"units"`
}

// String renders one cluster per line for raw output.
func (r SplitResult) String() string {
	var b strings.Builder
	for _, u := range r.Units {
		b.WriteString(u.Text)
		b.WriteByte('\n')
	}
	return b.String()
}

var splitCmd = &cobra.Command{
	Use:   "split [text...]",
	Short: "List every cluster with its offset, length and width",
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readInput(cmd, args)
		if err != nil {
			return err
		}
		return output(cmd, split(text, splitReverse))
	},
}

func init() {
	splitCmd.Flags().BoolVarP(&splitReverse, "reverse", "r", false, "walk from the end with NextBack")
	rootCmd.AddCommand(splitCmd)
}

func split(text string, reverse bool) SplitResult {
	s := utf8stream.New(text)
	res := SplitResult{
		Bytes:     s.Len(),
		Graphemes: uniseg.GraphemeClusterCount(s.String()),
		Width:     s.Width(),
		Units:     []ClusterRow{},
	}

	seq := s.All()
	if reverse {
		seq = s.Backward()
	}
	for start := range seq {
		c := s.Cluster(start)
		logCluster(c)
		res.Units = append(res.Units, ClusterRow{
			Start: start,
			Len:   c.Len,
			Width: c.Width(),
			Text:  c.Text,
		})
	}
	res.Clusters = len(res.Units)
	return res
}
