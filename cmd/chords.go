package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/jsphweid/chordwatch/chord"
	"github.com/jsphweid/chordwatch/pitch"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(chordsCmd)
}

var chordsCmd = &cobra.Command{
	Use:   "chords",
	Short: "Lists the chords that can be recognized",
	Long:  `Lists every chord shape in matching order, voiced on middle C.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		printChords(cmd.OutOrStdout())
	},
}

func printChords(w io.Writer) {
	const root = 60
	for _, p := range chord.Table() {
		names := make([]string, len(p.Intervals))
		for i, iv := range p.Intervals {
			names[i] = pitch.MustName(root+iv, true)
		}
		fmt.Fprintf(w, "%-8s %-20v %s\n", "C"+p.Suffix, p.Intervals, strings.Join(names, " "))
	}
}
