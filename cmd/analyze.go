package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/jsphweid/chordwatch/analyze"
	"github.com/jsphweid/chordwatch/midi"
	"github.com/jsphweid/chordwatch/model"
	"github.com/jsphweid/chordwatch/pitch"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var showUnmatched bool

func init() {
	analyzeCmd.Flags().BoolVar(&showUnmatched, "unmatched", false, "also list note sets that name no chord")
	rootCmd.AddCommand(analyzeCmd)
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze FILE",
	Short: "Names the chords in a midi file",
	Long:  `Replays a Standard MIDI File and prints each chord change with its tick.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := midi.ReadMidiFile(args[0])
		if err != nil {
			return err
		}
		log.WithField("tracks", len(s.Tracks)).Debugf("read %s", args[0])
		printProgression(cmd.OutOrStdout(), analyze.Progression(s), showUnmatched)
		return nil
	},
}

func printProgression(w io.Writer, chords []model.ChordAt, unmatched bool) {
	for _, c := range chords {
		if !c.Matched && !unmatched {
			continue
		}
		names := make([]string, len(c.Notes))
		for i, n := range c.Notes {
			name, err := pitch.Name(n, true)
			if err != nil {
				name = fmt.Sprint(n)
			}
			names[i] = name
		}
		fmt.Fprintf(w, "%8d  %-8s %s\n", c.Tick, c.Label, strings.Join(names, " "))
	}
}
