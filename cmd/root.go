package cmd

import (
	"os"

	"github.com/jsphweid/chordwatch/constants"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   constants.AppName,
	Short: "Names the chord you are playing",
	Long:  `Listens to a midi keyboard and names the chord currently held down.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogging()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log at debug level")
}

// logs go to stderr so they don't fight the display line on stdout
func setupLogging() {
	log.SetOutput(os.Stderr)
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	log.SetLevel(constants.GetLogLevel())
	if verbose {
		log.SetLevel(log.DebugLevel)
	}
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
