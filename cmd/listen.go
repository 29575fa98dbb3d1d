package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jsphweid/chordwatch/constants"
	"github.com/jsphweid/chordwatch/display"
	"github.com/jsphweid/chordwatch/listen"
	"github.com/jsphweid/chordwatch/metrics"
	"github.com/jsphweid/chordwatch/midi"
	"github.com/jsphweid/chordwatch/status"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	httpAddr      string
	debounceDelay time.Duration
)

func init() {
	listenCmd.Flags().StringVar(&httpAddr, "http", "", "serve /status and /chords on this address (env HTTP_ADDR)")
	listenCmd.Flags().DurationVar(&debounceDelay, "debounce", 0, "wait this long for input to settle before redrawing (env DEBOUNCE, default 15ms)")
	rootCmd.AddCommand(listenCmd)
}

var listenCmd = &cobra.Command{
	Use:   "listen",
	Short: "Names chords played on the first midi input",
	Long:  `Connects to the first midi input device and shows the chord being held on a single line.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if !cmd.Flags().Changed("http") {
			httpAddr = constants.GetHTTPAddr()
		}
		if !cmd.Flags().Changed("debounce") {
			debounceDelay = constants.GetDebounce()
		}

		reporter, err := metrics.Init(constants.GetSentryDSN())
		if err != nil {
			log.WithError(err).Warn("sentry disabled")
		}

		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer cancel()

		if err := runListen(ctx); err != nil {
			reporter.CaptureFatal(err)
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	},
}

func runListen(ctx context.Context) error {
	defer midi.Close()

	in, err := midi.FirstInput(midi.DriverPorts)
	if err != nil {
		return err
	}

	line := display.NewLine(os.Stdout, debounceDelay)
	l := listen.New(line.Show)

	if httpAddr != "" {
		shutdown, err := startStatus(httpAddr, status.New(l, in.String()).Handler())
		if err != nil {
			return err
		}
		defer shutdown()
	}

	stop, err := midi.Connect(in, l.HandleMessage)
	if err != nil {
		return err
	}
	fmt.Printf("Successfully connected to %s\n\n", in.String())

	<-ctx.Done()
	finish(os.Stdout, stop, l, line)
	log.Debug("stopped listening")
	return nil
}

// startStatus binds addr before returning so a taken port fails the command.
func startStatus(addr string, h http.Handler) (shutdown func(), err error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("could not serve status on %s: %w", addr, err)
	}
	srv := &http.Server{Handler: h}
	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).WithField("addr", addr).Error("status server stopped")
		}
	}()
	log.Infof("serving status on %s", ln.Addr())

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			log.WithError(err).WithField("addr", addr).Warn("status server shutdown")
		}
	}, nil
}

// finish stops input, drops held notes and leaves the cursor on a fresh line
// once the display can no longer redraw.
func finish(w io.Writer, stop func(), l *listen.Listener, line *display.Line) {
	stop()
	l.Reset()
	line.Close()
	fmt.Fprintln(w)
}
