package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/npillmayer/fingerbraille"
	"github.com/npillmayer/fingerbraille/internal/replay"
	"github.com/spf13/cobra"
)

var (
	showDisplay bool
	realtime    bool
)

var replayCmd = &cobra.Command{
	Use:   "replay [script]",
	Short: "Play a key-event script into a decoding session",
	Long: `Play a key-event script into a decoding session and print the decoded text.

Each script line holds an offset in milliseconds and key events:

  0   +f +l
  150 -f -l

Without a file argument, or with "-", the script is read from stdin.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runReplay,
}

func init() {
	replayCmd.Flags().BoolVarP(&showDisplay, "display", "d", false, "Print display updates and mode changes")
	replayCmd.Flags().BoolVar(&realtime, "realtime", false, "Feed events in real time through the session's event loop")
}

func runReplay(cmd *cobra.Command, args []string) error {
	cfg, table, err := setup()
	if err != nil {
		return err
	}
	in := cmd.InOrStdin()
	if len(args) == 1 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}
	script, err := replay.Parse(in)
	if err != nil {
		return fmt.Errorf("script: %w", err)
	}
	opts, err := cfg.SessionOptions()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	var text strings.Builder
	opts.Handlers = fingerbraille.Handlers{
		OnEmit: func(s string) { text.WriteString(s) },
	}
	if showDisplay {
		opts.Handlers.OnDisplay = func(d fingerbraille.Decoded) { printDisplay(out, d) }
		opts.Handlers.OnModeChange = func(m fingerbraille.InputMode) {
			fmt.Fprintf(out, "  mode %s\n", m)
		}
	}
	session := fingerbraille.NewSession(table, opts)
	if realtime {
		if err := playRealtime(cmd.Context(), session, script); err != nil {
			return err
		}
	} else {
		replay.Play(session, script, time.Now())
	}
	fmt.Fprintln(out, text.String())
	return nil
}

func printDisplay(w io.Writer, d fingerbraille.Decoded) {
	if d.IsZero() {
		fmt.Fprintln(w, "  display cleared")
		return
	}
	fmt.Fprintf(w, "  display %s %s %s (%s)\n", d.GlyphString(), d.Dots, d.Character, d.Kind)
}

// playRealtime feeds the script to session.Run, sleeping between events.
func playRealtime(ctx context.Context, session *fingerbraille.Session, script replay.Script) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()
	events := make(chan fingerbraille.KeyEvent)
	done := make(chan error, 1)
	go func() {
		done <- session.Run(ctx, events)
	}()
	start := time.Now()
	for _, st := range script {
		if wait := time.Until(start.Add(st.Offset)); wait > 0 {
			select {
			case <-time.After(wait):
			case <-ctx.Done():
				close(events)
				return <-done
			}
		}
		select {
		case events <- fingerbraille.KeyEvent{Key: st.Key, Down: st.Down}:
		case <-ctx.Done():
			close(events)
			return <-done
		}
	}
	close(events)
	return <-done
}
