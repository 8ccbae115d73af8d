package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/npillmayer/fingerbraille/internal/replay"
	"github.com/npillmayer/fingerbraille/transcribe"
	"github.com/spf13/cobra"
)

var asScript bool

var encodeCmd = &cobra.Command{
	Use:   "encode <kana>...",
	Short: "Transcribe kana to braille",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runEncode,
}

var decodeCmd = &cobra.Command{
	Use:   "decode <braille>...",
	Short: "Transcribe braille to kana",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runDecode,
}

func init() {
	encodeCmd.Flags().BoolVarP(&asScript, "script", "s", false, "Print a replay script chording the text")
}

func runEncode(cmd *cobra.Command, args []string) error {
	cfg, table, err := setup()
	if err != nil {
		return err
	}
	tr := transcribe.New(table)
	text := strings.Join(args, " ")
	if asScript {
		codes, err := tr.Chords(text)
		if err != nil {
			return err
		}
		opts, err := cfg.SessionOptions()
		if err != nil {
			return err
		}
		hold := cfg.QuietWindow() + 50*time.Millisecond
		_, err = replay.FromCodes(opts.Layout, codes, hold).WriteTo(cmd.OutOrStdout())
		return err
	}
	return printResult(cmd, text, tr.Encode(text))
}

func runDecode(cmd *cobra.Command, args []string) error {
	_, table, err := setup()
	if err != nil {
		return err
	}
	text := strings.Join(args, " ")
	return printResult(cmd, text, transcribe.New(table).Decode(text))
}

func printResult(cmd *cobra.Command, input string, res transcribe.Result) error {
	fmt.Fprintln(cmd.OutOrStdout(), res.Text)
	if res.OK() {
		return nil
	}
	r := []rune(input)
	for _, pos := range res.Unresolved {
		fmt.Fprintf(cmd.ErrOrStderr(), "unresolved %q at position %d\n", r[pos], pos)
	}
	return fmt.Errorf("%d unresolved characters", len(res.Unresolved))
}
