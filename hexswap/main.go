package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	ansicolor "github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/peterbourgon/ff/v3"
	"github.com/peterbourgon/ff/v3/ffcli"
)

var colorError = ansicolor.New(ansicolor.FgRed)

func main() {
	ansicolor.NoColor = noColor(os.Stderr)

	if err := realMain(
		context.Background(),
		os.Args,
		os.Stdin,
		os.Stdout,
		os.Stderr,
	); err != nil {
		printError(os.Stderr, err)
		os.Exit(1)
	}
}

// noColor reports whether diagnostics written to f should be plain.
func noColor(f *os.File) bool {
	if os.Getenv("NO_COLOR") != "" || os.Getenv("TERM") == "dumb" {
		return true
	}

	return !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd())
}

func printError(w io.Writer, err error) {
	colorError.Fprintf(w, "hexswap: %s\n", err)
}

func realMain(
	ctx context.Context,
	args []string,
	stdin io.Reader,
	stdout io.Writer,
	stderr io.Writer,
) error {
	exec := args[0]
	fs := flag.NewFlagSet(exec, flag.ContinueOnError)
	fs.SetOutput(stderr)
	flagRaw := fs.Bool("raw", false, "do not decompress gzip, zstd, snappy or s2 inputs")
	flagForceColor := fs.Bool("fc", false, "force color output")

	rootCmd := &ffcli.Command{
		Name:       exec,
		ShortUsage: fmt.Sprintf("%v [flags] [file ...]", exec),
		ShortHelp:  "Reverse the byte groups of the first 0x literal on each line",
		LongHelp: "Reads the named files in order, or stdin when none are given or for \"-\",\n" +
			"and rewrites the first 0xRRGGBB on each line as 0xBBGGRR.\n" +
			"Flags may also be set as HEXSWAP_<FLAG> environment variables.",
		FlagSet: fs,
		Options: []ff.Option{ff.WithEnvVarPrefix("HEXSWAP")},
		Exec: func(ctx context.Context, args []string) error {
			if *flagForceColor {
				ansicolor.NoColor = false
			}

			w := bufio.NewWriter(stdout)
			err := run(ctx, openSources(args, stdin, *flagRaw), w)
			if ferr := w.Flush(); ferr != nil && err == nil {
				err = ferr
			}

			return err
		},
	}

	err := rootCmd.ParseAndRun(ctx, args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}

	return err
}

func run(ctx context.Context, sources []source, w io.Writer) error {
	for _, src := range sources {
		if err := swapSource(ctx, src, w); err != nil {
			return err
		}
	}

	return nil
}

func swapSource(ctx context.Context, src source, w io.Writer) error {
	r, err := src.open()
	if err != nil {
		return err
	}
	defer r.Close()

	scanner := newLineReader(r)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}

		if _, err := fmt.Fprintln(w, Swap(scanner.Text())); err != nil {
			return err
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("%v: %w", src, err)
	}

	return nil
}
