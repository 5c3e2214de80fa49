package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/VladMinzatu/warm-offset/internal/offset"
	"github.com/VladMinzatu/warm-offset/internal/symbolizer"
)

const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cfg, err := parseArgs(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		fmt.Fprintf(stderr, "ERROR: %v\n", err)
		return exitUsage
	}

	level := slog.LevelWarn
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})))

	line, err := resolve(ctx, cfg)
	if err != nil {
		fmt.Fprintf(stderr, "ERROR: %v\n", err)
		return exitFailure
	}
	fmt.Fprintln(stdout, line)
	return exitOK
}

func resolve(ctx context.Context, cfg *config) (string, error) {
	// the base address is only validated after flag parsing, before nm runs
	base, err := offset.ParseAddress(cfg.Base)
	if err != nil {
		return "", err
	}

	lookup := symbolizer.NewSymbolLookup(symbolizer.NewNmLoader(cfg.Nm, cfg.Elf))
	sym, err := lookup.Lookup(ctx, cfg.Symbol)
	if err != nil {
		return "", err
	}

	off, err := offset.Compute(sym.Addr, base)
	if err != nil {
		return "", err
	}
	slog.Debug("Computed offset", "symbol", sym.Name, "base", fmt.Sprintf("0x%x", base), "offset", fmt.Sprintf("0x%x", off))
	return offset.Assignment{Name: cfg.VarName, Value: off}.String(), nil
}
