package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/peterbourgon/ff/v3"

	"github.com/VladMinzatu/warm-offset/internal/offset"
)

// Help strings for command line arguments
var (
	nmHelp      = "Path to nm (e.g. riscv64-unknown-linux-gnu-nm)."
	elfHelp     = "Path to the firmware ELF (e.g. fw_jump.elf)."
	baseHelp    = "Base load address (hex, 0x prefix optional)."
	symbolHelp  = "Symbol whose offset from the base address is printed."
	varHelp     = "Variable name used in the printed assignment."
	verboseHelp = "Enable debug logging on stderr."
	configHelp  = "Optional config file with one 'flag value' pair per line."
)

type config struct {
	Nm      string
	Elf     string
	Base    string
	Symbol  string
	VarName string
	Verbose bool
}

type usageError struct {
	missing []string
}

func (e *usageError) Error() string {
	return fmt.Sprintf("missing required flag(s): %s", strings.Join(e.missing, ", "))
}

func parseArgs(args []string, output io.Writer) (*config, error) {
	var cfg config

	fs := flag.NewFlagSet("warm-offset", flag.ContinueOnError)
	// parse errors are reported by the caller as a single ERROR line
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.Base, "base", "", baseHelp)
	fs.String("config", "", configHelp)
	fs.StringVar(&cfg.Elf, "elf", "", elfHelp)
	fs.StringVar(&cfg.Nm, "nm", "", nmHelp)
	fs.StringVar(&cfg.Symbol, "symbol", offset.DefaultSymbol, symbolHelp)
	fs.StringVar(&cfg.VarName, "var", offset.DefaultVarName, varHelp)
	fs.BoolVar(&cfg.Verbose, "v", false, "Shorthand for -verbose.")
	fs.BoolVar(&cfg.Verbose, "verbose", false, verboseHelp)

	fs.Usage = func() {}

	err := ff.Parse(fs, args,
		ff.WithEnvVarPrefix("WARM_OFFSET"),
		ff.WithConfigFileFlag("config"),
		ff.WithConfigFileParser(ff.PlainParser),
		ff.WithAllowMissingConfigFile(true),
	)
	if errors.Is(err, flag.ErrHelp) {
		printUsage(fs, output)
		return nil, err
	}
	if err != nil {
		return nil, err
	}

	var missing []string
	for _, f := range []struct {
		name  string
		value string
	}{
		{"--nm", cfg.Nm},
		{"--elf", cfg.Elf},
		{"--base", cfg.Base},
	} {
		if f.value == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return nil, &usageError{missing: missing}
	}
	return &cfg, nil
}

func printUsage(fs *flag.FlagSet, output io.Writer) {
	fmt.Fprintln(output, "Compute the offset of a firmware symbol from its base load address.")
	fmt.Fprintln(output)
	fmt.Fprintln(output, "Usage: warm-offset --nm <path> --elf <path> --base <hex>")
	fs.SetOutput(output)
	fs.PrintDefaults()
}
