package symbolizer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
)

var ErrSymbolNotFound = errors.New("symbol not found")

// FindSymbol scans an nm-style listing and returns the first entry named name.
// Lines that are too short or whose address column is not hex are skipped.
func FindSymbol(lines []string, name string) (*Symbol, error) {
	for i, line := range lines {
		// Format: "0000000080000328 T _start_warm"
		parts := strings.Fields(line)
		if len(parts) < 3 || parts[2] != name {
			continue
		}
		addr, err := strconv.ParseUint(parts[0], 16, 64)
		if err != nil {
			slog.Debug("Skipping symbol line with malformed address", "line", i+1, "addr", parts[0], "error", err)
			continue
		}
		return &Symbol{Name: name, Type: parts[1], Addr: addr}, nil
	}
	return nil, fmt.Errorf("%s: %w", name, ErrSymbolNotFound)
}

// SymbolLookup resolves named symbols from a listing produced by its loader.
type SymbolLookup struct {
	loader SymbolTableLoader
}

func NewSymbolLookup(loader SymbolTableLoader) *SymbolLookup {
	return &SymbolLookup{loader: loader}
}

func (l *SymbolLookup) Lookup(ctx context.Context, name string) (*Symbol, error) {
	lines, err := l.loader.ReadLines(ctx)
	if err != nil {
		return nil, err
	}
	slog.Debug("Loaded symbol listing", "lines", len(lines))

	sym, err := FindSymbol(lines, name)
	if err != nil {
		return nil, err
	}
	slog.Debug("Resolved symbol", "name", sym.Name, "type", sym.Type, "addr", fmt.Sprintf("0x%x", sym.Addr))
	return sym, nil
}
