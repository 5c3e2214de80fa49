package symbolizer

import "context"

// Symbol is one entry of an nm-style symbol listing.
type Symbol struct {
	Name string
	Type string
	Addr uint64
}

// SymbolTableLoader produces the raw lines of a symbol listing,
// one symbol per line in "addr type name" form.
type SymbolTableLoader interface {
	ReadLines(ctx context.Context) ([]string, error)
}
