// Package offset turns a resolved symbol address into a load-relative offset
// and renders it as a shell-style variable assignment.
package offset

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const (
	DefaultSymbol  = "_start_warm"
	DefaultVarName = "FW_JUMP_WARM_ENTRY_OFFSET"
)

var (
	ErrInvalidBaseAddress = errors.New("invalid base address")
	ErrNegativeOffset     = errors.New("computed negative offset")
)

// ParseAddress parses a hexadecimal address with or without a 0x prefix.
func ParseAddress(s string) (uint64, error) {
	hex := strings.TrimSpace(s)
	if len(hex) > 2 && (hex[:2] == "0x" || hex[:2] == "0X") {
		hex = hex[2:]
	}
	addr, err := strconv.ParseUint(hex, 16, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidBaseAddress, s)
	}
	return addr, nil
}

// Compute returns addr - base. An address below the base is an error rather than a wrapped value.
func Compute(addr, base uint64) (uint64, error) {
	if addr < base {
		return 0, fmt.Errorf("%w: symbol at 0x%x is below base 0x%x", ErrNegativeOffset, addr, base)
	}
	return addr - base, nil
}

// Assignment is a NAME=0x<hex> line consumable by build scripts.
type Assignment struct {
	Name  string
	Value uint64
}

func (a Assignment) String() string {
	return fmt.Sprintf("%s=0x%x", a.Name, a.Value)
}
