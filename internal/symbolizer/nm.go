package symbolizer

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"

	exec "golang.org/x/sys/execabs"
)

var ErrToolInvocation = errors.New("failed to run nm")

// NmLoader lists the symbols of an ELF file by running an nm-compatible
// tool with numeric sorting ("<tool> -n <elf>").
type NmLoader struct {
	Tool string
	Path string
}

func NewNmLoader(tool, path string) *NmLoader {
	return &NmLoader{Tool: tool, Path: path}
}

func (n *NmLoader) args() []string {
	return []string{"-n", n.Path}
}

func (n *NmLoader) ReadLines(ctx context.Context) ([]string, error) {
	slog.Debug("Running symbol dump tool", "tool", n.Tool, "args", n.args())

	cmd := exec.CommandContext(ctx, n.Tool, n.args()...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	out, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			if msg := firstLine(stderr.Bytes()); msg != "" {
				return nil, fmt.Errorf("%w: %s: %v: %s", ErrToolInvocation, n.Tool, err, msg)
			}
		}
		return nil, fmt.Errorf("%w: %s: %v", ErrToolInvocation, n.Tool, err)
	}

	return splitLines(out), nil
}
