// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"

	"rnamotif-core/bpseq"
	"rnamotif-core/motif"
)

// Report is one structure's extraction result handed to a writer.
type Report struct {
	ID     string
	BPSEQ  bpseq.BPSEQ
	Motifs []motif.Motif
}

// Format registry (format → handler). Writer files register themselves
// in init() blocks; registration is idempotent last-wins.
var registry = map[string]func(w io.Writer, r Report) error{}

// Register installs a writer for format.
func Register(format string, fn func(io.Writer, Report) error) { registry[format] = fn }

// Formats lists the registered format names (unordered).
func Formats() []string {
	out := make([]string, 0, len(registry))
	for f := range registry {
		out = append(out, f)
	}
	return out
}

// Write dispatches r to the writer registered for format.
func Write(format string, w io.Writer, r Report) error {
	fn, ok := registry[format]
	if !ok {
		return fmt.Errorf("unknown output format %q (no writer registered)", format)
	}
	return fn(w, r)
}
