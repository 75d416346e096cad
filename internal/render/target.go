package render

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/rotisserie/eris"
)

// Target is the narrow port the renderers write into: an addressable set of
// named mount points. The core logic never touches a presentation tree
// directly, only this surface.
type Target interface {
	// Has reports whether the named mount point exists. Rendering into an
	// absent mount point is a harmless no-op, never a failure.
	Has(widget string) bool

	// Write places a widget's payload into its mount point.
	Write(ctx context.Context, widget string, payload any) error
}

// MemTarget is an in-memory Target used by the HTTP server and tests.
// If mounts is nil every widget is considered mounted.
type MemTarget struct {
	mu       sync.Mutex
	mounts   map[string]bool
	payloads map[string]any
}

// NewMemTarget creates a MemTarget. With no arguments every mount point
// exists; otherwise only the named widgets are mounted.
func NewMemTarget(mounts ...string) *MemTarget {
	t := &MemTarget{payloads: make(map[string]any)}
	if len(mounts) > 0 {
		t.mounts = make(map[string]bool, len(mounts))
		for _, m := range mounts {
			t.mounts[m] = true
		}
	}
	return t
}

// Has reports whether the widget's mount point exists.
func (t *MemTarget) Has(widget string) bool {
	if t.mounts == nil {
		return true
	}
	return t.mounts[widget]
}

// Write stores the payload under the widget name.
func (t *MemTarget) Write(_ context.Context, widget string, payload any) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.payloads[widget] = payload
	return nil
}

// Payloads returns a copy of everything written so far.
func (t *MemTarget) Payloads() map[string]any {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make(map[string]any, len(t.payloads))
	for k, v := range t.payloads {
		out[k] = v
	}
	return out
}

// DirTarget writes each widget payload as pretty-printed JSON to
// <dir>/<widget>.json.
type DirTarget struct {
	dir string
}

// NewDirTarget creates the output directory if needed and returns a target
// writing into it.
func NewDirTarget(dir string) (*DirTarget, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, eris.Wrapf(err, "render: create output dir %s", dir)
	}
	return &DirTarget{dir: dir}, nil
}

// Has always reports true: a directory can hold any widget file.
func (t *DirTarget) Has(string) bool { return true }

// Write marshals the payload and writes it to the widget's file.
func (t *DirTarget) Write(_ context.Context, widget string, payload any) error {
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return eris.Wrapf(err, "render: marshal widget %s", widget)
	}
	path := filepath.Join(t.dir, widget+".json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return eris.Wrapf(err, "render: write widget %s", widget)
	}
	return nil
}
