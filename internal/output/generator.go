// Package output renders injector models and writes them as Java sources.
package output

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/sghaida/knife/inject"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Result describes one generated file.
type Result struct {
	// Path is the written file, <dir>/<package path>/<ClassName>.java.
	Path string
	FQCN string

	// Digest is the hex sha256 of the rendered source.
	Digest string

	// Unchanged is true when the file already held identical content and
	// was left alone.
	Unchanged bool
}

// Generator renders snapshots and writes them under a root directory.
type Generator struct {
	dir     string
	workers int
	perm    os.FileMode
	logger  *zap.Logger

	// locks serializes writes per output path.
	locks sync.Map
}

// Option configures a Generator.
type Option func(*Generator)

// WithWorkers bounds how many classes are rendered and written at once.
// Values below 1 mean one.
func WithWorkers(n int) Option {
	return func(g *Generator) {
		if n < 1 {
			n = 1
		}
		g.workers = n
	}
}

// WithLogger sets the logger. nil keeps the no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(g *Generator) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithFileMode sets the permissions of written files.
func WithFileMode(perm os.FileMode) Option {
	return func(g *Generator) { g.perm = perm }
}

// NewGenerator returns a generator writing below dir.
func NewGenerator(dir string, opts ...Option) *Generator {
	g := &Generator{
		dir:     dir,
		workers: 1,
		perm:    0o644,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// PathFor returns where the source for snap is written.
func (g *Generator) PathFor(snap *inject.Snapshot) string {
	pkgDir := filepath.FromSlash(strings.ReplaceAll(snap.PackageName(), ".", "/"))
	return filepath.Join(g.dir, pkgDir, snap.ClassName()+".java")
}

// Generate renders and writes every snapshot. Work stops at the first error
// or when ctx is cancelled. Results are sorted by path.
func (g *Generator) Generate(ctx context.Context, snaps []*inject.Snapshot) ([]Result, error) {
	results := make([]Result, len(snaps))

	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(g.workers)

	for i, snap := range snaps {
		i, snap := i, snap
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := g.write(snap)
			if err != nil {
				return fmt.Errorf("generate %s: %w", snap.FQCN(), err)
			}
			results[i] = res
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(results, func(i, j int) bool { return results[i].Path < results[j].Path })
	return results, nil
}

func (g *Generator) write(snap *inject.Snapshot) (Result, error) {
	path := g.PathFor(snap)
	src := []byte(snap.Render())
	sum := sha256.Sum256(src)
	res := Result{Path: path, FQCN: snap.FQCN(), Digest: hex.EncodeToString(sum[:])}

	mu, _ := g.locks.LoadOrStore(path, &sync.Mutex{})
	mu.(*sync.Mutex).Lock()
	defer mu.(*sync.Mutex).Unlock()

	existing, err := readFile(path)
	switch {
	case err == nil && bytes.Equal(existing, src):
		res.Unchanged = true
		g.logger.Debug("injector unchanged", zap.String("path", path), zap.String("class", res.FQCN))
		return res, nil
	case err != nil && !errors.Is(err, os.ErrNotExist):
		return res, err
	}

	if err := mkdirAll(filepath.Dir(path), 0o755); err != nil {
		return res, err
	}
	if err := WriteFileAtomic(path, src, g.perm); err != nil {
		return res, err
	}

	g.logger.Info("injector written",
		zap.String("path", path),
		zap.String("class", res.FQCN),
		zap.Int("bytes", len(src)),
		zap.String("sha256", res.Digest),
	)
	return res, nil
}
