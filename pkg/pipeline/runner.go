package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/ifcwalk/ifcwalk/pkg/cache"
	"github.com/ifcwalk/ifcwalk/pkg/errors"
	"github.com/ifcwalk/ifcwalk/pkg/hierarchy"
	"github.com/ifcwalk/ifcwalk/pkg/ifc"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and server use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger. Multiple
// goroutines can safely use the same Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete load → tree → render pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	r.applyLogger(&opts)

	result := &Result{
		Artifacts: make(map[string][]byte),
	}

	// Stage 1: load
	loadStart := time.Now()
	m, modelHash, loadHit, err := r.LoadModelWithCacheInfo(ctx, opts)
	if err != nil {
		return nil, err
	}
	result.Model = m
	result.ModelHash = modelHash
	result.Stats.LoadTime = time.Since(loadStart)
	result.Stats.EntityCount = m.Len()
	result.CacheInfo.LoadHit = loadHit

	r.Logger.Info("loaded model",
		"path", opts.Path,
		"entities", m.Len(),
		"duration", result.Stats.LoadTime)

	// Stage 2: tree
	treeStart := time.Now()
	tree, treeJSON, treeHit, err := r.BuildTreeWithCacheInfo(ctx, m, modelHash, opts)
	if err != nil {
		return nil, err
	}
	result.Tree = tree
	result.Stats.TreeTime = time.Since(treeStart)
	result.Stats.NodeCount = tree.Count()
	result.CacheInfo.TreeHit = treeHit

	r.Logger.Info("built hierarchy",
		"nodes", tree.Count(),
		"depth", tree.MaxDepth(),
		"duration", result.Stats.TreeTime)

	// Stage 3: render
	renderStart := time.Now()
	artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, m, tree, treeJSON, modelHash, opts)
	if err != nil {
		return nil, err
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	r.Logger.Info("rendered artifacts",
		"artifacts", opts.artifactNames(),
		"duration", result.Stats.RenderTime)

	return result, nil
}

// LoadModelWithCacheInfo loads the model and returns its content hash and
// cache hit info. The cached value is the canonical encoding, so a hit
// parses an already normalized file.
func (r *Runner) LoadModelWithCacheInfo(ctx context.Context, opts Options) (*ifc.Model, string, bool, error) {
	data, err := os.ReadFile(opts.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, "", false, errors.Wrap(errors.ErrCodeFileNotFound, err, "model file not found: %s", opts.Path)
		}
		return nil, "", false, errors.Wrap(errors.ErrCodeIO, err, "failed to read %s", opts.Path)
	}
	modelHash := cache.Hash(data)
	key := r.Keyer.ModelKey(modelHash)

	if !opts.Refresh {
		if cached, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			if m, err := ifc.Read(bytes.NewReader(cached)); err == nil {
				m.SetPath(opts.Path)
				return m, modelHash, true, nil
			}
		}
	}

	m, err := ifc.Read(bytes.NewReader(data))
	if err != nil {
		return nil, "", false, err
	}
	m.SetPath(opts.Path)

	var canonical bytes.Buffer
	if err := m.Write(&canonical); err == nil {
		_ = r.Cache.Set(ctx, key, canonical.Bytes(), cache.TTLModel)
	}

	return m, modelHash, false, nil
}

// LoadModel is a convenience wrapper that discards the cache hit info.
func (r *Runner) LoadModel(ctx context.Context, opts Options) (*ifc.Model, string, error) {
	m, hash, _, err := r.LoadModelWithCacheInfo(ctx, opts)
	return m, hash, err
}

// BuildTreeWithCacheInfo builds the hierarchy and returns it with its JSON
// form. The JSON is served from cache when the model is unchanged.
func (r *Runner) BuildTreeWithCacheInfo(ctx context.Context, m *ifc.Model, modelHash string, opts Options) (*hierarchy.Tree, []byte, bool, error) {
	tree, err := hierarchy.Build(m)
	if err != nil {
		return nil, nil, false, err
	}

	key := r.Keyer.TreeKey(modelHash)
	if !opts.Refresh {
		if cached, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			return tree, cached, true, nil
		}
	}

	data, err := json.Marshal(tree)
	if err != nil {
		return nil, nil, false, errors.Wrap(errors.ErrCodeInternal, err, "failed to serialize hierarchy")
	}
	_ = r.Cache.Set(ctx, key, data, cache.TTLTree)

	return tree, data, false, nil
}

// BuildTree is a convenience wrapper that discards the cache hit info.
func (r *Runner) BuildTree(ctx context.Context, m *ifc.Model, modelHash string, opts Options) (*hierarchy.Tree, error) {
	tree, _, _, err := r.BuildTreeWithCacheInfo(ctx, m, modelHash, opts)
	return tree, err
}

// RenderWithCacheInfo produces the requested artifacts with caching. On a
// partial cache hit everything is re-rendered; artifacts from one run stay
// consistent with each other.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, m *ifc.Model, tree *hierarchy.Tree, treeJSON []byte, modelHash string, opts Options) (map[string][]byte, bool, error) {
	names := opts.artifactNames()

	if !opts.Refresh {
		artifacts := make(map[string][]byte, len(names))
		allCached := true
		for _, name := range names {
			key := r.Keyer.ArtifactKey(modelHash, opts.artifactKeyOpts(name))
			if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
				artifacts[name] = data
			} else {
				allCached = false
				break
			}
		}
		if allCached {
			return artifacts, true, nil
		}
	}

	rendered, err := renderArtifacts(ctx, m, tree, treeJSON, opts)
	if err != nil {
		return nil, false, err
	}

	for name, data := range rendered {
		key := r.Keyer.ArtifactKey(modelHash, opts.artifactKeyOpts(name))
		_ = r.Cache.Set(ctx, key, data, cache.TTLArtifact)
	}

	return rendered, false, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
