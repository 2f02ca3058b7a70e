package hcl

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/perdiem/internal/config"
	"github.com/vk/perdiem/internal/ctxlog"
	"github.com/vk/perdiem/internal/fsutil"
	"github.com/vk/perdiem/internal/trip"
)

// ErrNoFiles is returned when none of the given paths contain a .hcl file.
var ErrNoFiles = errors.New("no .hcl files found")

// Loader is the HCL implementation of config.Loader.
type Loader struct{}

var _ config.Loader = (*Loader)(nil)

// NewLoader creates a new HCL trips loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses every .hcl file found at paths, in order, and merges their
// trips into a single batch. A path may be a file or a directory.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Batch, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	files, err := l.findAllHCLFiles(paths)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w in %v", ErrNoFiles, paths)
	}
	logger.Debug("Discovered HCL files.", "count", len(files))

	batch := config.NewBatch()
	rateOrigin := make(map[trip.Tier]string)
	parser := hclparse.NewParser()

	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}

		var root fileRoot
		diags = gohcl.DecodeBody(hclFile.Body, nil, &root)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
		}

		for _, rb := range root.Rates {
			tier, rates, err := translateRates(ctx, rb)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", file, err)
			}
			if prev, dup := rateOrigin[tier]; dup {
				return nil, fmt.Errorf("%s: rates %q already declared in %s", file, rb.Tier, prev)
			}
			rateOrigin[tier] = file
			batch.Rates[tier] = rates
		}

		for _, tb := range root.Trips {
			batch.Tuples = append(batch.Tuples, translateTrip(file, tb))
		}
		logger.Debug("Loaded trips file.", "file", file, "trips", len(root.Trips), "rates", len(root.Rates))
	}

	logger.Debug("HCL loading complete.", "trips", len(batch.Tuples), "rate_overrides", len(batch.Rates))
	return batch, nil
}

// findAllHCLFiles expands paths into a de-duplicated list of .hcl files.
// Files inside a directory are returned in lexical order.
func (l *Loader) findAllHCLFiles(paths []string) ([]string, error) {
	var allFiles []string
	seen := make(map[string]struct{})
	add := func(p string) {
		if _, wasSeen := seen[p]; !wasSeen {
			allFiles = append(allFiles, p)
			seen[p] = struct{}{}
		}
	}

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("error accessing path %s: %w", path, err)
		}

		if !info.IsDir() {
			if filepath.Ext(path) != ".hcl" {
				return nil, fmt.Errorf("%s is not a .hcl file", path)
			}
			add(path)
			continue
		}

		found, err := fsutil.FindFilesByExtension(path, ".hcl")
		if err != nil {
			return nil, err
		}
		sort.Strings(found)
		for _, f := range found {
			add(f)
		}
	}
	return allFiles, nil
}
