package config

import "context"

// Loader is the interface for a format-specific trips loader.
type Loader interface {
	// Load reads every trips file found at paths and merges them into a
	// single batch, preserving declaration order.
	Load(ctx context.Context, paths ...string) (*Batch, error)
}
