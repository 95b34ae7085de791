// SPDX-License-Identifier: MIT

package bfs

import (
	"context"
	"errors"
)

var (
	// ErrStartVertexNotFound is returned when the start vertex is absent.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrGraphNil is returned when the graph pointer is nil.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrDisconnected is returned by distance summaries when some vertex is
	// unreachable.
	ErrDisconnected = errors.New("bfs: graph is disconnected")
)

// Option configures BFS.
type Option func(*BFSOptions)

// BFSOptions holds the BFS configuration.
type BFSOptions struct {
	// Ctx cancels the traversal between vertices.
	Ctx context.Context

	// OnVisit is called on visit in BFS order; an error aborts the traversal.
	OnVisit func(id string, depth int) error
}

// DefaultOptions returns a no-op visit hook and a background context.
func DefaultOptions() BFSOptions {
	return BFSOptions{
		Ctx:     context.Background(),
		OnVisit: func(string, int) error { return nil },
	}
}

// WithContext sets the cancellation context; nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit sets the visit hook; nil is ignored.
func WithOnVisit(fn func(id string, depth int) error) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// BFSResult is the outcome of a traversal.
type BFSResult struct {
	// Order is the visit sequence.
	Order []string
	// Depth maps each reached vertex to its distance from the start.
	Depth map[string]int
}

// Eccentricity is the depth of the last visited vertex.
func (r *BFSResult) Eccentricity() int {
	if len(r.Order) == 0 {
		return 0
	}
	return r.Depth[r.Order[len(r.Order)-1]]
}
