// Package loader retrieves the portfolio data files as one concurrent,
// failure-tolerant batch.
//
// A batch always has exactly one slot per Resource, positionally aligned
// with the locators it was built from. A failed retrieval resolves its own
// slot to an error and never affects its siblings. There are no retries
// and no timeouts beyond the caller's context.
package loader

import (
	"context"
	"log/slog"
	"sync"
)

// Resource identifies one slot of a batch
type Resource int

const (
	Projects Resource = iota
	Timeline
	SiteConfig
	Skills
	Experiences

	resourceCount
)

var resourceNames = [resourceCount]string{"projects", "timeline", "config", "skills", "experiences"}

func (r Resource) String() string {
	if r < 0 || r >= resourceCount {
		return "unknown"
	}
	return resourceNames[r]
}

// Locators holds one resource locator per slot
type Locators [resourceCount]string

// DefaultLocators are the data file paths relative to the site root
var DefaultLocators = Locators{
	Projects:    "data/projects.json",
	Timeline:    "data/timeline.json",
	SiteConfig:  "data/config.json",
	Skills:      "data/skills.json",
	Experiences: "data/experiences.json",
}

// Slot is the raw outcome of one retrieval
type Slot struct {
	Resource Resource
	Locator  string
	Data     []byte
	Err      error
}

// OK reports whether the retrieval succeeded
func (s Slot) OK() bool {
	return s.Err == nil
}

// Batch is the fixed-shape result of Fetch
type Batch [resourceCount]Slot

// Loader issues fetch batches against a Source
type Loader struct {
	source   Source
	locators Locators
	logger   *slog.Logger
}

// Option configures a Loader
type Option func(*Loader)

// WithLocators overrides DefaultLocators
func WithLocators(locators Locators) Option {
	return func(l *Loader) {
		l.locators = locators
	}
}

// WithLogger sets the logger used for fetch diagnostics
func WithLogger(logger *slog.Logger) Option {
	return func(l *Loader) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// New creates a Loader reading from source
func New(source Source, opts ...Option) *Loader {
	l := &Loader{
		source:   source,
		locators: DefaultLocators,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(l)
		}
	}
	return l
}

// Locators returns the locators this loader fetches
func (l *Loader) Locators() Locators {
	return l.locators
}

// Fetch retrieves every locator concurrently and waits for all of them to
// settle.
func (l *Loader) Fetch(ctx context.Context) Batch {
	var (
		batch Batch
		wg    sync.WaitGroup
	)

	for i := range l.locators {
		res := Resource(i)
		batch[res] = Slot{Resource: res, Locator: l.locators[res]}

		wg.Add(1)
		go func(slot *Slot) {
			defer wg.Done()
			slot.Data, slot.Err = l.source.Fetch(ctx, slot.Locator)
			if slot.Err != nil {
				l.logger.Warn("could not fetch data",
					"resource", slot.Resource.String(),
					"locator", slot.Locator,
					"error", slot.Err,
				)
			}
		}(&batch[res])
	}

	wg.Wait()
	return batch
}
