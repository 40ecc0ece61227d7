// Package core composes the graph model, search engine and selection state
// machine behind a single facade, and orchestrates path requests against the
// remote graph service. It is constructed once at the composition root and
// handed to consumers explicitly; there is no ambient global state.
package core

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"skilltree-backend/application/search"
	"skilltree-backend/application/selection"
	"skilltree-backend/domain/graph"
	"skilltree-backend/pkg/errors"
	"skilltree-backend/pkg/observability"
)

// TreeService is the remote capability owned by the external graph service
type TreeService interface {
	// FetchTree returns the complete universal tree
	FetchTree(ctx context.Context) (*graph.Tree, error)

	// FetchPath returns the induced path subgraph from startID to targetID
	FetchPath(ctx context.Context, startID, targetID string) (*graph.Tree, error)
}

// Core holds the universal tree and all selection state. All state
// transitions are serialized through its mutex; the selection reducer itself
// stays pure and lock-free.
type Core struct {
	svc         TreeService
	entryNodeID string
	metrics     *observability.Collector
	logger      *zap.Logger

	mu        sync.Mutex
	universal *graph.Tree
	loaded    bool
	loadErr   error

	state        selection.State
	lastSearch   search.Result
	activePath   *graph.Tree
	requestToken uint64
}

// New creates a core instance. The entry node ID is the graph's designated
// "no skills yet" starting point and must be supplied as configuration; it
// is never discovered from the graph itself.
func New(svc TreeService, entryNodeID string, metrics *observability.Collector, logger *zap.Logger) *Core {
	return &Core{
		svc:         svc,
		entryNodeID: entryNodeID,
		metrics:     metrics,
		logger:      logger,
		state:       selection.NewState(),
	}
}

// Load fetches the universal tree once. A failure is fatal for the session's
// search/graph experience: the error is stored and surfaced through Snapshot
// until a later Load succeeds. No automatic retry is performed here.
func (c *Core) Load(ctx context.Context) error {
	tree, err := c.svc.FetchTree(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()

	if err != nil {
		c.loaded = false
		c.loadErr = err
		c.logger.Error("Failed to load universal tree", zap.Error(err))
		return err
	}

	// Wholesale replacement: the previous tree and all derived selection
	// state are discarded together.
	c.universal = tree
	c.loaded = true
	c.loadErr = nil
	c.state = selection.NewState()
	c.lastSearch = search.Result{}
	c.activePath = nil
	c.requestToken++

	c.logger.Info("Universal tree loaded",
		zap.Int("nodes", len(tree.Nodes)),
		zap.Int("links", len(tree.Links)),
	)

	return nil
}

// Search confirms a search for the given term. An empty (or all-whitespace)
// term deactivates the search without clearing the path; a non-empty term
// re-derives the search highlights and clears any active path and selected
// target. Zero matches is a valid result, not an error.
func (c *Core) Search(term string) (search.Result, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.loaded {
		return search.Result{}, c.treeUnavailable()
	}

	result := search.Search(term, c.universal)
	if !result.Active {
		// Query textbox cleared: search becomes inactive, nothing else moves.
		c.state = c.state.ClearSearch()
		c.lastSearch = result
		return result, nil
	}

	c.state = c.state.ConfirmSearch(result.NodeIDs())
	c.lastSearch = result
	c.activePath = nil
	// Invalidate any in-flight path request.
	c.requestToken++

	c.metrics.SearchesTotal.Inc()
	if result.IsEmpty() {
		c.metrics.SearchesNoResults.Inc()
	}

	c.logger.Debug("Search confirmed",
		zap.String("query", result.Query),
		zap.Int("matches", len(result.Nodes)),
	)

	return result, nil
}

// ToggleManual flips the manual highlight of a node
func (c *Core) ToggleManual(nodeID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.loaded {
		return c.treeUnavailable()
	}
	if !c.universal.HasNode(nodeID) {
		return errors.NewNotFoundError("node")
	}

	c.state = c.state.ToggleManual(nodeID)
	return nil
}

// SelectResult marks a node from the current search results as the path
// target. Selecting a node that is not a current search result is rejected.
func (c *Core) SelectResult(nodeID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.loaded {
		return c.treeUnavailable()
	}

	if !c.lastSearch.Active {
		return errors.NewConflictError("no active search to select a result from")
	}
	found := false
	for _, n := range c.lastSearch.Nodes {
		if n.ID == nodeID {
			found = true
			break
		}
	}
	if !found {
		return errors.NewValidationError("node is not a current search result")
	}

	c.state = c.state.SelectTarget(nodeID)
	return nil
}

func (c *Core) treeUnavailable() error {
	if c.loadErr != nil {
		return errors.NewTreeUnavailableError(c.loadErr)
	}
	return errors.NewTreeUnavailableError(nil)
}
