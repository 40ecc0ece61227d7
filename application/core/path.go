package core

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"skilltree-backend/domain/graph"
	"skilltree-backend/pkg/errors"
)

// RequestPath asks the remote graph service for the learning path from the
// configured entry node to the currently selected target and installs the
// returned subgraph as the active path.
//
// Search highlights and any previous path are cleared before the request is
// issued, so stale highlights never linger while it is in flight. On failure
// the state stays in "no path"; the error is reported to the caller but the
// target remains selected so the action can be retried.
//
// Each request carries a monotonically increasing token. A response whose
// token is no longer the latest (a newer search or path request happened
// meanwhile) is discarded instead of re-installing a stale path.
func (c *Core) RequestPath(ctx context.Context) (*graph.Tree, error) {
	c.mu.Lock()

	if !c.loaded {
		c.mu.Unlock()
		return nil, c.treeUnavailable()
	}

	targetID := c.state.SelectedTargetID
	if targetID == "" {
		// Caller-side gating should prevent this; treat it as a no-op.
		c.mu.Unlock()
		return nil, errors.NewConflictError("no search result selected as path target")
	}

	c.state = c.state.BeginPathRequest()
	c.activePath = nil
	c.requestToken++
	token := c.requestToken
	startID := c.entryNodeID

	c.mu.Unlock()

	requestID := uuid.New().String()
	c.metrics.PathRequestsTotal.Inc()
	c.logger.Info("Requesting path",
		zap.String("requestID", requestID),
		zap.String("startID", startID),
		zap.String("targetID", targetID),
	)

	pathTree, err := c.svc.FetchPath(ctx, startID, targetID)

	c.mu.Lock()
	defer c.mu.Unlock()

	if token != c.requestToken {
		// A newer search or path request superseded this one while the
		// response was in flight.
		c.metrics.StalePathResponses.Inc()
		c.logger.Warn("Discarding superseded path response",
			zap.String("requestID", requestID),
			zap.String("targetID", targetID),
		)
		return nil, errors.NewConflictError("path request superseded by a newer request")
	}

	if err != nil {
		// The path stays cleared; never partially applied.
		c.metrics.PathRequestFailures.Inc()
		c.logger.Error("Path request failed",
			zap.String("requestID", requestID),
			zap.String("startID", startID),
			zap.String("targetID", targetID),
			zap.Error(err),
		)
		if errors.IsAppError(err) {
			return nil, err
		}
		return nil, errors.NewPathRequestFailedError(startID, targetID, err)
	}

	c.state = c.state.InstallPath(pathTree)
	c.activePath = pathTree

	c.logger.Info("Path installed",
		zap.String("requestID", requestID),
		zap.String("targetID", targetID),
		zap.Int("nodes", len(pathTree.Nodes)),
	)

	return pathTree, nil
}
