package treeservice

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"skilltree-backend/domain/graph"
	pkgerrors "skilltree-backend/pkg/errors"
	"skilltree-backend/pkg/observability"
)

const treeBody = `{
	"nodes": [
		{"id": "E", "type": "skill", "name": "no skills yet"},
		{"id": "2", "type": "skill", "name": "React"}
	],
	"links": [
		{"id": "l1", "source": "E", "target": "2"}
	]
}`

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client := NewClient(srv.URL, 2*time.Second, observability.NewCollector("skilltree"), zap.NewNop())
	return client, srv
}

func TestFetchTreeSuccess(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/tree", r.URL.Path)
		assert.Equal(t, http.MethodGet, r.Method)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(treeBody))
	}))

	tree, err := client.FetchTree(context.Background())
	require.NoError(t, err)
	require.Len(t, tree.Nodes, 2)
	assert.Equal(t, graph.NodeTypeSkill, tree.Nodes[1].Type)
	assert.Len(t, tree.Links, 1)
}

func TestFetchTreeNonSuccessStatus(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	_, err := client.FetchTree(context.Background())
	require.Error(t, err)
	assert.True(t, pkgerrors.IsTreeUnavailable(err))
}

func TestFetchTreeNonJSONBody(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>not json</html>"))
	}))

	_, err := client.FetchTree(context.Background())
	require.Error(t, err)
	assert.True(t, pkgerrors.IsTreeUnavailable(err))
}

func TestFetchTreeMalformedGraph(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Link references a node that does not exist
		w.Write([]byte(`{
			"nodes": [{"id": "E", "type": "skill", "name": "no skills yet"}],
			"links": [{"id": "l1", "source": "E", "target": "ghost"}]
		}`))
	}))

	_, err := client.FetchTree(context.Background())
	require.Error(t, err)
	assert.True(t, pkgerrors.IsMalformedGraph(err))
}

func TestFetchTreeNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close() // connection refused from here on

	client := NewClient(srv.URL, time.Second, observability.NewCollector("skilltree"), zap.NewNop())

	_, err := client.FetchTree(context.Background())
	require.Error(t, err)
	assert.True(t, pkgerrors.IsTreeUnavailable(err))
}

func TestFetchPathSuccess(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/paths/E/2", r.URL.Path)
		w.Write([]byte(treeBody))
	}))

	tree, err := client.FetchPath(context.Background(), "E", "2")
	require.NoError(t, err)
	assert.Len(t, tree.Nodes, 2)
}

func TestFetchPathNonSuccessStatusIsFailureNotEmptyPath(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "no such target", http.StatusNotFound)
	}))

	tree, err := client.FetchPath(context.Background(), "E", "missing")
	require.Error(t, err)
	assert.Nil(t, tree)
	assert.True(t, pkgerrors.IsPathRequestFailed(err))
}

func TestFetchPathEscapesIDs(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/paths/E/a%20b", r.URL.EscapedPath())
		w.Write([]byte(`{"nodes": [], "links": []}`))
	}))

	_, err := client.FetchPath(context.Background(), "E", "a b")
	require.NoError(t, err)
}
