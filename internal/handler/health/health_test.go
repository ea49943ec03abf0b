package health

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"favorites-tx/internal/chain/chaintest"
	"favorites-tx/internal/config"
	"favorites-tx/internal/errorx"
	"favorites-tx/internal/favorites"
	"favorites-tx/internal/svc"
	"favorites-tx/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func get(node *chaintest.Node) *httptest.ResponseRecorder {
	return serve(node, httptest.NewRequest(http.MethodGet, "/api/health", nil))
}

func serve(node *chaintest.Node, r *http.Request) *httptest.ResponseRecorder {
	h := Health(svc.NewServiceContext(config.Config{
		Chain: config.ChainConf{
			RpcEndpointUrl: node.URL,
			ProgramAddress: favorites.DefaultProgramID.String(),
			Commitment:     "confirmed",
			HealthTimeout:  1000,
		},
	}))
	w := httptest.NewRecorder()
	h(w, r)
	return w
}

func TestHealth(t *testing.T) {
	node := chaintest.NewNode()
	defer node.Close()

	w := get(node)
	require.Equal(t, http.StatusOK, w.Code)
	var resp types.HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, types.HealthResponse{Status: "ok", Rpc: "ok"}, resp)
	assert.Equal(t, []string{"getHealth"}, node.Methods())
}

func TestHealthNodeDown(t *testing.T) {
	node := chaintest.NewNode()
	defer node.Close()
	node.FailNext(-1)

	w := get(node)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	var resp types.HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "unavailable", resp.Status)
	assert.NotEmpty(t, resp.Rpc)
}

func TestHealthBadRequestBody(t *testing.T) {
	node := chaintest.NewNode()
	defer node.Close()

	r := httptest.NewRequest(http.MethodGet, "/api/health", strings.NewReader("{"))
	r.Header.Set("Content-Type", "application/json")
	w := serve(node, r)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp errorx.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, errorx.MsgBadRequest, resp.Error)
	assert.NotEqual(t, errorx.MsgCreateFailed, resp.Error)
	assert.Zero(t, node.Calls())
}
