// Package chaintest provides an in-process JSON-RPC node for tests.
package chaintest

import (
	"crypto/sha256"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"

	"github.com/gagliardetto/solana-go"
)

type rpcRequest struct {
	ID     json.RawMessage `json:"id"`
	Method string          `json:"method"`
	Params []any           `json:"params"`
}

// Node answers getLatestBlockhash and getHealth. It counts every call and
// can be switched into an outage where each call fails.
type Node struct {
	*httptest.Server

	Blockhash solana.Hash

	calls   atomic.Int64
	failing atomic.Int64 // calls left to fail, -1 for all

	mu      sync.Mutex
	methods []string
}

func NewNode() *Node {
	n := &Node{
		Blockhash: solana.Hash(sha256.Sum256([]byte("chaintest blockhash"))),
	}
	n.Server = httptest.NewServer(http.HandlerFunc(n.serve))
	return n
}

// Calls is the number of JSON-RPC requests served so far.
func (n *Node) Calls() int64 {
	return n.calls.Load()
}

func (n *Node) Methods() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.methods...)
}

// FailNext makes the next k calls fail; k < 0 fails every call.
func (n *Node) FailNext(k int64) {
	n.failing.Store(k)
}

func (n *Node) serve(w http.ResponseWriter, r *http.Request) {
	n.calls.Add(1)

	var req rpcRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	n.mu.Lock()
	n.methods = append(n.methods, req.Method)
	n.mu.Unlock()

	id := req.ID
	if len(id) == 0 {
		id = json.RawMessage("1")
	}
	w.Header().Set("Content-Type", "application/json")

	if left := n.failing.Load(); left != 0 {
		if left > 0 {
			n.failing.Add(-1)
		}
		w.WriteHeader(http.StatusServiceUnavailable)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"jsonrpc": "2.0",
			"id":      id,
			"error":   map[string]any{"code": -32005, "message": "Node is unhealthy"},
		})
		return
	}

	var result any
	switch req.Method {
	case "getLatestBlockhash":
		result = map[string]any{
			"context": map[string]any{"slot": 1000},
			"value": map[string]any{
				"blockhash":            n.Blockhash.String(),
				"lastValidBlockHeight": 1150,
			},
		}
	case "getHealth":
		result = "ok"
	default:
		_ = json.NewEncoder(w).Encode(map[string]any{
			"jsonrpc": "2.0",
			"id":      id,
			"error":   map[string]any{"code": -32601, "message": "Method not found"},
		})
		return
	}

	_ = json.NewEncoder(w).Encode(map[string]any{
		"jsonrpc": "2.0",
		"id":      id,
		"result":  result,
	})
}
