package chain

import (
	"encoding/json"
	"time"

	"github.com/pkg/errors"
	"github.com/valyala/fasthttp"
)

type rpcHealthResponse struct {
	Result string `json:"result"`
	Error  *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

var getHealthBody = []byte(`{"jsonrpc":"2.0","id":1,"method":"getHealth"}`)

// CheckHealth asks the node at endpoint for getHealth and returns its answer,
// normally "ok". Unhealthy nodes answer with a JSON-RPC error.
func CheckHealth(endpoint string, timeout time.Duration) (string, error) {
	req := fasthttp.AcquireRequest()
	defer fasthttp.ReleaseRequest(req)
	req.SetRequestURI(endpoint)
	req.Header.SetMethod(fasthttp.MethodPost)
	req.Header.SetContentType("application/json")
	req.SetBody(getHealthBody)

	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseResponse(resp)

	if err := fasthttp.DoTimeout(req, resp, timeout); err != nil {
		return "", errors.Wrap(err, "getHealth")
	}
	if code := resp.StatusCode(); code != fasthttp.StatusOK {
		return "", errors.Errorf("getHealth: http status %d", code)
	}

	var out rpcHealthResponse
	if err := json.Unmarshal(resp.Body(), &out); err != nil {
		return "", errors.Wrap(err, "decode getHealth")
	}
	if out.Error != nil {
		return "", errors.Errorf("getHealth: %d %s", out.Error.Code, out.Error.Message)
	}
	return out.Result, nil
}
