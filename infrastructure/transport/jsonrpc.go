package transport

import (
	"context"
	"crypto/tls"
	"encoding/base64"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/ybbus/jsonrpc/v3"

	"github.com/carlosrabelo/capi/domain/entities"
	"github.com/carlosrabelo/capi/domain/ports"
)

const (
	DefaultTimeout = 120 * time.Second
	apiPath        = "/command-api"
	runCmdsMethod  = "runCmds"
)

// JSONRPCRunner submits command batches to a Command API device over
// HTTPS JSON-RPC. It implements the ports.CommandRunner port.
type JSONRPCRunner struct {
	config   entities.DeviceConfig
	endpoint string
	rpc      jsonrpc.RPCClient
}

// NewJSONRPCRunner creates a runner for the device described by cfg. The
// logical endpoint is https://<user>:<password>@<host>/command-api; the
// credentials travel as a basic auth header so they never show up in error
// messages. When cfg.Insecure is set, certificate verification is disabled
// for devices with self-signed certificates.
func NewJSONRPCRunner(cfg entities.DeviceConfig) *JSONRPCRunner {
	endpoint := url.URL{
		Scheme: "https",
		Host:   cfg.Host,
		Path:   apiPath,
	}
	httpClient := &http.Client{Timeout: DefaultTimeout}
	if cfg.Insecure {
		httpClient.Transport = &http.Transport{
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
		}
	}
	auth := base64.StdEncoding.EncodeToString([]byte(cfg.Username + ":" + cfg.Password))
	return &JSONRPCRunner{
		config:   cfg,
		endpoint: endpoint.String(),
		rpc: jsonrpc.NewClientWithOpts(endpoint.String(), &jsonrpc.RPCClientOpts{
			HTTPClient: httpClient,
			CustomHeaders: map[string]string{
				"Authorization": "Basic " + auth,
			},
		}),
	}
}

// Endpoint returns the endpoint address without credentials
func (r *JSONRPCRunner) Endpoint() string {
	return r.endpoint
}

// RunCmds submits one ordered command batch and returns one result per
// batch element. A rejection by the device is returned as
// *ports.ProtocolError; HTTP and socket failures are returned wrapped.
func (r *JSONRPCRunner) RunCmds(version int, batch []any) ([]entities.CommandResult, error) {
	response, err := r.rpc.Call(context.Background(), runCmdsMethod, version, batch)
	if err != nil {
		return nil, fmt.Errorf("rpc call to %s failed: %w", r.endpoint, err)
	}
	if response.Error != nil {
		return nil, &ports.ProtocolError{
			Code:    response.Error.Code,
			Message: response.Error.Message,
			Data:    response.Error.Data,
		}
	}
	var results []entities.CommandResult
	if err := response.GetObject(&results); err != nil {
		return nil, fmt.Errorf("malformed response from %s: %w", r.endpoint, err)
	}
	if r.config.IsRawOutputEnabled() {
		fmt.Printf("Raw results from %s: %v\n", r.endpoint, results)
	}
	return results, nil
}
