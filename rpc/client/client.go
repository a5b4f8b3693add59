// Package client provides methods to call a remote codec server.
package client

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	defaultTimeout   = 60 // seconds
	defaultRequestID = 1
)

// Request json rpc request
type Request struct {
	Method  string
	Params  interface{}
	Timeout int
	ID      int
}

// NewRequest creates a request with default timeout and id
func NewRequest(method string, params ...interface{}) *Request {
	return &Request{
		Method:  method,
		Params:  params,
		Timeout: defaultTimeout,
		ID:      defaultRequestID,
	}
}

// RequestBody json rpc request body
type RequestBody struct {
	Version string      `json:"jsonrpc"`
	Method  string      `json:"method"`
	Params  interface{} `json:"params"`
	ID      int         `json:"id"`
}

// JSONError json rpc error object
type JSONError struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func (err *JSONError) Error() string {
	return fmt.Sprintf("json-rpc error %d, %s", err.Code, err.Message)
}

type jsonrpcResponse struct {
	Version string          `json:"jsonrpc,omitempty"`
	ID      json.RawMessage `json:"id,omitempty"`
	Error   *JSONError      `json:"error,omitempty"`
	Result  json.RawMessage `json:"result,omitempty"`
}

// Client codec server client
type Client struct {
	endpoint string
	client   *resty.Client
}

// NewClient creates a client of the server at endpoint
func NewClient(endpoint string) (*Client, error) {
	endpointURL, err := url.Parse(endpoint)
	if err != nil {
		return nil, err
	}
	if endpointURL.Scheme == "" || endpointURL.Host == "" {
		return nil, fmt.Errorf("invalid endpoint %q", endpoint)
	}
	return &Client{
		endpoint: strings.TrimSuffix(endpointURL.String(), "/"),
		client:   resty.New().SetTimeout(defaultTimeout * time.Second),
	}, nil
}

// Endpoint returns the server endpoint
func (c *Client) Endpoint() string {
	return c.endpoint
}

// RPCPost calls method on the '/rpc' path
func (c *Client) RPCPost(result interface{}, method string, params ...interface{}) error {
	return c.RPCPostRequest(NewRequest(method, params...), result)
}

// RPCPostRequest posts req and stores the json rpc result in result
func (c *Client) RPCPostRequest(req *Request, result interface{}) error {
	reqBody := &RequestBody{
		Version: "2.0",
		Method:  req.Method,
		Params:  req.Params,
		ID:      req.ID,
	}
	resp, err := c.client.R().
		SetHeader("Content-Type", "application/json").
		SetBody(reqBody).
		Post(c.endpoint + "/rpc")
	if err != nil {
		return fmt.Errorf("POST request error: %w (method: %v)", err, req.Method)
	}
	if resp.StatusCode() != 200 {
		return fmt.Errorf("wrong response status %v. message: %v", resp.StatusCode(), string(resp.Body()))
	}

	var jsonResp jsonrpcResponse
	err = json.Unmarshal(resp.Body(), &jsonResp)
	if err != nil {
		return fmt.Errorf("unmarshal body error: %w", err)
	}
	if jsonResp.Error != nil {
		return jsonResp.Error
	}
	err = json.Unmarshal(jsonResp.Result, result)
	if err != nil {
		return fmt.Errorf("unmarshal result error: %w", err)
	}
	return nil
}

// RPCGet gets path of the rest api and stores the json response in result
func (c *Client) RPCGet(result interface{}, path string, params map[string]string) error {
	resp, err := c.client.R().
		SetQueryParams(params).
		Get(c.endpoint + path)
	if err != nil {
		return fmt.Errorf("GET request error: %w (path: %v)", err, path)
	}
	if resp.StatusCode() != 200 {
		var errResp JSONError
		if json.Unmarshal(resp.Body(), &errResp) == nil && errResp.Message != "" {
			return &errResp
		}
		return fmt.Errorf("error response status: %v (path: %v)", resp.StatusCode(), path)
	}
	err = json.Unmarshal(resp.Body(), result)
	if err != nil {
		return fmt.Errorf("unmarshal result error: %w", err)
	}
	return nil
}
