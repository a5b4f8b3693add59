package client

import (
	"net/url"

	"github.com/anyswap/ripple-address-codec/internal/codecapi"
	"github.com/anyswap/ripple-address-codec/params"
)

const serviceName = "codec."

// GetVersionInfo call codec.GetVersionInfo
func (c *Client) GetVersionInfo() (*params.VersionInfo, error) {
	var result params.VersionInfo
	err := c.RPCPost(&result, serviceName+"GetVersionInfo")
	return &result, err
}

// EncodeAccountID call codec.EncodeAccountID
func (c *Client) EncodeAccountID(accountID string) (*codecapi.AddressInfo, error) {
	var result codecapi.AddressInfo
	err := c.RPCPost(&result, serviceName+"EncodeAccountID", accountID)
	return &result, err
}

// DecodeAccountID call codec.DecodeAccountID
func (c *Client) DecodeAccountID(address string) (*codecapi.AddressInfo, error) {
	var result codecapi.AddressInfo
	err := c.RPCPost(&result, serviceName+"DecodeAccountID", address)
	return &result, err
}

// IsValidAddress call codec.IsValidAddress
func (c *Client) IsValidAddress(address string) (*codecapi.ValidateResult, error) {
	var result codecapi.ValidateResult
	err := c.RPCPost(&result, serviceName+"IsValidAddress", address)
	return &result, err
}

// EncodeSeed call codec.EncodeSeed
func (c *Client) EncodeSeed(entropy, seedType string) (*codecapi.SeedInfo, error) {
	var result codecapi.SeedInfo
	args := &codecapi.EncodeSeedArgs{Entropy: entropy, Type: seedType}
	err := c.RPCPost(&result, serviceName+"EncodeSeed", args)
	return &result, err
}

// DecodeSeed call codec.DecodeSeed
func (c *Client) DecodeSeed(seed string) (*codecapi.SeedInfo, error) {
	var result codecapi.SeedInfo
	err := c.RPCPost(&result, serviceName+"DecodeSeed", seed)
	return &result, err
}

// Encode call codec.Encode
func (c *Client) Encode(kind, payload string) (*codecapi.EncodedInfo, error) {
	var result codecapi.EncodedInfo
	args := &codecapi.EncodeArgs{Kind: kind, Payload: payload}
	err := c.RPCPost(&result, serviceName+"Encode", args)
	return &result, err
}

// Decode call codec.Decode
func (c *Client) Decode(kind, encoded string) (*codecapi.EncodedInfo, error) {
	var result codecapi.EncodedInfo
	args := &codecapi.DecodeArgs{Kind: kind, Encoded: encoded}
	err := c.RPCPost(&result, serviceName+"Decode", args)
	return &result, err
}

// Identify call codec.Identify
func (c *Client) Identify(encoded string) (*codecapi.EncodedInfo, error) {
	var result codecapi.EncodedInfo
	err := c.RPCPost(&result, serviceName+"Identify", encoded)
	return &result, err
}

// ValidateAddress get '/address/{address}/valid'
func (c *Client) ValidateAddress(address string) (*codecapi.ValidateResult, error) {
	var result codecapi.ValidateResult
	err := c.RPCGet(&result, "/address/"+url.PathEscape(address)+"/valid", nil)
	return &result, err
}
