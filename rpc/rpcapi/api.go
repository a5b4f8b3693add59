package rpcapi

import (
	"net/http"

	"github.com/anyswap/ripple-address-codec/internal/codecapi"
	"github.com/anyswap/ripple-address-codec/params"
)

// RPCAPI rpc api handler
type RPCAPI struct {
	api *codecapi.API
}

// NewRPCAPI creates a rpc api handler
func NewRPCAPI(api *codecapi.API) *RPCAPI {
	return &RPCAPI{api: api}
}

// RPCNullArgs null args
type RPCNullArgs struct{}

// GetVersionInfo api
func (s *RPCAPI) GetVersionInfo(r *http.Request, args *RPCNullArgs, result *params.VersionInfo) error {
	*result = *codecapi.GetVersionInfo()
	return nil
}

// EncodeAccountID api
func (s *RPCAPI) EncodeAccountID(r *http.Request, accountID *string, result *codecapi.AddressInfo) error {
	res, err := s.api.EncodeAccountID(*accountID)
	if err == nil && res != nil {
		*result = *res
	}
	return err
}

// DecodeAccountID api
func (s *RPCAPI) DecodeAccountID(r *http.Request, address *string, result *codecapi.AddressInfo) error {
	res, err := s.api.DecodeAccountID(*address)
	if err == nil && res != nil {
		*result = *res
	}
	return err
}

// IsValidAddress api
func (s *RPCAPI) IsValidAddress(r *http.Request, address *string, result *codecapi.ValidateResult) error {
	*result = *s.api.IsValidAddress(*address)
	return nil
}

// EncodeSeed api
func (s *RPCAPI) EncodeSeed(r *http.Request, args *codecapi.EncodeSeedArgs, result *codecapi.SeedInfo) error {
	res, err := s.api.EncodeSeed(args)
	if err == nil && res != nil {
		*result = *res
	}
	return err
}

// DecodeSeed api
func (s *RPCAPI) DecodeSeed(r *http.Request, seed *string, result *codecapi.SeedInfo) error {
	res, err := s.api.DecodeSeed(*seed)
	if err == nil && res != nil {
		*result = *res
	}
	return err
}

// EncodeNodePublic api
func (s *RPCAPI) EncodeNodePublic(r *http.Request, pubkey *string, result *codecapi.EncodedInfo) error {
	res, err := s.api.EncodeNodePublic(*pubkey)
	if err == nil && res != nil {
		*result = *res
	}
	return err
}

// DecodeNodePublic api
func (s *RPCAPI) DecodeNodePublic(r *http.Request, nodePublic *string, result *codecapi.EncodedInfo) error {
	res, err := s.api.DecodeNodePublic(*nodePublic)
	if err == nil && res != nil {
		*result = *res
	}
	return err
}

// Encode api
func (s *RPCAPI) Encode(r *http.Request, args *codecapi.EncodeArgs, result *codecapi.EncodedInfo) error {
	res, err := s.api.Encode(args)
	if err == nil && res != nil {
		*result = *res
	}
	return err
}

// Decode api
func (s *RPCAPI) Decode(r *http.Request, args *codecapi.DecodeArgs, result *codecapi.EncodedInfo) error {
	res, err := s.api.Decode(args)
	if err == nil && res != nil {
		*result = *res
	}
	return err
}

// Identify api
func (s *RPCAPI) Identify(r *http.Request, encoded *string, result *codecapi.EncodedInfo) error {
	res, err := s.api.Identify(*encoded)
	if err == nil && res != nil {
		*result = *res
	}
	return err
}
