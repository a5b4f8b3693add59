package main

import (
	"github.com/anyswap/ripple-address-codec/cmd/utils"
	"github.com/anyswap/ripple-address-codec/internal/codecapi"
	"github.com/anyswap/ripple-address-codec/log"
	"github.com/anyswap/ripple-address-codec/params"
	"github.com/anyswap/ripple-address-codec/rpc/client"
	"github.com/urfave/cli/v2"
)

// codecService is served by the local codec or a remote codec server.
type codecService interface {
	EncodeAccountID(accountID string) (*codecapi.AddressInfo, error)
	DecodeAccountID(address string) (*codecapi.AddressInfo, error)
	IsValidAddress(address string) (*codecapi.ValidateResult, error)
	EncodeSeed(entropy, seedType string) (*codecapi.SeedInfo, error)
	DecodeSeed(seed string) (*codecapi.SeedInfo, error)
	Encode(kind, payload string) (*codecapi.EncodedInfo, error)
	Decode(kind, encoded string) (*codecapi.EncodedInfo, error)
	Identify(encoded string) (*codecapi.EncodedInfo, error)
}

type localService struct {
	api *codecapi.API
}

func (s *localService) EncodeAccountID(accountID string) (*codecapi.AddressInfo, error) {
	return s.api.EncodeAccountID(accountID)
}

func (s *localService) DecodeAccountID(address string) (*codecapi.AddressInfo, error) {
	return s.api.DecodeAccountID(address)
}

func (s *localService) IsValidAddress(address string) (*codecapi.ValidateResult, error) {
	return s.api.IsValidAddress(address), nil
}

func (s *localService) EncodeSeed(entropy, seedType string) (*codecapi.SeedInfo, error) {
	return s.api.EncodeSeed(&codecapi.EncodeSeedArgs{Entropy: entropy, Type: seedType})
}

func (s *localService) DecodeSeed(seed string) (*codecapi.SeedInfo, error) {
	return s.api.DecodeSeed(seed)
}

func (s *localService) Encode(kind, payload string) (*codecapi.EncodedInfo, error) {
	return s.api.Encode(&codecapi.EncodeArgs{Kind: kind, Payload: payload})
}

func (s *localService) Decode(kind, encoded string) (*codecapi.EncodedInfo, error) {
	return s.api.Decode(&codecapi.DecodeArgs{Kind: kind, Encoded: encoded})
}

func (s *localService) Identify(encoded string) (*codecapi.EncodedInfo, error) {
	return s.api.Identify(encoded)
}

func newService(ctx *cli.Context) (codecService, error) {
	if remote := ctx.String(utils.RemoteFlag.Name); remote != "" {
		log.Debug("use remote codec server", "endpoint", remote)
		return client.NewClient(remote)
	}
	config := params.DefaultConfig()
	if configFile := utils.GetConfigFilePath(ctx); configFile != "" {
		var err error
		config, err = params.LoadConfigFile(configFile)
		if err != nil {
			return nil, err
		}
	}
	api, err := codecapi.NewAPIFromConfig(&config.Codec)
	if err != nil {
		return nil, err
	}
	return &localService{api: api}, nil
}
