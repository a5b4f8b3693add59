// Package codecapi implements the address codec api shared by the rpc and
// rest servers and the command line tool. Binary values are hex strings.
package codecapi

import (
	"github.com/anyswap/ripple-address-codec/addresscodec"
	"github.com/anyswap/ripple-address-codec/common"
	"github.com/anyswap/ripple-address-codec/log"
	"github.com/anyswap/ripple-address-codec/params"
)

// API codec api
type API struct {
	encoder *addresscodec.Encoder
}

// NewAPI creates an api on top of encoder
func NewAPI(encoder *addresscodec.Encoder) *API {
	return &API{encoder: encoder}
}

// NewAPIFromConfig creates an api with the codec config
func NewAPIFromConfig(config *params.CodecConfig) (*API, error) {
	encoder, err := addresscodec.NewEncoderWithHash(config.Alphabet, config.Hash)
	if err != nil {
		return nil, err
	}
	return NewAPI(encoder), nil
}

// Encoder returns the encoder of the api
func (api *API) Encoder() *addresscodec.Encoder {
	return api.encoder
}

func decodeHex(s string) ([]byte, error) {
	b, err := common.FromHex(s)
	if err != nil {
		return nil, newInvalidHexError(err)
	}
	return b, nil
}

// EncodeAccountID api
func (api *API) EncodeAccountID(accountID string) (*AddressInfo, error) {
	log.Debug("[api] receive EncodeAccountID", "accountID", accountID)
	b, err := decodeHex(accountID)
	if err != nil {
		return nil, err
	}
	address, err := api.encoder.EncodeAccountID(b)
	if err != nil {
		return nil, toRPCError(err)
	}
	return &AddressInfo{Address: address, AccountID: common.ToHex(b)}, nil
}

// DecodeAccountID api
func (api *API) DecodeAccountID(address string) (*AddressInfo, error) {
	log.Debug("[api] receive DecodeAccountID", "address", address)
	b, err := api.encoder.DecodeAccountID(address)
	if err != nil {
		return nil, toRPCError(err)
	}
	return &AddressInfo{Address: address, AccountID: common.ToHex(b)}, nil
}

// IsValidAddress api
func (api *API) IsValidAddress(address string) *ValidateResult {
	log.Debug("[api] receive IsValidAddress", "address", address)
	return &ValidateResult{
		Address: address,
		Valid:   api.encoder.IsValidAddress(address),
	}
}

// EncodeSeed api
func (api *API) EncodeSeed(args *EncodeSeedArgs) (*SeedInfo, error) {
	log.Debug("[api] receive EncodeSeed", "type", args.Type)
	entropy, err := decodeHex(args.Entropy)
	if err != nil {
		return nil, err
	}
	seedType := addresscodec.SeedTypeSecp256k1
	if args.Type != "" {
		seedType, err = addresscodec.ParseSeedType(args.Type)
		if err != nil {
			return nil, toRPCError(err)
		}
	}
	version, err := seedType.Version()
	if err != nil {
		return nil, toRPCError(err)
	}
	seed, err := api.encoder.EncodeSeed(entropy, seedType)
	if err != nil {
		return nil, toRPCError(err)
	}
	return &SeedInfo{
		Seed:    seed,
		Type:    string(seedType),
		Version: common.ToHex(version.Bytes()),
		Entropy: common.ToHex(entropy),
	}, nil
}

// DecodeSeed api
func (api *API) DecodeSeed(seed string) (*SeedInfo, error) {
	log.Debug("[api] receive DecodeSeed")
	res, err := api.encoder.DecodeSeed(seed)
	if err != nil {
		return nil, toRPCError(err)
	}
	return &SeedInfo{
		Seed:    seed,
		Type:    res.Type,
		Version: common.ToHex(res.Version),
		Entropy: common.ToHex(res.Payload),
	}, nil
}

// EncodeNodePublic api
func (api *API) EncodeNodePublic(pubkey string) (*EncodedInfo, error) {
	return api.Encode(&EncodeArgs{Kind: addresscodec.NodePublic.String(), Payload: pubkey})
}

// DecodeNodePublic api
func (api *API) DecodeNodePublic(nodePublic string) (*EncodedInfo, error) {
	return api.Decode(&DecodeArgs{Kind: addresscodec.NodePublic.String(), Encoded: nodePublic})
}

func parseKind(name string) (addresscodec.Kind, error) {
	kind, err := addresscodec.ParseKind(name)
	if err != nil {
		return kind, toRPCError(err)
	}
	return kind, nil
}

// Encode api
func (api *API) Encode(args *EncodeArgs) (*EncodedInfo, error) {
	log.Debug("[api] receive Encode", "kind", args.Kind)
	kind, err := parseKind(args.Kind)
	if err != nil {
		return nil, err
	}
	payload, err := decodeHex(args.Payload)
	if err != nil {
		return nil, err
	}
	encoded, err := api.encoder.Encode(kind, payload)
	if err != nil {
		return nil, toRPCError(err)
	}
	return &EncodedInfo{
		Kind:    kind.String(),
		Encoded: encoded,
		Version: common.ToHex([]byte{byte(kind)}),
		Payload: common.ToHex(payload),
	}, nil
}

// Decode api
func (api *API) Decode(args *DecodeArgs) (*EncodedInfo, error) {
	log.Debug("[api] receive Decode", "kind", args.Kind)
	kind, err := parseKind(args.Kind)
	if err != nil {
		return nil, err
	}
	payload, err := api.encoder.Decode(kind, args.Encoded)
	if err != nil {
		return nil, toRPCError(err)
	}
	return &EncodedInfo{
		Kind:    kind.String(),
		Encoded: args.Encoded,
		Version: common.ToHex([]byte{byte(kind)}),
		Payload: common.ToHex(payload),
	}, nil
}

// Identify api
func (api *API) Identify(encoded string) (*EncodedInfo, error) {
	log.Debug("[api] receive Identify", "encoded", encoded)
	res, err := api.encoder.Identify(encoded)
	if err != nil {
		return nil, toRPCError(err)
	}
	return &EncodedInfo{
		Kind:     res.Kind.String(),
		Encoded:  encoded,
		Version:  common.ToHex(res.Version),
		Payload:  common.ToHex(res.Payload),
		SeedType: string(res.SeedType),
	}, nil
}

// GetVersionInfo api
func GetVersionInfo() *params.VersionInfo {
	return params.GetVersionInfo()
}
