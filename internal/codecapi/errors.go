package codecapi

import (
	"errors"

	"github.com/anyswap/ripple-address-codec/addresscodec"
	"github.com/anyswap/ripple-address-codec/codec"
	rpcjson "github.com/gorilla/rpc/v2/json2"
)

// rpc error codes
const (
	ErrCodeInternal              rpcjson.ErrorCode = -32000
	ErrCodeInvalidHex            rpcjson.ErrorCode = -32010
	ErrCodePayloadLengthMismatch rpcjson.ErrorCode = -32011
	ErrCodeInvalidInputSize      rpcjson.ErrorCode = -32012
	ErrCodeChecksumInvalid       rpcjson.ErrorCode = -32013
	ErrCodeVersionMismatch       rpcjson.ErrorCode = -32014
	ErrCodeAmbiguousLength       rpcjson.ErrorCode = -32015
	ErrCodeInvalidEncoding       rpcjson.ErrorCode = -32016
	ErrCodeInvalidEntropyLength  rpcjson.ErrorCode = -32017
	ErrCodeInvalidSeedType       rpcjson.ErrorCode = -32018
	ErrCodeUnknownKind           rpcjson.ErrorCode = -32019
)

var errorCodes = []struct {
	err  error
	code rpcjson.ErrorCode
}{
	{codec.ErrPayloadLengthMismatch, ErrCodePayloadLengthMismatch},
	{codec.ErrInvalidInputSize, ErrCodeInvalidInputSize},
	{codec.ErrChecksumInvalid, ErrCodeChecksumInvalid},
	{codec.ErrVersionMismatch, ErrCodeVersionMismatch},
	{codec.ErrAmbiguousLength, ErrCodeAmbiguousLength},
	{codec.ErrInvalidEncoding, ErrCodeInvalidEncoding},
	{addresscodec.ErrInvalidEntropyLength, ErrCodeInvalidEntropyLength},
	{addresscodec.ErrInvalidSeedType, ErrCodeInvalidSeedType},
	{addresscodec.ErrUnknownKind, ErrCodeUnknownKind},
}

func newRPCError(ec rpcjson.ErrorCode, message string) error {
	return &rpcjson.Error{
		Code:    ec,
		Message: message,
	}
}

func newInvalidHexError(err error) error {
	return newRPCError(ErrCodeInvalidHex, "invalid hex: "+err.Error())
}

// toRPCError converts codec errors to json rpc errors
func toRPCError(err error) error {
	if err == nil {
		return nil
	}
	for _, ec := range errorCodes {
		if errors.Is(err, ec.err) {
			return newRPCError(ec.code, err.Error())
		}
	}
	return newRPCError(ErrCodeInternal, "rpcError: "+err.Error())
}
