package params

import (
	"errors"
	"fmt"

	"github.com/anyswap/ripple-address-codec/codec"
)

// CheckConfig check config
func (c *CodecServerConfig) CheckConfig() error {
	if c.Identifier == "" {
		return errors.New("must config non empty 'Identifier'")
	}
	if err := c.Codec.CheckConfig(); err != nil {
		return err
	}
	return c.APIServer.CheckConfig()
}

// CheckConfig check codec config
func (c *CodecConfig) CheckConfig() error {
	if err := codec.CheckAlphabet(c.Alphabet); err != nil {
		return fmt.Errorf("wrong 'Alphabet': %w", err)
	}
	if len(c.Alphabet) != codec.Base58 {
		return fmt.Errorf("wrong 'Alphabet': must have %d symbols", codec.Base58)
	}
	if _, err := codec.GetHashFunc(c.Hash); err != nil {
		return fmt.Errorf("wrong 'Hash': %w (supported: %v)", err, codec.HashNames())
	}
	return nil
}

// CheckConfig check api server config
func (c *APIServerConfig) CheckConfig() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("wrong api server 'Port' %v", c.Port)
	}
	if c.MaxRequestsLimit < 0 {
		return errors.New("wrong api server 'MaxRequestsLimit' (negative)")
	}
	return nil
}
