package params

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/anyswap/ripple-address-codec/addresscodec"
	"github.com/anyswap/ripple-address-codec/codec"
	"github.com/anyswap/ripple-address-codec/common"
	"github.com/anyswap/ripple-address-codec/log"
)

const (
	defaultAPIPort          = 11557
	defaultMaxRequestsLimit = 100
)

var (
	codecConfig       *CodecServerConfig
	loadConfigStarter sync.Once
)

// CodecServerConfig config items (decode from toml file)
type CodecServerConfig struct {
	Identifier string
	Codec      CodecConfig
	APIServer  APIServerConfig
	Log        LogConfig
}

// CodecConfig alphabet and checksum hash of the codec
type CodecConfig struct {
	Alphabet string
	Hash     string
}

// APIServerConfig api service config
type APIServerConfig struct {
	Port             int
	AllowedOrigins   []string
	MaxRequestsLimit int
}

// LogConfig log config
type LogConfig struct {
	Verbosity   uint32
	JSONFormat  bool
	ColorFormat bool
}

// DefaultConfig returns the config matching the XRP Ledger constants
func DefaultConfig() *CodecServerConfig {
	return &CodecServerConfig{
		Identifier: "addresscodec",
		Codec: CodecConfig{
			Alphabet: addresscodec.Alphabet,
			Hash:     codec.HashSha256,
		},
		APIServer: APIServerConfig{
			Port:             defaultAPIPort,
			MaxRequestsLimit: defaultMaxRequestsLimit,
		},
		Log: LogConfig{
			Verbosity: log.LevelInfo,
		},
	}
}

// GetAPIPort get api service port
func GetAPIPort() int {
	apiPort := GetConfig().APIServer.Port
	if apiPort == 0 {
		apiPort = defaultAPIPort
	}
	return apiPort
}

// GetIdentifier get identifier (to distinguish in rpc)
func GetIdentifier() string {
	return GetConfig().Identifier
}

// GetConfig get codec server config, the default one if none is loaded
func GetConfig() *CodecServerConfig {
	if codecConfig == nil {
		return DefaultConfig()
	}
	return codecConfig
}

// SetConfig set codec server config
func SetConfig(config *CodecServerConfig) {
	codecConfig = config
}

// DecodeConfig decodes a toml config over the defaults and checks it
func DecodeConfig(data string) (*CodecServerConfig, error) {
	config := DefaultConfig()
	if _, err := toml.Decode(data, config); err != nil {
		return nil, fmt.Errorf("toml decode: %w", err)
	}
	if err := config.CheckConfig(); err != nil {
		return nil, err
	}
	return config, nil
}

// LoadConfigFile loads a toml config file over the defaults and checks it
func LoadConfigFile(configFile string) (*CodecServerConfig, error) {
	if !common.FileExist(configFile) {
		return nil, fmt.Errorf("config file %v not exist", configFile)
	}
	config := DefaultConfig()
	if _, err := toml.DecodeFile(configFile, config); err != nil {
		return nil, fmt.Errorf("toml decode file: %w", err)
	}
	if err := config.CheckConfig(); err != nil {
		return nil, err
	}
	return config, nil
}

// LoadConfig load config once. An empty file name keeps the defaults.
func LoadConfig(configFile string) *CodecServerConfig {
	loadConfigStarter.Do(func() {
		if configFile == "" {
			log.Info("no config file specified, use default config")
			SetConfig(DefaultConfig())
			return
		}
		log.Println("Config file is", configFile)
		config, err := LoadConfigFile(configFile)
		if err != nil {
			log.Fatalf("LoadConfig error: %v", err)
		}
		SetConfig(config)

		var bs []byte
		if log.JSONFormat {
			bs, _ = json.Marshal(config)
		} else {
			bs, _ = json.MarshalIndent(config, "", "  ")
		}
		log.Println("LoadConfig finished.", string(bs))
		log.Info("Check config success", "configFile", configFile)
	})
	return GetConfig()
}
