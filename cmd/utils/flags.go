package utils

import (
	"github.com/anyswap/ripple-address-codec/log"
	"github.com/anyswap/ripple-address-codec/params"
	"github.com/urfave/cli/v2"
)

var (
	// ConfigFileFlag --config
	ConfigFileFlag = &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "Specify config file",
	}
	// VerbosityFlag --verbosity
	VerbosityFlag = &cli.Uint64Flag{
		Name:    "verbosity",
		Aliases: []string{"v"},
		Usage:   "log verbosity (0:panic, 1:fatal, 2:error, 3:warn, 4:info, 5:debug, 6:trace)",
		Value:   4,
	}
	// JSONFormatFlag --json
	JSONFormatFlag = &cli.BoolFlag{
		Name:  "json",
		Usage: "output log in json format",
	}
	// ColorFormatFlag --color
	ColorFormatFlag = &cli.BoolFlag{
		Name:  "color",
		Usage: "output log in color text format",
		Value: true,
	}
	// RemoteFlag --remote
	RemoteFlag = &cli.StringFlag{
		Name:    "remote",
		Aliases: []string{"r"},
		Usage:   "call the codec server at this endpoint instead of the local codec",
	}

	// CommonLogFlags common log flags
	CommonLogFlags = []cli.Flag{
		VerbosityFlag,
		JSONFormatFlag,
		ColorFormatFlag,
	}
)

// SetLogger set log level, json format, color format
func SetLogger(ctx *cli.Context) {
	logLevel := ctx.Uint64(VerbosityFlag.Name)
	jsonFormat := ctx.Bool(JSONFormatFlag.Name)
	colorFormat := ctx.Bool(ColorFormatFlag.Name)
	log.SetLogger(uint32(logLevel), jsonFormat, colorFormat)
}

// SetLoggerFromConfig set logger from the [Log] section, flags set explicitly take precedence
func SetLoggerFromConfig(ctx *cli.Context, config *params.LogConfig) {
	logLevel := config.Verbosity
	if ctx.IsSet(VerbosityFlag.Name) {
		logLevel = uint32(ctx.Uint64(VerbosityFlag.Name))
	}
	jsonFormat := config.JSONFormat
	if ctx.IsSet(JSONFormatFlag.Name) {
		jsonFormat = ctx.Bool(JSONFormatFlag.Name)
	}
	colorFormat := config.ColorFormat
	if ctx.IsSet(ColorFormatFlag.Name) {
		colorFormat = ctx.Bool(ColorFormatFlag.Name)
	}
	log.SetLogger(logLevel, jsonFormat, colorFormat)
}

// GetConfigFilePath specified by `-c|--config`
func GetConfigFilePath(ctx *cli.Context) string {
	return ctx.String(ConfigFileFlag.Name)
}
