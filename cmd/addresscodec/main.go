package main

import (
	"os"
	"sort"

	"github.com/anyswap/ripple-address-codec/cmd/utils"
	"github.com/anyswap/ripple-address-codec/log"
	"github.com/urfave/cli/v2"
)

var (
	clientIdentifier = "addresscodec"
	// Git SHA1 commit hash of the release (set via linker flags)
	gitCommit = ""
	gitDate   = ""
	// The app that holds all commands and flags.
	app = utils.NewApp(clientIdentifier, gitCommit, gitDate, "encode and decode XRP Ledger addresses, seeds and keys")
)

func initApp() {
	app.HideVersion = true // we have a command to print the version
	app.Commands = []*cli.Command{
		encodeCommand,
		decodeCommand,
		encodeSeedCommand,
		decodeSeedCommand,
		validateCommand,
		identifyCommand,
		kindsCommand,
		utils.VersionCommand,
	}
	app.Flags = append([]cli.Flag{
		utils.ConfigFileFlag,
		utils.RemoteFlag,
	}, utils.CommonLogFlags...)
	app.Before = func(ctx *cli.Context) error {
		utils.SetLogger(ctx)
		return nil
	}
	sort.Sort(cli.CommandsByName(app.Commands))
}

func main() {
	initApp()
	if err := app.Run(os.Args); err != nil {
		log.Println(err)
		os.Exit(1)
	}
}
