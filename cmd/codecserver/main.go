package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"syscall"
	"time"

	"github.com/anyswap/ripple-address-codec/cmd/utils"
	"github.com/anyswap/ripple-address-codec/internal/codecapi"
	"github.com/anyswap/ripple-address-codec/log"
	"github.com/anyswap/ripple-address-codec/params"
	rpcserver "github.com/anyswap/ripple-address-codec/rpc/server"
	"github.com/urfave/cli/v2"
)

var (
	clientIdentifier = "codecserver"
	// Git SHA1 commit hash of the release (set via linker flags)
	gitCommit = ""
	gitDate   = ""
	// The app that holds all commands and flags.
	app = utils.NewApp(clientIdentifier, gitCommit, gitDate, "the codecserver command line interface")
)

const shutdownTimeout = 5 * time.Second

func initApp() {
	// Initialize the CLI app and start action
	app.Action = codecserver
	app.HideVersion = true // we have a command to print the version
	app.Commands = []*cli.Command{
		utils.VersionCommand,
	}
	app.Flags = append([]cli.Flag{utils.ConfigFileFlag}, utils.CommonLogFlags...)
	sort.Sort(cli.CommandsByName(app.Commands))
}

func main() {
	initApp()
	if err := app.Run(os.Args); err != nil {
		log.Println(err)
		os.Exit(1)
	}
}

func codecserver(ctx *cli.Context) error {
	utils.SetLogger(ctx)
	if ctx.NArg() > 0 {
		return fmt.Errorf("invalid command: %q", ctx.Args().Get(0))
	}
	configFile := utils.GetConfigFilePath(ctx)
	config := params.LoadConfig(configFile)
	utils.SetLoggerFromConfig(ctx, &config.Log)

	sigCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	return serve(sigCtx, config)
}

// serve runs the api server until ctx is done, then shuts it down.
func serve(ctx context.Context, config *params.CodecServerConfig) error {
	api, err := codecapi.NewAPIFromConfig(&config.Codec)
	if err != nil {
		return err
	}
	svr, err := rpcserver.StartAPIServer(&config.APIServer, api)
	if err != nil {
		return err
	}

	<-ctx.Done()
	log.Info("shutting down api server", "addr", svr.Addr)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return svr.Shutdown(shutdownCtx)
}
