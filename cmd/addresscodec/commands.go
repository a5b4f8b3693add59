package main

import (
	"fmt"

	"github.com/anyswap/ripple-address-codec/addresscodec"
	"github.com/urfave/cli/v2"
)

var (
	kindFlag = &cli.StringFlag{
		Name:    "kind",
		Aliases: []string{"k"},
		Usage:   "kind of the payload, see the 'kinds' command",
		Value:   addresscodec.AccountID.String(),
	}
	seedTypeFlag = &cli.StringFlag{
		Name:    "type",
		Aliases: []string{"t"},
		Usage:   "seed type (ed25519 or secp256k1)",
		Value:   string(addresscodec.SeedTypeSecp256k1),
	}

	encodeCommand = &cli.Command{
		Action:    encode,
		Name:      "encode",
		Usage:     "encode a hex payload of the given kind",
		ArgsUsage: "<hex payload>",
		Flags:     []cli.Flag{kindFlag},
	}
	decodeCommand = &cli.Command{
		Action:    decode,
		Name:      "decode",
		Usage:     "decode an encoded string of the given kind",
		ArgsUsage: "<encoded>",
		Flags:     []cli.Flag{kindFlag},
	}
	encodeSeedCommand = &cli.Command{
		Action:    encodeSeed,
		Name:      "encodeseed",
		Usage:     "encode 16 bytes of hex entropy to a seed",
		ArgsUsage: "<hex entropy>",
		Flags:     []cli.Flag{seedTypeFlag},
	}
	decodeSeedCommand = &cli.Command{
		Action:    decodeSeed,
		Name:      "decodeseed",
		Usage:     "decode a seed to its entropy and type",
		ArgsUsage: "<seed>",
	}
	validateCommand = &cli.Command{
		Action:    validate,
		Name:      "validate",
		Usage:     "check whether addresses are valid classic addresses",
		ArgsUsage: "<address>...",
	}
	identifyCommand = &cli.Command{
		Action:    identify,
		Name:      "identify",
		Usage:     "detect the kind of an encoded string and decode it",
		ArgsUsage: "<encoded>",
	}
	kindsCommand = &cli.Command{
		Action: listKinds,
		Name:   "kinds",
		Usage:  "list the known kinds",
	}
)

func getSingleArg(ctx *cli.Context) (string, error) {
	if ctx.NArg() != 1 {
		return "", fmt.Errorf("command %v needs exactly one argument, usage: %v", ctx.Command.Name, ctx.Command.ArgsUsage)
	}
	return ctx.Args().First(), nil
}

func encode(ctx *cli.Context) error {
	payload, err := getSingleArg(ctx)
	if err != nil {
		return err
	}
	service, err := newService(ctx)
	if err != nil {
		return err
	}
	res, err := service.Encode(ctx.String(kindFlag.Name), payload)
	if err != nil {
		return err
	}
	printEncodedInfo(res)
	return nil
}

func decode(ctx *cli.Context) error {
	encoded, err := getSingleArg(ctx)
	if err != nil {
		return err
	}
	service, err := newService(ctx)
	if err != nil {
		return err
	}
	kind := ctx.String(kindFlag.Name)
	if kind == addresscodec.AccountID.String() {
		info, errf := service.DecodeAccountID(encoded)
		if errf != nil {
			return errf
		}
		printAddressInfo(info)
		return nil
	}
	res, err := service.Decode(kind, encoded)
	if err != nil {
		return err
	}
	printEncodedInfo(res)
	return nil
}

func encodeSeed(ctx *cli.Context) error {
	entropy, err := getSingleArg(ctx)
	if err != nil {
		return err
	}
	service, err := newService(ctx)
	if err != nil {
		return err
	}
	res, err := service.EncodeSeed(entropy, ctx.String(seedTypeFlag.Name))
	if err != nil {
		return err
	}
	printSeedInfo(res)
	return nil
}

func decodeSeed(ctx *cli.Context) error {
	seed, err := getSingleArg(ctx)
	if err != nil {
		return err
	}
	service, err := newService(ctx)
	if err != nil {
		return err
	}
	res, err := service.DecodeSeed(seed)
	if err != nil {
		return err
	}
	printSeedInfo(res)
	return nil
}

func validate(ctx *cli.Context) error {
	if ctx.NArg() == 0 {
		return fmt.Errorf("no address specified, usage: %v", ctx.Command.ArgsUsage)
	}
	service, err := newService(ctx)
	if err != nil {
		return err
	}
	invalid := 0
	for _, address := range ctx.Args().Slice() {
		res, err := service.IsValidAddress(address)
		if err != nil {
			return err
		}
		if !res.Valid {
			invalid++
		}
		printValidateResult(res)
	}
	if invalid > 0 {
		return cli.Exit(fmt.Sprintf("%d of %d addresses are invalid", invalid, ctx.NArg()), 2)
	}
	return nil
}

func identify(ctx *cli.Context) error {
	encoded, err := getSingleArg(ctx)
	if err != nil {
		return err
	}
	service, err := newService(ctx)
	if err != nil {
		return err
	}
	res, err := service.Identify(encoded)
	if err != nil {
		return err
	}
	printEncodedInfo(res)
	return nil
}

func listKinds(ctx *cli.Context) error {
	for _, kind := range addresscodec.Kinds() {
		_, _ = keyStyle.Printf("%-15s ", kind.String())
		fmt.Printf("version=%-3d prefix=%c payload=%-2d maxChars=%-2d %v\n",
			byte(kind), kind.Prefix(), kind.PayloadLength(), kind.MaximumCharacters(), kind.Description())
	}
	return nil
}
