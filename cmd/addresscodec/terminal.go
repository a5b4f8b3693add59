package main

import (
	"fmt"

	"github.com/anyswap/ripple-address-codec/internal/codecapi"
	"github.com/fatih/color"
)

var (
	keyStyle     = color.New(color.FgCyan)
	encodedStyle = color.New(color.FgGreen, color.Bold)
	payloadStyle = color.New(color.FgYellow)
	validStyle   = color.New(color.FgGreen)
	invalidStyle = color.New(color.FgRed, color.Bold)
)

func printField(key string, style *color.Color, value string) {
	if value == "" {
		return
	}
	_, _ = keyStyle.Printf("%-10s ", key+":")
	_, _ = style.Println(value)
}

func boolSymbol(v bool) string {
	if v {
		return "✓"
	}
	return "✗"
}

func printAddressInfo(info *codecapi.AddressInfo) {
	printField("address", encodedStyle, info.Address)
	printField("accountId", payloadStyle, info.AccountID)
}

func printValidateResult(res *codecapi.ValidateResult) {
	style := validStyle
	if !res.Valid {
		style = invalidStyle
	}
	printField("address", encodedStyle, res.Address)
	printField("valid", style, fmt.Sprintf("%s %v", boolSymbol(res.Valid), res.Valid))
}

func printSeedInfo(info *codecapi.SeedInfo) {
	printField("seed", encodedStyle, info.Seed)
	printField("type", keyStyle, info.Type)
	printField("version", payloadStyle, info.Version)
	printField("entropy", payloadStyle, info.Entropy)
}

func printEncodedInfo(info *codecapi.EncodedInfo) {
	printField("kind", keyStyle, info.Kind)
	printField("seedType", keyStyle, info.SeedType)
	printField("encoded", encodedStyle, info.Encoded)
	printField("version", payloadStyle, info.Version)
	printField("payload", payloadStyle, info.Payload)
}
