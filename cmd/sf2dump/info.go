// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/ik5/sfbank/sf2"
	"github.com/urfave/cli"
)

var infoCmd = cli.Command{
	Name:      "info",
	Aliases:   []string{"i"},
	Usage:     "Shows the INFO metadata and table sizes of a bank",
	ArgsUsage: "<filename|url>",
	Action: func(ctx *cli.Context) error {
		if ctx.NArg() < 1 {
			cli.ShowCommandHelp(ctx, "info")
			return cli.NewExitError("missing filename", 1)
		}
		bank, err := openBank(ctx, ctx.Args()[0])
		if err != nil {
			return cli.NewExitError(err, 1)
		}
		printInfo(ctx.App.Writer, bank)
		return nil
	},
}

var label = color.New(color.Bold).SprintFunc()

func printInfo(w io.Writer, bank *sf2.Bank) {
	for _, kv := range [][2]string{
		{"Name", bank.Name},
		{"Version", bank.Version.String()},
		{"Engine", bank.TargetEngine},
		{"ROM", bank.ROMName},
		{"ROM version", romVersion(bank)},
		{"Created", bank.CreationDate},
		{"Engineers", bank.Engineers},
		{"Product", bank.Product},
		{"Copyright", bank.Copyright},
		{"Comments", bank.Comments},
		{"Tools", bank.Tools},
	} {
		if kv[1] != "" {
			fmt.Fprintf(w, "%s: %s\n", label(kv[0]), kv[1])
		}
	}

	rom, compressed := 0, 0
	for _, s := range bank.Samples {
		if s.SampleType.IsROM() {
			rom++
		}
		if s.SampleType.IsCompressed() {
			compressed++
		}
	}
	fmt.Fprintf(w, "%s: %d\n", label("Presets"), len(bank.Instruments))
	fmt.Fprintf(w, "%s: %d\n", label("Layers"), len(bank.Layers))
	fmt.Fprintf(w, "%s: %d (%d ROM, %d compressed)\n", label("Samples"), len(bank.Samples), rom, compressed)
	fmt.Fprintf(w, "%s: %d bytes", label("Sample data"), len(bank.SampleData))
	if bank.SampleData24 != nil {
		fmt.Fprintf(w, " + %d bytes sm24", len(bank.SampleData24))
	}
	fmt.Fprintln(w)
}

func romVersion(bank *sf2.Bank) string {
	if bank.ROMName == "" {
		return ""
	}
	return bank.ROMVersion.String()
}
