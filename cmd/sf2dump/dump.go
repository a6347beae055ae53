// SPDX-License-Identifier: EPL-2.0

package main

import (
	"encoding/json"
	"fmt"

	"github.com/urfave/cli"
)

var dumpCmd = cli.Command{
	Name:      "dump",
	Aliases:   []string{"d"},
	Usage:     "Dumps the presets, layers and samples of a bank",
	ArgsUsage: "<filename|url>",
	Flags: []cli.Flag{
		cli.BoolFlag{
			Name:  "json, j",
			Usage: `Dumps in JSON format`,
		},
	},
	Action: func(ctx *cli.Context) error {
		if ctx.NArg() < 1 {
			cli.ShowCommandHelp(ctx, "dump")
			return cli.NewExitError("missing filename", 1)
		}
		bank, err := openBank(ctx, ctx.Args()[0])
		if err != nil {
			return cli.NewExitError(err, 1)
		}
		if ctx.Bool("json") {
			j, err := json.MarshalIndent(bank, "", "  ")
			if err != nil {
				return cli.NewExitError(err, 1)
			}
			fmt.Fprintln(ctx.App.Writer, string(j))
		} else {
			fmt.Fprintln(ctx.App.Writer, bank.String())
		}
		return nil
	},
}
