// SPDX-License-Identifier: EPL-2.0

// Command sf2dump inspects SoundFont banks and extracts their samples.
package main

import (
	"os"

	"github.com/urfave/cli"
)

var version string

func init() {
	if version == "" {
		version = "unknown"
	}
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "sf2dump"
	app.HelpName = "sf2dump"
	app.Version = version
	app.Usage = "Inspects SoundFont banks (.sf2|.sf3) and extracts their samples"
	app.Flags = globalFlags
	app.Before = setLogLevel

	app.Commands = []cli.Command{
		infoCmd,
		dumpCmd,
		extractCmd,
	}

	app.Action = func(ctx *cli.Context) error {
		return cli.ShowAppHelp(ctx)
	}
	return app
}

func main() {
	newApp().Run(os.Args)
}
