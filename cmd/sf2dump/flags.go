// SPDX-License-Identifier: EPL-2.0

package main

import (
	"context"
	"strings"

	"github.com/ik5/sfbank/internal/log"
	"github.com/ik5/sfbank/sf2"
	"github.com/pkg/errors"
	"github.com/urfave/cli"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/japanese"
)

var globalFlags = []cli.Flag{
	cli.StringFlag{
		Name:  "charset, c",
		Usage: `Charset of names and INFO text (ascii, sjis, latin1, cp1252 or any WHATWG label)`,
		Value: "ascii",
	},
	cli.BoolFlag{
		Name:  "debug, d",
		Usage: `Show debug messages`,
	},
	cli.BoolFlag{
		Name:  "quiet, q",
		Usage: `Suppress information messages`,
	},
	cli.BoolFlag{
		Name:  "silent, Q",
		Usage: `Do not output any messages`,
	},
}

func setLogLevel(ctx *cli.Context) error {
	switch {
	case ctx.Bool("debug"):
		log.SetLevel(log.LevelDebug)
	case ctx.Bool("silent"):
		log.SetLevel(log.LevelNone)
	case ctx.Bool("quiet"):
		log.SetLevel(log.LevelWarn)
	default:
		log.SetLevel(log.LevelInfo)
	}
	return nil
}

// charset maps a --charset value to an encoding. ascii means no decoding.
func charset(name string) (encoding.Encoding, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	switch name {
	case "", "ascii", "us-ascii":
		return nil, nil
	case "sjis", "shift_jis", "shift-jis":
		return japanese.ShiftJIS, nil
	case "latin1", "iso-8859-1":
		// WHATWG reads this label as windows-1252.
		return charmap.ISO8859_1, nil
	case "cp1252":
		return charmap.Windows1252, nil
	}
	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, errors.Wrapf(err, "charset %q", name)
	}
	return enc, nil
}

// openBank decodes a bank from a path or an http(s) URL.
func openBank(ctx *cli.Context, name string) (*sf2.Bank, error) {
	enc, err := charset(ctx.GlobalString("charset"))
	if err != nil {
		return nil, err
	}
	d := sf2.Decoder{Charset: enc}

	if strings.HasPrefix(name, "http://") || strings.HasPrefix(name, "https://") {
		log.Infof("fetching %s", name)
		return d.OpenURL(context.Background(), name)
	}
	return d.Open(name)
}
