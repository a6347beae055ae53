// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/ik5/sfbank"
	"github.com/ik5/sfbank/internal/log"
	"github.com/ik5/sfbank/sf2"
	"github.com/pkg/errors"
	"github.com/urfave/cli"
)

var extractCmd = cli.Command{
	Name:      "extract",
	Aliases:   []string{"x"},
	Usage:     "Writes samples of a bank as audio files",
	ArgsUsage: "<filename|url> [sample index or name...]",
	Flags: []cli.Flag{
		cli.StringFlag{
			Name:  "format, f",
			Usage: `Output format (` + strings.Join(sfbank.Encoders().Formats(), ", ") + `)`,
			Value: "wav",
		},
		cli.IntFlag{
			Name:  "bits, b",
			Usage: `Bit depth (16, 24)`,
			Value: 16,
		},
		cli.IntFlag{
			Name:  "rate, r",
			Usage: `Resample to this rate in Hz (0: keep)`,
		},
		cli.BoolFlag{
			Name:  "stereo, s",
			Usage: `Write linked left/right samples as one stereo file`,
		},
		cli.BoolFlag{
			Name:  "mono, m",
			Usage: `Downmix to mono`,
		},
		cli.StringFlag{
			Name:  "output, o",
			Usage: `Output directory`,
			Value: ".",
		},
	},
	Action: func(ctx *cli.Context) error {
		if ctx.NArg() < 1 || ctx.Int("rate") < 0 {
			cli.ShowCommandHelp(ctx, "extract")
			return cli.NewExitError("missing filename", 1)
		}
		bank, err := openBank(ctx, ctx.Args()[0])
		if err != nil {
			return cli.NewExitError(err, 1)
		}

		picked, err := pickSamples(bank, ctx.Args()[1:])
		if err != nil {
			return cli.NewExitError(err, 1)
		}
		opts := sfbank.ExportOptions{
			Format:     ctx.String("format"),
			BitDepth:   ctx.Int("bits"),
			SampleRate: ctx.Int("rate"),
			Stereo:     ctx.Bool("stereo"),
			Mono:       ctx.Bool("mono"),
		}
		if _, ok := sfbank.Encoders().Get(opts.Format); !ok {
			return cli.NewExitError(errors.Wrapf(sfbank.ErrUnknownFormat, "%q", opts.Format), 1)
		}
		if err := os.MkdirAll(ctx.String("output"), 0o755); err != nil {
			return cli.NewExitError(err, 1)
		}

		written := 0
		for _, i := range picked {
			ok, err := extract(ctx.String("output"), bank, i, opts, len(ctx.Args()) > 1)
			if err != nil {
				return cli.NewExitError(err, 1)
			}
			if ok {
				written++
			}
		}
		log.Infof("%d file(s) written", written)
		return nil
	},
}

// pickSamples resolves sample arguments to indexes. No arguments picks
// every sample.
func pickSamples(bank *sf2.Bank, args []string) ([]int, error) {
	if len(args) == 0 {
		all := make([]int, len(bank.Samples))
		for i := range all {
			all[i] = i
		}
		return all, nil
	}

	var picked []int
	for _, arg := range args {
		if i, err := strconv.Atoi(arg); err == nil {
			if i < 0 || i >= len(bank.Samples) {
				return nil, errors.Wrapf(sfbank.ErrNoSample, "sample %d", i)
			}
			picked = append(picked, i)
			continue
		}
		found := false
		for i, s := range bank.Samples {
			if s.Name == arg {
				picked = append(picked, i)
				found = true
			}
		}
		if !found {
			return nil, errors.Wrapf(sfbank.ErrNoSample, "%q", arg)
		}
	}
	return picked, nil
}

// extract writes one sample. When every sample is extracted, ROM samples
// are skipped and stereo pairs are written once, from the left side.
func extract(dir string, bank *sf2.Bank, i int, opts sfbank.ExportOptions, explicit bool) (bool, error) {
	s := bank.Samples[i]
	if s.SampleType.IsROM() && !explicit {
		log.Warnf("skipping ROM sample %d %q", i, s.Name)
		return false, nil
	}
	if opts.Stereo {
		paired := s.SampleType&(sf2.LeftSample|sf2.RightSample) != 0 &&
			int(s.SampleLink) < len(bank.Samples) && int(s.SampleLink) != i
		switch {
		case !paired:
			log.Debugf("sample %d %q has no partner, writing it alone", i, s.Name)
			opts.Stereo = false
		case s.SampleType&sf2.RightSample != 0 && !explicit:
			return false, nil
		}
	}

	name := filepath.Join(dir, fileName(i, s.Name, opts.Format))
	f, err := os.Create(name)
	if err != nil {
		return false, errors.WithStack(err)
	}
	if err := sfbank.ExportSample(f, bank, i, opts); err != nil {
		f.Close()
		os.Remove(name)
		return false, errors.Wrapf(err, "sample %d", i)
	}
	log.Infof("%s", name)
	return true, errors.WithStack(f.Close())
}

func fileName(i int, name, format string) string {
	clean := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		}
		return '_'
	}, strings.TrimSpace(name))
	if clean == "" {
		clean = "sample"
	}
	return fmt.Sprintf("%03d_%s.%s", i, clean, format)
}
