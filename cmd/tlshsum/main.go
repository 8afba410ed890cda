// Command tlshsum hashes files (or stdin) with TLSH and can score two
// previously computed digests against each other. It deliberately does
// not walk directories or diff a sums file against a tree -- one input
// at a time, like the teacher's narrowest cmd/ tools.
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"tlsh-go/internal/tlog"
	"tlsh-go/pkg/digest"
	"tlsh-go/pkg/score"
	"tlsh-go/pkg/tlsh"
)

var (
	version = "dev"
)

func main() {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "tlshsum: loading config: %v\n", err)
		os.Exit(1)
	}

	app := &cli.App{
		Name:    "tlshsum",
		Usage:   "compute and compare TLSH fuzzy-hash digests",
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "log-db", Usage: "persist log records to a SQLite database at PATH instead of stderr"},
		},
		Before: func(c *cli.Context) error {
			if path := c.String("log-db"); path != "" {
				return tlog.Init(path)
			}
			tlog.SetStd()
			return nil
		},
		After: func(c *cli.Context) error {
			return tlog.Close()
		},
		Commands: []*cli.Command{
			sumCommand(cfg),
			scoreCommand(cfg),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "tlshsum: %v\n", err)
		os.Exit(1)
	}
}

func sumCommand(cfg *Config) *cli.Command {
	return &cli.Command{
		Name:      "sum",
		Usage:     "hash a file (or stdin, with '-') and print its TLSH digest",
		UsageText: "tlshsum sum [--algo NAME] <path|->",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "algo", Value: cfg.Algo, Usage: "TLSH algorithm name, e.g. TLSH-128-1/5"},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return cli.Exit("sum requires exactly one path argument (or '-' for stdin)", 1)
			}
			algo := c.String("algo")

			var v digest.Value
			var err error
			if c.Args().Get(0) == "-" {
				v, err = tlsh.HashReader(algo, os.Stdin)
			} else {
				v, err = hashFile(algo, c.Args().Get(0))
			}
			if err != nil {
				return cli.Exit(err, 1)
			}

			fmt.Println(digest.ToHexT1(digest.Pack(v)))
			return nil
		},
	}
}

func hashFile(algo, path string) (digest.Value, error) {
	f, err := os.Open(path)
	if err != nil {
		return digest.Value{}, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()
	return tlsh.HashReader(algo, f)
}

func scoreCommand(cfg *Config) *cli.Command {
	return &cli.Command{
		Name:      "score",
		Usage:     "print the distance between two hex-encoded TLSH digests",
		UsageText: "tlshsum score [--no-length] <digestA> <digestB>",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "no-length", Usage: "exclude the length-code term from the score"},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() != 2 {
				return cli.Exit("score requires exactly two hex digest arguments", 1)
			}

			a, err := digest.FromHex(c.Args().Get(0))
			if err != nil {
				return cli.Exit(err, 1)
			}
			b, err := digest.FromHex(c.Args().Get(1))
			if err != nil {
				return cli.Exit(err, 1)
			}

			includeLength := cfg.IncludeLength && !c.Bool("no-length")
			s, err := score.Score(a, b, includeLength)
			if err != nil {
				return cli.Exit(err, 1)
			}

			fmt.Println(s)
			return nil
		},
	}
}
