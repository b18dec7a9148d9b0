package cmd

import (
	"bytes"
	"go/format"
	"io/ioutil"
	"os"
	"strings"

	"github.com/urfave/cli"

	"github.com/arr-ai/rex/cmd/codegen"
	"github.com/arr-ai/rex/parser"
)

var pkgName string
var varName string
var outFile string
var genCommand = cli.Command{
	Name:      "gen",
	Aliases:   []string{"g"},
	Usage:     "Generate Go source holding a parsed pattern",
	ArgsUsage: "[pattern]",
	Action:    gen,
	Flags: []cli.Flag{
		cli.StringFlag{
			Name:        "pattern",
			Usage:       "pattern to parse (also accepted as the first argument, or on stdin)",
			Required:    false,
			Destination: &patternArg,
		},
		cli.StringFlag{
			Name:        "pkg",
			Usage:       "name of the generated package",
			Required:    true,
			Destination: &pkgName,
		},
		cli.StringFlag{
			Name:        "name",
			Usage:       "name of the generated variable",
			Required:    true,
			Destination: &varName,
		},
		cli.StringFlag{
			Name:        "output",
			Usage:       "filename to write the output to",
			Required:    false,
			Destination: &outFile,
		},
	},
}

func gen(c *cli.Context) error {
	pattern, err := readPattern(c)
	if err != nil {
		return err
	}

	expr, err := parser.Parse(pattern)
	if err != nil {
		return err
	}

	tmpldata := codegen.MakeTemplateData(
		strings.Join(os.Args[1:], " "), pkgName, varName, pattern, expr)
	var buf bytes.Buffer
	if err := codegen.Write(&buf, tmpldata); err != nil {
		return err
	}

	out, err := format.Source(buf.Bytes())
	if err != nil {
		return err
	}

	switch outFile {
	case "", "-":
		os.Stdout.Write(out)
	default:
		return ioutil.WriteFile(outFile, out, 0644)
	}

	return nil
}
