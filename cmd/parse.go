package cmd

import (
	"fmt"
	"io/ioutil"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"

	"github.com/arr-ai/rex/ast"
	"github.com/arr-ai/rex/parser"
)

var patternArg string
var verboseMode bool
var parseCommand = cli.Command{
	Name:      "parse",
	Aliases:   []string{"p"},
	Usage:     "Parse a pattern and print its syntax tree",
	ArgsUsage: "[pattern]",
	Action:    parse,
	Flags: []cli.Flag{
		cli.StringFlag{
			Name:        "pattern",
			Usage:       "pattern to parse (also accepted as the first argument, or on stdin)",
			Required:    false,
			Destination: &patternArg,
		},
		cli.BoolFlag{
			Name:        "v",
			Usage:       "verbose logging",
			Destination: &verboseMode,
		},
	},
}

func readPattern(c *cli.Context) (string, error) {
	switch {
	case patternArg != "":
		return patternArg, nil
	case c.NArg() > 0:
		return c.Args().First(), nil
	}
	buf, err := ioutil.ReadAll(os.Stdin)
	if err != nil {
		return "", err
	}
	return strings.TrimSuffix(string(buf), "\n"), nil
}

func parse(c *cli.Context) error {
	if verboseMode {
		logrus.SetLevel(logrus.TraceLevel)
	}

	pattern, err := readPattern(c)
	if err != nil {
		return err
	}

	expr, err := parser.Parse(pattern)
	if err != nil {
		return err
	}
	fmt.Print(ast.BuildTreeView(fmt.Sprintf("%q", pattern), expr))

	return nil
}
