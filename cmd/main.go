package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"
)

type VersionTags struct {
	Version   string
	GitCommit string
	BuildDate string
	BuildOS   string
}

func Main(info VersionTags) {
	app := cli.NewApp()

	app.EnableBashCompletion = true

	app.Name = "rex"
	app.Usage = "regex pattern front end"
	app.Version = info.Version

	app.Commands = []cli.Command{parseCommand, genCommand}

	err := app.Run(os.Args)
	if err != nil {
		logrus.Fatal(err)
	}
}
