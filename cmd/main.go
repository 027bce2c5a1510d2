package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

const version = "1.0.0"

//	@title			Tournament Brackets API
//	@version		1.0
//	@description	Stores elimination brackets and computes final standings.
//	@BasePath		/api
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
func main() {
	app := &cli.App{
		Name:    "brackets",
		Usage:   "elimination bracket storage and standings service",
		Version: version,
		Commands: []*cli.Command{
			serveCommand(),
			migrateCommand(),
			standingsCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
