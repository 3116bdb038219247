package main

import (
	"fmt"

	"github.com/loopring/artifacts"
	"github.com/urfave/cli"
)

var check = cli.Command{
	Name:  "check",
	Usage: "Verify every known artifact can be loaded",
	Description: `Loads each artifact the tests and deployment code depend on, failing
	on the first one that is missing or cannot be parsed.  Nothing is
	verified beyond that; a successful check only means the build output
	is present.`,
	Action: func(c *cli.Context) error {
		return checkAction()
	},
}

func checkAction() error {
	if _, err := load(); err != nil {
		return err
	}

	fmt.Printf("ok, loaded %d artifacts\n", len(artifacts.Names()))
	return nil
}
