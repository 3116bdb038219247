package main

import (
	"fmt"
	"log"
	"os"

	"github.com/loopring/artifacts"
	"github.com/loopring/artifacts/drivers/fs"
	"github.com/loopring/artifacts/fspath"
	"github.com/loopring/artifacts/metadata"
	"github.com/urfave/cli"
)

var mainOpts = struct {
	root     string
	layout   string
	parallel bool
}{}

func main() {
	app := cli.NewApp()
	app.Name = "artifacts"
	app.Usage = "Inspect the compiled contracts used by Loopring v3 tests and deployments"
	app.EnableBashCompletion = true
	app.Commands = []cli.Command{
		check,
		ls,
		manifest,
	}
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:        "root, r",
			Usage:       "Build directory holding compiled artifacts (default: build/contracts of the enclosing truffle project)",
			EnvVar:      "ARTIFACTS_ROOT",
			Destination: &mainOpts.root,
		},
		cli.StringFlag{
			Name:        "layout, l",
			Usage:       "Build directory layout {flat, nested}",
			EnvVar:      "ARTIFACTS_LAYOUT",
			Value:       "flat",
			Destination: &mainOpts.layout,
		},
		cli.BoolFlag{
			Name:        "parallel, p",
			Usage:       "Load artifacts concurrently",
			Destination: &mainOpts.parallel,
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Fatal(err)
	}
}

// Loads every known artifact from the configured build directory
func load() (*artifacts.Artifacts, error) {
	pathFunc, err := layout(mainOpts.layout)
	if err != nil {
		return nil, err
	}

	d, err := fs.NewDriver(fs.Config{
		Root:     root(mainOpts.root),
		PathFunc: pathFunc,
	})
	if err != nil {
		return nil, err
	}

	if mainOpts.parallel {
		return artifacts.NewConcurrent(d)
	}
	return artifacts.New(d)
}

func layout(name string) (fspath.Generator, error) {
	switch name {
	case "", "flat":
		return fspath.Flat, nil
	case "nested":
		return fspath.Nested, nil
	default:
		return nil, fmt.Errorf("unknown layout %s", name)
	}
}

func root(dir string) string {
	if dir != "" {
		return dir
	}

	pwd, err := os.Getwd()
	if err != nil {
		log.Fatalf("could not get pwd %s", err)
	}

	dir, err = fs.LocateRoot(pwd)
	if err != nil {
		log.Fatalf("error locating build directory %s", err)
	}

	return dir
}

// The fs driver always hands out *metadata.Artifact
func artifact(h artifacts.Handle) *metadata.Artifact {
	a, ok := h.(*metadata.Artifact)
	if !ok {
		return &metadata.Artifact{}
	}
	return a
}
