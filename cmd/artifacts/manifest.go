package main

import (
	"fmt"
	"io"
	"os"

	"github.com/loopring/artifacts/drivers/fs"
	"github.com/pkg/errors"
	"github.com/urfave/cli"
	"gopkg.in/yaml.v3"
)

var manifest = cli.Command{
	Name:  "manifest",
	Usage: "Write a yaml manifest of the known artifacts",
	Description: `Loads every known artifact and writes a yaml document mapping each
	field to its logical name, contract name, bytecode size and deployed
	addresses, in resolution order.

	With no arguments the manifest is written to stdout.  Given a file
	name, the manifest atomically replaces that file; an existing file is
	left untouched if anything goes wrong.`,
	ArgsUsage: "[ file ]",
	Action: func(c *cli.Context) error {
		return manifestAction(c.Args())
	},
}

type manifestEntry struct {
	Path      string            `yaml:"path"`
	Contract  string            `yaml:"contract"`
	Size      int               `yaml:"bytecodeSize"`
	Addresses map[string]string `yaml:"addresses,omitempty"`
}

func manifestAction(args []string) error {
	if len(args) > 1 {
		return fmt.Errorf("manifest takes zero or one arguments")
	}

	a, err := load()
	if err != nil {
		return err
	}

	if len(args) == 0 {
		return writeManifest(os.Stdout, entries(a))
	}

	return writeManifestFile(args[0], entries(a))
}

func writeManifestFile(path string, list []entry) (err error) {
	w, err := fs.AtomicWrite(path)
	if err != nil {
		return errors.Wrapf(err, "could not write manifest")
	}
	defer func() {
		if e := w.Rollback(); e != nil && err == nil {
			err = errors.Wrapf(e, "error rolling back manifest %s", path)
		}
	}()

	if err = writeManifest(w, list); err != nil {
		return errors.Wrapf(err, "could not write manifest to %s", path)
	}

	return w.Close()
}

// Fields are written as an ordered yaml mapping, rather than sorted map keys
func writeManifest(w io.Writer, list []entry) error {
	doc := &yaml.Node{Kind: yaml.MappingNode}

	for _, e := range list {
		var value yaml.Node
		err := value.Encode(manifestEntry{
			Path:      e.Path,
			Contract:  e.Contract,
			Size:      e.Size,
			Addresses: e.Addresses,
		})
		if err != nil {
			return errors.Wrapf(err, "could not encode %s", e.Field)
		}

		doc.Content = append(doc.Content, &yaml.Node{
			Kind:  yaml.ScalarNode,
			Tag:   "!!str",
			Value: e.Field,
		}, &value)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return err
	}
	return enc.Close()
}
