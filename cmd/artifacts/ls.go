package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/loopring/artifacts"
	"github.com/urfave/cli"
	"gopkg.in/yaml.v3"
)

var lsOpts = struct {
	format string
}{}

var ls = cli.Command{
	Name:  "ls",
	Usage: "List known artifacts",
	Description: `Loads every known artifact and lists, for each, the field it is
	exposed as, its logical name, the contract it holds and the size of
	its creation bytecode.

	Output is one artifact per line by default.  json and yaml output
	also include the network addresses the artifact was deployed at.`,
	Flags: []cli.Flag{
		cli.StringFlag{
			Name:        "format, f",
			Usage:       "Output format {text, json, yaml}",
			Value:       "text",
			Destination: &lsOpts.format,
		},
	},

	Action: func(c *cli.Context) error {
		return lsAction(os.Stdout)
	},
}

// entry is the listed form of a single artifact
type entry struct {
	Field     string            `json:"field" yaml:"field"`
	Path      string            `json:"path" yaml:"path"`
	Contract  string            `json:"contract" yaml:"contract"`
	Size      int               `json:"bytecodeSize" yaml:"bytecodeSize"`
	Addresses map[string]string `json:"addresses,omitempty" yaml:"addresses,omitempty"`
}

func lsAction(w io.Writer) error {
	a, err := load()
	if err != nil {
		return err
	}

	return writeEntries(w, lsOpts.format, entries(a))
}

func entries(a *artifacts.Artifacts) []entry {
	var list []entry

	_ = a.Walk(func(n artifacts.Name, h artifacts.Handle) error {
		md := artifact(h)
		e := entry{
			Field:    n.Field,
			Path:     n.Path,
			Contract: md.ContractName,
			Size:     md.BytecodeSize(),
		}

		for network := range md.Networks {
			if addr, ok := md.Address(network); ok {
				if e.Addresses == nil {
					e.Addresses = make(map[string]string)
				}
				e.Addresses[network] = addr
			}
		}

		list = append(list, e)
		return nil
	})

	return list
}

func writeEntries(w io.Writer, format string, list []entry) error {
	switch format {
	case "", "text":
		for _, e := range list {
			_, err := fmt.Fprintln(w, strings.Join([]string{e.Field, e.Path, e.Contract, strconv.Itoa(e.Size)}, "    "))
			if err != nil {
				return err
			}
		}
		return nil
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(list)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(list); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown format %s", format)
	}
}
