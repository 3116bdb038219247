package main

import (
	"bytes"
	"encoding/json"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-test/deep"
	"github.com/loopring/artifacts"
	"github.com/loopring/artifacts/fspath"
	"github.com/loopring/artifacts/metadata"
	"gopkg.in/yaml.v3"
)

func testArtifacts(t *testing.T) *artifacts.Artifacts {
	a, err := artifacts.New(artifacts.LoaderFunc(func(name string) (artifacts.Handle, error) {
		md := &metadata.Artifact{
			ContractName: strings.TrimSuffix(fspath.Flat.Generate(name), metadata.Extension),
			Bytecode:     "0x6080604052",
		}
		if name == "impl/Exchange" {
			md.Networks = map[string]metadata.Network{
				"1":    {Address: "0x944644Ea989Ec64c2Ab9eF341D383cEf586A5777"},
				"5777": {},
			}
		}
		return md, nil
	}))
	if err != nil {
		t.Fatalf("could not build registry %+v", err)
	}
	return a
}

func TestLayout(t *testing.T) {
	cases := []struct {
		name      string
		expected  string
		expectErr bool
	}{
		{"", "Exchange.json", false},
		{"flat", "Exchange.json", false},
		{"nested", "impl/Exchange.json", false},
		{"pairtree", "", true},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			gen, err := layout(c.name)
			if (err != nil) != c.expectErr {
				t.Fatalf("expected error: %t, got error: %t", c.expectErr, (err != nil))
			}
			if err == nil && gen.Generate("impl/Exchange") != c.expected {
				t.Errorf("expected %s, got %s", c.expected, gen.Generate("impl/Exchange"))
			}
		})
	}
}

func TestEntries(t *testing.T) {
	list := entries(testArtifacts(t))

	if len(list) != len(artifacts.Names()) {
		t.Fatalf("expected %d entries, got %d", len(artifacts.Names()), len(list))
	}

	expected := entry{
		Field:     "Exchange",
		Path:      "impl/Exchange",
		Contract:  "Exchange",
		Size:      5,
		Addresses: map[string]string{"1": "0x944644Ea989Ec64c2Ab9eF341D383cEf586A5777"},
	}
	if diffs := deep.Equal(expected, list[0]); len(diffs) != 0 {
		t.Errorf("unexpected first entry: %s", diffs)
	}

	last := list[len(list)-1]
	if last.Field != "TESTToken" || last.Contract != "TEST" || last.Addresses != nil {
		t.Errorf("unexpected last entry: %+v", last)
	}
}

func TestWriteEntriesText(t *testing.T) {
	var buf bytes.Buffer
	if err := writeEntries(&buf, "text", entries(testArtifacts(t))); err != nil {
		t.Fatalf("could not write entries %+v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != len(artifacts.Names()) {
		t.Fatalf("expected %d lines, got %d", len(artifacts.Names()), len(lines))
	}
	if lines[6] != "LRCToken    test/tokens/LRC    LRC    5" {
		t.Errorf("unexpected line: %s", lines[6])
	}
}

func TestWriteEntriesStructured(t *testing.T) {
	list := entries(testArtifacts(t))

	decoders := map[string]func([]byte, interface{}) error{
		"json": json.Unmarshal,
		"yaml": yaml.Unmarshal,
	}

	for format, decode := range decoders {
		decode := decode
		format := format
		t.Run(format, func(t *testing.T) {
			var buf bytes.Buffer
			if err := writeEntries(&buf, format, list); err != nil {
				t.Fatalf("could not write entries %+v", err)
			}

			var decoded []entry
			if err := decode(buf.Bytes(), &decoded); err != nil {
				t.Fatalf("could not decode %s output %+v", format, err)
			}

			if diffs := deep.Equal(list, decoded); len(diffs) != 0 {
				t.Errorf("%s output did not match: %s", format, diffs)
			}
		})
	}
}

func TestWriteEntriesBadFormat(t *testing.T) {
	if err := writeEntries(&bytes.Buffer{}, "xml", nil); err == nil {
		t.Errorf("should have thrown an error")
	}
}

func TestWriteManifest(t *testing.T) {
	var buf bytes.Buffer
	if err := writeManifest(&buf, entries(testArtifacts(t))); err != nil {
		t.Fatalf("could not write manifest %+v", err)
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("manifest is not valid yaml %+v", err)
	}

	mapping := doc.Content[0]
	var fields []string
	for i := 0; i < len(mapping.Content); i += 2 {
		fields = append(fields, mapping.Content[i].Value)
	}

	var expected []string
	for _, n := range artifacts.Names() {
		expected = append(expected, n.Field)
	}

	if diffs := deep.Equal(expected, fields); len(diffs) != 0 {
		t.Errorf("manifest fields are not in resolution order: %s", diffs)
	}

	var decoded map[string]manifestEntry
	if err := yaml.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("could not decode manifest %+v", err)
	}

	if decoded["WETHToken"].Path != "test/tokens/WETH" || decoded["Exchange"].Addresses["1"] == "" {
		t.Errorf("unexpected manifest content %+v", decoded)
	}
}

func TestWriteManifestFile(t *testing.T) {
	tempDir, err := ioutil.TempDir("", "artifacts_test")
	if err != nil {
		t.Fatal("Could not create testing temp dir")
	}
	defer os.RemoveAll(tempDir)

	path := filepath.Join(tempDir, "artifacts.yaml")
	_ = ioutil.WriteFile(path, []byte("stale"), 0664)

	if err := writeManifestFile(path, entries(testArtifacts(t))); err != nil {
		t.Fatalf("could not write manifest file %+v", err)
	}

	var buf bytes.Buffer
	_ = writeManifest(&buf, entries(testArtifacts(t)))

	content, _ := ioutil.ReadFile(path)
	if string(content) != buf.String() {
		t.Errorf("manifest file does not hold the manifest")
	}

	files, _ := ioutil.ReadDir(tempDir)
	if len(files) != 1 {
		t.Errorf("temporary files were left behind")
	}
}
