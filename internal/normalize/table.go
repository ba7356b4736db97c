package normalize

import (
	_ "embed"
	"regexp"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

//go:embed table.yaml
var defaultTable []byte

// PatternRule maps any string matching Pattern to Area.
type PatternRule struct {
	Pattern string `koanf:"pattern"`
	Area    string `koanf:"area"`

	re *regexp.Regexp
}

// LocationRule maps any venue text containing Contains to Location.
type LocationRule struct {
	Contains string `koanf:"contains"`
	Location string `koanf:"location"`
}

// Table is the data-driven part of the normalizer. Patterns and Locations
// are evaluated in order and the first match wins.
type Table struct {
	Aliases         map[string]string `koanf:"aliases"`
	Patterns        []PatternRule     `koanf:"patterns"`
	CityMarker      string            `koanf:"cityMarker"`
	CityBucket      string            `koanf:"cityBucket"`
	Unknown         string            `koanf:"unknown"`
	MaxLength       int               `koanf:"maxLength"`
	Locations       []LocationRule    `koanf:"locations"`
	UnknownLocation string            `koanf:"unknownLocation"`
}

// LoadTable reads the alias table from path, or the embedded default when
// path is empty.
func LoadTable(path string) (*Table, error) {
	k := koanf.New(".")

	var provider koanf.Provider = rawbytes.Provider(defaultTable)
	if path != "" {
		provider = file.Provider(path)
	}

	if err := k.Load(provider, yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "load normalizer table %q", path)
	}

	table := &Table{}
	if err := k.Unmarshal("", table); err != nil {
		return nil, errors.Wrap(err, "decode normalizer table")
	}

	if err := table.compile(); err != nil {
		return nil, err
	}

	return table, nil
}

// DefaultTable returns the embedded table. It panics if the embedded
// document is invalid, which is caught by the package tests.
func DefaultTable() *Table {
	table, err := LoadTable("")
	if err != nil {
		panic(err)
	}

	return table
}

func (t *Table) compile() error {
	for i := range t.Patterns {
		re, err := regexp.Compile(t.Patterns[i].Pattern)
		if err != nil {
			return errors.Wrapf(err, "compile pattern %q", t.Patterns[i].Pattern)
		}
		t.Patterns[i].re = re
	}

	if t.Unknown == "" {
		t.Unknown = "不明"
	}
	if t.UnknownLocation == "" {
		t.UnknownLocation = t.Unknown
	}
	if t.Aliases == nil {
		t.Aliases = map[string]string{}
	}

	return nil
}
