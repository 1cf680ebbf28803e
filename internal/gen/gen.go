// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// gen generates the capacity-dependent parts of package fixedarray: the
// Storage constraint, which lists every backing array type an Array may be
// instantiated with, and the OfN literal constructors.
//
// To regenerate a file, use
//
//	//go:generate go run github.com/bufbuild/fixedarray/internal/gen capacity.yaml
//
// For a config named foo.yaml, the output is written to foo.go. Arguments may
// be doublestar globs, such as "**/*.yaml". With --check, nothing is written;
// instead, gen fails with a diff if the output on disk is out of date.
package main

import (
	"bytes"
	"debug/buildinfo"
	_ "embed"
	"errors"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"
	"text/template"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/pflag"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/bufbuild/fixedarray/internal/corpora"
)

// Config is the schema of a generator config file.
type Config struct {
	Capacities []Capacities `yaml:"capacities"` // Backing array lengths to support.
	Literals   int          `yaml:"literals"`   // Generate Of1 through OfN.
}

// Capacities is one entry of [Config.Capacities]: either an inclusive range
// or a list of values.
type Capacities struct {
	From   *int  `yaml:"from"`
	To     *int  `yaml:"to"`
	Values []int `yaml:"values"`
}

// Input is the data the template is executed with.
type Input struct {
	Binary, Package, Config string

	Capacities []int
	Literals   int
}

// Terms returns the union terms of the Storage constraint.
func (in Input) Terms() []string {
	terms := make([]string, len(in.Capacities))
	for i, n := range in.Capacities {
		terms[i] = fmt.Sprintf("~[%d]T", n)
		if i < len(in.Capacities)-1 {
			terms[i] += " |"
		}
	}
	return terms
}

// Summary describes the supported capacities in prose, collapsing runs of
// consecutive values into ranges.
func (in Input) Summary() string {
	var parts []string
	caps := in.Capacities
	for len(caps) > 0 {
		run := 1
		for run < len(caps) && caps[run] == caps[0]+run {
			run++
		}
		switch {
		case run >= 3:
			parts = append(parts, fmt.Sprintf("%d through %d", caps[0], caps[run-1]))
		default:
			run = 1
			parts = append(parts, fmt.Sprint(caps[0]))
		}
		caps = caps[run:]
	}
	return strings.Join(parts, ", ")
}

// Arities returns 1 through Literals.
func (in Input) Arities() []int {
	out := make([]int, in.Literals)
	for i := range out {
		out[i] = i + 1
	}
	return out
}

// Resolve flattens and validates the capacities in c.
func (c Config) Resolve() ([]int, error) {
	var caps []int
	for i, entry := range c.Capacities {
		switch {
		case entry.From != nil || entry.To != nil:
			if entry.From == nil || entry.To == nil || entry.Values != nil {
				return nil, fmt.Errorf("capacities[%d]: a range needs both from and to, and no values", i)
			}
			if *entry.From > *entry.To {
				return nil, fmt.Errorf("capacities[%d]: empty range %d to %d", i, *entry.From, *entry.To)
			}
			for n := *entry.From; n <= *entry.To; n++ {
				caps = append(caps, n)
			}
		case len(entry.Values) > 0:
			caps = append(caps, entry.Values...)
		default:
			return nil, fmt.Errorf("capacities[%d]: entry is empty", i)
		}
	}
	if len(caps) == 0 {
		return nil, errors.New("no capacities configured")
	}

	slices.Sort(caps)
	for i, n := range caps {
		if n < 0 {
			return nil, fmt.Errorf("negative capacity %d", n)
		}
		if i > 0 && caps[i-1] == n {
			return nil, fmt.Errorf("duplicate capacity %d", n)
		}
	}

	if c.Literals < 0 {
		return nil, fmt.Errorf("negative literal count %d", c.Literals)
	}
	for n := 1; n <= c.Literals; n++ {
		if _, found := slices.BinarySearch(caps, n); !found {
			return nil, fmt.Errorf("literal constructor Of%d needs capacity %d, which is not configured", n, n)
		}
	}
	return caps, nil
}

//go:embed gen.go.tmpl
var tmplText string

var tmpl = template.Must(template.New("gen.go.tmpl").Funcs(template.FuncMap{
	"params": func(n int) string {
		names := make([]string, n)
		for i := range names {
			names[i] = fmt.Sprintf("v%d", i)
		}
		return strings.Join(names, ", ")
	},
}).Parse(tmplText))

// Parse decodes a config file, rejecting unknown fields.
func Parse(text []byte) (Config, error) {
	var config Config
	dec := yaml.NewDecoder(bytes.NewReader(text))
	dec.KnownFields(true)
	if err := dec.Decode(&config); err != nil {
		return Config{}, err
	}
	return config, nil
}

// Render executes the template for config and formats the result.
func Render(binary, pkg, name string, config Config) ([]byte, error) {
	caps, err := config.Resolve()
	if err != nil {
		return nil, err
	}

	var out bytes.Buffer
	err = tmpl.Execute(&out, Input{
		Binary:     binary,
		Package:    pkg,
		Config:     name,
		Capacities: caps,
		Literals:   config.Literals,
	})
	if err != nil {
		return nil, err
	}
	return format.Source(out.Bytes())
}

// Main generates the Go file for a single config file, writing it next to
// config with the .yaml suffix replaced by .go. binary is the import path of
// the generator, recorded in the file's header.
//
// If check is set, nothing is written; instead, Main returns an error with a
// diff if the existing file does not match what would have been generated.
func Main(binary, config string, check bool) error {
	if filepath.Ext(config) != ".yaml" {
		return errors.New("file argument must end in .yaml")
	}
	path := strings.TrimSuffix(config, ".yaml") + ".go"

	text, err := os.ReadFile(config)
	if err != nil {
		return err
	}
	parsed, err := Parse(text)
	if err != nil {
		return err
	}
	pkg := os.Getenv("GOPACKAGE")
	if pkg == "" {
		return errors.New("GOPACKAGE is not set; run gen through go generate")
	}

	out, err := Render(binary, pkg, filepath.Base(config), parsed)
	if err != nil {
		return err
	}

	if !check {
		return os.WriteFile(path, out, 0o644)
	}

	current, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if diff := corpora.Diff(string(out), string(current)); diff != "" {
		return fmt.Errorf("%s is out of date:\n%s", path, diff)
	}
	return nil
}

func main() {
	check := pflag.Bool("check", false, "report out-of-date outputs instead of writing them")
	pflag.Parse()

	info, err := buildinfo.ReadFile(os.Args[0])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	var configs []string
	for _, arg := range pflag.Args() {
		matches, err := doublestar.FilepathGlob(arg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", arg, err)
			os.Exit(1)
		}
		if len(matches) == 0 {
			// Not a pattern, or a pattern with no matches; let Main report it.
			matches = []string{arg}
		}
		configs = append(configs, matches...)
	}

	errs := make([]error, len(configs))
	var group errgroup.Group
	group.SetLimit(runtime.GOMAXPROCS(0))
	for i, config := range configs {
		group.Go(func() error {
			errs[i] = Main(info.Path, config, *check)
			return nil
		})
	}
	_ = group.Wait()

	var failed bool
	for i, err := range errs {
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", configs[i], err)
			failed = true
		}
	}
	if failed {
		os.Exit(1)
	}
}
