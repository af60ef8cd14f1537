package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/bjaus/ufmt"
)

// renderConfig holds parsed render command configuration
type renderConfig struct {
	templatePath string
	expr         string
	valuesPath   string
	outputPath   string
	configPath   string
	verbose      bool
}

// valuesFile is the YAML document read by -values.
//
//	args: [1, "two"]
//	named:
//	  host: example.org
//	  port: 8080
type valuesFile struct {
	Args  []any          `yaml:"args"`
	Named map[string]any `yaml:"named"`
}

func runRender(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := parseRenderFlags(args)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgMissingTemplate, err)
		return ExitCodeUsageError
	}

	src, err := readTemplate(cfg.templatePath, cfg.expr, stdin)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgReadFileFailed, err)
		return ExitCodeInputError
	}

	values, err := loadValues(cfg.valuesPath)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgInvalidValues, err)
		return ExitCodeInputError
	}

	logger := newLogger(cfg.verbose, stderr)
	defer func() { _ = logger.Sync() }()

	opts := []ufmt.Option{ufmt.WithLogger(logger)}
	if cfg.configPath != "" {
		pc, err := ufmt.LoadConfig(cfg.configPath)
		if err != nil {
			fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgLoadConfigFailed, err)
			return ExitCodeInputError
		}
		opts = append(opts, pc.Options()...)
	}

	var out ufmt.Buffer
	if err := ufmt.New(opts...).Writeln(&out, src, values.arguments()...); err != nil {
		reportTemplateError(stderr, ErrMsgRenderFailed, src, err)
		return ExitCodeValidationError
	}

	if err := writeOutput(cfg.outputPath, out.String(), stdout); err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgWriteOutputFailed, err)
		return ExitCodeError
	}

	return ExitCodeSuccess
}

func parseRenderFlags(args []string) (*renderConfig, error) {
	fs := flag.NewFlagSet(CmdNameRender, flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	cfg := &renderConfig{}

	fs.StringVar(&cfg.templatePath, FlagTemplate, "", "")
	fs.StringVar(&cfg.templatePath, FlagTemplateShort, "", "")
	fs.StringVar(&cfg.expr, FlagExpr, "", "")
	fs.StringVar(&cfg.expr, FlagExprShort, "", "")
	fs.StringVar(&cfg.valuesPath, FlagValues, "", "")
	fs.StringVar(&cfg.valuesPath, FlagValuesShort, "", "")
	fs.StringVar(&cfg.outputPath, FlagOutput, FlagDefaultOutput, "")
	fs.StringVar(&cfg.outputPath, FlagOutputShort, FlagDefaultOutput, "")
	fs.StringVar(&cfg.configPath, FlagConfig, "", "")
	fs.StringVar(&cfg.configPath, FlagConfigShort, "", "")
	fs.BoolVar(&cfg.verbose, FlagVerbose, false, "")
	fs.BoolVar(&cfg.verbose, FlagVerboseShort, false, "")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if cfg.templatePath == "" && cfg.expr == "" {
		return nil, errors.New(ErrMsgMissingTemplate)
	}

	return cfg, nil
}

func loadValues(path string) (*valuesFile, error) {
	v := &valuesFile{}
	if path == "" {
		return v, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, v); err != nil {
		return nil, err
	}
	return v, nil
}

// arguments returns the positional values followed by the named ones in
// key order.
func (v *valuesFile) arguments() []any {
	args := slices.Clone(v.Args)
	for _, name := range slices.Sorted(maps.Keys(v.Named)) {
		args = append(args, ufmt.Named(name, v.Named[name]))
	}
	return args
}
