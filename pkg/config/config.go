// Package config merges command-line flags over an optional YAML file.
package config

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/srodi/proctop/pkg/logging"
	"github.com/srodi/proctop/pkg/report"
)

// Config holds every user-tunable setting. The refresh interval is fixed and
// deliberately absent.
type Config struct {
	ProcRoot            string `yaml:"proc_root"`
	Banner              bool   `yaml:"banner"`
	HideKernel          bool   `yaml:"hide_kernel"`
	TopK                int    `yaml:"topk"`
	OnCounterRegression string `yaml:"on_counter_regression"`
	LogLevel            string `yaml:"log_level"`
	LogFile             string `yaml:"log_file"`
	MetricsFile         string `yaml:"metrics_file"`
}

// Defaults returns the settings used when neither a flag nor the file sets a value.
func Defaults() Config {
	return Config{
		ProcRoot:            "/proc",
		OnCounterRegression: report.ClampRegression.String(),
		LogLevel:            "error",
	}
}

// Load reads a YAML file over Defaults. Unknown keys are rejected.
func Load(path string) (Config, error) {
	cfg := Defaults()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks values that would otherwise fail later in the run.
func (c Config) Validate() error {
	var errs []error
	if c.TopK < 0 {
		errs = append(errs, fmt.Errorf("topk must be >= 0, got %d", c.TopK))
	}
	if _, err := report.ParseRegressionPolicy(c.OnCounterRegression); err != nil {
		errs = append(errs, err)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Parse reads flags from args (without the program name). Values from the file
// named by -config fill in every flag not set explicitly. The remaining
// positional arguments are returned alongside the merged configuration.
// flag.ErrHelp is returned unchanged when -h is requested.
func Parse(program string, args []string, errOut io.Writer) (Config, []string, error) {
	fs := flag.NewFlagSet(program, flag.ContinueOnError)
	fs.SetOutput(errOut)
	fs.Usage = func() {
		fmt.Fprintf(errOut, "usage: %s [flags]\n       %s [flags] kill <pid>\n\nflags:\n", program, program)
		fs.PrintDefaults()
	}

	def := Defaults()
	var flagged Config
	configPath := fs.String("config", "", "optional YAML configuration file")
	fs.StringVar(&flagged.ProcRoot, "proc-root", def.ProcRoot, "mount point of the process information filesystem")
	fs.BoolVar(&flagged.Banner, "banner", def.Banner, "print the banner above the table")
	fs.BoolVar(&flagged.HideKernel, "hide-kernel", def.HideKernel, "hide kernel threads such as kworker, ksoftirqd, etc")
	fs.IntVar(&flagged.TopK, "topk", def.TopK, "maximum rows to display (0 shows all)")
	fs.StringVar(&flagged.OnCounterRegression, "on-counter-regression", def.OnCounterRegression, "clamp or drop rows whose tick counter went backwards")
	fs.StringVar(&flagged.LogLevel, "log-level", def.LogLevel, "diagnostic log level (debug, info, warn, error, disabled)")
	fs.StringVar(&flagged.LogFile, "log-file", def.LogFile, "append diagnostics to this file instead of stderr")
	fs.StringVar(&flagged.MetricsFile, "metrics-file", def.MetricsFile, "write loop metrics in Prometheus text format to this file each cycle")

	if err := fs.Parse(args); err != nil {
		return def, nil, err
	}

	cfg := def
	if *configPath != "" {
		loaded, err := Load(*configPath)
		if err != nil {
			return def, nil, err
		}
		cfg = loaded
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "proc-root":
			cfg.ProcRoot = flagged.ProcRoot
		case "banner":
			cfg.Banner = flagged.Banner
		case "hide-kernel":
			cfg.HideKernel = flagged.HideKernel
		case "topk":
			cfg.TopK = flagged.TopK
		case "on-counter-regression":
			cfg.OnCounterRegression = flagged.OnCounterRegression
		case "log-level":
			cfg.LogLevel = flagged.LogLevel
		case "log-file":
			cfg.LogFile = flagged.LogFile
		case "metrics-file":
			cfg.MetricsFile = flagged.MetricsFile
		}
	})

	if err := cfg.Validate(); err != nil {
		return cfg, nil, err
	}
	return cfg, fs.Args(), nil
}
