// Command shopcheck runs the checkout input checks from the command line.
//
//	shopcheck [-country CC] <kind> <value>
//
// Kinds: integer, natural, decimal, email, phone, postcode, format-postcode.
// Checks print true or false and exit 1 when false; format-postcode prints
// the formatted postcode. Configuration comes from the environment (or a
// .env file): APP_ENV, LOG_LEVEL, LOG_FORMAT and SHOP_DEFAULT_COUNTRY.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/dmitrymomot/shopkit/pkg/config"
	"github.com/dmitrymomot/shopkit/pkg/environment"
	"github.com/dmitrymomot/shopkit/pkg/logger"
	"github.com/dmitrymomot/shopkit/pkg/sanitizer"
	"github.com/dmitrymomot/shopkit/pkg/validator"
)

const (
	exitOK      = 0
	exitInvalid = 1
	exitUsage   = 2

	kindFormatPostcode = "format-postcode"
)

// Config is read from the environment.
type Config struct {
	Env            string `env:"APP_ENV" envDefault:"development"`
	LogLevel       string `env:"LOG_LEVEL"`
	LogFormat      string `env:"LOG_FORMAT"`
	DefaultCountry string `env:"SHOP_DEFAULT_COUNTRY" envDefault:"GB"`
}

var checks = map[string]func(value, country string) bool{
	"integer":  func(v, _ string) bool { return validator.IsInteger(v) },
	"natural":  func(v, _ string) bool { return validator.IsNatural(v) },
	"decimal":  func(v, _ string) bool { return validator.IsDecimal(v) },
	"email":    func(v, _ string) bool { return validator.IsEmail(v) },
	"phone":    func(v, _ string) bool { return validator.IsPhone(v) },
	"postcode": validator.IsPostcode,
}

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		fmt.Fprintf(stderr, "shopcheck: %v\n", err)
		return exitUsage
	}

	log, err := newLogger(cfg, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "shopcheck: %v\n", err)
		return exitUsage
	}
	ctx = environment.WithContext(ctx, string(environment.Parse(cfg.Env)))

	fs := flag.NewFlagSet("shopcheck", flag.ContinueOnError)
	fs.SetOutput(stderr)
	country := fs.String("country", cfg.DefaultCountry, "ISO 3166-1 alpha-2 country code used by postcode checks")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "usage: shopcheck [-country CC] <kind> <value>\nkinds: %s\n", strings.Join(kinds(), ", "))
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	if fs.NArg() != 2 {
		fs.Usage()
		return exitUsage
	}

	kind, value := fs.Arg(0), fs.Arg(1)
	cc := sanitizer.TrimToUpper(*country)

	if kind == kindFormatPostcode {
		fmt.Fprintln(stdout, sanitizer.FormatPostcode(value, cc))
		return exitOK
	}

	check, ok := checks[kind]
	if !ok {
		log.ErrorContext(ctx, "unknown check", logger.Check(kind))
		fs.Usage()
		return exitUsage
	}

	valid := check(value, cc)
	log.DebugContext(ctx, "input checked", logger.Check(kind), logger.Country(cc), slog.Bool("valid", valid))
	fmt.Fprintln(stdout, valid)
	if !valid {
		return exitInvalid
	}
	return exitOK
}

func newLogger(cfg Config, w io.Writer) (*slog.Logger, error) {
	opts := []logger.Option{
		logger.WithEnvironment(cfg.Env, "shopcheck"),
		logger.WithOutput(w),
		logger.WithContextExtractors(environment.LoggerExtractor()),
	}

	if cfg.LogLevel != "" {
		level, ok := logger.ParseLevel(cfg.LogLevel)
		if !ok {
			return nil, fmt.Errorf("invalid LOG_LEVEL %q", cfg.LogLevel)
		}
		opts = append(opts, logger.WithLevel(level))
	}

	switch f := logger.Format(strings.ToLower(cfg.LogFormat)); f {
	case "":
	case logger.FormatJSON, logger.FormatText:
		opts = append(opts, logger.WithFormat(f))
	default:
		return nil, fmt.Errorf("invalid LOG_FORMAT %q", cfg.LogFormat)
	}

	return logger.New(opts...), nil
}

func kinds() []string {
	names := make([]string, 0, len(checks)+1)
	for name := range checks {
		names = append(names, name)
	}
	names = append(names, kindFormatPostcode)
	slices.Sort(names)
	return names
}
