// Command valueobject builds an email value object from each argument and
// reports which inputs are valid, which are equal and how they hash.
//
//	valueobject [--format=text|json] [--check-syntax] [--log-level=info] EMAIL...
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"

	"github.com/go-leo/valueobject/customer"
	"github.com/go-leo/valueobject/ddd"
	"github.com/go-leo/valueobject/decorator"
	"github.com/go-leo/valueobject/factory"
)

const (
	exitOK      = 0
	exitInvalid = 1
	exitUsage   = 2
)

type config struct {
	Format      string
	CheckSyntax bool
	LogLevel    string
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cfg, emails, err := parseFlags(args, stderr)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}
	logger, err := newLogger(cfg.LogLevel, stderr)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}

	var opts []ddd.EmailOption
	if cfg.CheckSyntax {
		opts = append(opts, ddd.WithFormat(ddd.SyntaxRule()))
	}
	emailFactory := decorator.Chain[factory.Factory[ddd.Email, string]](ddd.EmailFactory(opts...), logRejections(logger))
	rep := buildReport(emails, emailFactory)

	if valid := rep.valid(); len(valid) > 0 {
		c, err := customer.NewBuilder().Name("demo").Email(valid[0].Value(), opts...).Build()
		if err != nil {
			logger.WithError(err).Error("build customer")
			return exitInvalid
		}
		logger.WithFields(logrus.Fields{"customer": c.Identity().String(), "email": c.Email.Value()}).Debug("customer created")
	}

	if err := writeReport(stdout, cfg.Format, rep); err != nil {
		logger.WithError(err).Error("write report")
		return exitUsage
	}
	if rep.Invalid > 0 {
		return exitInvalid
	}
	return exitOK
}

func parseFlags(args []string, stderr io.Writer) (*config, []string, error) {
	cfg := &config{}
	fs := pflag.NewFlagSet("valueobject", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.Format, "format", envOr("VALUEOBJECT_FORMAT", formatText), "output format: text or json")
	fs.BoolVar(&cfg.CheckSyntax, "check-syntax", os.Getenv("VALUEOBJECT_CHECK_SYNTAX") == "true", "also validate the email syntax")
	fs.StringVar(&cfg.LogLevel, "log-level", envOr("VALUEOBJECT_LOG_LEVEL", "info"), "log level")
	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	if cfg.Format != formatText && cfg.Format != formatJSON {
		return nil, nil, fmt.Errorf("unknown format %q", cfg.Format)
	}
	if fs.NArg() == 0 {
		return nil, nil, fmt.Errorf("at least one email is required")
	}
	return cfg, fs.Args(), nil
}

func envOr(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func newLogger(level string, out io.Writer) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetLevel(lvl)
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	return logger, nil
}

// logRejections logs every input the wrapped factory rejects.
func logRejections(logger logrus.FieldLogger) decorator.Func[factory.Factory[ddd.Email, string]] {
	return func(next factory.Factory[ddd.Email, string]) factory.Factory[ddd.Email, string] {
		return factory.Func[ddd.Email, string](func(raw string) (ddd.Email, error) {
			email, err := next.Create(raw)
			if err != nil {
				logger.WithFields(logrus.Fields{"input": raw, "error": err}).Warn("rejected email")
			}
			return email, err
		})
	}
}
