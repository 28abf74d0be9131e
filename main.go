package main

import (
	"fmt"
	"log/slog"
	"os"
	"sort"

	"github.com/pkg/errors"
	cli "gopkg.in/urfave/cli.v1"

	"github.com/havrydotdev/classbox/config"
	eval "github.com/havrydotdev/classbox/evaluator"
	"github.com/havrydotdev/classbox/expr"
	"github.com/havrydotdev/classbox/parser"
	"github.com/havrydotdev/classbox/scanner"
)

var (
	configFileFlag = cli.StringFlag{
		Name:  "config",
		Usage: "TOML or YAML configuration file",
	}
	logLevelFlag = cli.StringFlag{
		Name:  "loglevel",
		Usage: "Log level (debug, info, warn, error)",
	}

	runCommand = cli.Command{
		Action:    runFile,
		Name:      "run",
		Usage:     "Run a script",
		ArgsUsage: "FILE",
	}
	astCommand = cli.Command{
		Action:      printAST,
		Name:        "ast",
		Usage:       "Print the syntax tree of a script",
		ArgsUsage:   "FILE",
		Description: `The ast command parses FILE and prints every statement as an s-expression.`,
	}
	replCommand = cli.Command{
		Action: repl,
		Name:   "repl",
		Usage:  "Start an interactive session",
	}
	dumpConfigCommand = cli.Command{
		Action:      dumpConfig,
		Name:        "dumpconfig",
		Usage:       "Show configuration values",
		Description: `The dumpconfig command shows configuration values.`,
	}
)

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "classbox"
	app.Usage = "a small class-based scripting language"
	app.Version = "0.1.0"
	app.ArgsUsage = "[FILE]"
	app.ErrWriter = os.Stderr
	app.Action = classbox
	app.Flags = []cli.Flag{configFileFlag, logLevelFlag}
	app.Commands = []cli.Command{
		runCommand,
		astCommand,
		replCommand,
		dumpConfigCommand,
	}
	sort.Sort(cli.CommandsByName(app.Commands))

	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// classbox runs FILE when one is given and starts the REPL otherwise.
func classbox(ctx *cli.Context) error {
	if ctx.NArg() > 0 {
		return runFile(ctx)
	}

	return repl(ctx)
}

func makeConfig(ctx *cli.Context) (config.Config, error) {
	cfg := config.Default()
	if file := ctx.GlobalString(configFileFlag.Name); file != "" {
		loaded, err := config.Load(file)
		if err != nil {
			return cfg, err
		}

		cfg = loaded
	}

	if ctx.GlobalIsSet(logLevelFlag.Name) {
		cfg.LogLevel = ctx.GlobalString(logLevelFlag.Name)
	}

	return cfg, cfg.Validate()
}

func makeEvaluator(ctx *cli.Context) (*eval.Evaluator, config.Config, error) {
	cfg, err := makeConfig(ctx)
	if err != nil {
		return nil, cfg, err
	}

	lvl, err := cfg.Level()
	if err != nil {
		return nil, cfg, err
	}

	logger := slog.New(slog.NewTextHandler(ctx.App.ErrWriter, &slog.HandlerOptions{Level: lvl}))
	e, err := eval.New(
		eval.WithOutput(ctx.App.Writer),
		eval.WithLogger(logger),
		eval.WithFieldCacheSize(cfg.FieldCacheSize),
	)
	if err != nil {
		return nil, cfg, err
	}

	return e, cfg, nil
}

func readSource(ctx *cli.Context) (string, error) {
	file := ctx.Args().First()
	if file == "" {
		return "", errors.New("missing FILE argument")
	}

	text, err := os.ReadFile(file)
	if err != nil {
		return "", err
	}

	return string(text), nil
}

func runFile(ctx *cli.Context) error {
	src, err := readSource(ctx)
	if err != nil {
		return err
	}

	e, _, err := makeEvaluator(ctx)
	if err != nil {
		return err
	}

	return e.Exec(src)
}

func printAST(ctx *cli.Context) error {
	src, err := readSource(ctx)
	if err != nil {
		return err
	}

	tokens, err := scanner.New(src).Scan()
	if err != nil {
		return err
	}

	stmts, errs := parser.New(tokens, expr.NewPrinter()).Parse()
	for _, stmt := range stmts {
		fmt.Fprintln(ctx.App.Writer, stmt.Print())
	}

	if len(errs) > 0 {
		return eval.ParseErrors(errs)
	}

	return nil
}

// dumpConfig is the dumpconfig command.
func dumpConfig(ctx *cli.Context) error {
	cfg, err := makeConfig(ctx)
	if err != nil {
		return err
	}

	return config.Dump(ctx.App.Writer, cfg)
}
