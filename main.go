package main

import (
	"fmt"
	"os"

	"github.com/MixinNetwork/fraction/config"
	"github.com/MixinNetwork/fraction/logger"
	"github.com/urfave/cli/v2"
)

func main() {
	app := cli.NewApp()
	app.Name = "fraction"
	app.Usage = "Exact mixed number arithmetic on whole, numerator and denominator triples."
	app.Version = config.BuildVersion
	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "the TOML configuration `FILE`",
		},
		&cli.IntFlag{
			Name:    "log",
			Aliases: []string{"l"},
			Usage:   "the log level, overrides the configuration",
		},
		&cli.StringFlag{
			Name:    "format",
			Aliases: []string{"f"},
			Usage:   "the output format, mixed, float or decimal",
		},
	}
	app.Before = setupCmd
	app.EnableBashCompletion = true
	app.Commands = []*cli.Command{
		{
			Name:   "add",
			Usage:  "Add the two operands",
			Action: arithmeticCmd,
			Flags:  operandFlags(),
		},
		{
			Name:   "sub",
			Usage:  "Subtract operand b from operand a",
			Action: arithmeticCmd,
			Flags:  operandFlags(),
		},
		{
			Name:   "mul",
			Usage:  "Multiply the two operands",
			Action: arithmeticCmd,
			Flags:  operandFlags(),
		},
		{
			Name:   "div",
			Usage:  "Divide operand a by operand b",
			Action: arithmeticCmd,
			Flags:  operandFlags(),
		},
		{
			Name:   "cmp",
			Usage:  "Compare the two operands",
			Action: compareCmd,
			Flags:  operandFlags(),
		},
		{
			Name:   "show",
			Usage:  "Show the canonical form of operand a in every format",
			Action: showCmd,
			Flags:  operandFlags(),
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func operandFlags() []cli.Flag {
	return []cli.Flag{
		&cli.Int64Flag{Name: "aw", Usage: "the whole part of operand a"},
		&cli.Int64Flag{Name: "an", Usage: "the numerator of operand a"},
		&cli.Int64Flag{Name: "ad", Value: 1, Usage: "the denominator of operand a"},
		&cli.Int64Flag{Name: "bw", Usage: "the whole part of operand b"},
		&cli.Int64Flag{Name: "bn", Usage: "the numerator of operand b"},
		&cli.Int64Flag{Name: "bd", Value: 1, Usage: "the denominator of operand b"},
	}
}

func setupCmd(c *cli.Context) error {
	custom := config.Default()
	if file := c.String("config"); file != "" {
		conf, err := config.Initialize(file)
		if err != nil {
			return err
		}
		custom = conf
	}
	if c.IsSet("log") {
		custom.Log.Level = c.Int("log")
	}
	if c.IsSet("format") {
		custom.Output.Format = c.String("format")
	}

	logger.SetLevel(custom.Log.Level)
	logger.SetLimiter(custom.Log.Limiter)
	err := logger.SetFilter(custom.Log.Filter)
	if err != nil {
		return err
	}
	c.App.Metadata = map[string]interface{}{"config": custom}
	return nil
}
