package main

import (
	"fmt"

	"github.com/MixinNetwork/fraction/common"
	"github.com/MixinNetwork/fraction/config"
	"github.com/MixinNetwork/fraction/logger"
	"github.com/urfave/cli/v2"
)

func arithmeticCmd(c *cli.Context) error {
	a, b, err := operands(c)
	if err != nil {
		return err
	}
	op := c.Command.Name
	r, err := evaluate(op, a, b)
	if err != nil {
		logger.Errorf("%s %s %s => %s\n", op, a, b, err)
		return err
	}
	logger.Verbosef("%s %s %s => %s\n", op, a, b, r)
	out, err := render(r, customConfig(c))
	if err != nil {
		return err
	}
	fmt.Println(out)
	return nil
}

func compareCmd(c *cli.Context) error {
	a, b, err := operands(c)
	if err != nil {
		return err
	}
	cmp := a.Cmp(b)
	logger.Verbosef("cmp %s %s => %d\n", a, b, cmp)
	fmt.Println(cmp)
	return nil
}

func showCmd(c *cli.Context) error {
	a, err := common.TryMixed(c.Int64("aw"), c.Int64("an"), c.Int64("ad"))
	if err != nil {
		return err
	}
	places := customConfig(c).Output.Places
	fmt.Printf("mixed:\t\t%s\n", a.String())
	fmt.Printf("float:\t\t%v\n", a.Float64())
	fmt.Printf("decimal:\t%s\n", a.Decimal(places).StringFixed(places))
	fmt.Printf("hash:\t\t%s\n", a.Hash().String())
	return nil
}

func operands(c *cli.Context) (common.Fraction, common.Fraction, error) {
	a, err := common.TryMixed(c.Int64("aw"), c.Int64("an"), c.Int64("ad"))
	if err != nil {
		return a, a, fmt.Errorf("operand a %w", err)
	}
	b, err := common.TryMixed(c.Int64("bw"), c.Int64("bn"), c.Int64("bd"))
	if err != nil {
		return a, b, fmt.Errorf("operand b %w", err)
	}
	return a, b, nil
}

func evaluate(op string, a, b common.Fraction) (common.Fraction, error) {
	switch op {
	case "add":
		return a.Add(b), nil
	case "sub":
		return a.Sub(b), nil
	case "mul":
		return a.Mul(b), nil
	case "div":
		return a.Div(b)
	}
	return common.Zero, fmt.Errorf("invalid operation %s", op)
}

func render(f common.Fraction, custom *config.Custom) (string, error) {
	switch custom.Output.Format {
	case config.OutputMixed:
		return f.String(), nil
	case config.OutputFloat:
		return fmt.Sprint(f.Float64()), nil
	case config.OutputDecimal:
		places := custom.Output.Places
		return f.Decimal(places).StringFixed(places), nil
	}
	return "", fmt.Errorf("invalid output format %s", custom.Output.Format)
}

func customConfig(c *cli.Context) *config.Custom {
	if custom, ok := c.App.Metadata["config"].(*config.Custom); ok {
		return custom
	}
	return config.Default()
}
