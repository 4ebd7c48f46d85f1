// Command wcagcheck reports the WCAG 2.0 contrast ratio of a color pair and
// whether it meets the AA and AAA thresholds.
//
// Usage:
//
//	wcagcheck check 0,0,0 white
//	wcagcheck check --json navy 1,1,0.8
//	wcagcheck check --verify red white
//	wcagcheck thresholds
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/wcag"
	"github.com/gogpu/wcag/oracle"
)

// globals is bound into every command's Run method.
type globals struct {
	out io.Writer
	err io.Writer
}

// cli defines the command-line interface for wcagcheck.
type cli struct {
	Debug bool   `help:"Log debug output to stderr."`
	Lang  string `help:"Language tag used to format numbers." default:"en"`

	Check      CheckCmd      `cmd:"" help:"Check the contrast of a foreground/background pair."`
	Thresholds ThresholdsCmd `cmd:"" help:"Print the WCAG 2.0 contrast thresholds."`
	Version    VersionCmd    `cmd:"" help:"Print version information."`
}

// CheckCmd evaluates one color pair.
type CheckCmd struct {
	Foreground colorArg `arg:"" help:"Foreground color: r,g,b in [0,1] or a color name."`
	Background colorArg `arg:"" help:"Background color: r,g,b in [0,1] or a color name."`

	JSON      bool          `name:"json" help:"Print the result as JSON."`
	Verify    bool          `help:"Cross-check the result against the online contrast checker."`
	OracleURL string        `name:"oracle-url" help:"Contrast checker endpoint." default:"${oracle_url}"`
	Timeout   time.Duration `help:"Timeout for the cross-check, retries included." default:"10s"`
}

// Run prints the result and, with --verify, cross-checks it.
func (c *CheckCmd) Run(g *globals, p *message.Printer) error {
	res, err := wcag.CheckContrast(c.Foreground.Color, c.Background.Color)
	if err != nil {
		return err
	}

	if c.JSON {
		enc := json.NewEncoder(g.out)
		if err := enc.Encode(res.Report()); err != nil {
			return err
		}
	} else {
		printResult(g.out, p, c.Foreground.String(), c.Background.String(), res)
	}

	if !c.Verify {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), c.Timeout)
	defer cancel()
	client := oracle.New(
		oracle.WithBaseURL(c.OracleURL),
		oracle.WithTimeout(c.Timeout),
	)
	if _, err := wcag.CrossCheck(ctx, client, c.Foreground.Color, c.Background.Color); err != nil {
		return err
	}
	if !c.JSON {
		p.Fprintf(g.out, "cross-check: ok\n")
	}
	return nil
}

func printResult(w io.Writer, p *message.Printer, fg, bg string, res wcag.Result) {
	p.Fprintf(w, "%s on %s\n", fg, bg)
	p.Fprintf(w, "contrast ratio: %.2f:1\n", res.Ratio)
	for _, row := range []struct {
		level wcag.Level
		size  wcag.TextSize
	}{
		{wcag.LevelAA, wcag.TextNormal},
		{wcag.LevelAA, wcag.TextLarge},
		{wcag.LevelAAA, wcag.TextNormal},
		{wcag.LevelAAA, wcag.TextLarge},
	} {
		outcome := "fail"
		if res.Verdict.Passes(row.level, row.size) {
			outcome = "pass"
		}
		p.Fprintf(w, "  %-3s %-6s %s\n", row.level, row.size, outcome)
	}
}

// ThresholdsCmd prints the threshold table.
type ThresholdsCmd struct{}

// Run prints one line per level and text size.
func (c *ThresholdsCmd) Run(g *globals, p *message.Printer) error {
	for _, level := range []wcag.Level{wcag.LevelAA, wcag.LevelAAA} {
		for _, size := range []wcag.TextSize{wcag.TextNormal, wcag.TextLarge} {
			p.Fprintf(g.out, "%-3s %-6s >= %.1f\n", level, size, wcag.Threshold(level, size))
		}
	}
	return nil
}

// VersionCmd prints the version.
type VersionCmd struct{}

// Run prints the library version.
func (c *VersionCmd) Run(g *globals) error {
	fmt.Fprintf(g.out, "wcagcheck version %s\n", wcag.Version)
	return nil
}

// newParser builds the kong parser with g bound for Run methods.
func newParser(c *cli, g *globals, opts ...kong.Option) (*kong.Kong, error) {
	opts = append([]kong.Option{
		kong.Name("wcagcheck"),
		kong.Description("WCAG 2.0 contrast ratio checker"),
		kong.UsageOnError(),
		kong.Writers(g.out, g.err),
		kong.Vars{"oracle_url": oracle.DefaultBaseURL},
		kong.Bind(g),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	}, opts...)
	return kong.New(c, opts...)
}

// run parses args and runs the selected command.
func run(args []string, g *globals, opts ...kong.Option) error {
	var c cli
	parser, err := newParser(&c, g, opts...)
	if err != nil {
		return err
	}
	ctx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	if c.Debug {
		wcag.SetLogger(slog.New(slog.NewTextHandler(g.err, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	tag, err := language.Parse(c.Lang)
	if err != nil {
		return fmt.Errorf("--lang: %w", err)
	}
	return ctx.Run(message.NewPrinter(tag))
}

func main() {
	g := &globals{out: os.Stdout, err: os.Stderr}
	if err := run(os.Args[1:], g); err != nil {
		fmt.Fprintf(os.Stderr, "wcagcheck: %v\n", err)
		os.Exit(1)
	}
}
