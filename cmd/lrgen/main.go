// Command lrgen builds an LR-family parser from a textual grammar and
// either prints its tables, runs it over one input line, or drops into
// an interactive REPL. The subcommand layout follows the rest of the
// example pack's cobra-based grammar tools, with pflag for the leaf
// flags (mirroring the teacher's own pflag-only flag parsing).
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	lrgen "github.com/grachale/lr-parser-generator"
	"github.com/grachale/lr-parser-generator/internal/cli"
)

var rootCmd = &cobra.Command{
	Use:           "lrgen",
	Short:         "Build and drive LR(0)/SLR(1)/LALR(1)/LR(1) parsers from a grammar file",
	SilenceErrors: true,
	SilenceUsage:  true,
}

var (
	flagConfig     string
	flagDiscipline string
)

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "lrgen.toml", "path to a TOML config file")
	rootCmd.PersistentFlags().StringVarP(&flagDiscipline, "discipline", "d", "", "LR0|SLR1|LALR1|LR1 (overrides the config file)")

	rootCmd.AddCommand(buildCmd(), parseCmd(), replCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadParser(grammarPath string) (*lrgen.Parser, cli.Config, error) {
	cfg, err := cli.LoadConfig(flagConfig)
	if err != nil {
		return nil, cfg, fmt.Errorf("load config: %w", err)
	}
	if flagDiscipline != "" {
		cfg.Discipline = flagDiscipline
	}
	if grammarPath != "" {
		cfg.GrammarPath = grammarPath
	}

	src, err := os.ReadFile(cfg.GrammarPath)
	if err != nil {
		return nil, cfg, fmt.Errorf("read grammar file: %w", err)
	}

	gf, err := cli.ParseGrammarText(string(src))
	if err != nil {
		return nil, cfg, fmt.Errorf("parse grammar: %w", err)
	}

	g, err := lrgen.BuildGrammar(gf.Terminals, gf.NonTerminals, gf.Productions, gf.Start)
	if err != nil {
		return nil, cfg, fmt.Errorf("build grammar: %w", err)
	}

	disc, err := parseDiscipline(cfg.Discipline)
	if err != nil {
		return nil, cfg, err
	}

	p, err := lrgen.BuildParser(g, disc)
	if err != nil {
		return nil, cfg, fmt.Errorf("build parser: %w", err)
	}
	return p, cfg, nil
}

func parseDiscipline(s string) (lrgen.Discipline, error) {
	switch s {
	case "LR0":
		return lrgen.LR0, nil
	case "SLR1":
		return lrgen.SLR1, nil
	case "LALR1", "":
		return lrgen.LALR1, nil
	case "LR1":
		return lrgen.LR1, nil
	default:
		return 0, fmt.Errorf("unknown discipline %q", s)
	}
}

func buildCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "build <grammar file>",
		Short: "Build the ACTION/GOTO tables for a grammar and print them",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, cfg, err := loadParser(args[0])
			if err != nil {
				return err
			}
			fmt.Println(cli.RenderActionGotoTable(p))
			if cfg.ShowConflict {
				fmt.Println(cli.RenderConflicts(p))
			}
			return nil
		},
	}
}

func parseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <grammar file> <tokens...>",
		Short: "Parse a whitespace-separated token sequence and report accept/reject",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, cfg, err := loadParser(args[0])
			if err != nil {
				return err
			}

			var traceLines []string
			if cfg.ShowTrace {
				p.RegisterTraceListener(func(s string) { traceLines = append(traceLines, s) })
			}

			_, accepted := p.Parse(args[1:])
			if cfg.ShowTrace {
				fmt.Println(cli.RenderTrace(traceLines))
			}
			if accepted {
				fmt.Println("accepted")
				return nil
			}
			fmt.Println("rejected")
			os.Exit(1)
			return nil
		},
	}
}

func replCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl <grammar file>",
		Short: "Start an interactive parse session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, cfg, err := loadParser(args[0])
			if err != nil {
				return err
			}
			return cli.NewREPL(p, cfg, os.Stdout).Run()
		},
	}
}
