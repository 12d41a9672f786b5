package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"

	lrgen "github.com/grachale/lr-parser-generator"
)

// REPL is an interactive line-at-a-time driver session against an
// already-built Parser: each line of input is tokenized on whitespace and
// run through Parser.Parse, with the resulting trace and accept/reject
// verdict printed back. It runs over chzyer/readline for history and
// line editing, the same library the teacher's own interactive session
// (cmd/tqi) is built on.
type REPL struct {
	parser *lrgen.Parser
	cfg    Config
	out    io.Writer

	traceLines []string
}

// NewREPL builds a REPL bound to an already-built parser.
func NewREPL(p *lrgen.Parser, cfg Config, out io.Writer) *REPL {
	r := &REPL{parser: p, cfg: cfg, out: out}
	if cfg.ShowTrace {
		p.RegisterTraceListener(func(s string) { r.traceLines = append(r.traceLines, s) })
	}
	return r
}

// Run starts the read-eval-print loop, reading lines until EOF or an
// explicit "exit"/"quit" command.
func (r *REPL) Run() error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "lrgen> ",
		HistoryFile:     "",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return fmt.Errorf("init readline: %w", err)
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			continue
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		line = strings.TrimSpace(line)
		switch line {
		case "":
			continue
		case "exit", "quit":
			return nil
		}

		r.handle(line)
	}
}

func (r *REPL) handle(line string) {
	tokens := strings.Fields(line)
	r.traceLines = r.traceLines[:0]

	_, accepted := r.parser.Parse(tokens)

	if r.cfg.ShowTrace {
		fmt.Fprintln(r.out, RenderTrace(r.traceLines))
	}
	if accepted {
		fmt.Fprintln(r.out, "accepted")
	} else {
		fmt.Fprintln(r.out, "rejected")
	}
}
