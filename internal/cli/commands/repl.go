package commands

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/leapstack-labs/nuctab/internal/cli/output"
	"github.com/leapstack-labs/nuctab/pkg/dialect"
	"github.com/leapstack-labs/nuctab/pkg/nuclide"
	"github.com/spf13/cobra"
)

// NewREPLCommand creates the repl command.
func NewREPLCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Parse fields interactively",
		Long: `Start an interactive session that parses one field per line.

Each line is "<field> <text>", e.g. "half_life 211.1 ky 1.2".
Type .help for commands, .quit to exit.`,
		Args: cobra.NoArgs,
		RunE: runREPL,
	}
}

// replSession is the state of one REPL.
type replSession struct {
	cc      *CommandContext
	dialect dialect.Dialect
	out     io.Writer
	errOut  io.Writer
}

func runREPL(cmd *cobra.Command, _ []string) error {
	cc := NewCommandContext(cmd)
	s, err := newREPLSession(cc, cmd.OutOrStdout(), cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	historyFile := filepath.Join(cc.Cfg.ProjectRoot, ".nuctab", "repl_history")
	if err := os.MkdirAll(filepath.Dir(historyFile), 0o750); err != nil {
		historyFile = ""
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          s.prompt(),
		HistoryFile:     historyFile,
		AutoComplete:    newFieldCompleter(),
		InterruptPrompt: "^C",
		EOFPrompt:       ".quit",
	})
	if err != nil {
		return fmt.Errorf("failed to initialize REPL: %w", err)
	}
	defer func() { _ = rl.Close() }()

	_, _ = fmt.Fprintf(s.out, "nuctab field parser (dialect: %s)\n", s.dialect.Name())
	_, _ = fmt.Fprintln(s.out, "Type .help for commands, .quit to exit")
	_, _ = fmt.Fprintln(s.out)

	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if quit := s.handleLine(line); quit {
			break
		}
		rl.SetPrompt(s.prompt())
	}
	return nil
}

func newREPLSession(cc *CommandContext, out, errOut io.Writer) (*replSession, error) {
	d, err := cc.Dialect()
	if err != nil {
		return nil, err
	}
	if _, err := fieldParser(d); err != nil {
		return nil, err
	}
	return &replSession{cc: cc, dialect: d, out: out, errOut: errOut}, nil
}

func (s *replSession) prompt() string {
	return "nuctab(" + s.dialect.Name() + ")> "
}

// handleLine runs one line of input and reports whether the session ends.
func (s *replSession) handleLine(line string) bool {
	line = strings.TrimSpace(line)
	if line == "" {
		return false
	}
	if strings.HasPrefix(line, ".") {
		return s.handleDotCommand(line)
	}

	field, raw, _ := strings.Cut(line, " ")
	p, _ := fieldParser(s.dialect)
	result, err := parseField(p, field, strings.TrimSpace(raw), nuclide.NoNuclide)
	if err != nil {
		_, _ = fmt.Fprintf(s.errOut, "Error: %v\n", err)
		return false
	}
	r := output.NewRenderer(s.out, s.errOut, output.Mode(s.cc.Cfg.OutputFormat))
	if err := renderParsed(r, output.ParseOutput{Dialect: s.dialect.Name(), Field: field, Input: raw, Result: result}); err != nil {
		_, _ = fmt.Fprintf(s.errOut, "Error: %v\n", err)
	}
	_, _ = fmt.Fprintln(s.out)
	return false
}

func (s *replSession) handleDotCommand(line string) bool {
	parts := strings.Fields(line)
	command := strings.ToLower(parts[0])

	switch command {
	case ".quit", ".exit":
		return true

	case ".help":
		printREPLHelp(s.out)

	case ".fields":
		_, _ = fmt.Fprintln(s.out, strings.Join(parseFields, "\n"))

	case ".dialect":
		if len(parts) < 2 {
			_, _ = fmt.Fprintln(s.out, s.dialect.Name())
			return false
		}
		d, err := dialect.Lookup(parts[1])
		if err == nil {
			_, err = fieldParser(d)
		}
		if err != nil {
			_, _ = fmt.Fprintf(s.errOut, "Error: %v\n", err)
			return false
		}
		s.dialect = d

	case ".clear":
		_, _ = fmt.Fprint(s.out, "\033[H\033[2J")

	default:
		_, _ = fmt.Fprintf(s.errOut, "Unknown command: %s (type .help for commands)\n", command)
	}
	return false
}

func printREPLHelp(w io.Writer) {
	help := `
Commands:
  .help            Show this help message
  .fields          List the fields that can be parsed
  .dialect [name]  Show or switch the dialect
  .clear           Clear the screen
  .quit / .exit    Exit the REPL

Input:
  <field> <text>   e.g. "half_life 211.1 ky 1.2" or "decay_modes B-=100"
`
	_, _ = fmt.Fprintln(w, help)
}

// newFieldCompleter creates a readline completer for fields and dot-commands.
func newFieldCompleter() *readline.PrefixCompleter {
	var items []readline.PrefixCompleterInterface
	for _, f := range parseFields {
		items = append(items, readline.PcItem(f))
	}

	var dialects []readline.PrefixCompleterInterface
	for _, name := range dialect.List() {
		dialects = append(dialects, readline.PcItem(name))
	}

	items = append(items,
		readline.PcItem(".help"),
		readline.PcItem(".fields"),
		readline.PcItem(".dialect", dialects...),
		readline.PcItem(".clear"),
		readline.PcItem(".quit"),
		readline.PcItem(".exit"),
	)
	return readline.NewPrefixCompleter(items...)
}
