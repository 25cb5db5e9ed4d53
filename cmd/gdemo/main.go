// Command gdemo is a small interactive REPL demonstrating package gramma:
// pick a bundled sample grammar, type source lines against it, and see the
// resulting CST — or, on a parse failure, the rendered diagnostic — printed
// back. It plays the role the teacher package's terex/terexlang/trepl REPL
// plays for term rewriting, reduced to a terminal front-end for the "host
// application" spec.md §1/§6 describes (an editor or live compiler) minus
// the editor UI itself.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"

	"github.com/dkuhlman/gramma"
	"github.com/dkuhlman/gramma/diag"
	"github.com/dkuhlman/gramma/internal/samplegrammar"
	"github.com/dkuhlman/gramma/parser"
)

func tracer() tracing.Trace { return tracing.Select("gramma.gdemo") }

type sample struct {
	name    string
	grammar *gramma.Grammar
	help    string
}

func samples() []sample {
	return []sample{
		{"hello", samplegrammar.Hello(), `say "hello <name>", e.g. hello world`},
		{"helloscript", samplegrammar.HelloScript(), "a SCRIPT of repeated hello statements, comments allowed"},
		{"arithmetic", samplegrammar.Arithmetic(), "right-recursive + - * / % expressions, e.g. 1 + 2 * 3"},
		{"sayscript", samplegrammar.SayScript(), `a SCRIPT of "say <number>" statements`},
		{"ifelse", samplegrammar.IfElse(), "if/then/else statements exercising furthest-error selection"},
	}
}

func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " gdemo ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
}

func main() {
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	grammarName := flag.String("grammar", "hello", "Sample grammar to start with")
	debug := flag.Bool("debug", false, "Enable Parser debug mode (CST position tracking)")
	flag.Parse()
	tracer().SetTraceLevel(tracing.TraceLevelFromString(*tlevel))
	pterm.Info.Println("Welcome to gdemo — type a line to parse it, :grammar <name> to switch, :quit to exit")

	all := samples()
	current := findSample(all, *grammarName)
	if current == nil {
		current = &all[0]
	}
	printHelp(current)

	repl, err := readline.New(fmt.Sprintf("gdemo[%s]> ", current.name))
	if err != nil {
		tracer().Errorf("could not start readline: %v", err)
		os.Exit(1)
	}
	defer repl.Close()

	for {
		line, rerr := repl.Readline()
		if rerr != nil {
			break
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == ":quit" || line == ":q" {
			break
		}
		if strings.HasPrefix(line, ":grammar ") {
			name := strings.TrimSpace(strings.TrimPrefix(line, ":grammar "))
			found := findSample(all, name)
			if found == nil {
				pterm.Error.Println(fmt.Sprintf("no such sample grammar: %q", name))
				continue
			}
			current = found
			repl.SetPrompt(fmt.Sprintf("gdemo[%s]> ", current.name))
			printHelp(current)
			continue
		}
		runOne(current, *debug, line)
	}
	pterm.Info.Println("goodbye")
}

func findSample(all []sample, name string) *sample {
	for i := range all {
		if all[i].name == name {
			return &all[i]
		}
	}
	return nil
}

func printHelp(s *sample) {
	pterm.Info.Println(fmt.Sprintf("grammar %q: %s", s.name, s.help))
}

func runOne(s *sample, debug bool, line string) {
	p := parser.New(s.grammar, parser.Debug(debug))
	result, err := p.Parse(line)
	if err != nil {
		if pe, ok := err.(*gramma.ParseError); ok {
			diag.PrettyPrint(pe)
			return
		}
		pterm.Error.Println(err.Error())
		return
	}
	pterm.Println(dumpCST(result, 0))
}

func dumpCST(v interface{}, depth int) string {
	indent := strings.Repeat("  ", depth)
	switch n := v.(type) {
	case *gramma.Node:
		return fmt.Sprintf("%s%s\n%s", indent, n.Type, dumpCST(n.Value, depth+1))
	case []interface{}:
		var b strings.Builder
		for _, child := range n {
			b.WriteString(dumpCST(child, depth))
		}
		return b.String()
	case nil:
		return fmt.Sprintf("%s<empty>\n", indent)
	default:
		return fmt.Sprintf("%s%v\n", indent, n)
	}
}
