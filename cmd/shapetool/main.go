// shapetool inspects Arabic text shaping in the terminal. For each input it
// prints the original text, the shaped (display-ready) text and the code
// points of both, which makes rendering issues in translated PDFs easy to
// pin down without a full pipeline run.
//
// Input comes from a literal argument, a file (--file) or an interactive
// REPL (--interactive).
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/Taha493/doc-translator/shaping"
	"github.com/chzyer/readline"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
	"github.com/thatisuday/commando"
)

// tracer traces with key 'doctranslator.shapetool'
func tracer() tracing.Trace {
	return tracing.Select("doctranslator.shapetool")
}

func main() {
	setupTracing()

	commando.
		SetExecutableName("shapetool").
		SetVersion("v0.1.0").
		SetDescription("Inspect Arabic text shaping: print original and display-ready text with their code points.")

	commando.
		Register(nil).
		AddArgument("text...", "text to shape (variadic argument parts joined by comma by commando)", "").
		AddFlag("file,f", "file containing text to shape", commando.String, "-").
		AddFlag("interactive,i", "run in interactive mode", commando.Bool, nil).
		AddFlag("lang,l", "language code of the input", commando.String, "en-ar").
		AddFlag("trace", "trace level [Debug|Info|Error]", commando.String, "Error").
		SetAction(runShapeTool)

	commando.Parse(nil)
}

// setupTracing wires schuko tracing to the Go standard logger.
func setupTracing() {
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":               "go",
		"trace.doctranslator":           "Error",
		"trace.doctranslator.shaping":   "Error",
		"trace.doctranslator.shapetool": "Error",
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Println("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())
}

func runShapeTool(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	setTraceLevel(mustFlagString(flags["trace"], "trace"))
	lang := mustFlagString(flags["lang"], "lang")
	engine := shaping.Default()

	if mustFlagBool(flags["interactive"], "interactive") {
		runInteractive(engine, lang)
		return
	}

	if file := mustFlagString(flags["file"], "file"); file != "" && file != "-" {
		data, err := os.ReadFile(file)
		if err != nil {
			pterm.Error.Printf("cannot read file: %v\n", err)
			return
		}
		printComparison(engine, strings.TrimRight(string(data), "\n"), lang)
		return
	}

	if text := strings.TrimSpace(args["text"].Value); text != "" {
		printComparison(engine, text, lang)
		return
	}

	pterm.Info.Println("nothing to shape; pass a text argument, --file or --interactive")
}

// runInteractive reads lines from a REPL until EOF, interrupt or "exit".
func runInteractive(engine *shaping.Engine, lang string) {
	repl, err := readline.New("shape > ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	defer repl.Close()

	pterm.Info.Println("Arabic shaping REPL. Enter text; quit with <ctrl>D or 'exit'")
	for {
		line, err := repl.Readline()
		if err != nil { // io.EOF or readline.ErrInterrupt
			return
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if strings.EqualFold(line, "exit") {
			return
		}
		printComparison(engine, line, lang)
	}
}

func setTraceLevel(level string) {
	l := tracing.LevelError
	switch level {
	case "Debug":
		l = tracing.LevelDebug
	case "Info":
		l = tracing.LevelInfo
	}
	for _, key := range []string{"doctranslator", "doctranslator.shaping", "doctranslator.shapetool"} {
		tracing.Select(key).SetTraceLevel(l)
	}
}

func mustFlagString(flag commando.FlagValue, name string) string {
	s, err := flag.GetString()
	if err != nil {
		fatalf("invalid --%s flag: %v", name, err)
	}
	return strings.TrimSpace(s)
}

func mustFlagBool(flag commando.FlagValue, name string) bool {
	b, err := flag.GetBool()
	if err != nil {
		fatalf("invalid --%s flag: %v", name, err)
	}
	return b
}

func fatalf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(os.Stderr, "shapetool: "+format+"\n", args...)
	os.Exit(1)
}
