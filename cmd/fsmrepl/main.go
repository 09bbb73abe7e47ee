package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/fsmparse"
	"github.com/npillmayer/fsmparse/diag"
	"github.com/npillmayer/fsmparse/fsm"
	"github.com/npillmayer/fsmparse/lexer"
	"github.com/pterm/pterm"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

// main() starts an interactive CLI ("FSMREPL"), where users may enter lines
// of input to be tokenized or parsed.
func main() {
	// set up logging
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	incl := flag.String("I", "", "Search path for included files (comma separated)")
	tablef := flag.String("table", "", "State table in JSON format")
	rule := flag.String("rule", "", "Start rule (default: start rule of table)")
	initf := flag.String("init", "", "Initial load")
	flag.Parse()
	tracer().SetTraceLevel(tracing.LevelInfo) // will set the correct level later
	pterm.Info.Println("Welcome to FSMREPL")  // colored welcome message
	tracer().Infof("Trace level is %s", *tlevel)
	setTraceLevel(tracing.TraceLevelFromString(*tlevel))
	//
	intp := &Intp{rule: *rule}
	if *incl != "" {
		intp.path = strings.Split(*incl, ",")
	}
	if *tablef != "" {
		table, err := loadTable(*tablef)
		if err != nil {
			pterm.Error.Println(err.Error())
			os.Exit(2)
		}
		intp.table = table
	}
	if flag.NArg() > 0 { // batch mode
		if err := intp.Run("", flag.Args()...); err != nil {
			os.Exit(1)
		}
		return
	}
	//
	// set up REPL
	repl, err := readline.New("fsm> ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	intp.repl = repl
	tracer().Infof("Quit with <ctrl>D") // inform user how to stop the CLI
	intp.loadInitFile(*initf)           // init file name provided by flag
	intp.REPL()                         // go into interactive mode
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

func setTraceLevel(level tracing.TraceLevel) {
	for _, key := range []string{"fsmparse.repl", "fsmparse.lexer", "fsmparse.fsm"} {
		tracing.Select(key).SetTraceLevel(level)
	}
}

// loadTable reads a state table in JSON format.
func loadTable(filename string) (*fsm.Table, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	spec, err := fsm.ReadTableSpec(f)
	if err != nil {
		return nil, err
	}
	if hash, err := spec.Fingerprint(); err == nil {
		tracer().Infof("Table %s has fingerprint %s", filename, hash)
	}
	table, err := spec.Build(fsm.Builtins().With(fsm.Registry{"number": number}))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	tracer().Infof("Loaded table with %d states", table.StateCount())
	return table, nil
}

// number converts a NUM token to an integer.
func number(p *fsm.Parser, values []interface{}) (interface{}, error) {
	for _, v := range values {
		if tok, ok := v.(fsmparse.Token); ok && tok.Kind == "NUM" {
			n, err := strconv.ParseInt(tok.Text, 10, 64)
			if err != nil {
				return nil, p.Errorf("number out of range: %s", tok.Text)
			}
			return n, nil
		}
	}
	return nil, p.Errorf("number expected")
}

// Intp is our interpreter object
type Intp struct {
	table *fsm.Table
	rule  string
	path  []string
	repl  *readline.Instance
}

func (intp *Intp) loadInitFile(filename string) {
	if filename == "" {
		return
	}
	f, err := os.Open(filename)
	if err != nil {
		tracer().Errorf("Unable to open init file: %s", filename)
		return
	}
	defer f.Close()
	scanner := bufio.NewScanner(f)
	lineno := 1
	for scanner.Scan() {
		line := scanner.Text()
		if line = strings.TrimSpace(line); line != "" {
			if _, err := intp.Eval(line); err != nil {
				tracer().Errorf("Error line %d: %v", lineno, err)
			}
		}
		lineno++
	}
	if err := scanner.Err(); err != nil {
		tracer().Errorf("Error while reading init file: " + err.Error())
	}
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		quit, err := intp.Eval(line)
		if err != nil {
			continue
		}
		if quit {
			break
		}
	}
	println("Good bye!")
}

// Eval tokenizes or parses a line of input. Lines starting with ':' are
// commands.
func (intp *Intp) Eval(line string) (bool, error) {
	if strings.HasPrefix(line, ":") {
		return intp.command(strings.Fields(line[1:]))
	}
	return false, intp.Run(line)
}

func (intp *Intp) command(args []string) (bool, error) {
	if len(args) == 0 {
		return false, nil
	}
	switch args[0] {
	case "quit", "q":
		return true, nil
	case "rule":
		if len(args) > 1 {
			intp.rule = args[1]
		}
		pterm.Info.Println(fmt.Sprintf("start rule is %q", intp.rule))
	case "table":
		if len(args) < 2 {
			intp.table = nil
			pterm.Info.Println("lexing only")
			return false, nil
		}
		table, err := loadTable(args[1])
		if err != nil {
			pterm.Error.Println(err.Error())
			return false, err
		}
		intp.table = table
	case "file":
		return false, intp.Run("", args[1:]...)
	default:
		err := fmt.Errorf("unknown command :%s", args[0])
		pterm.Error.Println(err.Error())
		return false, err
	}
	return false, nil
}

// Run processes a line of input and/or a list of files. Without a table,
// the tokens of the input are listed; otherwise the input is parsed.
func (intp *Intp) Run(input string, files ...string) error {
	lx, err := lexer.New(lexer.WithSearchPath(intp.path...),
		lexer.WarnUnknownDirectives(true),
		lexer.OnWarning(func(d *diag.Diagnostic) {
			pterm.Warning.Println(d.Error())
		}))
	if err != nil {
		pterm.Error.Println(err.Error())
		return err
	}
	defer lx.Close()
	if input != "" {
		lx.FromString("", input)
	}
	lx.FromFile(files...)
	if intp.table == nil {
		err = listTokens(lx)
	} else {
		err = intp.parse(lx)
	}
	if err != nil {
		pterm.Error.Println(err.Error())
	}
	return err
}

func listTokens(lx *lexer.Lexer) error {
	var ll pterm.LeveledList
	var loc diag.Location
	for {
		tok, err := lx.NextToken()
		if err != nil {
			return err
		}
		if tok.IsEOF() {
			break
		}
		if l := lx.Location(); len(ll) == 0 || l.Name != loc.Name {
			loc = l
			label := "input"
			if loc.Name != "" {
				label = "source " + strconv.Quote(loc.Name)
			}
			ll = append(ll, pterm.LeveledListItem{Level: 0, Text: label})
		}
		ll = append(ll, pterm.LeveledListItem{
			Level: 1,
			Text:  fmt.Sprintf("%4d  %v", lx.Location().Line, tok),
		})
	}
	if len(ll) == 0 {
		pterm.Info.Println("no tokens")
		return nil
	}
	pterm.DefaultTree.WithRoot(pterm.NewTreeFromLeveledList(ll)).Render()
	return nil
}

func (intp *Intp) parse(lx *lexer.Lexer) error {
	p := fsm.NewParser(intp.table, lx)
	result, err := p.Parse(intp.rule)
	if err != nil {
		return err
	}
	if tok, err := p.PeekToken(); err == nil && !tok.IsEOF() {
		pterm.Warning.Println(fmt.Sprintf("input remaining at %v", tok))
	}
	ll := leveled(result, pterm.LeveledList{}, 0)
	tracer().Debugf("|ll| = %d, ll = %v", len(ll), ll)
	pterm.DefaultTree.WithRoot(pterm.NewTreeFromLeveledList(ll)).Render()
	return nil
}

// leveled flattens a parse result into a leveled list for tree output.
// Lists produced by the builtin action "list" become subtrees.
func leveled(v interface{}, ll pterm.LeveledList, level int) pterm.LeveledList {
	switch x := v.(type) {
	case []interface{}:
		ll = append(ll, pterm.LeveledListItem{Level: level, Text: fmt.Sprintf("list(%d)", len(x))})
		for _, e := range x {
			ll = leveled(e, ll, level+1)
		}
	case nil:
		ll = append(ll, pterm.LeveledListItem{Level: level, Text: "nil"})
	default:
		ll = append(ll, pterm.LeveledListItem{Level: level, Text: fmt.Sprintf("%v", x)})
	}
	return ll
}
