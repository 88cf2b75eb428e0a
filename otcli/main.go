package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/otcodec"
	"github.com/npillmayer/otcodec/otbytes"
	"github.com/npillmayer/otcodec/otloca"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
)

// tracer traces with key 'font.otcodec'
func tracer() tracing.Trace {
	return tracing.Select("font.otcodec")
}

func main() {
	initDisplay()

	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":    "go",
		"trace.font.otcodec": "Info",
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())

	// command line flags
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	fontname := flag.String("font", "", "Font to load")
	flag.Parse()
	tracer().SetTraceLevel(tracing.LevelError)             // will set the correct level later
	pterm.Info.Println("Welcome to the glyph-location CLI") // colored welcome message
	//
	// set up REPL
	repl, err := readline.New("loca > ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	intp := &Intp{repl: repl}
	//
	// load font to use
	if err := intp.loadFont(*fontname); err != nil { // font name provided by flag
		tracer().Errorf(err.Error())
		os.Exit(4)
	}
	//
	// start receiving commands
	pterm.Info.Println("Quit with <ctrl>D")
	switch *tlevel {
	case "Debug":
		tracer().SetTraceLevel(tracing.LevelDebug)
	case "Info":
		tracer().SetTraceLevel(tracing.LevelInfo)
	case "Error":
		tracer().SetTraceLevel(tracing.LevelError)
	default:
		tracer().Errorf("Invalid trace level: %s", *tlevel)
		os.Exit(5)
	}
	tracer().Infof("Trace level is %s", *tlevel)
	intp.REPL() // go into interactive mode
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// Intp is our interpreter object
type Intp struct {
	font      *otcodec.ScalableFont
	repl      *readline.Instance
	numGlyphs uint16
	format    otloca.IndexToLocFormat
}

func (intp *Intp) loadFont(fontname string) error {
	if fontname == "" {
		return fmt.Errorf("no font given; use -font <file>")
	}
	f, err := otcodec.LoadOpenTypeFont(fontname)
	if err != nil {
		return err
	}
	intp.font = f
	pterm.Info.Println("loaded font " + f.Fontname)
	head, err := requireTable(f.Binary, "head")
	if err != nil {
		return err
	}
	if intp.format, err = otloca.ReadIndexToLocFormat(head); err != nil {
		return err
	}
	maxp, err := requireTable(f.Binary, "maxp")
	if err != nil {
		return err
	}
	if intp.numGlyphs, err = otloca.ReadNumGlyphs(maxp); err != nil {
		return err
	}
	return nil
}

func requireTable(font []byte, tag string) ([]byte, error) {
	b, err := otcodec.RawTable(font, otbytes.T(tag))
	if err != nil {
		return nil, err
	}
	table, ok := b.Unwrap()
	if !ok {
		return nil, fmt.Errorf("font has no '%s' table", tag)
	}
	return table, nil
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
		quit, err := intp.execute(line)
		if err != nil {
			tracer().Errorf(err.Error())
			continue
		}
		if quit {
			break
		}
	}
	pterm.Info.Println("Good bye!")
}

func (intp *Intp) execute(line string) (bool, error) {
	fields := strings.Fields(line)
	switch fields[0] {
	case "quit":
		return true, nil
	case "help":
		help()
	case "info":
		intp.printInfo()
	case "range":
		if len(fields) < 2 {
			return false, fmt.Errorf("usage: range <glyph-id>")
		}
		gid, err := strconv.ParseUint(fields[1], 10, 16)
		if err != nil {
			return false, fmt.Errorf("not a glyph id: %s", fields[1])
		}
		return false, intp.printRange(otbytes.GlyphIndex(gid))
	case "outline":
		if len(fields) < 2 {
			return false, fmt.Errorf("usage: outline <glyph-id>")
		}
		gid, err := strconv.ParseUint(fields[1], 10, 16)
		if err != nil {
			return false, fmt.Errorf("not a glyph id: %s", fields[1])
		}
		return false, intp.printOutline(otbytes.GlyphIndex(gid))
	default:
		return false, fmt.Errorf("unknown command: %s (try 'help')", fields[0])
	}
	return false, nil
}

func (intp *Intp) printInfo() {
	pterm.Info.Println(intp.font.Fontname)
	pterm.Println(fmt.Sprintf("  glyphs:        %d", intp.numGlyphs))
	pterm.Println(fmt.Sprintf("  loca encoding: %s", intp.format))
}

func (intp *Intp) printRange(gid otbytes.GlyphIndex) error {
	loca, err := requireTable(intp.font.Binary, "loca")
	if err != nil {
		return err
	}
	rng, err := otloca.GlyphRange(gid, intp.numGlyphs, intp.format, loca)
	if err != nil {
		return err
	}
	r, ok := rng.Unwrap()
	if !ok {
		pterm.Println(fmt.Sprintf("glyph %d has no outline", gid))
		return nil
	}
	pterm.Println(fmt.Sprintf("glyph %d: glyf[%d:%d], %d bytes", gid, r.Start, r.End, r.Len()))
	return nil
}

func (intp *Intp) printOutline(gid otbytes.GlyphIndex) error {
	outline, err := intp.font.GlyphOutline(gid)
	if err != nil {
		return err
	}
	b, ok := outline.Unwrap()
	if !ok {
		pterm.Println(fmt.Sprintf("glyph %d has no outline", gid))
		return nil
	}
	if len(b) > 16 {
		pterm.Println(fmt.Sprintf("glyph %d: % x …(%d bytes)", gid, b[:16], len(b)))
	} else {
		pterm.Println(fmt.Sprintf("glyph %d: % x", gid, b))
	}
	return nil
}

func help() {
	pterm.Info.Println("Commands")
	pterm.Println(`
	info                glyph count and loca encoding of the loaded font
	range <glyph-id>    byte range of the glyph's outline within table glyf
	outline <glyph-id>  hex dump of the glyph's outline bytes
	quit                leave the CLI
	`)
}
