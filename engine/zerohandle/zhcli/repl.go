package main

import (
	"errors"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/fixzero/core"
	"github.com/npillmayer/fixzero/core/outline"
	"github.com/npillmayer/fixzero/engine/batch"
	"github.com/npillmayer/fixzero/engine/zerohandle"
	"github.com/npillmayer/fixzero/input/fontsource"
	"github.com/pterm/pterm"
)

// Intp is our interpreter object
type Intp struct {
	font *outline.Font
	repl *readline.Instance
	opts zerohandle.Options
}

func startREPL(src *outline.Font, opts zerohandle.Options) error {
	repl, err := readline.New("zh > ")
	if err != nil {
		return err
	}
	defer repl.Close()
	intp := &Intp{font: src, repl: repl, opts: opts}
	pterm.Info.Printfln("font source %q with %d glyph(s)", src.Name, len(src.Glyphs))
	pterm.Info.Println("Quit with <ctrl>D") // inform user how to stop the CLI
	intp.REPL()
	return nil
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
		cmd, err := parseCommand(line)
		if err != nil {
			pterm.Error.Println(err.Error())
			continue
		}
		quit, err := intp.execute(cmd)
		if err != nil {
			tracer().Errorf(err.Error())
			pterm.Error.Println(core.UserMessage(err))
			continue
		}
		if quit {
			break
		}
	}
	pterm.Info.Println("Good bye!")
}

// Op codes of interactive commands.
const (
	QUIT int = iota
	HELP
	FIX
	SHOW
	SCAN
	SAVE
)

var errUsage = errors.New("usage error")

// Command is a parsed interactive command.
type Command struct {
	code int
	args []string
}

func parseCommand(line string) (*Command, error) {
	fields := strings.Fields(line)
	cmd := &Command{args: fields[1:]}
	argc := len(cmd.args)
	switch strings.ToLower(fields[0]) {
	case "quit", "exit":
		cmd.code = QUIT
	case "fix":
		cmd.code = FIX
		if argc < 1 || argc > 2 {
			return nil, core.WrapError(errUsage, core.EINVALID, "usage: fix <glyph> [layer]")
		}
	case "show":
		cmd.code = SHOW
		if argc != 1 {
			return nil, core.WrapError(errUsage, core.EINVALID, "usage: show <glyph>")
		}
	case "scan":
		cmd.code = SCAN
	case "save":
		cmd.code = SAVE
		if argc != 1 {
			return nil, core.WrapError(errUsage, core.EINVALID, "usage: save <file>")
		}
	default:
		cmd.code = HELP
	}
	tracer().Debugf("command %q = %d %v", fields[0], cmd.code, cmd.args)
	return cmd, nil
}

func (intp *Intp) execute(cmd *Command) (bool, error) {
	switch cmd.code {
	case QUIT:
		return true, nil
	case FIX:
		g, err := intp.glyph(cmd.args[0])
		if err != nil {
			return false, err
		}
		var res zerohandle.Result
		if len(cmd.args) == 2 {
			l, ok := g.Layer(cmd.args[1])
			if !ok {
				return false, core.Error(core.EMISSING, "glyph %s has no layer %q", g.Name, cmd.args[1])
			}
			res, err = zerohandle.FixLayer(l, intp.opts)
		} else {
			res, err = zerohandle.FixGlyph(g, intp.opts)
		}
		if err != nil {
			return false, err
		}
		pterm.Printfln("%s: %s", g.Name, res)
	case SHOW:
		g, err := intp.glyph(cmd.args[0])
		if err != nil {
			return false, err
		}
		show(g)
	case SCAN:
		return false, printFindings(intp.font.Name, intp.font.Glyphs)
	case SAVE:
		if err := fontsource.Save(cmd.args[0], intp.font); err != nil {
			return false, err
		}
		pterm.Info.Printfln("saved to %s", cmd.args[0])
	default:
		help()
	}
	return false, nil
}

// glyph looks up a glyph by (normalized) name.
func (intp *Intp) glyph(name string) (*outline.Glyph, error) {
	glyphs, err := batch.Select(intp.font, []batch.Filter{{Mode: batch.Include, Names: []string{name}}})
	if err != nil {
		return nil, err
	}
	return glyphs[0], nil
}

func show(g *outline.Glyph) {
	for _, l := range g.Layers() {
		pterm.Info.Printfln("%s / %s (%s) %s", g.Name, l.Name, l.Kind, l.Signature())
		for j, p := range l.Paths {
			pterm.Printfln("  path %d: %s", j, p)
		}
	}
}

func help() {
	pterm.Info.Println("Commands")
	pterm.Println(`
	fix <glyph> [layer]   repair zero handles of a glyph or of a single layer
	show <glyph>          print the layers and paths of a glyph
	scan                  list all segments with zero handles
	save <file>           write the font source to a file
	quit                  leave interactive mode
	`)
}
