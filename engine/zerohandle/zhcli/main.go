/*
Command zhcli repairs zero handles in font sources and scans compiled fonts
for them.

	zhcli -font src.yaml [-filter exclude:a,b]… [-selected] [-o out.yaml]
	zhcli -scan <font file or system font name>
	zhcli -font src.yaml -i
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/npillmayer/fixzero/core"
	"github.com/npillmayer/fixzero/core/font"
	"github.com/npillmayer/fixzero/core/outline"
	"github.com/npillmayer/fixzero/engine/batch"
	"github.com/npillmayer/fixzero/engine/zerohandle"
	"github.com/npillmayer/fixzero/input/fontsource"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
)

// tracer traces with key 'fixzero.cli'
func tracer() tracing.Trace {
	return tracing.Select("fixzero.cli")
}

// filterList collects repeated -filter flags.
type filterList []string

func (l *filterList) String() string {
	return strings.Join(*l, " ")
}

func (l *filterList) Set(s string) error {
	*l = append(*l, s)
	return nil
}

func main() {
	initDisplay()

	// command line flags
	var filters filterList
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	fontname := flag.String("font", "", "Font source document (YAML) to repair")
	outfile := flag.String("o", "", "Write repaired font source to file")
	selected := flag.Bool("selected", false, "Only repair segments touching selected nodes")
	scan := flag.String("scan", "", "Scan a font file or system font for zero handles")
	interactive := flag.Bool("i", false, "Interactive mode")
	flag.Var(&filters, "filter", "Glyph filter include:a,b or exclude:a,b (repeatable)")
	flag.Parse()

	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter": "go",
	}
	for _, key := range []string{"core", "outline", "font", "engine", "batch", "cli"} {
		conf["trace.fixzero."+key] = *tlevel
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())
	tracer().Infof("Trace level is %s", *tlevel)

	opts := zerohandle.Options{SelectedOnly: *selected, Reporter: displayReporter}
	if *scan != "" {
		if err := scanFont(*scan); err != nil {
			fail(err, 2)
		}
		return
	}
	if *fontname == "" {
		pterm.Error.Println("no font given, use -font or -scan")
		flag.Usage()
		os.Exit(2)
	}
	src, err := fontsource.Load(*fontname)
	if err != nil {
		fail(err, 3)
	}
	if *interactive {
		if err := startREPL(src, opts); err != nil {
			fail(err, 4)
		}
		return
	}
	if err := runBatch(src, filters, opts, *outfile); err != nil {
		fail(err, 5)
	}
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

func fail(err error, exitcode int) {
	tracer().Errorf(err.Error())
	pterm.Error.Println(core.UserMessage(err))
	os.Exit(exitcode)
}

// displayReporter prints diagnostics as warnings.
var displayReporter = core.ReporterFunc(func(d core.Diagnostic) {
	pterm.Warning.Println(d.String())
})

func runBatch(src *outline.Font, args []string, opts zerohandle.Options, outfile string) error {
	filters, err := batch.ParseFilters(args)
	if err != nil {
		return err
	}
	report, err := batch.Run(src, filters, opts)
	if err != nil {
		return err
	}
	pterm.Info.Printfln("%d glyph(s) processed: %s", len(report.Glyphs), report.Total)
	if changed := report.Changed(); len(changed) > 0 {
		pterm.Printfln("changed: %s", strings.Join(changed, " "))
	}
	if failed := report.Failed(); len(failed) > 0 {
		pterm.Error.Printfln("failed: %s", strings.Join(failed, " "))
	}
	if outfile == "" {
		return nil
	}
	if err := fontsource.Save(outfile, src); err != nil {
		return err
	}
	pterm.Info.Printfln("repaired font source written to %s", outfile)
	return nil
}

func scanFont(name string) error {
	fpath, err := font.Locate(name)
	if err != nil {
		return err
	}
	sf, err := font.LoadOpenTypeFont(fpath)
	if err != nil {
		return err
	}
	glyphs, skipped, err := sf.Outlines()
	if err != nil {
		return err
	}
	if skipped > 0 {
		pterm.Warning.Printfln("%d glyph(s) of %s could not be loaded", skipped, sf.Fontname)
	}
	return printFindings(sf.Fontname, glyphs.Glyphs)
}

func printFindings(fontname string, glyphs []*outline.Glyph) error {
	var findings []zerohandle.Finding
	for _, g := range glyphs {
		for _, l := range g.Layers() {
			findings = append(findings, zerohandle.Scan(l)...)
		}
	}
	if len(findings) == 0 {
		pterm.Info.Printfln("%s: no zero handles found", fontname)
		return nil
	}
	data := pterm.TableData{{"Glyph", "Layer", "Path", "Nodes", "Kind"}}
	for _, f := range findings {
		data = append(data, []string{
			f.Glyph,
			f.Layer,
			fmt.Sprint(f.Path),
			fmt.Sprintf("%d-%d", f.Window[0], f.Window[3]),
			f.Kind.String(),
		})
	}
	pterm.Info.Printfln("%s: %d segment(s) with zero handles", fontname, len(findings))
	return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}
