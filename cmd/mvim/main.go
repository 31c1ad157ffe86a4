// Package main is the entry point for the mvim editor.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	"github.com/dshills/mvim/internal/config"
	"github.com/dshills/mvim/internal/editor"
	"github.com/dshills/mvim/internal/layout"
	"github.com/dshills/mvim/internal/linestore"
	"github.com/dshills/mvim/internal/logging"
	tm "github.com/dshills/mvim/internal/term"
)

var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

type options struct {
	Backend  string
	LogLevel string
	RCPath   string
	Files    []string
}

func run() int {
	opts := parseFlags()

	log := logging.New(logging.Config{Level: logging.ParseLevel(opts.LogLevel), Output: os.Stderr, Prefix: "mvim"})

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Fprintln(os.Stderr, "mvim: stdin is not a terminal")
		return 1
	}

	backend, ok := linestore.ParseBackend(opts.Backend)
	if !ok {
		fmt.Fprintf(os.Stderr, "mvim: unknown backend %q\n", opts.Backend)
		return 1
	}

	path := ""
	if len(opts.Files) > 0 {
		path = opts.Files[0]
	}

	ed, err := editor.New(backend, path, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "mvim: %v\n", err)
		return 1
	}

	loadRCFile(ed, opts.RCPath, log)

	screen, err := tm.New()
	if err != nil {
		fmt.Fprintf(os.Stderr, "mvim: %v\n", err)
		return 1
	}
	defer screen.Shutdown()

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-signals
		screen.Shutdown()
		os.Exit(0)
	}()

	rows, cols := screen.Size()
	ed.SetScreen(rows, cols)
	screen.SetBackground(ed.Options.Background)
	screen.SetSearchColor(ed.Options.SearchColor)

	for !ed.ShouldQuit {
		render(screen, ed)
		ev := screen.PollEvent()
		switch tev := ev.(type) {
		case *tcell.EventResize:
			rows, cols = screen.Size()
			ed.SetScreen(rows, cols)
			screen.Clear()
		case *tcell.EventKey:
			dispatchKey(ed, tev)
		}
	}
	return 0
}

// dispatchKey translates one tcell key event into the editor's rune
// stream, handling named keys (Enter, Escape, Backspace, Ctrl-W, Ctrl-R)
// that don't arrive as a plain printable rune.
func dispatchKey(ed *editor.Editor, ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyCtrlR:
		ed.Redo()
	case tcell.KeyCtrlW:
		ed.HandleKey(0x17)
	case tcell.KeyEnter:
		ed.HandleKey('\r')
	case tcell.KeyEscape:
		ed.HandleKey(0x1b)
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		ed.HandleKey(0x7f)
	case tcell.KeyTab:
		ed.HandleKey('\t')
	case tcell.KeyRune:
		ed.HandleKey(ev.Rune())
	}
}

// render draws every pane's visible content plus the status line for
// the active pane.
func render(screen *tm.Terminal, ed *editor.Editor) {
	screen.Clear()
	rows, cols := screen.Size()
	for _, pr := range ed.Layout() {
		drawPane(screen, ed, pr)
	}
	status := tm.StatusLine{
		Mode:    ed.Mode.String(),
		Path:    ed.ActiveDoc().Path,
		Dirty:   ed.ActiveDoc().Dirty,
		Backend: ed.ActiveDoc().Store.Backend().String(),
		Row:     ed.ActivePane().Cur.Row,
		Col:     ed.ActivePane().Cur.Col,
	}
	screen.DrawText(rows-1, 0, status.Render(cols))
	if ed.Mode == editor.ModeCommand {
		screen.DrawText(rows-1, 0, string(ed.CmdPrefix)+ed.CmdLine)
	}
	p := ed.ActivePane()
	screen.MoveCursor(p.Cur.Row-p.VP.TopLine, p.Cur.Col-p.VP.LeftCol)
	screen.Refresh()
}

// drawPane renders one pane's visible lines within its rect, scrolled
// vertically to keep the pane's own cursor row on screen. The horizontal
// offset (LeftCol) is not adjusted.
func drawPane(screen *tm.Terminal, ed *editor.Editor, pr layout.PaneRect) {
	pane := ed.PaneAt(pr.Pane)
	doc := ed.DocAt(pr.Pane)
	if pane.Cur.Row < pane.VP.TopLine {
		pane.VP.TopLine = pane.Cur.Row
	}
	if pane.Cur.Row >= pane.VP.TopLine+pr.Rect.Height {
		pane.VP.TopLine = pane.Cur.Row - pr.Rect.Height + 1
	}
	for i := 0; i < pr.Rect.Height; i++ {
		row := pane.VP.TopLine + i
		screen.ClearToEOL(pr.Rect.Row+i, pr.Rect.Col)
		if row >= doc.Store.Count() {
			continue
		}
		line := doc.Store.Get(row)
		if len(line) > pane.VP.LeftCol {
			line = line[pane.VP.LeftCol:]
		} else {
			line = ""
		}
		if len(line) > pr.Rect.Width {
			line = line[:pr.Rect.Width]
		}
		drawLineWithHits(screen, ed, pr.Rect.Row+i, pr.Rect.Col, row, line, pane.VP.LeftCol)
	}
}

// drawLineWithHits draws one visible line, highlighting the first recorded
// search hit that falls within it; later hits on the same line are drawn
// unhighlighted.
func drawLineWithHits(screen *tm.Terminal, ed *editor.Editor, screenRow, screenCol, docRow int, line string, leftCol int) {
	for _, hit := range ed.LastSearchHits {
		if hit.Row != docRow {
			continue
		}
		start := hit.Col - leftCol
		if start < 0 || start >= len(line) {
			continue
		}
		screen.DrawHighlighted(screenRow, screenCol, line, start, hit.Len)
		return
	}
	screen.DrawText(screenRow, screenCol, line)
}

func parseFlags() options {
	var opts options
	var showVersion bool

	flag.StringVar(&opts.Backend, "backend", "gap", "LineStore backend (vector, gap, rope)")
	flag.StringVar(&opts.LogLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flag.StringVar(&opts.RCPath, "rc", "", "Path to an rc file of startup :set commands")
	flag.BoolVar(&showVersion, "version", false, "Show version information")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "mvim - a modal text editor\n\n")
		fmt.Fprintf(os.Stderr, "Usage: mvim [options] [file]\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if showVersion {
		fmt.Printf("mvim %s (%s)\n", version, commit)
		os.Exit(0)
	}

	opts.Files = flag.Args()
	if opts.RCPath == "" {
		if home, err := os.UserHomeDir(); err == nil {
			opts.RCPath = filepath.Join(home, ".mvimrc")
		}
	}
	return opts
}

// loadRCFile replays ":set ..." lines from an rc file before the first
// draw, ignoring a missing file.
func loadRCFile(ed *editor.Editor, path string, log *logging.Logger) {
	if path == "" {
		return
	}
	f, err := os.Open(path)
	if err != nil {
		return
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		fields := splitFields(line)
		if len(fields) > 0 && len(fields[0]) > 1 && fields[0][0] == ':' {
			fields[0] = fields[0][1:]
		}
		if len(fields) < 2 || fields[0] != "set" {
			continue
		}
		arg := ""
		if len(fields) > 2 {
			arg = fields[2]
		}
		if err := config.Apply(&ed.Options, fields[1], arg); err != nil {
			log.Warn("rc file: %v", err)
		}
	}
}

func splitFields(line string) []string {
	var out []string
	start := -1
	for i := 0; i <= len(line); i++ {
		if i < len(line) && line[i] != ' ' && line[i] != '\t' {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			out = append(out, line[start:i])
			start = -1
		}
	}
	return out
}
