package editor

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dshills/mvim/internal/config"
	"github.com/dshills/mvim/internal/coord"
	"github.com/dshills/mvim/internal/document"
	"github.com/dshills/mvim/internal/fileio"
	"github.com/dshills/mvim/internal/linestore"
)

// commandFunc implements one colon command's body; args is everything
// after the command name, split on whitespace.
type commandFunc func(e *Editor, args []string) error

// handleCommand feeds one rune to the command-line editor (':', '/', or
// '?' mode): Enter executes (or searches), Escape cancels, Backspace
// edits, everything else appends.
func (e *Editor) handleCommand(r rune) {
	switch r {
	case keyEscape:
		e.Mode = ModeNormal
		e.CmdLine = ""
	case keyEnter, keyEnterLF:
		line, prefix := e.CmdLine, e.CmdPrefix
		e.CmdLine = ""
		e.Mode = ModeNormal
		switch prefix {
		case ':':
			e.runCommandLine(line)
		case '/':
			e.startSearch(line, true)
		case '?':
			e.startSearch(line, false)
		}
	case keyBackspace, keyBackspace2:
		if len(e.CmdLine) > 0 {
			e.CmdLine = e.CmdLine[:len(e.CmdLine)-1]
		}
	default:
		e.CmdLine += string(r)
	}
}

// runCommandLine parses and dispatches one ":"-prefixed command line.
func (e *Editor) runCommandLine(line string) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return
	}
	name, args := fields[0], fields[1:]
	fn, ok := e.commands[name]
	if !ok {
		e.Message = fmt.Sprintf("unknown command: %s", name)
		return
	}
	if err := fn(e, args); err != nil {
		e.Message = err.Error()
	}
}

// registerCommands builds the colon-command registry, including every
// alias.
func (e *Editor) registerCommands() {
	e.commands = map[string]commandFunc{
		"w":       cmdWrite,
		"q":       cmdQuit,
		"q!":      cmdQuitForce,
		"wq":      cmdWriteQuit,
		"set":     cmdSet,
		"backend": cmdBackend,
		"vsplit":  cmdVSplit,
		"vsp":     cmdVSplit,
		"split":   cmdHSplit,
		"hsplit":  cmdHSplit,
		"sp":      cmdHSplit,
		"close":   cmdClose,
		"focus":   cmdFocus,
		"edit":    cmdEdit,
	}
}

func cmdWrite(e *Editor, args []string) error {
	d := e.ActiveDoc()
	path := d.Path
	if len(args) > 0 {
		path = args[0]
	}
	if path == "" {
		return fmt.Errorf("no file name")
	}
	if err := fileio.WriteFile(documentLines(d), path); err != nil {
		return err
	}
	d.MarkSaved(path)
	return nil
}

func cmdQuit(e *Editor, args []string) error {
	if e.ActiveDoc().Dirty {
		return fmt.Errorf("unsaved changes (use :q! to discard)")
	}
	return cmdQuitForce(e, args)
}

func cmdQuitForce(e *Editor, args []string) error {
	if e.tree.CloseActivePane(e.activePane) {
		e.activePane = e.tree.FocusNext(e.activePane)
		return nil
	}
	e.ShouldQuit = true
	return nil
}

func cmdWriteQuit(e *Editor, args []string) error {
	if err := cmdWrite(e, args); err != nil {
		return err
	}
	return cmdQuitForce(e, nil)
}

func cmdSet(e *Editor, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("set requires an option name")
	}
	name := args[0]
	arg := ""
	if len(args) > 1 {
		arg = args[1]
	}
	return config.Apply(&e.Options, name, arg)
}

func cmdBackend(e *Editor, args []string) error {
	if len(args) == 0 {
		e.Message = e.ActiveDoc().Store.Backend().String()
		return nil
	}
	b, ok := linestore.ParseBackend(args[0])
	if !ok {
		return fmt.Errorf("unknown backend %q", args[0])
	}
	d := e.ActiveDoc()
	next := linestore.New(b)
	var lines []string
	for i := 0; i < d.Store.Count(); i++ {
		lines = append(lines, d.Store.Get(i))
	}
	next.Init(lines)
	d.Store = next
	e.Backend = b
	return nil
}

func cmdVSplit(e *Editor, args []string) error {
	return e.doSplit(args, true)
}

func cmdHSplit(e *Editor, args []string) error {
	return e.doSplit(args, false)
}

func (e *Editor) doSplit(args []string, vertical bool) error {
	docID := e.ActivePane().Doc
	if len(args) > 0 {
		id, err := e.openDocument(args[0])
		if err != nil {
			return err
		}
		docID = id
	}
	var newID int
	if vertical {
		newID = e.tree.SplitVertical(e.activePane, docID)
	} else {
		newID = e.tree.SplitHorizontal(e.activePane, docID)
	}
	if newID < 0 {
		return fmt.Errorf("split failed")
	}
	e.activePane = newID
	return nil
}

func cmdClose(e *Editor, args []string) error {
	if !e.tree.CloseActivePane(e.activePane) {
		return fmt.Errorf("cannot close the last pane")
	}
	e.activePane = e.tree.FocusNext(e.activePane)
	return nil
}

func cmdFocus(e *Editor, args []string) error {
	if len(args) == 0 {
		if id := e.tree.FocusNext(e.activePane); id >= 0 {
			e.activePane = id
		}
		return nil
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("focus requires a pane index, got %q", args[0])
	}
	id := e.tree.PaneAtIndex(n)
	if id < 0 {
		return fmt.Errorf("no pane at index %d", n)
	}
	e.activePane = id
	return nil
}

func cmdEdit(e *Editor, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("edit requires a file name")
	}
	id, err := e.openDocument(args[0])
	if err != nil {
		return err
	}
	e.ActivePane().Doc = id
	e.ActivePane().Cur = coord.Position{}

	// Additional paths each open in their own new vertical split.
	for _, path := range args[1:] {
		if err := e.doSplit([]string{path}, true); err != nil {
			return err
		}
	}
	return nil
}

// documentLines materializes a Document's full content as a line slice,
// for handing to fileio.WriteFile.
func documentLines(d *document.Document) []string {
	lines := make([]string, d.Store.Count())
	for i := range lines {
		lines[i] = d.Store.Get(i)
	}
	return lines
}
