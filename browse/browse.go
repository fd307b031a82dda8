// Package browse provides an optional, read-only terminal UI for paging
// through a completed assembly's listing and symbol table. Unlike the
// teacher's debugger TUI, there is no live execution to single-step —
// the program is already fully assembled — so the view panels here are
// static renderings of the final *parser.Program rather than a running
// VM's state.
package browse

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/shalan/zx16/parser"
)

// Browser is the interactive listing/symbol-table viewer started by the
// -i flag after a successful assembly.
type Browser struct {
	Program  *parser.Program
	BinPath  string
	LstPath  string
	ImageLen int

	App         *tview.Application
	Pages       *tview.Pages
	MainLayout  *tview.Flex
	ListingView *tview.TextView
	SymbolsView *tview.TextView
	StatusView  *tview.TextView
}

// New creates a browser over an already-assembled program.
func New(prog *parser.Program, binPath, lstPath string, imageLen int) *Browser {
	b := &Browser{
		Program:  prog,
		BinPath:  binPath,
		LstPath:  lstPath,
		ImageLen: imageLen,
		App:      tview.NewApplication(),
	}
	b.initializeViews()
	b.buildLayout()
	b.setupKeyBindings()
	return b
}

func (b *Browser) initializeViews() {
	b.ListingView = tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(true).
		SetWrap(false)
	b.ListingView.SetBorder(true).SetTitle(" Listing ")

	b.SymbolsView = tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(true).
		SetWrap(false)
	b.SymbolsView.SetBorder(true).SetTitle(" Symbols ")

	b.StatusView = tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(false)
	b.StatusView.SetBorder(true).SetTitle(" Status ")

	b.refreshListing()
	b.refreshSymbols()
	b.refreshStatus()
}

func (b *Browser) buildLayout() {
	content := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(b.ListingView, 0, 3, true).
		AddItem(b.SymbolsView, 0, 1, false)

	b.MainLayout = tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(content, 0, 5, true).
		AddItem(b.StatusView, 3, 0, false)

	b.Pages = tview.NewPages().AddPage("main", b.MainLayout, true, true)
}

func (b *Browser) setupKeyBindings() {
	b.App.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyCtrlC, tcell.KeyEscape:
			b.App.Stop()
			return nil
		}
		switch event.Rune() {
		case 'q', 'Q':
			b.App.Stop()
			return nil
		}
		return event
	})
}

// Run starts the TUI event loop; it returns when the user quits.
func (b *Browser) Run() error {
	return b.App.SetRoot(b.Pages, true).SetFocus(b.ListingView).Run()
}

func (b *Browser) refreshListing() {
	var sb strings.Builder
	for _, line := range b.Program.Lines {
		addr := ""
		if line.Section != parser.SectionNone {
			addr = fmt.Sprintf("0x%04X", line.Address)
		}
		fmt.Fprintf(&sb, "[yellow]%4d[white] %-8s %s\n", line.LineNo, addr, line.Original)
	}
	b.ListingView.SetText(sb.String())
}

func (b *Browser) refreshSymbols() {
	var sb strings.Builder
	for _, sym := range b.Program.Symbols.All() {
		fmt.Fprintf(&sb, "[green]%-12s[white] 0x%04X %s\n", sym.Name, sym.Address, sym.Section)
	}
	if sb.Len() == 0 {
		sb.WriteString("[yellow]no symbols defined[white]")
	}
	b.SymbolsView.SetText(sb.String())
}

func (b *Browser) refreshStatus() {
	b.StatusView.SetText(fmt.Sprintf(
		"bin: %s (%d bytes)   lst: %s   [q] quit",
		b.BinPath, b.ImageLen, b.LstPath))
}
