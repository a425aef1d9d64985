// Package tui is a terminal front end for the converter: a menu with one
// entry per direction, path forms, and a modal for the result.
package tui

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/wbrown/img2ascii/shell"
)

const (
	pageMain   = "main"
	pagePrompt = "prompt"
	pageResult = "result"
)

// App is the terminal UI. It implements shell.Prompter; its picks block
// the calling goroutine until the user answers the form.
type App struct {
	app    *tview.Application
	pages  *tview.Pages
	list   *tview.List
	status *tview.TextView
	runner *shell.Runner

	// ctx is canceled when Run returns. Conversions started from the menu
	// run under it.
	ctx  context.Context
	quit context.CancelFunc

	busy atomic.Bool
}

type answer struct {
	path string
	ok   bool
}

// New builds the UI around conv.
func New(conv shell.Converter) *App {
	a := &App{
		app:   tview.NewApplication(),
		pages: tview.NewPages(),
		list:  tview.NewList(),
		status: tview.NewTextView().
			SetTextAlign(tview.AlignCenter).
			SetDynamicColors(true).
			SetText("Image to ASCII Art Converter"),
	}
	a.ctx, a.quit = context.WithCancel(context.Background())
	a.runner = shell.NewRunner(conv, a)

	for _, d := range []shell.Direction{shell.ImageToASCII, shell.ASCIIToImage} {
		d := d // per-iteration copy; go.mod targets go 1.21 loop semantics
		a.list.AddItem(d.Label(), "", 0, func() {
			a.start(d)
		})
	}
	a.list.AddItem("Quit", "", 'q', func() {
		a.app.Stop()
	})

	// Hide secondary text to remove blank lines
	a.list.ShowSecondaryText(false)

	flex := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(a.status, 3, 1, false).
		AddItem(a.list, 0, 1, true)
	a.pages.AddPage(pageMain, flex, true, true)

	a.app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyCtrlC {
			a.app.Stop()
			return nil
		}
		return event
	})

	return a
}

// Run shows the UI until the user quits. Quitting cancels a conversion
// still in flight.
func (a *App) Run() error {
	defer a.quit()
	return a.app.SetRoot(a.pages, true).Run()
}

// start runs one conversion off the UI goroutine. Selecting a menu entry
// while a conversion is in flight does nothing.
func (a *App) start(d shell.Direction) {
	if !a.busy.CompareAndSwap(false, true) {
		return
	}
	a.status.SetText(fmt.Sprintf("[yellow]%s...[-]", d.Label()))
	go func() {
		defer a.busy.Store(false)
		a.runner.Run(a.ctx, d)
		a.update(func() {
			a.status.SetText("Image to ASCII Art Converter")
		})
	}()
}

// update runs f on the event loop and waits for it. It returns false
// without waiting once the app has quit, since nothing drains the queue
// after that.
func (a *App) update(f func()) bool {
	if a.ctx.Err() != nil {
		return false
	}
	done := make(chan struct{})
	go func() {
		a.app.QueueUpdateDraw(f)
		close(done)
	}()
	select {
	case <-done:
		return true
	case <-a.ctx.Done():
		return false
	}
}

// PickInput asks for the source path.
func (a *App) PickInput(ctx context.Context, d shell.Direction) (string, error) {
	title := "Select image"
	if d == shell.ASCIIToImage {
		title = "Select ASCII art"
	}
	hint := strings.Join(d.InputPatterns(), " ")
	return a.prompt(ctx, title, "Path ("+hint+")", "")
}

// PickOutput asks for the destination path, suggesting one next to input.
func (a *App) PickOutput(ctx context.Context, d shell.Direction, input string) (string, error) {
	return a.prompt(ctx, "Save as", "Path", d.DefaultOutputPath(input))
}

// Notify shows res in a modal.
func (a *App) Notify(res shell.Result) {
	a.update(func() {
		color := "green"
		if res.Err != nil {
			color = "red"
		}
		modal := tview.NewModal().
			SetText(fmt.Sprintf("[%s]%s[-]\n\n%s", color, res.Title(), tview.Escape(res.Message()))).
			AddButtons([]string{"OK"}).
			SetDoneFunc(func(buttonIndex int, buttonLabel string) {
				a.pages.RemovePage(pageResult)
				a.app.SetFocus(a.list)
			})
		a.pages.AddPage(pageResult, modal, true, true)
	})
}

// prompt shows a form and blocks until it is answered. Quitting the app
// counts as backing out.
func (a *App) prompt(ctx context.Context, title, label, initial string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	ch := make(chan answer, 1)
	if !a.update(func() { a.showForm(title, label, initial, ch) }) {
		return "", shell.ErrCanceled
	}

	select {
	case <-ctx.Done():
		a.update(a.closeForm)
		return "", ctx.Err()
	case <-a.ctx.Done():
		return "", shell.ErrCanceled
	case ans := <-ch:
		if !ans.ok || strings.TrimSpace(ans.path) == "" {
			return "", shell.ErrCanceled
		}
		return strings.TrimSpace(ans.path), nil
	}
}

func (a *App) showForm(title, label, initial string, ch chan<- answer) {
	send := func(ans answer) {
		select {
		case ch <- ans:
		default:
		}
		a.closeForm()
	}

	form := tview.NewForm()
	form.AddInputField(label, initial, 60, nil, nil).
		AddButton("OK", func() {
			path := form.GetFormItem(0).(*tview.InputField).GetText()
			send(answer{path: path, ok: true})
		}).
		AddButton("Cancel", func() {
			send(answer{})
		}).
		SetCancelFunc(func() {
			send(answer{})
		})
	form.SetBorder(true).SetTitle(" " + title + " ")

	a.pages.AddPage(pagePrompt, center(form, 80, 7), true, true)
	a.app.SetFocus(form)
}

func (a *App) closeForm() {
	a.pages.RemovePage(pagePrompt)
	a.app.SetFocus(a.list)
}

// center wraps p in a fixed-size box centered on the screen.
func center(p tview.Primitive, width, height int) tview.Primitive {
	return tview.NewFlex().
		AddItem(nil, 0, 1, false).
		AddItem(tview.NewFlex().SetDirection(tview.FlexRow).
			AddItem(nil, 0, 1, false).
			AddItem(p, height, 1, true).
			AddItem(nil, 0, 1, false), width, 1, true).
		AddItem(nil, 0, 1, false)
}
