// Package console is a line-oriented terminal front end for the
// participants list. It turns typed commands into controller actions and
// redraws the screen whenever the controller publishes a new state.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/taneeshamadhu18/video-call-assignment/internal/viewstate"
)

// controller is the subset of *viewstate.Controller the console drives.
type controller interface {
	SetSearch(text string)
	NextPage()
	PrevPage()
	Refresh()
	SetViewMode(mode viewstate.ViewMode)
	SetTheme(theme viewstate.Theme)
	ToggleTheme()
	Open(id int64)
	CloseDetail()
	SetMicrophone(id int64, on bool)
	SetCamera(id int64, on bool)
	SetStatus(id int64, online bool)
	ToggleCapture(kind viewstate.MediaKind)
	DismissError()
	Snapshot() viewstate.State
}

// Console reads commands from in and renders to out.
type Console struct {
	ctrl     controller
	out      io.Writer
	renderer Renderer
	log      *slog.Logger

	mu      sync.Mutex // serializes writes to out
	changes chan viewstate.State
}

// New creates a Console. Wire Notify into the controller with
// viewstate.WithOnChange so state changes are drawn.
func New(ctrl controller, out io.Writer, renderer Renderer, log *slog.Logger) *Console {
	return &Console{
		ctrl:     ctrl,
		out:      out,
		renderer: renderer,
		log:      log.With("component", "console"),
		changes:  make(chan viewstate.State, 1),
	}
}

// Notify queues s for drawing. Only the latest pending state is kept, so
// the caller never blocks.
func (c *Console) Notify(s viewstate.State) {
	for {
		select {
		case c.changes <- s:
			return
		default:
		}
		select {
		case <-c.changes:
		default:
		}
	}
}

// Run reads commands until quit, end of input or ctx cancellation.
func (c *Console) Run(ctx context.Context, in io.Reader) error {
	ctx, cancel := context.WithCancel(ctx)
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		c.drawLoop(ctx)
	}()
	defer func() {
		cancel()
		wg.Wait()
	}()

	lines := make(chan string)
	scanErr := make(chan error, 1)
	go func() {
		sc := bufio.NewScanner(in)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-ctx.Done():
				return
			}
		}
		scanErr <- sc.Err()
		close(lines)
	}()

	c.print(helpText + "\n")
	c.draw(c.ctrl.Snapshot())
	for {
		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok {
				return <-scanErr
			}
			cmd, err := Parse(line)
			if errors.Is(err, errEmpty) {
				continue
			}
			if err != nil {
				c.print(err.Error() + "\n")
				continue
			}
			if cmd.Kind == CmdQuit {
				return nil
			}
			c.Exec(cmd)
		}
	}
}

// Exec applies one command to the controller.
func (c *Console) Exec(cmd Command) {
	c.log.Debug("command", slog.String("kind", string(cmd.Kind)))

	switch cmd.Kind {
	case CmdSearch:
		c.ctrl.SetSearch(cmd.Text)
	case CmdNext:
		c.ctrl.NextPage()
	case CmdPrev:
		c.ctrl.PrevPage()
	case CmdRefresh:
		c.ctrl.Refresh()
	case CmdView:
		c.ctrl.SetViewMode(cmd.View)
	case CmdTheme:
		if cmd.Theme == "" {
			c.ctrl.ToggleTheme()
		} else {
			c.ctrl.SetTheme(cmd.Theme)
		}
	case CmdOpen:
		c.ctrl.Open(cmd.ID)
	case CmdClose:
		c.ctrl.CloseDetail()
	case CmdMic:
		c.ctrl.SetMicrophone(cmd.ID, cmd.On)
	case CmdCam:
		c.ctrl.SetCamera(cmd.ID, cmd.On)
	case CmdOnline:
		c.ctrl.SetStatus(cmd.ID, cmd.On)
	case CmdCapture:
		c.ctrl.ToggleCapture(cmd.Media)
	case CmdDismiss:
		c.ctrl.DismissError()
	case CmdHelp:
		c.print(helpText + "\n")
	}
}

func (c *Console) drawLoop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case s := <-c.changes:
			c.draw(s)
		}
	}
}

func (c *Console) draw(s viewstate.State) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.renderer.Render(c.out, s); err != nil {
		c.log.Warn("render", slog.String("error", err.Error()))
	}
}

func (c *Console) print(s string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprint(c.out, s)
}
