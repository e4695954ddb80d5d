package console

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/taneeshamadhu18/video-call-assignment/internal/viewstate"
)

// Kind identifies a console command.
type Kind string

const (
	CmdSearch  Kind = "search"
	CmdNext    Kind = "next"
	CmdPrev    Kind = "prev"
	CmdRefresh Kind = "refresh"
	CmdView    Kind = "view"
	CmdTheme   Kind = "theme"
	CmdOpen    Kind = "open"
	CmdClose   Kind = "close"
	CmdMic     Kind = "mic"
	CmdCam     Kind = "cam"
	CmdOnline  Kind = "online"
	CmdCapture Kind = "capture"
	CmdDismiss Kind = "dismiss"
	CmdHelp    Kind = "help"
	CmdQuit    Kind = "quit"
)

// Command is one parsed input line.
type Command struct {
	Kind  Kind
	Text  string
	ID    int64
	On    bool
	View  viewstate.ViewMode
	Theme viewstate.Theme // empty means toggle
	Media viewstate.MediaKind
}

var errEmpty = errors.New("empty command")

var aliases = map[string]Kind{
	"s": CmdSearch, "n": CmdNext, "p": CmdPrev, "r": CmdRefresh,
	"o": CmdOpen, "c": CmdClose, "camera": CmdCam, "status": CmdOnline,
	"exit": CmdQuit, "q": CmdQuit, "?": CmdHelp,
}

// Parse turns a line such as "mic 3 off" into a Command.
func Parse(line string) (Command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Command{}, errEmpty
	}
	name := strings.ToLower(fields[0])
	kind, ok := aliases[name]
	if !ok {
		kind = Kind(name)
	}
	args := fields[1:]

	switch kind {
	case CmdSearch:
		// Everything after the verb, inner spacing preserved.
		rest := strings.TrimSpace(line)
		if i := strings.IndexAny(rest, " \t"); i >= 0 {
			return Command{Kind: kind, Text: strings.TrimSpace(rest[i+1:])}, nil
		}
		return Command{Kind: kind}, nil

	case CmdNext, CmdPrev, CmdRefresh, CmdClose, CmdDismiss, CmdHelp, CmdQuit:
		if len(args) != 0 {
			return Command{}, fmt.Errorf("usage: %s", kind)
		}
		return Command{Kind: kind}, nil

	case CmdView:
		if len(args) != 1 {
			return Command{}, errors.New("usage: view list|grid")
		}
		switch v := viewstate.ViewMode(strings.ToLower(args[0])); v {
		case viewstate.ViewList, viewstate.ViewGrid:
			return Command{Kind: kind, View: v}, nil
		}
		return Command{}, errors.New("usage: view list|grid")

	case CmdTheme:
		if len(args) == 0 {
			return Command{Kind: kind}, nil
		}
		switch th := viewstate.Theme(strings.ToLower(args[0])); th {
		case viewstate.ThemeLight, viewstate.ThemeDark:
			return Command{Kind: kind, Theme: th}, nil
		case "toggle":
			return Command{Kind: kind}, nil
		}
		return Command{}, errors.New("usage: theme [light|dark|toggle]")

	case CmdOpen:
		if len(args) != 1 {
			return Command{}, errors.New("usage: open <id>")
		}
		id, err := parseID(args[0])
		if err != nil {
			return Command{}, err
		}
		return Command{Kind: kind, ID: id}, nil

	case CmdMic, CmdCam, CmdOnline:
		usage := fmt.Errorf("usage: %s <id> on|off", kind)
		if len(args) != 2 {
			return Command{}, usage
		}
		id, err := parseID(args[0])
		if err != nil {
			return Command{}, err
		}
		on, ok := parseSwitch(args[1])
		if !ok {
			return Command{}, usage
		}
		return Command{Kind: kind, ID: id, On: on}, nil

	case CmdCapture:
		if len(args) != 1 {
			return Command{}, errors.New("usage: capture mic|cam")
		}
		switch strings.ToLower(args[0]) {
		case "mic", "microphone":
			return Command{Kind: kind, Media: viewstate.MediaMicrophone}, nil
		case "cam", "camera":
			return Command{Kind: kind, Media: viewstate.MediaCamera}, nil
		}
		return Command{}, errors.New("usage: capture mic|cam")
	}

	return Command{}, fmt.Errorf("unknown command %q, type help", name)
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid participant id %q", s)
	}
	return id, nil
}

func parseSwitch(s string) (on, ok bool) {
	switch strings.ToLower(s) {
	case "on", "true", "1", "yes":
		return true, true
	case "off", "false", "0", "no":
		return false, true
	}
	return false, false
}

const helpText = `commands:
  search <text>          filter by name, email or role (empty clears)
  next | prev            turn the page
  refresh                reload the current page
  view list|grid         switch layout
  theme [light|dark]     set or toggle the colour scheme
  open <id> | close      show or hide participant details
  mic <id> on|off        set the microphone flag
  cam <id> on|off        set the camera flag
  online <id> on|off     set the presence status
  capture mic|cam        start or stop local capture
  dismiss                clear the error message
  quit`
