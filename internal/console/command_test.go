package console

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taneeshamadhu18/video-call-assignment/internal/viewstate"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		line string
		want Command
	}{
		{"search alice johnson", Command{Kind: CmdSearch, Text: "alice johnson"}},
		{"  s   host  ", Command{Kind: CmdSearch, Text: "host"}},
		{"search", Command{Kind: CmdSearch}},
		{"next", Command{Kind: CmdNext}},
		{"P", Command{Kind: CmdPrev}},
		{"refresh", Command{Kind: CmdRefresh}},
		{"view grid", Command{Kind: CmdView, View: viewstate.ViewGrid}},
		{"view LIST", Command{Kind: CmdView, View: viewstate.ViewList}},
		{"theme", Command{Kind: CmdTheme}},
		{"theme toggle", Command{Kind: CmdTheme}},
		{"theme dark", Command{Kind: CmdTheme, Theme: viewstate.ThemeDark}},
		{"open 4", Command{Kind: CmdOpen, ID: 4}},
		{"close", Command{Kind: CmdClose}},
		{"mic 3 off", Command{Kind: CmdMic, ID: 3, On: false}},
		{"camera 2 on", Command{Kind: CmdCam, ID: 2, On: true}},
		{"online 1 yes", Command{Kind: CmdOnline, ID: 1, On: true}},
		{"status 1 false", Command{Kind: CmdOnline, ID: 1, On: false}},
		{"capture mic", Command{Kind: CmdCapture, Media: viewstate.MediaMicrophone}},
		{"capture camera", Command{Kind: CmdCapture, Media: viewstate.MediaCamera}},
		{"dismiss", Command{Kind: CmdDismiss}},
		{"?", Command{Kind: CmdHelp}},
		{"exit", Command{Kind: CmdQuit}},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got, err := Parse(tt.line)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		line    string
		wantErr string
	}{
		{"", "empty command"},
		{"dance", `unknown command "dance", type help`},
		{"next 2", "usage: next"},
		{"view table", "usage: view list|grid"},
		{"theme neon", "usage: theme [light|dark|toggle]"},
		{"open", "usage: open <id>"},
		{"open abc", `invalid participant id "abc"`},
		{"open 0", `invalid participant id "0"`},
		{"mic 3", "usage: mic <id> on|off"},
		{"mic 3 maybe", "usage: mic <id> on|off"},
		{"cam -1 on", `invalid participant id "-1"`},
		{"capture screen", "usage: capture mic|cam"},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			_, err := Parse(tt.line)
			assert.EqualError(t, err, tt.wantErr)
		})
	}
}
