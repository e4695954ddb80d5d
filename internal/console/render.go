package console

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/taneeshamadhu18/video-call-assignment/internal/domain"
	"github.com/taneeshamadhu18/video-call-assignment/internal/viewstate"
)

const gridColumns = 3

const (
	ansiReset = "\x1b[0m"
	ansiDark  = "\x1b[97;40m"
	ansiRed   = "\x1b[31m"
	ansiBold  = "\x1b[1m"
	ansiFaint = "\x1b[2m"
	rule      = "----------------------------------------------------------------"
)

// Renderer draws a State as text. Colour escapes are only emitted when
// Color is set.
type Renderer struct {
	Color bool
}

// Render writes the full screen for s to w.
func (r Renderer) Render(w io.Writer, s viewstate.State) error {
	var b strings.Builder

	r.header(&b, s)
	if s.ViewMode == viewstate.ViewGrid {
		r.grid(&b, s.Participants)
	} else {
		r.list(&b, s.Participants)
	}
	r.footer(&b, s)
	if s.Selected != nil {
		r.detail(&b, *s.Selected)
	}
	if s.Error != "" {
		b.WriteString(r.paint(ansiRed, "error: "+s.Error) + "\n")
	}

	out := b.String()
	if r.Color && s.Theme == viewstate.ThemeDark {
		out = ansiDark + out + ansiReset
	}
	_, err := io.WriteString(w, out)
	return err
}

func (r Renderer) header(b *strings.Builder, s viewstate.State) {
	b.WriteString(rule + "\n")
	title := "Participants"
	if s.DebouncedSearch != "" {
		title += fmt.Sprintf(" matching %q", s.DebouncedSearch)
	}
	b.WriteString(r.paint(ansiBold, title))
	fmt.Fprintf(b, "  [%s view, %s theme]", s.ViewMode, s.Theme)
	if s.Loading {
		b.WriteString("  loading...")
	}
	b.WriteString("\n")
	if s.Search != s.DebouncedSearch {
		fmt.Fprintf(b, "search: %s_\n", s.Search)
	}
	capturing := []string{}
	if s.Media.MicCapturing {
		capturing = append(capturing, "mic")
	}
	if s.Media.CameraCapturing {
		capturing = append(capturing, "camera")
	}
	if len(capturing) > 0 {
		fmt.Fprintf(b, "capturing: %s\n", strings.Join(capturing, ", "))
	}
}

func (r Renderer) list(b *strings.Builder, ps []domain.Participant) {
	if len(ps) == 0 {
		b.WriteString(r.paint(ansiFaint, "No participants found") + "\n")
		return
	}
	tw := tabwriter.NewWriter(b, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tEMAIL\tROLE\tSTATUS\tMIC\tCAM")
	for _, p := range ps {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
			p.ID, p.Name, p.Email, p.Role, status(p.Online), onOff(p.MicOn), onOff(p.CameraOn))
	}
	tw.Flush()
}

func (r Renderer) grid(b *strings.Builder, ps []domain.Participant) {
	if len(ps) == 0 {
		b.WriteString(r.paint(ansiFaint, "No participants found") + "\n")
		return
	}
	tw := tabwriter.NewWriter(b, 0, 0, 4, ' ', 0)
	for start := 0; start < len(ps); start += gridColumns {
		row := ps[start:min(start+gridColumns, len(ps))]
		cells := func(f func(domain.Participant) string) {
			parts := make([]string, len(row))
			for i, p := range row {
				parts[i] = f(p)
			}
			fmt.Fprintln(tw, strings.Join(parts, "\t")+"\t")
		}
		cells(func(p domain.Participant) string { return "#" + strconv.FormatInt(p.ID, 10) + " " + p.Name })
		cells(func(p domain.Participant) string { return string(p.Role) + ", " + status(p.Online) })
		cells(func(p domain.Participant) string { return "mic " + onOff(p.MicOn) + " / cam " + onOff(p.CameraOn) })
		fmt.Fprintln(tw)
	}
	tw.Flush()
}

func (r Renderer) footer(b *strings.Builder, s viewstate.State) {
	nav := []string{}
	if s.HasPrev() {
		nav = append(nav, "[prev]")
	}
	if s.HasNext() {
		nav = append(nav, "[next]")
	}
	fmt.Fprintf(b, "Page %d of %d (%d participants) %s\n",
		s.Page+1, s.PageCount(), s.Total, strings.Join(nav, " "))
}

func (r Renderer) detail(b *strings.Builder, p domain.Participant) {
	b.WriteString(rule + "\n")
	tw := tabwriter.NewWriter(b, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Name:\t%s\n", p.Name)
	fmt.Fprintf(tw, "Email:\t%s\n", p.Email)
	fmt.Fprintf(tw, "Role:\t%s\n", p.Role)
	fmt.Fprintf(tw, "Status:\t%s\n", status(p.Online))
	fmt.Fprintf(tw, "Microphone:\t%s\n", onOff(p.MicOn))
	fmt.Fprintf(tw, "Camera:\t%s\n", onOff(p.CameraOn))
	if p.AboutMe != nil && *p.AboutMe != "" {
		fmt.Fprintf(tw, "About:\t%s\n", *p.AboutMe)
	}
	if p.ResumeURL != nil && *p.ResumeURL != "" {
		fmt.Fprintf(tw, "Resume:\t%s\n", *p.ResumeURL)
	}
	fmt.Fprintf(tw, "Updated:\t%s\n", p.UpdatedAt.Format("2006-01-02 15:04:05"))
	tw.Flush()
}

func (r Renderer) paint(code, s string) string {
	if !r.Color {
		return s
	}
	return code + s + ansiReset
}

func status(online bool) string {
	if online {
		return "online"
	}
	return "offline"
}

func onOff(on bool) string {
	if on {
		return "on"
	}
	return "off"
}
