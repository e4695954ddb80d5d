package viewstate

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/taneeshamadhu18/video-call-assignment/internal/domain"
)

// action is one state transition, applied on the Run goroutine.
type action interface {
	apply(c *Controller)
}

type setSearch struct{ text string }

func (a setSearch) apply(c *Controller) {
	c.state.Search = a.text
	c.scheduleDebounce()
}

type debounceFired struct{ gen uint64 }

// apply commits the raw search text. Only this resets the page.
func (a debounceFired) apply(c *Controller) {
	if a.gen != c.debounceGen {
		return
	}
	c.debounce = nil

	changed := c.state.DebouncedSearch != c.state.Search || c.state.Page != 0
	c.state.DebouncedSearch = c.state.Search
	c.state.Page = 0
	if !changed {
		return
	}
	c.save(c.durable, keySearch, c.state.DebouncedSearch)
	c.save(c.durable, keyPage, "0")
	c.fetch()
}

type turnPage struct{ delta int }

func (a turnPage) apply(c *Controller) {
	switch {
	case a.delta > 0 && !c.state.HasNext():
		return
	case a.delta < 0 && !c.state.HasPrev():
		return
	}
	c.state.Page += a.delta
	c.save(c.durable, keyPage, strconv.Itoa(c.state.Page))
	c.fetch()
}

type refresh struct{}

func (refresh) apply(c *Controller) { c.fetch() }

type fetched struct {
	seq      uint64
	list     []domain.Participant
	total    int
	err      error
	countErr error
}

func (a fetched) apply(c *Controller) {
	if a.seq != c.fetchSeq {
		return
	}
	c.state.Loading = false
	if a.err != nil {
		c.setError(a.err.Error())
		return
	}
	if a.list == nil {
		a.list = []domain.Participant{}
	}
	c.state.Participants = a.list

	if a.countErr != nil {
		// Keep the previous total, but never below what this page proves exists.
		c.state.Total = max(c.state.Total, c.state.Page*c.state.PageSize+len(a.list))
		c.log.Warn("count participants", slog.String("error", a.countErr.Error()))
		return
	}
	c.state.Total = a.total
}

type setViewMode struct{ mode ViewMode }

func (a setViewMode) apply(c *Controller) {
	if !a.mode.valid() || a.mode == c.state.ViewMode {
		return
	}
	c.state.ViewMode = a.mode
	c.save(c.durable, keyViewMode, string(a.mode))
}

type setTheme struct{ theme Theme }

func (a setTheme) apply(c *Controller) {
	if !a.theme.valid() || a.theme == c.state.Theme {
		return
	}
	c.state.Theme = a.theme
	c.save(c.durable, keyTheme, string(a.theme))
}

type toggleTheme struct{}

func (toggleTheme) apply(c *Controller) {
	next := ThemeDark
	if c.state.Theme == ThemeDark {
		next = ThemeLight
	}
	setTheme{theme: next}.apply(c)
}

type openDetail struct{ id int64 }

// apply shows the cached row at once, then refreshes it from the server.
func (a openDetail) apply(c *Controller) {
	c.openID = a.id
	c.state.Selected = nil
	for i := range c.state.Participants {
		if c.state.Participants[i].ID == a.id {
			p := c.state.Participants[i]
			c.state.Selected = &p
			break
		}
	}

	ctx, api, id := c.ctx, c.api, a.id
	go func() {
		p, err := api.GetParticipant(ctx, id)
		c.dispatch(detailLoaded{id: id, p: p, err: err})
	}()
}

type detailLoaded struct {
	id  int64
	p   *domain.Participant
	err error
}

func (a detailLoaded) apply(c *Controller) {
	if a.id != c.openID {
		return
	}
	if a.err != nil {
		c.setError(a.err.Error())
		return
	}
	c.state.Selected = a.p
	c.state.replace(*a.p)
}

type closeDetail struct{}

func (closeDetail) apply(c *Controller) {
	c.openID = 0
	c.state.Selected = nil
}

type update struct {
	id   int64
	call func(ctx context.Context, api participantAPI) (*domain.Participant, error)
}

func (a update) apply(c *Controller) {
	ctx, api := c.ctx, c.api
	go func() {
		p, err := a.call(ctx, api)
		c.dispatch(updated{p: p, err: err})
	}()
}

type updated struct {
	p   *domain.Participant
	err error
}

// apply swaps in the server's copy without refetching the page.
func (a updated) apply(c *Controller) {
	if a.err != nil {
		c.setError(a.err.Error())
		return
	}
	c.state.replace(*a.p)
	if c.state.Selected != nil && c.state.Selected.ID == a.p.ID {
		p := *a.p
		c.state.Selected = &p
	}
}

type toggleCapture struct{ kind MediaKind }

func (a toggleCapture) apply(c *Controller) {
	if c.media == nil {
		c.setError("Failed to toggle " + string(a.kind) + ": no capture device")
		return
	}
	on := !c.state.Media.Capturing(a.kind)
	ctx, media, kind := c.ctx, c.media, a.kind
	go func() {
		var err error
		if on {
			err = media.Start(ctx, kind)
		} else {
			err = media.Stop(kind)
		}
		c.dispatch(captureToggled{kind: kind, on: on, err: err})
	}()
}

type captureToggled struct {
	kind MediaKind
	on   bool
	err  error
}

func (a captureToggled) apply(c *Controller) {
	if a.err != nil {
		verb := "stop"
		if a.on {
			verb = "start"
		}
		c.setError("Failed to " + verb + " " + string(a.kind) + ": " + a.err.Error())
		return
	}
	c.state.Media.set(a.kind, a.on)
	c.saveMedia()
}

type errorExpired struct{ gen uint64 }

func (a errorExpired) apply(c *Controller) {
	if a.gen != c.errGen {
		return
	}
	c.state.Error = ""
	c.errTimer = nil
}

type dismissError struct{}

func (dismissError) apply(c *Controller) { c.clearError() }
