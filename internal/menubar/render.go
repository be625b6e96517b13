package menubar

import (
	"fmt"

	"github.com/rorynscott/duo-oncall/internal/schedule"
	"github.com/rorynscott/duo-oncall/internal/victorops"
)

// overrideTimeLayout is the human form used for override boundaries.
const overrideTimeLayout = "2006-01-02 15:04"

// Renderer turns fetched team schedules into menu lines.
type Renderer struct {
	// Directory resolves usernames to display names; nil leaves usernames
	// as-is.
	Directory schedule.Directory
	// Collapse merges consecutive identical days into date ranges.
	Collapse bool
}

// Render prints the whole menu: title, one section per team, then the
// refresh action.
func (r *Renderer) Render(w *Writer, title string, teams []victorops.TeamScheduleResponse) error {
	w.Plain(title)
	w.Separator()
	for _, team := range teams {
		if err := r.RenderTeam(w, team); err != nil {
			return err
		}
	}
	w.Refresh()
	w.Separator()
	return w.Err()
}

// RenderTeam prints one team's schedule section.
func (r *Renderer) RenderTeam(w *Writer, resp victorops.TeamScheduleResponse) error {
	w.Line("**Team: %s**", resp.Team.Name)
	// The day collection spans policy blocks within a team, so each policy
	// section repeats the days accumulated so far.
	collection := make(schedule.Collection)
	for _, block := range resp.Schedules {
		w.Line("*Policy: %s*", block.Policy.Name)
		for _, shift := range block.Schedule {
			for _, roll := range shift.Rolls {
				user := r.Directory.Resolve(roll.OnCallUser.Username)
				if err := schedule.ExpandRoll(collection, user, shift.ShiftName, roll.Start, roll.End); err != nil {
					return fmt.Errorf("team %s policy %s: %w", resp.Team.Name, block.Policy.Name, err)
				}
			}
		}
		r.renderCollection(w, collection)
		if err := r.renderOverrides(w, block.Overrides); err != nil {
			return fmt.Errorf("team %s policy %s: %w", resp.Team.Name, block.Policy.Name, err)
		}
	}
	w.Separator()
	return w.Err()
}

func (r *Renderer) renderCollection(w *Writer, c schedule.Collection) {
	var ranges []schedule.Range
	if r.Collapse {
		ranges = schedule.Collapse(c)
	} else {
		ranges = schedule.Singles(c)
	}
	for _, rg := range ranges {
		if rg.Start == rg.End {
			w.Line("**%s**", rg.Start)
		} else {
			w.Line("**%s** - **%s**", rg.Start, rg.End)
		}
		for _, s := range rg.Shifts {
			w.Line("**%s** for shift %s (%s-%s)", s.User, s.Name, s.StartHour, s.EndHour)
		}
	}
}

func (r *Renderer) renderOverrides(w *Writer, overrides []victorops.Override) error {
	if len(overrides) == 0 {
		return nil
	}
	w.Plain("Overrides:")
	for _, o := range overrides {
		start, err := schedule.ParseTimestamp(o.Start)
		if err != nil {
			return err
		}
		end, err := schedule.ParseTimestamp(o.End)
		if err != nil {
			return err
		}
		w.Line("**%s** for **%s**: Start %s, End %s",
			r.Directory.Resolve(o.OverrideOnCallUser.Username),
			r.Directory.Resolve(o.OrigOnCallUser.Username),
			start.Format(overrideTimeLayout),
			end.Format(overrideTimeLayout))
	}
	return nil
}
