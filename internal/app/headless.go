// internal/app/headless.go
package app

import (
	"context"
	"fmt"
	"strings"

	"go-bowling/internal/component"
	"go-bowling/internal/config"
	"go-bowling/internal/system"

	"github.com/charmbracelet/lipgloss"
)

// HeadlessOptions — параметры прогона без окна
type HeadlessOptions struct {
	Step     float64 // секунды на кадр
	Duration float64 // предел игрового времени, 0 без предела
}

// Report — итог прогона
type Report struct {
	SessionID   string
	Seed        int64
	Cleared     bool
	Frames      int
	Elapsed     float64
	BallsThrown int
	PinsKnocked int
	PinsLeft    int
	BallsLive   int
}

// RunHeadless нажимает Start и шагает игру фиксированным шагом,
// пока дорожка не очистится, не выйдет время или не отменят ctx.
func RunHeadless(ctx context.Context, g *Game, opts HeadlessOptions) (Report, error) {
	step := opts.Step
	if step <= 0 {
		step = 1.0 / config.TargetFPS
	}

	if g.Current() == component.MainMenu {
		g.PressStart()
		g.Update(0)
	}

	frames := 0
	for {
		if err := ctx.Err(); err != nil {
			return g.report(frames), err
		}
		if g.Current() != component.Playing {
			break
		}
		if s := g.Play.Session(); opts.Duration > 0 && s != nil && s.Elapsed >= opts.Duration {
			break
		}
		g.Update(step)
		frames++
	}
	return g.report(frames), nil
}

func (g *Game) report(frames int) Report {
	rep := Report{
		Seed:      g.Rng.Seed(),
		Frames:    frames,
		PinsLeft:  g.ECS.CountPins(),
		BallsLive: g.ECS.CountBalls(),
	}
	var s *system.PlaySession
	if s = g.Play.Session(); s == nil {
		s = g.Play.LastSession()
	}
	if s != nil {
		rep.SessionID = s.ID
		rep.Cleared = s.Cleared
		rep.Elapsed = s.Elapsed
		rep.BallsThrown = s.BallsThrown
		rep.PinsKnocked = s.PinsKnocked
	}
	return rep
}

var (
	reportTitle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	reportLabel = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Width(14)
	reportOK    = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	reportFail  = lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true)
	reportBox   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

// Render — отчёт для терминала
func (r Report) Render() string {
	outcome := reportFail.Render("time out")
	if r.Cleared {
		outcome = reportOK.Render("cleared")
	}
	rows := [][2]string{
		{"session", r.SessionID},
		{"seed", fmt.Sprint(r.Seed)},
		{"outcome", outcome},
		{"elapsed", fmt.Sprintf("%.2fs (%d frames)", r.Elapsed, r.Frames)},
		{"balls thrown", fmt.Sprint(r.BallsThrown)},
		{"pins knocked", fmt.Sprint(r.PinsKnocked)},
		{"pins left", fmt.Sprint(r.PinsLeft)},
	}
	var b strings.Builder
	b.WriteString(reportTitle.Render(config.WindowTitle))
	for _, row := range rows {
		b.WriteString("\n")
		b.WriteString(reportLabel.Render(row[0]))
		b.WriteString(row[1])
	}
	return reportBox.Render(b.String())
}
