// cmd/lane_viewer/main.go
//
// lane_viewer — та же игра, но вид сверху в окне ebiten.
package main

import (
	"fmt"
	"os"
	"time"

	"go-bowling/internal/app"
	"go-bowling/internal/component"
	"go-bowling/internal/config"
	"go-bowling/internal/render/topdown"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/spf13/cobra"
)

var flags app.Flags

type AppGame struct {
	game           *app.Game
	lane           *topdown.Renderer
	menu           *topdown.MenuRenderer
	paused         bool
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		a.paused = !a.paused
	}

	if a.game.Current() == component.MainMenu {
		a.menu.Layout(a.game.MenuView(), config.ScreenWidth, config.ScreenHeight)
		if msg, ok := a.menu.Click(); ok {
			a.game.Send(msg)
		}
		if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
			a.game.PressStart()
		}
	}
	if a.paused {
		return nil
	}
	a.game.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	if a.game.Current() != component.Playing {
		a.menu.Layout(a.game.MenuView(), config.ScreenWidth, config.ScreenHeight)
		a.menu.Draw(screen)
		return
	}
	a.lane.Draw(screen)

	stats := a.game.Stats()
	info := fmt.Sprintf("pins %d  balls %d  launched %d", a.game.ECS.CountPins(), a.game.ECS.CountBalls(), stats.BallsLaunched)
	if s := a.game.Play.Session(); s != nil {
		info += fmt.Sprintf("  t=%.1fs", s.Elapsed)
	}
	if a.paused {
		info += "  [paused]"
	}
	ebitenutil.DebugPrint(screen, info)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

var rootCmd = &cobra.Command{
	Use:   "lane_viewer",
	Short: "Top-down view of the bowling lane",
	Long: `Runs the same simulation as 'game' and draws the lane from above.
Space or the Start button begins a level, P pauses, Esc quits.`,
	PreRun: func(cmd *cobra.Command, args []string) {
		flags.SeedSet = cmd.Flags().Changed("seed")
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		g, closeGame, err := app.Bootstrap(flags)
		if err != nil {
			return err
		}
		defer closeGame()

		colors := config.SceneColors()
		a := &AppGame{
			game:           g,
			lane:           topdown.NewRenderer(g.ECS, colors, config.ScreenWidth, config.ScreenHeight),
			menu:           topdown.NewMenuRenderer(colors),
			lastUpdateTime: time.Now(),
		}
		ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
		ebiten.SetWindowTitle(config.WindowTitle)
		return ebiten.RunGame(a)
	},
}

func init() {
	f := rootCmd.Flags()
	f.BoolVar(&flags.Dev, "dev", false, "Start directly in the game state")
	f.Int64Var(&flags.Seed, "seed", 0, "RNG seed (0 = random based on time)")
	f.StringVar(&flags.ConfigPath, "config", "", "Path to tuning YAML")
	f.StringVar(&flags.DBPath, "db", "", "Path to sessions database (default from tuning)")
	f.BoolVar(&flags.Mute, "mute", false, "Disable sound")
	f.StringVar(&flags.LogLevel, "log-level", "", "Log level: debug, info, warn, error")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
