// cmd/game/main.go
//
// game — боулинг в окне raylib.
//
//	game              — окно с меню
//	game --dev        — сразу на дорожку
//	game headless     — прогон без окна с отчётом
//	game sessions     — последние сессии
package main

import (
	"fmt"
	"os"
	"time"

	"go-bowling/internal/app"
	"go-bowling/internal/component"
	"go-bowling/internal/config"
	"go-bowling/internal/render/lane3d"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/spf13/cobra"
)

var flags app.Flags

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "game",
	Short: "Bowling arcade in a raylib window",
	PreRun: func(cmd *cobra.Command, args []string) {
		flags.SeedSet = cmd.Flags().Changed("seed")
	},
	RunE: runWindow,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.BoolVar(&flags.Dev, "dev", false, "Start directly in the game state")
	pf.Int64Var(&flags.Seed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flags.ConfigPath, "config", "", "Path to tuning YAML")
	pf.StringVar(&flags.DBPath, "db", "", "Path to sessions database (default from tuning)")
	pf.BoolVar(&flags.Mute, "mute", false, "Disable sound")
	pf.StringVar(&flags.LogLevel, "log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(headlessCmd)
	rootCmd.AddCommand(sessionsCmd)
}

func runWindow(cmd *cobra.Command, args []string) error {
	g, closeGame, err := app.Bootstrap(flags)
	if err != nil {
		return err
	}
	defer closeGame()

	rl.InitWindow(config.ScreenWidth, config.ScreenHeight, config.WindowTitle)
	defer rl.CloseWindow()
	rl.SetTargetFPS(config.TargetFPS)

	colors := config.SceneColors()
	scene := lane3d.NewRenderer(g.ECS, colors)
	menu := lane3d.NewMenuRenderer(colors)

	lastUpdateTime := time.Now()
	for !rl.WindowShouldClose() {
		now := time.Now()
		deltaTime := now.Sub(lastUpdateTime).Seconds()
		if deltaTime > config.MaxDeltaTime {
			deltaTime = config.MaxDeltaTime
		}
		lastUpdateTime = now

		if g.Current() == component.MainMenu {
			menu.Layout(g.MenuView())
			if msg, ok := menu.Click(); ok {
				g.Send(msg)
			}
		}

		g.Update(deltaTime)

		rl.BeginDrawing()
		scene.Clear()
		if g.Current() == component.Playing {
			scene.DrawScene()
			rl.DrawFPS(10, 10)
		} else {
			menu.Layout(g.MenuView())
			menu.Draw()
		}
		rl.EndDrawing()
	}
	return nil
}
