package main

import (
	"flag"
	"io"
	"log/slog"
	"os"
	"time"

	"biome-snake/ai"
	"biome-snake/game"
	"biome-snake/game/config"
	"biome-snake/game/manager"
	"biome-snake/game/store"
	"biome-snake/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func main() {
	difficulty := flag.String("difficulty", "normal", "Difficulty: easy, normal, hard, extreme")
	mode := flag.String("mode", "classic", "Game mode (only classic is supported)")
	seed := flag.Uint64("seed", 0, "Random seed (0 = time based)")
	cfgPath := flag.String("config", "", "Optional YAML file overriding the balance")
	dataDir := flag.String("data", "data", "Directory for high scores and achievements")
	autopilot := flag.Bool("autopilot", false, "Let the computer play")
	debug := flag.Bool("debug", false, "Write debug logs to stderr")
	flag.Parse()

	logger := newLogger(*debug)

	d, err := config.ParseDifficulty(*difficulty)
	if err != nil {
		logger.Error("bad flag", "err", err)
		os.Exit(2)
	}
	if _, err := config.ParseMode(*mode); err != nil {
		logger.Error("bad flag", "err", err)
		os.Exit(2)
	}
	cfg, err := config.Load(*cfgPath, d)
	if err != nil {
		logger.Error("failed to load config", "err", err)
		os.Exit(1)
	}

	opts := []game.Option{game.WithLogger(logger)}
	if kv, err := store.NewFileKV(*dataDir); err != nil {
		logger.Warn("scores will not be saved", "err", err)
	} else {
		opts = append(opts, game.WithStore(kv))
	}
	if *seed != 0 {
		opts = append(opts, game.WithSeed(*seed))
	}

	session := game.New(cfg, opts...)
	driver := game.NewDriver(session)
	pilot := ai.NewAutopilot()

	rl.InitWindow(1000, 760, "Biome Snake")
	rl.SetWindowState(rl.FlagWindowResizable)
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	renderer := NewRenderer()
	intent := types.None

	for !rl.WindowShouldClose() {
		if rl.IsKeyPressed(rl.KeyQ) {
			break
		}
		if rl.IsWindowResized() {
			renderer.UpdateDimensions()
		}

		handleActions(session, logger)
		if dir := readDirection(); dir != types.None {
			intent = dir
		}
		if *autopilot {
			intent = drive(session, pilot, logger)
		}

		dt := time.Duration(rl.GetFrameTime() * float32(time.Second))
		if results := driver.Update(dt, intent); len(results) > 0 {
			intent = types.None
		}

		renderer.Draw(session.Snapshot())
	}

	if s := session.State(); s == game.Running || s == game.Paused || s == game.LevelingUp {
		session.Reset()
	}
}

func newLogger(debug bool) *slog.Logger {
	if !debug {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func readDirection() types.Direction {
	switch {
	case rl.IsKeyPressed(rl.KeyUp) || rl.IsKeyPressed(rl.KeyW):
		return types.Up
	case rl.IsKeyPressed(rl.KeyRight) || rl.IsKeyPressed(rl.KeyD):
		return types.Right
	case rl.IsKeyPressed(rl.KeyDown) || rl.IsKeyPressed(rl.KeyS):
		return types.Down
	case rl.IsKeyPressed(rl.KeyLeft) || rl.IsKeyPressed(rl.KeyA):
		return types.Left
	}
	return types.None
}

var abilityKeys = map[int32]manager.Ability{
	rl.KeySpace: manager.Dash,
	rl.KeyE:     manager.TimeWarp,
	rl.KeyF:     manager.Magnet,
}

var choiceKeys = []int32{rl.KeyOne, rl.KeyTwo, rl.KeyThree}

func handleActions(s *game.Session, log *slog.Logger) {
	switch {
	case rl.IsKeyPressed(rl.KeyEnter):
		switch s.State() {
		case game.Idle:
			report(log, "start", s.Start())
		case game.GameOver:
			s.Reset()
			report(log, "start", s.Start())
		}
	case rl.IsKeyPressed(rl.KeyP):
		if s.State() == game.Paused {
			report(log, "resume", s.Resume())
		} else {
			report(log, "pause", s.Pause())
		}
	case rl.IsKeyPressed(rl.KeyR):
		s.Reset()
	}

	for key, a := range abilityKeys {
		if rl.IsKeyPressed(key) {
			if err := s.ActivateAbility(a); err != nil {
				log.Debug("ability rejected", "ability", a, "err", err)
			}
		}
	}
	for i, key := range choiceKeys {
		if rl.IsKeyPressed(key) && s.State() == game.LevelingUp {
			report(log, "choose upgrade", s.ChooseUpgrade(i))
		}
	}
}

// report logs a rejected player action
func report(log *slog.Logger, action string, err error) {
	if err != nil {
		log.Debug("action rejected", "action", action, "err", err)
	}
}

// drive plays on the player's behalf: restarts, picks upgrades, dashes
// out of dead ends and steers.
func drive(s *game.Session, pilot *ai.Autopilot, log *slog.Logger) types.Direction {
	switch s.State() {
	case game.Idle:
		report(log, "start", s.Start())
	case game.GameOver:
		s.Reset()
		report(log, "start", s.Start())
	case game.LevelingUp:
		report(log, "choose upgrade", s.ChooseUpgrade(0))
	}
	if s.State() != game.Running {
		return types.None
	}

	snap := s.Snapshot()
	if pilot.WantsDash(snap) {
		report(log, "dash", s.ActivateAbility(manager.Dash))
	}
	return pilot.Next(snap)
}
