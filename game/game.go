// Package game runs a single-player snake session: a deterministic tick
// engine composed from the managers in game/manager, driven either tick by
// tick through Advance or from real time through a Driver.
package game

import (
	"io"
	"log/slog"
	"math"
	"time"

	"biome-snake/game/config"
	"biome-snake/game/entity"
	"biome-snake/game/manager"
	"biome-snake/game/sched"
	"biome-snake/game/store"
	"biome-snake/game/types"

	"github.com/google/uuid"
	"golang.org/x/exp/rand"
)

// timeWarpFactor scales the biome speed factor while TimeWarp is active
const timeWarpFactor = 0.5

type Option func(*Session)

// WithLogger routes session logs to l
func WithLogger(l *slog.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.log = l
		}
	}
}

// WithSeed fixes the random source so a session can be replayed
func WithSeed(seed uint64) Option {
	return func(s *Session) {
		s.seed = seed
	}
}

// WithStore persists high scores and achievements in kv
func WithStore(kv store.KV) Option {
	return func(s *Session) {
		s.kv = kv
	}
}

type perks struct {
	scoreBoost  int
	traction    bool
	magnetRange int
}

// Session owns every piece of mutable game state. All mutation happens
// inside Advance, the lifecycle calls, or timer handlers fired by Advance.
type Session struct {
	ID uuid.UUID

	cfg  config.Config
	log  *slog.Logger
	seed uint64
	kv   store.KV
	rng  *rand.Rand

	queue *sched.Queue
	clock time.Duration
	ticks int
	state State

	spawn      *manager.SpawnManager
	collisions *manager.CollisionManager
	biomes     *manager.BiomeManager
	abilities  *manager.AbilityManager
	effects    *manager.EffectManager
	critters   *manager.CritterManager
	food       *manager.FoodManager
	progress   *manager.ProgressionManager
	persist    *manager.StateManager

	snake     *entity.Snake
	obstacles []entity.Obstacle
	powerUp   *entity.PowerUp

	score     int
	level     int
	nextLevel int
	interval  time.Duration
	choices   []Upgrade
	perks     perks
	cause     manager.CollisionType
}

// TickResult reports what happened during one Advance
type TickResult struct {
	Tick         int
	Ate          bool
	Food         entity.FoodKind
	Bonus        Bonus
	CritterEaten bool
	PowerUp      *entity.PowerUpKind
	NewHighScore bool
	LeveledUp    bool
	Unlocked     []string
	GameOver     bool
	Collision    manager.CollisionType
}

// New builds an Idle session for cfg
func New(cfg config.Config, opts ...Option) *Session {
	s := &Session{
		cfg:  cfg,
		log:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		seed: uint64(time.Now().UnixNano()),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.rng = rand.New(rand.NewSource(s.seed))
	s.queue = sched.New()
	s.spawn = manager.NewSpawnManager(cfg.Grid, s.rng, config.MaxSpawnAttempts)
	s.collisions = manager.NewCollisionManager(cfg.Grid)
	s.biomes = manager.NewBiomeManager(cfg, s.rng)
	s.abilities = manager.NewAbilityManager(cfg.Abilities, s.queue)
	s.effects = manager.NewEffectManager(s.queue)
	s.critters = manager.NewCritterManager(s.collisions, s.rng, config.CritterStepEvery)
	s.food = manager.NewFoodManager(s.spawn, s.rng)
	s.persist = manager.NewStateManager(s.kv, s.log)

	s.abilities.OnChange = func(a manager.Ability, active bool) {
		s.log.Debug("ability changed", "ability", a, "active", active)
		s.retime()
	}
	s.effects.OnChange = func(e manager.Effect, active bool) {
		s.log.Debug("effect changed", "effect", e, "active", active)
		s.retime()
	}

	s.reset()
	return s
}

func (s *Session) State() State {
	return s.state
}

func (s *Session) Config() config.Config {
	return s.cfg
}

// TickInterval is the game time one Advance consumes
func (s *Session) TickInterval() time.Duration {
	return s.interval
}

// Start begins play from Idle
func (s *Session) Start() error {
	if s.state != Idle {
		return invalid("start", s.state)
	}
	s.state = Running
	s.scheduleBiomeRotation(s.clock)
	s.schedulePowerUp(s.clock)
	s.log.Info("session started", "session", s.ID, "difficulty", s.cfg.Difficulty, "seed", s.seed)
	return nil
}

// Pause freezes the game clock; timers freeze with it
func (s *Session) Pause() error {
	if s.state != Running {
		return invalid("pause", s.state)
	}
	s.state = Paused
	return nil
}

func (s *Session) Resume() error {
	if s.state != Paused {
		return invalid("resume", s.state)
	}
	s.state = Running
	return nil
}

// Reset abandons the current session and returns to Idle with a new id.
// Every pending timer is cancelled.
func (s *Session) Reset() {
	if s.state == Running || s.state == Paused || s.state == LevelingUp {
		s.save()
	}
	s.reset()
	s.log.Info("session reset", "session", s.ID)
}

func (s *Session) reset() {
	s.queue.CancelAll()
	s.ID = uuid.New()
	s.clock = 0
	s.ticks = 0
	s.state = Idle

	s.persist.Load()
	s.progress = manager.NewProgressionManager(s.persist.Achievements())
	s.biomes.Reset()
	s.abilities.Reset(s.cfg.Abilities)
	s.effects.Clear()
	s.critters.Clear()
	s.food.Clear()

	s.snake = entity.NewSnake(s.cfg.Grid.Center(), types.Right, config.StartLength)
	s.obstacles = nil
	s.powerUp = nil
	s.score = 0
	s.level = 1
	s.nextLevel = config.FirstLevelScore
	s.choices = nil
	s.perks = perks{magnetRange: config.MagnetRange}
	s.cause = manager.NoCollision

	s.placeObstacles()
	s.respawnFood()
	for i := 0; i < s.cfg.Balance.Critters; i++ {
		s.spawnCritter()
	}
	s.retime()
}

// Advance runs one tick with the player's directional intent
func (s *Session) Advance(intent types.Direction) (TickResult, error) {
	if s.state != Running {
		return TickResult{}, invalid("advance", s.state)
	}

	elapsed := s.interval
	s.clock += elapsed
	s.ticks++
	res := TickResult{Tick: s.ticks}

	s.queue.RunDue(s.clock)

	if s.critters.Step(s.critterWorld()) {
		s.log.Debug("critter ate food")
		s.respawnFood()
	}

	dir := s.steer(intent)
	head := types.Neighbor(dir, s.snake.Head())
	food, hasFood := s.food.Food()
	eating := hasFood && food.Position == head

	move := manager.Movement{
		Head:      head,
		Snake:     s.snake,
		Obstacles: s.obstacles,
		Zones:     s.biomes.Zones(),
		Growing:   eating || s.snake.Growth > 0,
	}
	if c := s.collisions.CheckCollision(move, s.suppression()); c != manager.NoCollision {
		s.gameOver(c)
		res.GameOver = true
		res.Collision = c
		res.Unlocked = s.evaluate()
		return res, nil
	}

	if _, ok := s.critters.RemoveAt(head); ok {
		res.CritterEaten = true
		res.NewHighScore = s.addScore(config.CritterBonus)
		s.progress.RecordCritter()
		s.scheduleCritterRespawn(s.clock + config.CritterRespawn)
	}

	s.snake.Move(head)

	if eating {
		res.Ate = true
		res.Food = food.Kind
		if s.eat(food, &res) {
			res.NewHighScore = true
		}
	} else if s.snake.Growth > 0 {
		s.snake.Growth--
	} else {
		s.snake.RemoveTail()
	}
	if s.food.Pending() {
		s.respawnFood()
	}

	if s.powerUp != nil && s.powerUp.Position == head {
		kind := s.powerUp.Kind
		s.powerUp = nil
		s.applyPowerUp(kind)
		res.PowerUp = &kind
	}

	if s.score >= s.nextLevel {
		s.levelUp()
		res.LeveledUp = true
	}

	s.abilities.Tick(elapsed)
	if s.abilities.IsActive(manager.Magnet) {
		s.food.Pull(s.snake.Head(), s.perks.magnetRange, s.blocked)
	}
	s.biomes.Update(s.clock)

	s.progress.AddElapsed(elapsed)
	s.progress.SetScore(s.score)
	res.Unlocked = s.evaluate()
	s.retime()
	return res, nil
}

// steer resolves the heading for this tick: the intent, the ice turn gate,
// then the biome food bias. The heading is committed to the snake.
func (s *Session) steer(intent types.Direction) types.Direction {
	s.snake.SetDirection(intent)
	if s.snake.Pending == s.snake.Direction.Opposite() {
		s.snake.Pending = types.None
	}
	if s.snake.Pending != types.None && s.turnOpen() {
		s.snake.Direction = s.snake.Pending
		s.snake.Pending = types.None
	}

	dir := s.snake.Direction
	food, ok := s.food.Food()
	if !ok {
		return dir
	}
	mod := s.biomes.Modifier()
	head := s.snake.Head()
	switch {
	case mod.FoodAttraction > 0 && s.rng.Float64() < mod.FoodAttraction:
		dir = bias(dir, towardAxes(head, food.Position))
	case mod.FoodRepulsion > 0 && s.rng.Float64() < mod.FoodRepulsion:
		dir = bias(dir, awayAxes(head, food.Position))
	}
	s.snake.Direction = dir
	return dir
}

// turnOpen reports whether the ice turn delay lets a turn through this tick
func (s *Session) turnOpen() bool {
	delay := s.biomes.Modifier().TurnDelay
	if delay <= 0 || s.perks.traction {
		return true
	}
	return s.clock%delay < s.interval
}

// bias returns the first candidate that does not reverse cur
func bias(cur types.Direction, candidates []types.Direction) types.Direction {
	for _, d := range candidates {
		if d != types.None && d != cur.Opposite() {
			return d
		}
	}
	return cur
}

func towardAxes(from, to types.Point) []types.Direction {
	var out []types.Direction
	if to.X > from.X {
		out = append(out, types.Right)
	} else if to.X < from.X {
		out = append(out, types.Left)
	}
	if to.Y > from.Y {
		out = append(out, types.Down)
	} else if to.Y < from.Y {
		out = append(out, types.Up)
	}
	return out
}

func awayAxes(from, to types.Point) []types.Direction {
	out := towardAxes(from, to)
	for i, d := range out {
		out[i] = d.Opposite()
	}
	return out
}

func (s *Session) suppression() manager.Suppression {
	sup := s.effects.Suppression()
	if s.abilities.IsActive(manager.Dash) {
		sup |= manager.SuppressAll
	}
	return sup
}

// addScore adds points scaled by the difficulty multiplier and score perks.
// Returns whether the stored high score was beaten.
func (s *Session) addScore(base int) bool {
	points := base * s.cfg.Balance.ScoreMultiplier
	points += points * s.perks.scoreBoost * 25 / 100
	s.score += points
	return s.persist.ObserveScore(s.score)
}

func (s *Session) eat(food entity.Food, res *TickResult) bool {
	s.progress.RecordFood()
	var beaten bool
	if food.Kind == entity.FoodSpecial {
		beaten = s.addScore(config.SpecialFoodScore)
		res.Bonus = s.drawBonus()
		s.applyBonus(res.Bonus)
	} else {
		beaten = s.addScore(config.NormalFoodScore)
	}
	s.respawnFood()
	return beaten
}

func (s *Session) gameOver(c manager.CollisionType) {
	s.state = GameOver
	s.cause = c
	s.abilities.Halt()
	s.effects.Clear()
	s.queue.CancelAll()
	s.progress.SetScore(s.score)
	s.save()
	s.log.Info("game over", "session", s.ID, "score", s.score, "level", s.level, "cause", c)
}

// save writes the final score and achievement progress of the session
func (s *Session) save() {
	if err := s.persist.RecordScore(s.score); err != nil {
		s.log.Warn("failed to save score", "err", err)
	}
	if err := s.persist.SaveAchievements(s.progress.Record()); err != nil {
		s.log.Warn("failed to save achievements", "err", err)
	}
}

func (s *Session) evaluate() []string {
	unlocked := s.progress.Evaluate()
	if len(unlocked) == 0 {
		return nil
	}
	for _, id := range unlocked {
		s.log.Info("achievement unlocked", "achievement", id)
	}
	if err := s.persist.SaveAchievements(s.progress.Record()); err != nil {
		s.log.Warn("failed to save achievements", "err", err)
	}
	return unlocked
}

// ActivateAbility starts a player ability. It fails with manager.ErrNotReady
// while the ability is active or cooling down.
func (s *Session) ActivateAbility(a manager.Ability) error {
	if s.state != Running {
		return invalid("activate "+a.String(), s.state)
	}
	if err := s.abilities.Activate(a, s.clock); err != nil {
		return err
	}
	s.progress.RecordActivation(a)
	s.evaluate()
	return nil
}

// retime recomputes the tick interval from score, biome and speed effects
func (s *Session) retime() {
	base := s.cfg.Balance.BaseInterval
	pre := base - time.Duration(s.score/config.SpeedStepScore)*config.SpeedStep
	if pre < config.SpeedFloor {
		pre = config.SpeedFloor
	}
	if pre > base {
		pre = base
	}

	factor := s.biomes.Modifier().SpeedFactor
	if factor <= 0 {
		factor = 1
	}
	if s.abilities.IsActive(manager.TimeWarp) {
		factor *= timeWarpFactor
	}
	iv := time.Duration(float64(pre) / factor * s.effects.IntervalFactor())
	s.interval = clampDuration(iv, config.MinInterval, config.MaxInterval)
}

func clampDuration(d, lo, hi time.Duration) time.Duration {
	return time.Duration(math.Max(float64(lo), math.Min(float64(hi), float64(d))))
}

func (s *Session) critterWorld() manager.CritterWorld {
	w := manager.CritterWorld{
		Snake:     s.snake,
		Obstacles: s.obstacles,
		Zones:     s.biomes.Zones(),
		Food:      s.food.Ref(),
	}
	if s.abilities.IsActive(manager.Magnet) {
		w.MagnetRange = s.perks.magnetRange
	}
	return w
}

// blocked rejects cells food may not be pulled onto
func (s *Session) blocked(p types.Point) bool {
	if s.collisions.Blocked(p, s.snake, s.obstacles, s.biomes.Zones()) {
		return true
	}
	for _, c := range s.critters.Critters() {
		if c.Position == p {
			return true
		}
	}
	return s.powerUp != nil && s.powerUp.Position == p
}
