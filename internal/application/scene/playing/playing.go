// Package playing provides the main gameplay scene.
package playing

import (
	"image/color"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/younwookim/desertrun/internal/application/replay"
	"github.com/younwookim/desertrun/internal/application/scene"
	"github.com/younwookim/desertrun/internal/application/scene/ending"
	"github.com/younwookim/desertrun/internal/application/state"
	"github.com/younwookim/desertrun/internal/application/system"
	"github.com/younwookim/desertrun/internal/application/world"
	"github.com/younwookim/desertrun/internal/domain/entity"
	"github.com/younwookim/desertrun/internal/domain/event"
	"github.com/younwookim/desertrun/internal/infrastructure/audio"
	"github.com/younwookim/desertrun/internal/infrastructure/config"
	"github.com/younwookim/desertrun/internal/infrastructure/storage"
)

// Colors for rendering
var (
	colorSky         = color.RGBA{250, 220, 160, 255}
	colorSand        = color.RGBA{220, 180, 110, 255}
	colorCharacter   = color.RGBA{100, 200, 100, 255}
	colorHurt        = color.RGBA{255, 255, 255, 220}
	colorWalker      = color.RGBA{140, 90, 50, 255}
	colorSmallWalker = color.RGBA{200, 150, 60, 255}
	colorBoss        = color.RGBA{120, 60, 140, 255}
	colorDead        = color.RGBA{90, 90, 90, 160}
	colorCoin        = color.RGBA{255, 215, 0, 255}
	colorBottle      = color.RGBA{80, 160, 220, 255}
	colorSplash      = color.RGBA{150, 210, 255, 200}
	colorHitRect     = color.RGBA{255, 0, 0, 100}
)

// layerColors tints the background layers from far to near
var layerColors = map[string]color.RGBA{
	"air":    {250, 220, 160, 255},
	"clouds": {255, 250, 240, 180},
	"third":  {230, 190, 130, 90},
	"second": {215, 170, 110, 110},
	"first":  {200, 150, 90, 130},
}

const (
	shakeIntensity = 8.0
	shakeDecay     = 0.85
)

// Options carries the optional collaborators of a run
type Options struct {
	Seed       int64
	RecordPath string // empty disables recording
	Replay     *replay.ReplayData
	Sound      *audio.SoundManager
	Store      *storage.Store
	Logger     *log.Logger
}

// Playing is the main gameplay scene
type Playing struct {
	config   *config.GameConfig
	levelCfg *config.LevelConfig
	opts     Options
	logger   *log.Logger

	world  *world.World
	input  *system.InputSystem
	sound  *audio.SoundManager
	store  *storage.Store
	camera Camera

	screenW int
	screenH int
	frameDT time.Duration
	paused  bool

	// Feedback
	shake float64

	recorder *replay.Recorder
	replayer *replay.Replayer
	result   *ending.Result
}

// New creates a run of a level. The seed drives enemy placement and speeds.
// With opts.Replay set the run plays back the recorded input with the
// recorded seed and frame rate, and recording is disabled.
func New(cfg *config.GameConfig, lc *config.LevelConfig, opts Options) (*Playing, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if opts.Replay != nil {
		opts.Seed = opts.Replay.Seed
		opts.RecordPath = ""
	}

	sp := system.NewSpawner(cfg, rand.New(rand.NewSource(opts.Seed)))
	lvl, err := system.LoadLevel(lc, sp)
	if err != nil {
		return nil, err
	}

	display := cfg.Physics.Display
	framerate := display.Framerate
	if framerate <= 0 {
		framerate = replay.DefaultTPS
	}

	p := &Playing{
		config:   cfg,
		levelCfg: lc,
		opts:     opts,
		logger:   logger,
		world:    world.New(cfg, lvl, sp, logger),
		input:    system.NewInputSystem(cfg.Physics),
		sound:    opts.Sound,
		store:    opts.Store,
		screenW:  display.ScreenWidth,
		screenH:  display.ScreenHeight,
		frameDT:  time.Second / time.Duration(framerate),
	}
	p.world.OnEvent = p.handleEvent
	p.world.OnOutcome = p.handleOutcome
	p.camera.Snap(p.world.Character(), p.world.Boss(), cfg.Physics.Camera)

	if opts.Replay != nil {
		p.replayer = replay.NewReplayer(*opts.Replay)
		p.frameDT = p.replayer.FrameDuration()
		logger.Info("replaying", "level", opts.Replay.Level, "frames", p.replayer.TotalFrames(), "seed", opts.Seed)
	}
	if opts.RecordPath != "" {
		p.recorder = replay.NewRecorder(opts.Seed, lc.Name, framerate)
		logger.Info("recording enabled", "path", opts.RecordPath, "seed", opts.Seed)
	}
	return p, nil
}

// Update proceeds the game state (implements scene.Scene)
func (p *Playing) Update(_ float64) (scene.Scene, error) {
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		p.toggleMute()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) && !p.world.State().Terminal() {
		p.paused = !p.paused
	}
	if p.paused {
		return nil, nil
	}

	var in system.InputState
	if p.replayer != nil {
		// Past the last frame the run continues with nothing held
		in, _ = p.replayer.GetInput()
	} else {
		in = p.input.GetInput()
	}
	if p.recorder != nil {
		p.recorder.RecordFrame(in)
	}
	return p.step(in)
}

// step advances the run by one frame with in held
func (p *Playing) step(in system.InputState) (scene.Scene, error) {
	p.world.SetInput(in)
	if _, err := p.world.Advance(p.frameDT); err != nil {
		return nil, err
	}

	p.camera.Follow(p.world.Character(), p.world.Boss(), p.config.Physics.Camera)
	p.shake *= shakeDecay

	if p.result != nil {
		return ending.New(*p.result, p.restart, p.screenW, p.screenH), nil
	}
	return nil, nil
}

// State returns the scene state: paused, or the world's state
func (p *Playing) State() state.GameState {
	if p.paused {
		return state.StatePaused
	}
	return p.world.State()
}

func (p *Playing) handleEvent(e event.Event) {
	if p.sound != nil {
		p.sound.HandleEvent(e)
	}
	if e.Kind == event.CharacterHurt {
		p.shake = shakeIntensity
	}
}

func (p *Playing) handleOutcome(won bool) {
	r := ending.Result{
		Level:    p.levelCfg.Name,
		Won:      won,
		Coins:    p.world.Character().Coins,
		Duration: p.world.DecidedAt(),
	}
	p.logger.Info("run finished", "level", r.Level, "won", won, "coins", r.Coins, "time", r.Duration)

	if p.store != nil {
		if _, err := p.store.SaveResult(storage.Result{
			Level:    r.Level,
			Won:      r.Won,
			Coins:    r.Coins,
			Duration: r.Duration,
		}); err != nil {
			p.logger.Warn("cannot save result", "err", err)
		}
		if best, ok, err := p.store.BestTime(r.Level); err != nil {
			p.logger.Warn("cannot read best time", "err", err)
		} else {
			r.Best, r.HasBest = best, ok
		}
	}

	if p.recorder != nil {
		p.recorder.Stop()
		p.saveRecording()
	}
	p.result = &r
}

func (p *Playing) restart() (scene.Scene, error) {
	opts := p.opts
	opts.Seed = time.Now().UnixNano()
	return New(p.config, p.levelCfg, opts)
}

func (p *Playing) toggleMute() {
	if p.sound == nil {
		return
	}
	muted := p.sound.ToggleMute()
	if p.store != nil {
		if err := p.store.SetMuted(muted); err != nil {
			p.logger.Warn("cannot save mute setting", "err", err)
		}
	}
}

// saveRecording saves the current recording to file
func (p *Playing) saveRecording() {
	if p.recorder == nil || p.recorder.FrameCount() == 0 {
		return
	}

	filename := p.opts.RecordPath
	if filename == "" {
		filename = replay.GenerateFilename()
	}
	if err := p.recorder.Save(filename); err != nil {
		p.logger.Warn("failed to save recording", "err", err)
		return
	}
	p.logger.Info("recording saved", "path", filename, "frames", p.recorder.FrameCount())
}

// Draw renders the game screen
func (p *Playing) Draw(screen *ebiten.Image) {
	screen.Fill(colorSky)

	camX := p.camera.X + p.shake*(2*randFloat()-1)
	now := p.world.Now()

	p.drawDecorations(screen, camX)
	ground := p.config.Entities.Projectile.GroundY + p.config.Entities.Projectile.Size.H
	ebitenutil.DrawRect(screen, 0, ground, float64(p.screenW), float64(p.screenH)-ground, colorSand)

	p.drawCollectibles(screen, camX)
	p.drawEnemies(screen, camX, now)
	p.drawProjectiles(screen, camX, now)
	p.drawCharacter(screen, camX, now)

	if ebiten.IsKeyPressed(ebiten.KeyTab) {
		p.drawHitRects(screen, camX)
	}

	p.drawHUD(screen)

	switch p.State() {
	case state.StatePaused:
		p.drawOverlay(screen, color.RGBA{0, 0, 0, 128}, "PAUSED\n\nPress ESC to resume")
	case state.StateWon:
		p.drawOverlay(screen, color.RGBA{0, 80, 0, 100}, "BOSS DEFEATED")
	case state.StateLost:
		p.drawOverlay(screen, color.RGBA{100, 0, 0, 120}, "GAME OVER")
	}
}

func (p *Playing) drawDecorations(screen *ebiten.Image, camX float64) {
	for _, d := range p.world.Decorations() {
		c, ok := layerColors[d.Layer]
		if !ok {
			continue
		}
		ebitenutil.DrawRect(screen, d.X-camX, d.Y, d.W, d.H, c)
	}
}

func (p *Playing) drawCollectibles(screen *ebiten.Image, camX float64) {
	for _, c := range p.world.Coins() {
		r := c.HitRect()
		ebitenutil.DrawRect(screen, r.MinX-camX, r.MinY, r.MaxX-r.MinX, r.MaxY-r.MinY, colorCoin)
	}
	for _, b := range p.world.Bottles() {
		r := b.HitRect()
		ebitenutil.DrawRect(screen, r.MinX-camX, r.MinY, r.MaxX-r.MinX, r.MaxY-r.MinY, colorBottle)
	}
}

func (p *Playing) drawEnemies(screen *ebiten.Image, camX float64, now time.Duration) {
	for _, e := range p.world.Enemies() {
		var c color.Color
		switch {
		case !e.IsAlive():
			c = colorDead
		case e.IsHurt(now):
			c = colorHurt
		case e.Kind == entity.EnemyBoss:
			c = colorBoss
		case e.Kind == entity.EnemySmallWalker:
			c = colorSmallWalker
		default:
			c = colorWalker
		}
		ebitenutil.DrawRect(screen, e.X-camX, e.Y, e.W, e.H, c)
	}
}

func (p *Playing) drawProjectiles(screen *ebiten.Image, camX float64, now time.Duration) {
	splash := p.config.Physics.Splash
	for _, pr := range p.world.Projectiles() {
		if !pr.Broken {
			ebitenutil.DrawRect(screen, pr.X-camX, pr.Y, pr.W, pr.H, colorBottle)
			continue
		}

		// splash grows with every frame
		grow := float64(pr.SplashFrame(now, splash.Frame())+1) * 6
		ebitenutil.DrawRect(screen, pr.X-camX-grow/2, pr.Y+pr.H-grow, pr.W+grow, grow, colorSplash)
	}
}

func (p *Playing) drawCharacter(screen *ebiten.Image, camX float64, now time.Duration) {
	c := p.world.Character()

	fill := colorCharacter
	if c.IsHurt(now) && int(now/(100*time.Millisecond))%2 == 0 {
		fill = colorHurt
	}
	ebitenutil.DrawRect(screen, c.X-camX, c.Y, c.W, c.H, fill)
	ebitenutil.DebugPrintAt(screen, c.Anim.String(), int(c.X-camX), int(c.Y)-16)
}

func (p *Playing) drawHitRects(screen *ebiten.Image, camX float64) {
	draw := func(r entity.Rect) {
		ebitenutil.DrawRect(screen, r.MinX-camX, r.MinY, r.MaxX-r.MinX, r.MaxY-r.MinY, colorHitRect)
	}
	draw(p.world.Character().HitRect())
	for _, e := range p.world.Enemies() {
		draw(e.HitRect())
	}
	for _, pr := range p.world.Projectiles() {
		draw(pr.HitRect())
	}
}

func (p *Playing) drawOverlay(screen *ebiten.Image, c color.Color, text string) {
	ebitenutil.DrawRect(screen, 0, 0, float64(p.screenW), float64(p.screenH), c)
	ebitenutil.DebugPrintAt(screen, text, p.screenW/2-50, p.screenH/2-20)
}

// OnEnter is called when entering this scene
func (p *Playing) OnEnter() {
	p.logger.Debug("level started", "level", p.levelCfg.Name, "seed", p.opts.Seed)
}

// OnExit is called when leaving this scene
func (p *Playing) OnExit() {
	if p.recorder != nil && p.recorder.IsRecording() {
		p.recorder.Stop()
		p.saveRecording()
	}
	p.world.Close()
}

// Layout returns the game's screen dimensions (used by game.Game)
func (p *Playing) Layout(outsideWidth, outsideHeight int) (int, int) {
	return p.screenW, p.screenH
}

// Seed returns the seed of the run
func (p *Playing) Seed() int64 {
	return p.opts.Seed
}

var randState uint32 = 1

// randFloat is a tiny LCG for screen shake, kept apart from the gameplay RNG
func randFloat() float64 {
	randState = randState*1103515245 + 12345
	return float64(randState&0x7fffffff) / float64(0x7fffffff)
}

