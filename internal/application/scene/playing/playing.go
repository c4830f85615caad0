// Package playing provides the main gameplay scene.
package playing

import (
	"errors"
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/younwookim/spark/internal/application/scene"
	"github.com/younwookim/spark/internal/application/session"
	"github.com/younwookim/spark/internal/application/state"
	"github.com/younwookim/spark/internal/application/system"
	"github.com/younwookim/spark/internal/domain/entity"
	"github.com/younwookim/spark/internal/infrastructure/config"
)

// Colors for rendering
var (
	colorBG       = color.RGBA{26, 26, 46, 255}
	colorPlayer   = color.RGBA{100, 200, 100, 255}
	colorHitbox   = color.RGBA{100, 100, 200, 128}
	colorCollect  = color.RGBA{200, 200, 100, 128}
	colorPickup   = color.RGBA{255, 215, 0, 255}
	colorWallHold = color.RGBA{120, 220, 220, 255}
)

// Option configures a Playing scene
type Option func(*Playing)

// WithRecording records every simulated tick and saves it to path on exit.
// An empty path generates a timestamped name.
func WithRecording(path string) Option {
	return func(p *Playing) {
		p.recordFilename = path
		p.recorder = NewRecorder(p.levelName, p.dt)
	}
}

// WithReload applies physics configs received on ch between ticks
func WithReload(ch <-chan *config.PhysicsConfig) Option {
	return func(p *Playing) {
		p.reload = ch
	}
}

// WithKeys replaces the keyboard as the intent source
func WithKeys(read func() system.Intent) Option {
	return func(p *Playing) {
		p.keys = read
	}
}

// Playing is the main gameplay scene. It drives a session and presents it.
type Playing struct {
	config    *config.GameConfig
	session   *session.Session
	levelName string
	state     state.GameState
	screenW   int
	screenH   int
	dt        float64

	keys   func() system.Intent
	reload <-chan *config.PhysicsConfig

	// Camera top-left in world units
	camX float64
	camY float64

	// Death fade from black; nil when not running
	fade      *gween.Tween
	fadeAlpha float32

	clearTimer float64

	// Input recording
	recorder       *Recorder
	recordFilename string
}

// New creates a new Playing scene over sess.
func New(cfg *config.GameConfig, levelName string, sess *session.Session, opts ...Option) *Playing {
	display := cfg.Physics.Display
	framerate := display.Framerate
	if framerate <= 0 {
		framerate = 60
	}

	p := &Playing{
		config:    cfg,
		session:   sess,
		levelName: levelName,
		state:     state.StatePlaying,
		screenW:   display.ScreenWidth,
		screenH:   display.ScreenHeight,
		dt:        1.0 / float64(framerate),
		keys:      system.NewInputSystem(cfg.Physics).GetInput,
	}
	for _, opt := range opts {
		opt(p)
	}

	centre := sess.Player().Transform.Centre()
	p.follow(centre.X, centre.Y)

	if p.recorder != nil {
		log.Printf("Recording enabled: %s", p.recordFilename)
	}
	return p
}

// Update proceeds the game state (implements scene.Scene)
func (p *Playing) Update(dt float64) (scene.Scene, error) {
	p.applyReloads()

	switch p.state {
	case state.StatePaused:
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			p.TogglePause()
		}
	case state.StateStageClear:
		p.clearTimer -= dt
		if p.clearTimer <= 0 {
			return nil, ebiten.Termination
		}
	default:
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			p.TogglePause()
			return nil, nil
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyF5) && p.recorder != nil {
			p.saveRecording()
		}
		p.tick(dt)
	}

	return nil, nil // nil = stay on this scene
}

// tick advances the session by one step and reacts to what happened
func (p *Playing) tick(dt float64) {
	p.updateFade(dt)

	// Record what the player actually acts on so a headless replay, which
	// has no fade, sees the same ticks.
	intent := p.keys()
	if !p.session.Player().Controllable {
		intent = system.Intent{}
	}
	if p.recorder != nil {
		p.recorder.RecordFrame(intent)
	}

	ev := p.session.Step(intent, dt)
	p.follow(ev.Report.CameraX, ev.Report.CameraY)

	switch {
	case ev.StageCleared:
		p.state = state.StateStageClear
		p.clearTimer = p.config.Physics.Feedback.StageClearDelay
		p.session.Player().Controllable = false
		log.Printf("Stage clear: %d pickups, %d deaths", p.session.Collected(), p.session.Deaths())
	case ev.Died:
		p.startFade()
	case ev.SectionCleared:
		log.Printf("Section %d/%d", p.session.Section()+1, p.session.Sections())
	}
}

// startFade blacks the screen out and fades it back in. The player is not
// controllable until the fade ends.
func (p *Playing) startFade() {
	duration := p.config.Physics.Feedback.DeathFade
	if duration <= 0 {
		return
	}
	p.fade = gween.New(1, 0, float32(duration), ease.OutCirc)
	p.fadeAlpha = 1
	p.state = state.StateDying
	p.session.Player().Controllable = false
}

func (p *Playing) updateFade(dt float64) {
	if p.fade == nil {
		return
	}
	alpha, done := p.fade.Update(float32(dt))
	p.fadeAlpha = alpha
	if !done {
		return
	}
	p.fade = nil
	p.fadeAlpha = 0
	p.session.Player().Controllable = true
	if p.state == state.StateDying {
		p.state = state.StatePlaying
	}
}

// TogglePause switches between paused and the state paused from
func (p *Playing) TogglePause() {
	switch {
	case p.state == state.StatePaused && p.fade != nil:
		p.state = state.StateDying
	case p.state == state.StatePaused:
		p.state = state.StatePlaying
	case p.state.Simulating():
		p.state = state.StatePaused
	}
}

// applyReloads drains pending physics configs, keeping the newest
func (p *Playing) applyReloads() {
	if p.reload == nil {
		return
	}
	var latest *config.PhysicsConfig
drain:
	for {
		select {
		case cfg, ok := <-p.reload:
			if !ok {
				p.reload = nil
				break drain
			}
			latest = cfg
		default:
			break drain
		}
	}
	if latest != nil {
		p.session.ApplyPhysics(latest)
		log.Printf("Physics reloaded")
	}
}

// follow centres the camera on (x, y)
func (p *Playing) follow(x, y float64) {
	p.camX = x - float64(p.screenW)/2
	p.camY = y - float64(p.screenH)/2
}

// saveRecording saves the current recording to file
func (p *Playing) saveRecording() {
	if p.recorder == nil {
		return
	}

	filename := p.recordFilename
	if filename == "" {
		filename = GenerateFilename()
	}

	if err := p.recorder.Save(filename); err != nil {
		log.Printf("Failed to save recording: %v", err)
	} else {
		log.Printf("Recording saved: %s (%d frames)", filename, p.recorder.FrameCount())
	}
}

// State returns the current scene state
func (p *Playing) State() state.GameState { return p.state }

// FadeAlpha returns the opacity of the death fade overlay
func (p *Playing) FadeAlpha() float32 { return p.fadeAlpha }

// Camera returns the top-left of the view in world units
func (p *Playing) Camera() (float64, float64) { return p.camX, p.camY }

// Session returns the driven session
func (p *Playing) Session() *session.Session { return p.session }

// Draw renders the game screen
func (p *Playing) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)

	p.drawTiles(screen)
	p.drawPickups(screen)
	p.drawPlayer(screen)
	p.drawUI(screen)

	if p.fadeAlpha > 0 {
		a := uint8(255 * min(max(p.fadeAlpha, 0), 1))
		ebitenutil.DrawRect(screen, 0, 0, float64(p.screenW), float64(p.screenH), color.RGBA{0, 0, 0, a})
	}

	switch p.state {
	case state.StatePaused:
		p.drawPauseOverlay(screen)
	case state.StateStageClear:
		p.drawStageClearOverlay(screen)
	}
}

// drawTiles draws the visible window through the level's access policy, so
// wrapping levels repeat and clamped ones extend their border.
func (p *Playing) drawTiles(screen *ebiten.Image) {
	level := p.session.Level()
	size := level.TileSize

	x0, y0 := level.GridX(p.camX), level.GridY(p.camY)
	x1 := level.GridX(p.camX + float64(p.screenW))
	y1 := level.GridY(p.camY + float64(p.screenH))

	for ty := y0; ty <= y1; ty++ {
		for tx := x0; tx <= x1; tx++ {
			id, err := level.Grid.Access(tx, ty)
			if errors.Is(err, entity.ErrOutOfBounds) {
				continue
			}
			block, ok := level.Blocks.Get(id)
			if !ok || !block.Solid {
				continue
			}
			x := level.TileLeft(tx) - p.camX
			y := level.TileTop(ty) - p.camY
			ebitenutil.DrawRect(screen, x, y, size, size, blockColor(block))
		}
	}
}

func (p *Playing) drawPickups(screen *ebiten.Image) {
	for _, body := range p.session.World().PickupBodies() {
		r := body.Bounds()
		ebitenutil.DrawRect(screen, r.X-p.camX, r.Y-p.camY, r.W, r.H, colorPickup)
	}
}

func (p *Playing) drawPlayer(screen *ebiten.Image) {
	player := p.session.Player()
	t := player.Transform

	c := colorPlayer
	if player.Frame == entity.FrameWallHold {
		c = colorWallHold
	}
	ebitenutil.DrawRect(screen, t.X-p.camX, t.Y-p.camY, t.Width, t.Height, c)

	// Hitbox debug
	if ebiten.IsKeyPressed(ebiten.KeyTab) {
		h := player.Bounds()
		ebitenutil.DrawRect(screen, h.X-p.camX, h.Y-p.camY, h.W, h.H, colorHitbox)
		cb := player.CollectBounds()
		ebitenutil.DrawRect(screen, cb.X-p.camX, cb.Y-p.camY, cb.W, cb.H, colorCollect)
	}
}

func (p *Playing) drawUI(screen *ebiten.Image) {
	s := p.session
	m := s.Player().Motion

	status := fmt.Sprintf("Section %d/%d  Pickups: %d  Deaths: %d  %s",
		s.Section()+1, s.Sections(), s.Collected(), s.Deaths(), m.Phase())
	if m.WallSliding() {
		status += " (wall)"
	}
	ebitenutil.DebugPrintAt(screen, status, 10, p.screenH-20)

	ebitenutil.DebugPrint(screen, "A/D: Move | W/Space: Jump | Tab: Hitbox | F5: Save replay | ESC: Pause")
}

func (p *Playing) drawPauseOverlay(screen *ebiten.Image) {
	overlay := color.RGBA{0, 0, 0, 128}
	ebitenutil.DrawRect(screen, 0, 0, float64(p.screenW), float64(p.screenH), overlay)

	text := "PAUSED\n\nPress ESC to resume"
	ebitenutil.DebugPrintAt(screen, text, p.screenW/2-50, p.screenH/2-20)
}

func (p *Playing) drawStageClearOverlay(screen *ebiten.Image) {
	overlay := color.RGBA{0, 60, 0, 160}
	ebitenutil.DrawRect(screen, 0, 0, float64(p.screenW), float64(p.screenH), overlay)

	text := fmt.Sprintf("STAGE CLEAR\n\nPickups: %d\nDeaths: %d", p.session.Collected(), p.session.Deaths())
	ebitenutil.DebugPrintAt(screen, text, p.screenW/2-50, p.screenH/2-30)
}

// OnEnter is called when entering this scene
func (p *Playing) OnEnter() {
	log.Printf("Playing %s (%d sections)", p.levelName, p.session.Sections())
}

// OnExit is called when leaving this scene
func (p *Playing) OnExit() {
	if p.recorder != nil && p.recorder.IsRecording() {
		p.recorder.Stop()
		p.saveRecording()
	}
}

func blockColor(b entity.Block) color.RGBA {
	if b.ColorCode == 0 {
		return color.RGBA{80, 80, 100, 255}
	}
	return color.RGBA{
		R: uint8(b.ColorCode >> 16),
		G: uint8(b.ColorCode >> 8),
		B: uint8(b.ColorCode),
		A: 255,
	}
}
