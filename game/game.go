package game

import (
	"fmt"
	"image/color"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/meghashyamc/gametools/assets"
	"github.com/meghashyamc/gametools/config"
	"github.com/meghashyamc/gametools/geometry"
	"github.com/meghashyamc/gametools/logger"
	"github.com/meghashyamc/gametools/pair"
	"github.com/meghashyamc/gametools/scene"
	"github.com/meghashyamc/gametools/timer"
)

const (
	maxMarkers      = 24
	markerRadius    = 14.0
	clickLifetime   = 0.75 // seconds a click marker stays on screen
	containerMargin = 12.0
)

type GameState int

const (
	GameStatePlaying GameState = iota
	GameStatePaused
	GameStateRoundOver
)

type Game struct {
	cfg         *config.Config
	scene       *scene.Scene
	spawner     *scene.Spawner
	roundTimer  *timer.Timer
	container   *RectContainer
	debugBanner *scene.Object
	lifetimes   pair.MinMax
	rng         *rand.Rand
	state       GameState
	showGizmos  bool
	logger      logger.Logger
	userMessage string
}

func NewGame(cfg *config.Config) (*Game, error) {
	width, height := cfg.GetWindowWidth(), cfg.GetWindowHeight()
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid window size %dx%d", width, height)
	}

	log := logger.New(cfg.GetLogLevel())
	g := &Game{
		cfg:        cfg,
		scene:      scene.New(log),
		container:  NewRectContainer(geometry.NewRect(40, 120, float64(width)-80, float64(height)-200), 6, 3, containerMargin),
		rng:        rand.New(rand.NewSource(time.Now().UnixNano())),
		state:      GameStatePlaying,
		showGizmos: cfg.GetGizmosEnabled(),
		logger:     log,
	}
	lifetime := cfg.GetLifetimeSeconds()
	g.lifetimes = pair.NewMinMax(lifetime*0.75, lifetime*1.25, clickLifetime, 60)
	g.spawner = scene.NewSpawner(g.scene, cfg.GetSpawnIntervalSeconds(), g.newMarker)
	g.roundTimer = timer.New(cfg.GetCountdownSeconds(), timer.WithOnComplete(g.endRound))
	g.addHUD()

	g.logger.Info("game initialized",
		"spawn_interval_seconds", cfg.GetSpawnIntervalSeconds(),
		"lifetime_seconds", cfg.GetLifetimeSeconds(),
		"countdown_seconds", cfg.GetCountdownSeconds())
	return g, nil
}

func (g *Game) Run() error {
	g.logger.Info("starting game")
	g.setupWindow()

	// Running the game calls Update() on every 'tick'
	return ebiten.RunGame(g)
}

func (g *Game) setupWindow() {
	ebiten.SetWindowSize(g.cfg.GetWindowWidth(), g.cfg.GetWindowHeight())
	ebiten.SetWindowTitle(g.cfg.GetWindowTitle())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
}

func (g *Game) addHUD() {
	title := scene.NewObject("title", scene.OutlineSetter{
		Outline: scene.NewOutline(2, scene.DefaultOutlineColor),
	})
	title.Position = geometry.Vector{X: 20, Y: 20}
	title.AddLabel(g.cfg.GetWindowTitle())
	help := title.AddChild(scene.NewObject("help"))
	help.Position = title.Position
	help.AddLabel("Space pause   R reset   G gizmos   click to spawn").Offset = geometry.Vector{X: 0, Y: 36}
	g.scene.Add(title)

	version := scene.NewObject("version", scene.VersionLabel{
		Version: g.cfg.GetAppVersion(),
		Build:   g.cfg.GetAppBuild(),
	})
	version.Position = geometry.Vector{X: float64(g.cfg.GetWindowWidth()) - 200, Y: float64(g.cfg.GetWindowHeight()) - 40}
	g.scene.Add(version)

	g.debugBanner = scene.NewObject("debug-banner", scene.DeactivateOnAwake{})
	g.debugBanner.Position = geometry.Vector{X: 20, Y: float64(g.cfg.GetWindowHeight()) - 40}
	g.debugBanner.AddLabel("GIZMOS").Color = gizmoBoundsColor
	g.scene.Add(g.debugBanner)
	g.debugBanner.SetActive(g.showGizmos)
}

// newMarker builds the next spawned object. Once the container is full the
// marker destroys itself on start instead of living out its lifetime.
func (g *Game) newMarker(n int) *scene.Object {
	obj := scene.NewObject(fmt.Sprintf("marker-%d", n))
	obj.Position = g.container.PointInCell(g.rng, n-1)
	obj.AddLabel(fmt.Sprintf("#%d", n)).Offset = geometry.Vector{X: markerRadius + 4, Y: -markerRadius}

	if g.markerCount() >= maxMarkers {
		g.logger.Debug("container full, marker self-destructs", "name", obj.Name)
		obj.AddBehaviour(scene.SelfDestruct{})
		return obj
	}

	obj.AddBehaviour(scene.NewLifetime(g.lifetimes.Lerp(g.rng.Float64())))
	return obj
}

func (g *Game) markerCount() int {
	count := 0
	for _, obj := range g.scene.Objects() {
		if _, ok := scene.FindBehaviour[*scene.Lifetime](obj); ok {
			count++
		}
	}
	return count
}

func (g *Game) Update() error {
	g.handleGlobalKeys()

	switch g.state {
	case GameStatePlaying:
		return g.updatePlaying()
	case GameStatePaused:
		return nil
	case GameStateRoundOver:
		return g.updateRoundOver()
	}
	return nil
}

func (g *Game) handleGlobalKeys() {
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		g.showGizmos = !g.showGizmos
		g.debugBanner.SetActive(g.showGizmos)
		g.logger.Debug("gizmos toggled", "enabled", g.showGizmos)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset()
		return
	}

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		switch g.state {
		case GameStatePlaying:
			g.state = GameStatePaused
		case GameStatePaused:
			g.state = GameStatePlaying
		}
		g.logger.Debug("pause toggled", "state", g.state)
	}
}

func (g *Game) updatePlaying() error {
	dt := timer.FrameDelta

	if g.spawner.Update(dt) {
		g.logger.Debug("marker spawned", "count", g.spawner.Count(), "objects", g.scene.Len())
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.spawnAtCursor()
	}

	g.scene.Update(dt)
	g.roundTimer.Advance(dt)

	return nil
}

func (g *Game) updateRoundOver() error {
	// Let the remaining markers run out
	g.scene.Update(timer.FrameDelta)
	return nil
}

func (g *Game) spawnAtCursor() {
	pos := getCurrentMousePosition()
	if !g.container.Bounds.Contains(pos) {
		return
	}

	obj := scene.NewObject("click", scene.NewLifetime(clickLifetime))
	obj.Position = pos
	g.scene.Add(obj)
}

func (g *Game) endRound() {
	g.spawner.Stop()
	g.userMessage = "TIME!"
	g.state = GameStateRoundOver
	g.logger.Debug("round ended", "spawned", g.spawner.Count(), "objects", g.scene.Len())
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{16, 16, 24, 255})

	if g.showGizmos {
		g.container.DrawGizmo(screen)
	}

	for _, obj := range g.drawOrder() {
		g.drawObject(screen, obj)
	}

	g.drawHUD(screen)
}

// drawOrder sorts objects top to bottom, then left to right, so lower
// markers overlap the ones above them.
func (g *Game) drawOrder() []*scene.Object {
	objects := g.scene.Objects()
	byPosition := make(map[pair.Pair[float64, float64]][]*scene.Object, len(objects))
	keys := make([]pair.Pair[float64, float64], 0, len(objects))
	for _, obj := range objects {
		key := pair.Of(obj.Position.Y, obj.Position.X)
		if _, ok := byPosition[key]; !ok {
			keys = append(keys, key)
		}
		byPosition[key] = append(byPosition[key], obj)
	}

	pair.FloatComparer{}.Sort(keys)

	ordered := make([]*scene.Object, 0, len(objects))
	for _, key := range keys {
		ordered = append(ordered, byPosition[key]...)
	}
	return ordered
}

func (g *Game) drawObject(screen *ebiten.Image, obj *scene.Object) {
	if !obj.Active() {
		return
	}

	alpha := float32(1)
	if lifetime, ok := scene.FindBehaviour[*scene.Lifetime](obj); ok && lifetime.Seconds > 0 {
		alpha = float32(clampValue(lifetime.Remaining()/lifetime.Seconds, 0.1, 1))
		c := color.RGBA{255, 200, 60, 255}
		if obj.Name == "click" {
			c = color.RGBA{90, 200, 255, 255}
		}
		vector.DrawFilledCircle(screen, float32(obj.Position.X), float32(obj.Position.Y), markerRadius*alpha, c, true)
	}

	face := assets.SmallFont
	if obj.Name == "title" {
		face = assets.LabelFont
	}
	for _, label := range obj.Labels {
		drawLabel(screen, label, obj.Position, face, alpha)
	}
	for _, child := range obj.Children {
		g.drawObject(screen, child)
	}
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	x := float64(g.cfg.GetWindowWidth()) - 260
	drawText(screen, fmt.Sprintf("Time: %.1f", g.roundTimer.Remaining()), assets.LabelFont, geometry.Vector{X: x, Y: 20}, color.White, 1)
	drawText(screen, fmt.Sprintf("Spawned: %d  On screen: %d", g.spawner.Count(), g.markerCount()), assets.SmallFont, geometry.Vector{X: x, Y: 56}, color.White, 1)

	switch g.state {
	case GameStatePaused:
		g.drawBanner(screen, "PAUSED", "Press Space to resume")
	case GameStateRoundOver:
		g.drawBanner(screen, g.userMessage, "Press R to restart")
	}
}

func (g *Game) drawBanner(screen *ebiten.Image, message, hint string) {
	center := g.container.Bounds.Center()
	banner := &scene.Label{
		Text:    message,
		Color:   color.RGBA{255, 50, 50, 255},
		Outline: scene.NewOutline(3, scene.DefaultOutlineColor),
	}
	drawLabel(screen, banner, center.Add(geometry.Vector{X: -80, Y: -60}), assets.TitleFont, 1)
	drawText(screen, hint, assets.LabelFont, center.Add(geometry.Vector{X: -110, Y: 10}), color.White, 1)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return g.cfg.GetWindowWidth(), g.cfg.GetWindowHeight()
}

func (g *Game) Reset() {
	g.logger.Debug("resetting game")
	g.scene.Clear()
	g.addHUD()
	g.spawner.Reset()
	g.roundTimer.SetTime(g.cfg.GetCountdownSeconds())
	g.userMessage = ""
	g.state = GameStatePlaying
	g.logger.Debug("game reset complete", "state", g.state)
}
