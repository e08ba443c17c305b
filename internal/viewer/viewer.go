// Package viewer wires the terrain and grass systems into the SDL2 and
// OpenGL demo application.
package viewer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/mosswood/verdant/internal/config"
	"github.com/mosswood/verdant/internal/engine/camera"
	"github.com/mosswood/verdant/internal/engine/collider"
	"github.com/mosswood/verdant/internal/engine/grass"
	"github.com/mosswood/verdant/internal/engine/scene"
	"github.com/mosswood/verdant/internal/engine/terrain"
	"github.com/mosswood/verdant/internal/engine/window"
	"github.com/mosswood/verdant/internal/logger"
)

// Camera may sink to the ground but never below it.
const cameraGroundClearance = 0.5

// Viewer owns the window, the generated world and the render loop.
type Viewer struct {
	cfg *config.Config
	win *window.Window
	cam *camera.FlyCamera

	terrainRend *scene.TerrainRenderer
	grassRend   *scene.GrassRenderer
	ground      *collider.Trimesh
	lighting    scene.Lighting
}

// New creates the window, generates the world and uploads it to the GPU.
func New(cfg *config.Config) (*Viewer, error) {
	win, err := window.New(window.Config{
		Title:      "verdant",
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, err
	}

	v := &Viewer{cfg: cfg, win: win}
	if err := v.buildWorld(); err != nil {
		v.Close()
		return nil, err
	}
	return v, nil
}

func (v *Viewer) buildWorld() error {
	terrainRend, err := scene.NewTerrainRenderer()
	if err != nil {
		return err
	}
	v.terrainRend = terrainRend

	grassRend, err := scene.NewGrassRenderer()
	if err != nil {
		return err
	}
	v.grassRend = grassRend

	tcfg := v.cfg.Terrain
	ground, err := terrain.Generate(terrain.Config{
		Width:     tcfg.Width,
		Height:    tcfg.Height,
		CellScale: tcfg.CellScale,
		TexScale:  tcfg.TexScale,
		Amplitude: tcfg.Amplitude,
		Seed:      tcfg.Seed,
	})
	if err != nil {
		return fmt.Errorf("generating terrain: %w", err)
	}
	logger.Info("terrain generated",
		zap.Int("vertices", len(ground.Positions)),
		zap.Int("triangles", ground.TriangleCount()),
		zap.Int64("seed", tcfg.Seed),
	)

	if err := v.terrainRend.Upload(ground); err != nil {
		return err
	}

	v.ground, err = collider.NewTrimesh(ground)
	if err != nil {
		return fmt.Errorf("building ground collider: %w", err)
	}

	field := grass.Field{
		Mesh:           ground,
		Density:        v.cfg.Grass.Density,
		SlopeThreshold: v.cfg.Grass.SlopeThreshold,
	}
	instances := field.Scatter(mgl32.Ident4())
	logger.Info("grass scattered",
		zap.Int("blades", len(instances)),
		zap.Float32("density", field.Density),
	)

	blade := grass.Blade(v.cfg.Grass.BladeHeight, v.cfg.Grass.BladeWidth)
	if err := v.grassRend.UploadBlade(blade); err != nil {
		return err
	}
	v.grassRend.UploadInstances(instances)

	v.lighting = scene.Lighting{
		Direction:  mgl32.Vec3{0.4, 0.8, 0.3}.Normalize(),
		Ambient:    mgl32.Vec3{0.35, 0.37, 0.4},
		Diffuse:    mgl32.Vec3{0.9, 0.87, 0.8},
		FogEnabled: true,
		FogNear:    60,
		FogFar:     220,
		FogColor:   mgl32.Vec3{0.62, 0.72, 0.85},
	}

	// Spawn above the middle of the terrain.
	bounds := v.terrainRend.Bounds
	center := bounds.Min.Add(bounds.Max).Mul(0.5)
	spawn := mgl32.Vec3{center.X(), bounds.Max.Y() + 6, center.Z()}
	v.cam = camera.NewFlyCamera(spawn)
	return nil
}

// Run drives the render loop until the window is closed.
func (v *Viewer) Run() error {
	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.CULL_FACE)

	last := sdl.GetTicks64()
	for {
		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			switch e := event.(type) {
			case *sdl.QuitEvent:
				return nil
			case *sdl.KeyboardEvent:
				if e.Keysym.Sym == sdl.K_ESCAPE && e.State == sdl.PRESSED {
					return nil
				}
			}
		}

		now := sdl.GetTicks64()
		dt := float32(now-last) / 1000
		last = now

		v.updateCamera(dt)
		v.drawFrame()
		v.win.Swap()
	}
}

func (v *Viewer) updateCamera(dt float32) {
	keys := sdl.GetKeyboardState()
	v.cam.Move(camera.MoveInput{
		Forward:   keys[sdl.SCANCODE_W] != 0,
		Back:      keys[sdl.SCANCODE_S] != 0,
		Left:      keys[sdl.SCANCODE_A] != 0,
		Right:     keys[sdl.SCANCODE_D] != 0,
		Up:        keys[sdl.SCANCODE_SPACE] != 0,
		Down:      keys[sdl.SCANCODE_LSHIFT] != 0,
		TurnLeft:  keys[sdl.SCANCODE_Q] != 0,
		TurnRight: keys[sdl.SCANCODE_E] != 0,
	}, dt)

	// Keep the camera above the ground.
	pos := v.cam.Position
	if h, ok := v.ground.HeightAt(pos.X(), pos.Z()); ok {
		if pos.Y() < h+cameraGroundClearance {
			v.cam.Position = mgl32.Vec3{pos.X(), h + cameraGroundClearance, pos.Z()}
		}
	}
}

func (v *Viewer) drawFrame() {
	w, h := v.win.DrawableSize()
	gl.Viewport(0, 0, w, h)
	fog := v.lighting.FogColor
	gl.ClearColor(fog.X(), fog.Y(), fog.Z(), 1)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	aspect := float32(w) / float32(h)
	viewProj := v.cam.ProjectionMatrix(aspect).Mul4(v.cam.ViewMatrix())

	light := v.lighting
	light.CameraPos = v.cam.Position

	v.terrainRend.Render(viewProj, mgl32.Ident4(), light)
	v.grassRend.Render(viewProj, light)
}

// Close releases GPU resources and the window.
func (v *Viewer) Close() {
	if v.grassRend != nil {
		v.grassRend.Destroy()
	}
	if v.terrainRend != nil {
		v.terrainRend.Destroy()
	}
	if v.win != nil {
		v.win.Close()
	}
}
