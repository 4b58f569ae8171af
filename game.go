package main

import (
	"fmt"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/milk9111/deadzone/config"
	"github.com/milk9111/deadzone/ecs"
	"github.com/milk9111/deadzone/ecs/component"
	"github.com/milk9111/deadzone/ecs/entity"
	"github.com/milk9111/deadzone/ecs/system"
	"github.com/milk9111/deadzone/prefabs"
	"go.uber.org/zap"
)

type Game struct {
	log   *zap.Logger
	debug bool
	seed  uint64

	resets   uint64
	tuning   *prefabs.Tuning
	pipeline *system.Pipeline
	renderer *system.RenderSystem
	hud      *HUDUI
	input    *ebitenInput
	watcher  *prefabs.Watcher
	captured bool
}

func NewGame(cfg *config.Config, seed uint64, log *zap.Logger) (*Game, error) {
	prefabs.Dir = cfg.Game.PrefabDir

	tuning, err := prefabs.LoadTuning()
	if err != nil {
		return nil, err
	}

	g := &Game{
		log:      log,
		debug:    cfg.Game.Debug,
		seed:     seed,
		tuning:   tuning,
		renderer: system.NewRenderSystem(tuning),
		hud:      NewHUDUI(),
		input:    newEbitenInput(),
	}
	if err := g.rebuild(); err != nil {
		return nil, err
	}

	if cfg.Game.WatchPrefabs {
		w, err := prefabs.NewWatcher(prefabs.Dir, filepath.Join(prefabs.Dir, "scripts"))
		if err != nil {
			log.Warn("prefab watcher disabled", zap.String("dir", prefabs.Dir), zap.Error(err))
		} else {
			g.watcher = w
			log.Info("watching prefabs", zap.String("dir", prefabs.Dir))
		}
	}

	return g, nil
}

// rebuild replaces the world with a fresh one from the current tuning.
func (g *Game) rebuild() error {
	p, err := system.NewPipeline(system.Options{
		Tuning: g.tuning,
		Source: g.input,
		Seed:   g.seed + g.resets,
		Logger: g.log,
	})
	if err != nil {
		return fmt.Errorf("build world: %w", err)
	}
	seedHeld(p.World, heldKeys(ebiten.IsKeyPressed))
	g.pipeline = p
	return nil
}

func (g *Game) World() *ecs.World {
	return g.pipeline.World
}

func (g *Game) Update() error {
	g.drainReloads()

	w := g.World()
	w.Update()
	g.logEvents(w.Events().Drain())
	g.syncCursor(w)

	if system.ResetRequested(w) {
		g.resets++
		if err := g.rebuild(); err != nil {
			return err
		}
		g.log.Info("world rebuilt", zap.Uint64("resets", g.resets))
		w = g.World()
	}

	if _, hud, ok := ecs.Singleton(w, component.HUDComponent.Kind()); ok {
		g.hud.Update(hud)
	}
	return nil
}

func (g *Game) syncCursor(w *ecs.World) {
	_, gs, ok := ecs.Singleton(w, component.GameStateComponent.Kind())
	if !ok || gs.PointerCaptured == g.captured {
		return
	}
	g.captured = gs.PointerCaptured
	if g.captured {
		ebiten.SetCursorMode(ebiten.CursorModeCaptured)
	} else {
		ebiten.SetCursorMode(ebiten.CursorModeVisible)
	}
}

func (g *Game) logEvents(events []ecs.Event) {
	for _, evt := range events {
		switch evt.Kind {
		case ecs.EventEnemyHit:
			if hit, ok := evt.Data.(system.HitInfo); ok {
				g.log.Debug("enemy hit",
					zap.Stringer("enemy", evt.Entity),
					zap.Stringer("region", hit.Region),
					zap.Float64("damage", hit.Damage),
					zap.Float64("remaining", hit.Remaining))
			}
		case ecs.EventEnemySpawn:
			g.log.Debug("enemy spawned", zap.Stringer("enemy", evt.Entity))
		}
	}
}

// drainReloads applies prefab edits reported by the watcher. A bad edit is
// logged and the previous tuning stays in effect.
func (g *Game) drainReloads() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			g.reload(name)
		case err, ok := <-g.watcher.Errors:
			if ok {
				g.log.Warn("prefab watcher", zap.Error(err))
			}
		default:
			return
		}
	}
}

func (g *Game) reload(name string) {
	switch {
	case prefabs.IsTuningFile(name):
		tuning, err := prefabs.LoadTuning()
		if err != nil {
			g.log.Warn("reload tuning", zap.String("file", name), zap.Error(err))
			return
		}
		g.tuning = tuning
		entity.ApplyTuning(g.World(), tuning)
		g.renderer.SetTuning(tuning)
		if name == prefabs.ArenaFile {
			g.reloadSpawnScript()
		}
		g.log.Info("tuning reloaded", zap.String("file", name))
	case prefabs.IsScriptFile(name):
		g.reloadSpawnScript()
	}
}

func (g *Game) reloadSpawnScript() {
	name := g.tuning.Arena.SpawnScript
	if name == "" {
		g.pipeline.Spawner.SetScript(nil)
		return
	}
	script, err := system.LoadSpawnScript(name)
	if err != nil {
		g.log.Warn("reload spawn script", zap.String("script", name), zap.Error(err))
		return
	}
	g.pipeline.Spawner.SetScript(script)
	g.log.Info("spawn script reloaded", zap.String("script", name))
}

func (g *Game) Draw(screen *ebiten.Image) {
	w := g.World()
	g.renderer.Draw(w, screen)

	if _, hud, ok := ecs.Singleton(w, component.HUDComponent.Kind()); ok {
		g.hud.Draw(screen, hud)
	}

	if g.debug {
		g.drawDebug(screen, w)
	}
}

func (g *Game) drawDebug(screen *ebiten.Image, w *ecs.World) {
	_, gs, ok := ecs.Singleton(w, component.GameStateComponent.Kind())
	if !ok {
		return
	}
	msg := fmt.Sprintf("TPS: %.1f  FPS: %.1f\nphase: %s  tick: %d\nenemies: %d  contact proxies: %d",
		ebiten.ActualTPS(), ebiten.ActualFPS(), gs.Phase, gs.Ticks,
		system.EnemyCount(w), g.pipeline.Contact.Tracked())
	if pos, dir, ok := system.CameraPose(w); ok {
		msg += fmt.Sprintf("\npos: %.2f %.2f %.2f  dir: %.2f %.2f %.2f", pos.X(), pos.Y(), pos.Z(), dir.X(), dir.Y(), dir.Z())
	}
	ebitenutil.DebugPrintAt(screen, msg, 10, 40)
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	g.renderer.SetViewport(int(outsideWidth), int(outsideHeight))
	return outsideWidth, outsideHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.renderer.SetViewport(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}
