package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/deadzone/ecs"
	"github.com/milk9111/deadzone/ecs/component"
)

const contactStep = 1e-9

type contactProxy struct {
	body  *cp.Body
	shape *cp.Shape
}

// ContactSystem drains player health for every enemy standing within its
// contact range on the ground plane. Enemies are mirrored into a chipmunk
// space as point shapes so the lookup is a broadphase box query.
type ContactSystem struct {
	space   *cp.Space
	proxies map[ecs.Entity]*contactProxy
	owners  map[*cp.Shape]ecs.Entity
}

func NewContactSystem() *ContactSystem {
	return &ContactSystem{
		space:   cp.NewSpace(),
		proxies: make(map[ecs.Entity]*contactProxy),
		owners:  make(map[*cp.Shape]ecs.Entity),
	}
}

func (s *ContactSystem) Update(w *ecs.World) {
	if !gameRunning(w) {
		return
	}
	s.sync(w)

	player, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if !ok {
		return
	}
	pt, ok := ecs.Get(w, player, component.TransformComponent.Kind())
	if !ok {
		return
	}
	health, ok := ecs.Get(w, player, component.HealthComponent.Kind())
	if !ok {
		return
	}

	for _, e := range s.InRange(w, cp.Vector{X: pt.Position.X(), Y: pt.Position.Z()}) {
		en, ok := ecs.Get(w, e, component.EnemyComponent.Kind())
		if !ok {
			continue
		}
		health.Damage(en.ContactDamage)
	}
}

// InRange returns the enemies strictly closer than their contact range to
// point, measured on the ground plane.
func (s *ContactSystem) InRange(w *ecs.World, point cp.Vector) []ecs.Entity {
	maxRange := 0.0
	ecs.ForEach(w, component.EnemyComponent.Kind(), func(_ ecs.Entity, en *component.Enemy) {
		if en.ContactRange > maxRange {
			maxRange = en.ContactRange
		}
	})
	if maxRange <= 0 {
		return nil
	}

	var out []ecs.Entity
	s.space.BBQuery(cp.NewBBForCircle(point, maxRange), cp.SHAPE_FILTER_ALL, func(shape *cp.Shape, _ interface{}) {
		e, ok := s.owners[shape]
		if !ok {
			return
		}
		en, ok := ecs.Get(w, e, component.EnemyComponent.Kind())
		if !ok {
			return
		}
		if shape.PointQuery(point).Distance < en.ContactRange {
			out = append(out, e)
		}
	}, nil)
	return out
}

// sync mirrors live enemy positions into the space and drops proxies whose
// enemy is gone.
func (s *ContactSystem) sync(w *ecs.World) {
	seen := make(map[ecs.Entity]bool, len(s.proxies))

	ecs.ForEach2(w, component.EnemyComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, _ *component.Enemy, t *component.Transform) {
		seen[e] = true
		proxy, ok := s.proxies[e]
		if !ok {
			body := s.space.AddBody(cp.NewKinematicBody())
			shape := s.space.AddShape(cp.NewCircle(body, 0, cp.Vector{}))
			proxy = &contactProxy{body: body, shape: shape}
			s.proxies[e] = proxy
			s.owners[shape] = e
		}
		proxy.body.SetPosition(cp.Vector{X: t.Position.X(), Y: t.Position.Z()})
	})

	for e, proxy := range s.proxies {
		if seen[e] {
			continue
		}
		s.space.RemoveShape(proxy.shape)
		s.space.RemoveBody(proxy.body)
		delete(s.owners, proxy.shape)
		delete(s.proxies, e)
	}

	// Proxies carry no velocity, so a tiny step only refreshes the cached
	// bounds the broadphase queries against. A zero step is a no-op in cp.
	s.space.Step(contactStep)
}

// Tracked reports how many enemies are mirrored in the contact space.
func (s *ContactSystem) Tracked() int {
	return len(s.proxies)
}
