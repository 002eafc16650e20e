package scene

import (
	"github.com/meghashyamc/gametools/timer"
)

// Spawner adds a new object to the scene every interval. The factory receives
// the running spawn count, starting at 1.
type Spawner struct {
	scene    *Scene
	interval float64
	factory  func(n int) *Object
	timer    *timer.Timer
	count    int
}

func NewSpawner(s *Scene, interval float64, factory func(n int) *Object) *Spawner {
	sp := &Spawner{
		scene:    s,
		interval: interval,
		factory:  factory,
	}
	sp.timer = timer.New(interval, timer.WithOnComplete(sp.spawn))

	return sp
}

func (sp *Spawner) spawn() {
	sp.count++
	if obj := sp.factory(sp.count); obj != nil {
		sp.scene.Add(obj)
	}
	sp.timer.SetTime(sp.interval)
}

// Update reports whether an object was spawned this tick.
func (sp *Spawner) Update(dt float64) bool {
	return sp.timer.Advance(dt)
}

func (sp *Spawner) Count() int {
	return sp.count
}

// NextIn returns the seconds until the next spawn.
func (sp *Spawner) NextIn() float64 {
	return sp.timer.Remaining()
}

func (sp *Spawner) Stop() {
	sp.timer.Stop()
}

func (sp *Spawner) Reset() {
	sp.count = 0
	sp.timer.SetTime(sp.interval)
}
