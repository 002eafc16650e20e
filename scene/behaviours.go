package scene

import (
	"fmt"
	"strings"

	"github.com/meghashyamc/gametools/timer"
)

// SelfDestruct destroys its object as soon as it starts.
type SelfDestruct struct {
	BaseBehaviour
}

func (SelfDestruct) Start(obj *Object) {
	obj.Destroy()
}

// DeactivateOnAwake hides its object before it ever starts.
type DeactivateOnAwake struct {
	BaseBehaviour
}

func (DeactivateOnAwake) Awake(obj *Object) {
	obj.SetActive(false)
}

// Lifetime destroys its object after Seconds of updates. Seconds <= 0
// destroys it on start.
type Lifetime struct {
	BaseBehaviour
	Seconds float64

	timer *timer.Timer
}

func NewLifetime(seconds float64) *Lifetime {
	return &Lifetime{Seconds: seconds}
}

func (l *Lifetime) Start(obj *Object) {
	if l.Seconds <= 0 {
		obj.Destroy()
		return
	}
	l.timer = timer.New(l.Seconds, timer.WithOnComplete(obj.Destroy))
}

func (l *Lifetime) Update(_ *Object, dt float64) {
	if l.timer != nil {
		l.timer.Advance(dt)
	}
}

// Remaining returns Seconds until the lifetime starts, then the time left.
func (l *Lifetime) Remaining() float64 {
	if l.timer == nil {
		return l.Seconds
	}
	return l.timer.Remaining()
}

// VersionLabel writes the build version into the object's first label.
type VersionLabel struct {
	BaseBehaviour
	Version string
	Build   string
}

func (v VersionLabel) Start(obj *Object) {
	label := obj.Label()
	if label == nil {
		label = obj.AddLabel("")
	}
	label.Text = VersionText(v.Version, v.Build)
}

func VersionText(version, build string) string {
	version = strings.TrimPrefix(strings.TrimSpace(version), "v")
	if version == "" {
		version = "0.0.0"
	}

	build = strings.TrimSpace(build)
	if build == "" {
		return fmt.Sprintf("v%s", version)
	}
	return fmt.Sprintf("v%s (%s)", version, build)
}

// OutlineSetter applies one outline to every label under its object.
type OutlineSetter struct {
	BaseBehaviour
	Outline Outline
}

func (s OutlineSetter) Start(obj *Object) {
	obj.WalkLabels(func(label *Label) {
		label.Outline = s.Outline
	})
}
