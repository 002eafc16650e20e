package scene

import (
	"github.com/meghashyamc/gametools/geometry"
)

// Behaviour is attached to an Object and receives its lifecycle hooks.
// Embed BaseBehaviour to implement only the hooks you need.
type Behaviour interface {
	Awake(obj *Object)
	Start(obj *Object)
	Update(obj *Object, dt float64)
}

type BaseBehaviour struct{}

func (BaseBehaviour) Awake(*Object) {}

func (BaseBehaviour) Start(*Object) {}

func (BaseBehaviour) Update(*Object, float64) {}

type Object struct {
	Name     string
	Position geometry.Vector
	Labels   []*Label
	Children []*Object

	active     bool
	awoken     bool
	started    bool
	destroyed  bool
	behaviours []Behaviour
}

func NewObject(name string, behaviours ...Behaviour) *Object {
	return &Object{
		Name:       name,
		active:     true,
		behaviours: behaviours,
	}
}

func (o *Object) AddBehaviour(b Behaviour) {
	o.behaviours = append(o.behaviours, b)
}

func (o *Object) AddChild(child *Object) *Object {
	o.Children = append(o.Children, child)
	return child
}

func (o *Object) AddLabel(text string) *Label {
	label := &Label{Text: text, Color: DefaultLabelColor}
	o.Labels = append(o.Labels, label)
	return label
}

// Label returns the first label, or nil.
func (o *Object) Label() *Label {
	if len(o.Labels) == 0 {
		return nil
	}
	return o.Labels[0]
}

// WalkLabels visits the labels of the object and all of its descendants.
func (o *Object) WalkLabels(fn func(*Label)) {
	for _, label := range o.Labels {
		fn(label)
	}
	for _, child := range o.Children {
		child.WalkLabels(fn)
	}
}

func (o *Object) Active() bool {
	return o.active && !o.destroyed
}

func (o *Object) SetActive(active bool) {
	o.active = active
}

// Destroy marks the object for removal at the end of the current scene update.
func (o *Object) Destroy() {
	o.destroyed = true
}

func (o *Object) Destroyed() bool {
	return o.destroyed
}

func (o *Object) Started() bool {
	return o.started
}

func (o *Object) awake() {
	if o.awoken {
		return
	}
	o.awoken = true
	for _, b := range o.behaviours {
		b.Awake(o)
	}
	for _, child := range o.Children {
		child.awake()
	}
}

// start runs Start once the object is active and reports whether it (or a
// descendant) is still waiting for activation.
func (o *Object) start() bool {
	if o.destroyed {
		return false
	}
	if !o.active {
		return true
	}

	if !o.started {
		o.started = true
		for _, b := range o.behaviours {
			b.Start(o)
			if o.destroyed {
				return false
			}
		}
	}

	waiting := false
	for _, child := range o.Children {
		if child.start() {
			waiting = true
		}
	}

	return waiting
}

func (o *Object) update(dt float64) {
	if !o.Active() || !o.started {
		return
	}
	for _, b := range o.behaviours {
		b.Update(o, dt)
	}
	for _, child := range o.Children {
		child.update(dt)
	}
}

func (o *Object) sweepChildren() {
	kept := o.Children[:0]
	for _, child := range o.Children {
		if child.destroyed {
			continue
		}
		child.sweepChildren()
		kept = append(kept, child)
	}
	clear(o.Children[len(kept):])
	o.Children = kept
}

// FindBehaviour returns the first behaviour of type T attached to obj.
func FindBehaviour[T Behaviour](obj *Object) (T, bool) {
	for _, b := range obj.behaviours {
		if found, ok := b.(T); ok {
			return found, true
		}
	}
	var zero T
	return zero, false
}
