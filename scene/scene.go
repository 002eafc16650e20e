package scene

import (
	"github.com/meghashyamc/gametools/logger"
)

// Scene owns root objects and drives their lifecycle: Awake when added,
// Start on the first update where the object is active, then Update every
// tick. Destroyed objects are removed at the end of each update.
type Scene struct {
	objects []*Object
	pending map[*Object]struct{}
	logger  logger.Logger
}

func New(log logger.Logger) *Scene {
	if log == nil {
		log = logger.Nop()
	}
	return &Scene{
		pending: make(map[*Object]struct{}),
		logger:  log,
	}
}

func (s *Scene) Add(obj *Object) *Object {
	s.objects = append(s.objects, obj)
	obj.awake()
	s.pending[obj] = struct{}{}
	s.logger.Debug("object added", "name", obj.Name, "active", obj.Active())

	return obj
}

func (s *Scene) Update(dt float64) {
	for _, obj := range s.objects {
		if _, ok := s.pending[obj]; !ok {
			continue
		}
		if !obj.start() {
			delete(s.pending, obj)
		}
	}

	for _, obj := range s.objects {
		obj.update(dt)
	}

	s.sweep()
}

func (s *Scene) sweep() {
	kept := s.objects[:0]
	for _, obj := range s.objects {
		if obj.destroyed {
			delete(s.pending, obj)
			s.logger.Debug("object destroyed", "name", obj.Name)
			continue
		}
		obj.sweepChildren()
		kept = append(kept, obj)
	}
	clear(s.objects[len(kept):])
	s.objects = kept
}

func (s *Scene) Objects() []*Object {
	objects := make([]*Object, len(s.objects))
	copy(objects, s.objects)
	return objects
}

func (s *Scene) Find(name string) *Object {
	for _, obj := range s.objects {
		if obj.Name == name {
			return obj
		}
	}
	return nil
}

func (s *Scene) Len() int {
	return len(s.objects)
}

func (s *Scene) Clear() {
	s.logger.Debug("clearing scene", "objects", len(s.objects))
	s.objects = nil
	s.pending = make(map[*Object]struct{})
}
