package sim

import (
	"reflect"
	"unsafe"
)

// Singleton provides cached access to the one value of type T held by a
// World. Systems declare Singleton fields and the Scheduler initializes them.
type Singleton[T any] struct {
	world         *World
	componentPtr  unsafe.Pointer
	componentType reflect.Type
}

// NewSingleton returns an accessor for T, creating the singleton from the
// optional initializer (or the zero value) if the world does not hold one.
func NewSingleton[T any](world *World, initializer ...T) *Singleton[T] {
	componentType := reflect.TypeFor[T]()

	entry := world.getSingletonEntry(componentType)
	if entry == nil {
		var value T
		if len(initializer) > 0 {
			value = initializer[0]
		}
		world.AddSingleton(value)
		entry = world.getSingletonEntry(componentType)
	}

	return &Singleton[T]{
		world:         world,
		componentPtr:  entry.dataPtr,
		componentType: componentType,
	}
}

// Init binds the accessor to world. Called by Scheduler.Register.
func (s *Singleton[T]) Init(world *World) {
	s.world = world
	s.componentType = reflect.TypeFor[T]()
	s.updateCache()
}

// Get returns a pointer to the singleton, or nil if it was never added.
func (s *Singleton[T]) Get() *T {
	if s.componentPtr == nil {
		s.updateCache()
	}
	if s.componentPtr == nil {
		return nil
	}
	return (*T)(s.componentPtr)
}

func (s *Singleton[T]) updateCache() {
	if s.world == nil {
		return
	}
	if entry := s.world.getSingletonEntry(s.componentType); entry != nil {
		s.componentPtr = entry.dataPtr
	} else {
		s.componentPtr = nil
	}
}

// Exists reports whether the singleton has been added to the world.
func (s *Singleton[T]) Exists() bool {
	return s.Get() != nil
}
