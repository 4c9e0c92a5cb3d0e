// Package sim is a small fixed-step runtime for turn-based simulations. A
// World holds one value per type (singletons) and a Scheduler runs Systems
// over it once per tick.
package sim

import (
	"fmt"
	"reflect"
	"sort"
	"unsafe"

	"github.com/kamstrup/intmap"
)

// iface represents the internal memory layout of an interface{}.
type iface struct {
	typ  unsafe.Pointer
	data unsafe.Pointer
}

// typeKey uses the runtime type descriptor address as a map key.
func typeKey(t reflect.Type) uint64 {
	return uint64(uintptr((*iface)(unsafe.Pointer(&t)).data))
}

type singletonEntry struct {
	typ     reflect.Type
	value   reflect.Value
	dataPtr unsafe.Pointer
}

// World stores singleton values by type.
type World struct {
	singletons *intmap.Map[uint64, *singletonEntry]
	order      []reflect.Type
}

// NewWorld creates an empty world.
func NewWorld() *World {
	return &World{
		singletons: intmap.New[uint64, *singletonEntry](16),
	}
}

// AddSingleton stores value under its dynamic type. If a singleton of that
// type exists its contents are overwritten in place, so pointers handed out
// earlier stay valid.
func (w *World) AddSingleton(value any) {
	t := reflect.TypeOf(value)
	if t == nil {
		panic("sim: nil singleton")
	}
	if t.Kind() == reflect.Ptr {
		panic(fmt.Sprintf("sim: singleton %s must be a value, not a pointer", t))
	}

	if entry := w.getSingletonEntry(t); entry != nil {
		entry.value.Set(reflect.ValueOf(value))
		return
	}

	ptr := reflect.New(t)
	ptr.Elem().Set(reflect.ValueOf(value))
	w.singletons.Put(typeKey(t), &singletonEntry{
		typ:     t,
		value:   ptr.Elem(),
		dataPtr: ptr.UnsafePointer(),
	})
	w.order = append(w.order, t)
}

func (w *World) getSingletonEntry(t reflect.Type) *singletonEntry {
	entry, ok := w.singletons.Get(typeKey(t))
	if !ok {
		return nil
	}
	return entry
}

// ReadSingleton points *target at the stored singleton of type T, where
// target is a **T. It reports false if no such singleton exists.
func (w *World) ReadSingleton(target any) bool {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Ptr || rv.Elem().Kind() != reflect.Ptr {
		panic("sim: ReadSingleton expects a pointer to a pointer")
	}

	elemType := rv.Elem().Type().Elem()
	entry := w.getSingletonEntry(elemType)
	if entry == nil {
		return false
	}
	rv.Elem().Set(reflect.NewAt(elemType, entry.dataPtr))
	return true
}

// SingletonTypes lists the stored singleton type names, sorted.
func (w *World) SingletonTypes() []string {
	names := make([]string, 0, len(w.order))
	for _, t := range w.order {
		names = append(names, t.String())
	}
	sort.Strings(names)
	return names
}

// SingletonCount returns the number of stored singletons.
func (w *World) SingletonCount() int {
	return w.singletons.Len()
}
