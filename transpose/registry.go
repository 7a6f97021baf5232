package transpose

import (
	"github.com/gomlx/exceptions"
	"github.com/gomlx/transpose/pkg/core/dtypes"
)

// Registration priorities: a registration only replaces a previous one with lower or equal priority.
const (
	priorityGeneric = 0
	priorityTyped   = 1
)

// dtypeMap maps dtypes to a function (of any type) handling it, usually an instantiation of a generic function.
type dtypeMap struct {
	name    string
	entries [dtypes.MaxDTypes]dtypeMapEntry
}

type dtypeMapEntry struct {
	set      bool
	priority int
	fn       any
}

// newDTypeMap creates a new dtypeMap for a class of functions.
func newDTypeMap(name string) *dtypeMap {
	return &dtypeMap{name: name}
}

// Register fn to handle dtype, unless a function with higher priority is already registered.
func (d *dtypeMap) Register(dtype dtypes.DType, priority int, fn any) {
	if dtype < 0 || dtype >= dtypes.MaxDTypes {
		exceptions.Panicf("dtype %s not supported by %s", dtype, d.name)
	}
	entry := &d.entries[dtype]
	if entry.set && entry.priority > priority {
		return
	}
	*entry = dtypeMapEntry{set: true, priority: priority, fn: fn}
}

// Get returns the function registered for dtype. It panics if there is none.
func (d *dtypeMap) Get(dtype dtypes.DType) any {
	if !d.Has(dtype) {
		exceptions.Panicf("dtype %s not supported by %s", dtype, d.name)
	}
	return d.entries[dtype].fn
}

// Has returns whether a function is registered for dtype.
func (d *dtypeMap) Has(dtype dtypes.DType) bool {
	return dtype >= 0 && dtype < dtypes.MaxDTypes && d.entries[dtype].set
}

// engineFactory builds the engine of one slot, for buffers of the element type it was registered for.
// It plans (and possibly tunes) the execution for the given geometry.
type engineFactory func(in, out any, g *geometry, tuning Tuning) (engine, error)

type registeredEngine struct {
	priority int
	factory  engineFactory
}

// engineFactories is the table of engines keyed by (dtype, order, mode), filled by gen_register.go.
var engineFactories [dtypes.MaxDTypes][MaxOrder + 1][numModes]registeredEngine

// registerEngine registers the factory for the slot (dtype, order, mode), unless one with higher
// priority is already registered.
func registerEngine(dtype dtypes.DType, order int, mode Mode, priority int, factory engineFactory) {
	if dtype < 0 || dtype >= dtypes.MaxDTypes || !IsSupportedOrder(order) || mode < 0 || mode >= numModes {
		exceptions.Panicf("registerEngine(%s, order=%d, mode=%s): invalid slot", dtype, order, mode)
	}
	entry := &engineFactories[dtype][order][mode]
	if entry.factory != nil && entry.priority > priority {
		return
	}
	*entry = registeredEngine{priority: priority, factory: factory}
}

// lookupEngine returns the factory for the slot, or nil if there is none.
func lookupEngine(dtype dtypes.DType, order int, mode Mode) engineFactory {
	if dtype < 0 || dtype >= dtypes.MaxDTypes || !IsSupportedOrder(order) || mode < 0 || mode >= numModes {
		return nil
	}
	return engineFactories[dtype][order][mode].factory
}

// SupportedDTypes returns the element types with registered engines.
func SupportedDTypes() []dtypes.DType {
	var supported []dtypes.DType
	for _, dtype := range dtypes.Catalog() {
		if lookupEngine(dtype, MinOrder, ModeOverwrite) != nil {
			supported = append(supported, dtype)
		}
	}
	return supported
}
