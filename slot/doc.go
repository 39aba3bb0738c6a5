// Package slot provides a fixed-capacity slot allocator for small integer handles.
//
// # Overview
//
// A Storage holds exactly N slots. Each slot is either empty or holds a handle,
// a reference to a resource owned by someone else (a texture unit, a buffer
// binding, a light's shadow source). The storage answers two questions:
//
//   - Which slot, or which run of adjacent slots, is free?
//   - Which slots are occupied, up to the highest index ever reserved?
//
// The backing array is allocated once by the constructor. Finding, reserving,
// freeing and iterating never allocate.
//
// # Empty Marker
//
// The handle type T must be comparable. A slot is empty when it holds the
// storage's empty marker, which is the zero value of T unless the storage was
// built with NewWithEmpty:
//
//	lights := slot.New[*Light](64)            // nil marks a free slot
//	units  := slot.NewWithEmpty[int32](16, -1) // -1 marks a free slot
//
// # High-Water Mark
//
// MaxIndex returns the smallest index H such that every slot at or beyond H is
// empty. It is raised by Reserve and is never lowered by Free, so Free stays
// O(1). Iteration scans [0, H) only.
//
// # Allocation Pattern
//
//	idx, ok := lights.FindFree()
//	if !ok {
//	    return ErrTooManyLights
//	}
//	lights.Reserve(idx, light)
//
//	// Point lights need six adjacent shadow sources.
//	start, ok := shadows.FindFreeRun(6)
//	if ok {
//	    shadows.ReserveEach(start, faces[:]...)
//	}
//
//	for idx, l := range lights.All() {
//	    upload(idx, l)
//	}
//
// # Contract Violations
//
// Reserving an occupied slot, reserving the empty marker, freeing an empty slot
// or passing an out-of-range index are programming errors. They panic with a
// *ContractError wrapping one of the package's sentinel errors. Running out of
// slots is not an error: FindFree, FindFreeRun, Insert and InsertRun report it
// with ok == false.
//
// # Thread Safety
//
// Storage instances are not thread-safe. Callers sharing a storage must guard
// every call, including iteration, with a single external lock.
package slot
