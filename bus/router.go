package bus

import (
	"fmt"
	"sort"
)

// Device is the memory-mapped device contract every Router region
// satisfies. It is structurally identical to sh2.Bus; Router does not
// import the sh2 package so that device implementations stay reusable
// without pulling in the CPU core.
type Device interface {
	Read8(addr uint32) uint8
	Read16(addr uint32) uint16
	Read32(addr uint32) uint32
	Write8(addr uint32, v uint8)
	Write16(addr uint32, v uint16)
	Write32(addr uint32, v uint32)
}

// region is one mapped span of the address space, backed by some
// Device and based at Start within the router's global address space.
type region struct {
	start  uint32
	length uint32
	dev    Device
}

// Router composes several devices into a single flat 32-bit address
// space, routing each access to the region whose span contains it, the
// way a real SH-2 system's bus arbiter fans memory accesses out across
// ROM, RAM, and peripherals.
type Router struct {
	regions []region
}

// NewRouter creates an empty router. Call Map to attach devices before
// using it as a CPU's bus.
func NewRouter() *Router {
	return &Router{}
}

// Map attaches dev at [start, start+length) in the router's address
// space. Mappings may be added in any order; Router keeps them sorted
// by start address for lookup.
func (r *Router) Map(start, length uint32, dev Device) {
	r.regions = append(r.regions, region{start: start, length: length, dev: dev})
	sort.Slice(r.regions, func(i, j int) bool { return r.regions[i].start < r.regions[j].start })
}

// find returns the region containing addr, panicking on an unmapped
// access rather than returning zero values, since a CPU reading
// unmapped memory is a guest-program bug worth surfacing immediately.
func (r *Router) find(addr uint32) (region, uint32) {
	i := sort.Search(len(r.regions), func(i int) bool {
		return r.regions[i].start+r.regions[i].length > addr
	})
	if i == len(r.regions) || r.regions[i].start > addr {
		panic(fmt.Sprintf("bus: unmapped access at %#08x", addr))
	}
	reg := r.regions[i]
	return reg, addr - reg.start
}

func (r *Router) Read8(addr uint32) uint8 {
	reg, off := r.find(addr)
	return reg.dev.Read8(off)
}

func (r *Router) Read16(addr uint32) uint16 {
	reg, off := r.find(addr)
	return reg.dev.Read16(off)
}

func (r *Router) Read32(addr uint32) uint32 {
	reg, off := r.find(addr)
	return reg.dev.Read32(off)
}

func (r *Router) Write8(addr uint32, v uint8) {
	reg, off := r.find(addr)
	reg.dev.Write8(off, v)
}

func (r *Router) Write16(addr uint32, v uint16) {
	reg, off := r.find(addr)
	reg.dev.Write16(off, v)
}

func (r *Router) Write32(addr uint32, v uint32) {
	reg, off := r.find(addr)
	reg.dev.Write32(off, v)
}
