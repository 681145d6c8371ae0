package integrator

import "sync/atomic"

// RayCounter counts rays cast by an integrator. It is safe for concurrent
// use; a nil counter ignores every update.
type RayCounter struct {
	primary   atomic.Int64
	shadow    atomic.Int64
	reflected atomic.Int64
	refracted atomic.Int64
}

// RayStats is a snapshot of a RayCounter
type RayStats struct {
	Primary   int64 // Camera rays
	Shadow    int64 // Occlusion tests toward lights
	Reflected int64 // Mirror bounces
	Refracted int64 // Transmitted bounces
}

// Total returns the number of rays of every kind
func (s RayStats) Total() int64 {
	return s.Primary + s.Shadow + s.Reflected + s.Refracted
}

// Snapshot returns the current counts
func (c *RayCounter) Snapshot() RayStats {
	if c == nil {
		return RayStats{}
	}
	return RayStats{
		Primary:   c.primary.Load(),
		Shadow:    c.shadow.Load(),
		Reflected: c.reflected.Load(),
		Refracted: c.refracted.Load(),
	}
}

func (c *RayCounter) addPrimary() {
	if c != nil {
		c.primary.Add(1)
	}
}

func (c *RayCounter) addShadow() {
	if c != nil {
		c.shadow.Add(1)
	}
}

func (c *RayCounter) addReflected() {
	if c != nil {
		c.reflected.Add(1)
	}
}

func (c *RayCounter) addRefracted() {
	if c != nil {
		c.refracted.Add(1)
	}
}
