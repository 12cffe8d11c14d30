// File: target.go
// Title: Demo Debug Target
// Description: Implements a small memory-mapped 16-bit machine the shipped
//              command set operates on: 64 KiB of memory, a handful of
//              registers, breakpoints, and a toy step model. The console
//              engine never sees this type; it is opaque state owned by the
//              command handlers.
// Author: msto63
// Version: v0.1.0
// Created: 2026-03-14
// Modified: 2026-03-14

package target

import (
	"fmt"
	"sort"
	"strings"
)

// MemorySize is the size of the machine's address space
const MemorySize = 0x10000

// Register is a named machine register snapshot
type Register struct {
	Name  string
	Value uint32
	Bits  int
}

// Machine is the debugged target
type Machine struct {
	mem [MemorySize]byte

	pc uint16
	sp uint16
	a  uint8
	x  uint8
	y  uint8

	breakpoints map[uint32]struct{}
	trace       bool
	clockScale  float32
}

// New creates a reset machine
func New() *Machine {
	m := &Machine{
		breakpoints: make(map[uint32]struct{}),
		clockScale:  1.0,
	}
	m.Reset()
	return m
}

// Reset restores the power-on state; memory and breakpoints are preserved
func (m *Machine) Reset() {
	m.pc = 0x0200
	m.sp = 0x01ff
	m.a, m.x, m.y = 0, 0, 0
}

// Peek reads one byte; addresses wrap at the 64 KiB boundary
func (m *Machine) Peek(addr uint32) byte {
	return m.mem[addr%MemorySize]
}

// Poke writes one byte; addresses wrap at the 64 KiB boundary
func (m *Machine) Poke(addr uint32, v byte) {
	m.mem[addr%MemorySize] = v
}

// Fill writes the same byte to count consecutive addresses
func (m *Machine) Fill(addr uint32, count uint16, v byte) {
	for i := uint32(0); i < uint32(count); i++ {
		m.Poke(addr+i, v)
	}
}

// Step advances the program counter n times, stopping early at a
// breakpoint. It returns the new PC and whether a breakpoint was hit.
func (m *Machine) Step(n uint16) (uint16, bool) {
	for i := uint16(0); i < n; i++ {
		m.pc++
		if _, hit := m.breakpoints[uint32(m.pc)]; hit {
			return m.pc, true
		}
	}
	return m.pc, false
}

// PC returns the current program counter
func (m *Machine) PC() uint16 {
	return m.pc
}

// Registers returns a snapshot of all registers in display order
func (m *Machine) Registers() []Register {
	return []Register{
		{Name: "pc", Value: uint32(m.pc), Bits: 16},
		{Name: "sp", Value: uint32(m.sp), Bits: 16},
		{Name: "a", Value: uint32(m.a), Bits: 8},
		{Name: "x", Value: uint32(m.x), Bits: 8},
		{Name: "y", Value: uint32(m.y), Bits: 8},
	}
}

// SetRegister sets a register by name, case-insensitively. Values wider
// than the register fail.
func (m *Machine) SetRegister(name string, value uint32) error {
	switch strings.ToLower(name) {
	case "pc", "sp":
		if value > 0xffff {
			return fmt.Errorf("value %#x does not fit register %s", value, name)
		}
		if strings.EqualFold(name, "pc") {
			m.pc = uint16(value)
		} else {
			m.sp = uint16(value)
		}
		return nil
	case "a", "x", "y":
		if value > 0xff {
			return fmt.Errorf("value %#x does not fit register %s", value, name)
		}
		switch strings.ToLower(name) {
		case "a":
			m.a = uint8(value)
		case "x":
			m.x = uint8(value)
		case "y":
			m.y = uint8(value)
		}
		return nil
	default:
		return fmt.Errorf("unknown register %q", name)
	}
}

// AddBreak sets a breakpoint
func (m *Machine) AddBreak(addr uint32) {
	m.breakpoints[addr%MemorySize] = struct{}{}
}

// ClearBreak removes a breakpoint and reports whether it existed
func (m *Machine) ClearBreak(addr uint32) bool {
	addr %= MemorySize
	if _, ok := m.breakpoints[addr]; !ok {
		return false
	}
	delete(m.breakpoints, addr)
	return true
}

// Breaks returns all breakpoint addresses in ascending order
func (m *Machine) Breaks() []uint32 {
	addrs := make([]uint32, 0, len(m.breakpoints))
	for addr := range m.breakpoints {
		addrs = append(addrs, addr)
	}
	sort.Slice(addrs, func(i, j int) bool { return addrs[i] < addrs[j] })
	return addrs
}

// SetTrace toggles instruction tracing
func (m *Machine) SetTrace(on bool) {
	m.trace = on
}

// Trace reports whether instruction tracing is on
func (m *Machine) Trace() bool {
	return m.trace
}

// SetClockScale sets the emulated clock multiplier; it must be positive
func (m *Machine) SetClockScale(scale float32) error {
	if scale <= 0 {
		return fmt.Errorf("clock scale must be positive, got %g", scale)
	}
	m.clockScale = scale
	return nil
}

// ClockScale returns the emulated clock multiplier
func (m *Machine) ClockScale() float32 {
	return m.clockScale
}
