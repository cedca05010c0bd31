package cpu

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Concrete end-to-end scenarios: PC starts at 0x8000, SP at 0xFF, all other
// registers 0, flags clear unless stated.

func TestScenarioLDAImmediateSetsFlags(t *testing.T) {
	c, bus := newTestCPU()
	bus.setBytes(c.PC, 0xa9, 0x45)

	c.Step()

	require.Equal(t, byte(0x45), c.A)
	require.False(t, c.Z)
	require.False(t, c.N)
	require.Equal(t, uint16(0x8002), c.PC)
}

func TestScenarioLDAImmediateZero(t *testing.T) {
	c, bus := newTestCPU()
	bus.setBytes(c.PC, 0xa9, 0x00)

	c.Step()

	require.Equal(t, byte(0x00), c.A)
	require.True(t, c.Z)
	require.False(t, c.N)
	require.Equal(t, uint16(0x8002), c.PC)
}

func TestScenarioADCWithCarry(t *testing.T) {
	c, bus := newTestCPU()
	bus.setBytes(c.PC, 0x69, 0x22)
	c.A = 0x35
	c.C = false

	c.Step()

	require.Equal(t, byte(0x57), c.A)
	require.False(t, c.C)
	require.False(t, c.Z)
	require.False(t, c.V)
	require.False(t, c.N)

	c2, bus2 := newTestCPU()
	bus2.setBytes(c2.PC, 0x69, 0x22)
	c2.A = 0x35
	c2.C = true

	c2.Step()

	require.Equal(t, byte(0x58), c2.A)
}

func TestScenarioASLAccumulatorShiftsOutCarry(t *testing.T) {
	c, bus := newTestCPU()
	bus.setBytes(c.PC, 0x0a)
	c.A = 0x8a

	c.Step()

	require.Equal(t, byte(0x14), c.A)
	require.True(t, c.C)
	require.False(t, c.N)
	require.False(t, c.Z)
}

func TestScenarioIndirectIndexedLDA(t *testing.T) {
	c, bus := newTestCPU()
	bus.setBytes(c.PC, 0xb1, 0x20)
	bus.setBytes(0x20, 0x00, 0x05)
	bus.mem[0x504] = 0x45
	c.Y = 4

	c.Step()

	require.Equal(t, byte(0x45), c.A)
}

func TestScenarioBranchTakenForwardAndBackward(t *testing.T) {
	c, bus := newTestCPU()
	bus.setBytes(c.PC, 0xd0, 0x10) // BNE +16
	c.Z = false

	c.Step()
	require.Equal(t, uint16(0x8012), c.PC)

	c2, bus2 := newTestCPU()
	bus2.setBytes(c2.PC, 0xd0, 0x10)
	c2.Z = true

	c2.Step()
	require.Equal(t, uint16(0x8002), c2.PC)

	c3, bus3 := newTestCPU()
	bus3.setBytes(c3.PC, 0xd0, 0xf0) // BNE -16
	c3.Z = false

	c3.Step()
	require.Equal(t, uint16(0x7ff2), c3.PC)
}
