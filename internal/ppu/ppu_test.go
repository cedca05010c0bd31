package ppu

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"gones-core/internal/cartridge"
)

// testCartridge builds a minimal one-bank mapper-0 ROM with an 8KiB CHR-ROM
// bank filled with its own address low byte, so CHR reads are distinguishable.
func testCartridge(t *testing.T) *cartridge.Cartridge {
	t.Helper()
	header := []byte{'N', 'E', 'S', 0x1a, 1, 1, 0x00, 0x00, 0, 0, 0, 0, 0, 0, 0, 0}
	prg := make([]byte, 16*1024)
	chr := make([]byte, 8*1024)
	for i := range chr {
		chr[i] = byte(i)
	}
	data := append(append(header, prg...), chr...)

	cart, err := cartridge.Load(bytes.NewReader(data))
	require.NoError(t, err)
	return cart
}

// PPU register mirroring is the bus's job (address mod 8); here we only
// check the register file itself accepts all 8 indices independently.
func TestRegisterReadWriteRoundTrip(t *testing.T) {
	p := New(testCartridge(t))
	for r := 0; r < numRegisters; r++ {
		if r == RegStatus {
			continue // status has a read side effect, covered separately
		}
		p.WriteRegister(r, byte(0x10+r))
		require.Equal(t, byte(0x10+r), p.ReadRegister(r))
	}
}

// Reading PPU status clears its bit 7 as a post-read side effect; reading
// twice in a row yields bit 7 = 0 on the second read regardless of what was
// set before the first.
func TestStatusReadClearsVBlankBit(t *testing.T) {
	p := New(testCartridge(t))
	p.regs[RegStatus] = statusVBlank

	first := p.ReadRegister(RegStatus)
	second := p.ReadRegister(RegStatus)

	require.Equal(t, byte(statusVBlank), first)
	require.Equal(t, byte(0), second&statusVBlank)
}

func TestWriteCtrlArmsNMIOutput(t *testing.T) {
	p := New(testCartridge(t))
	p.WriteRegister(RegCtrl, 0x80)
	require.True(t, p.nmiOutput)

	p.WriteRegister(RegCtrl, 0x00)
	require.False(t, p.nmiOutput)
}

// One frame corresponds to exactly 89,342 PPU dot ticks.
func TestOneFrameIsExactly89342Dots(t *testing.T) {
	p := New(testCartridge(t))
	for i := 0; i < dotsPerScanline*scanlinesPerFrame; i++ {
		p.Tick()
	}
	require.Equal(t, uint64(1), p.FrameCount())
}

func TestNMIFlagRaisedAtVBlankStartWhenArmed(t *testing.T) {
	p := New(testCartridge(t))
	p.WriteRegister(RegCtrl, 0x80)

	dotsToVBlank := vblankStart*dotsPerScanline + 2 // process (scanline=vblankStart, dot=1)
	for i := 0; i < dotsToVBlank; i++ {
		p.Tick()
	}

	require.True(t, p.NMIPending())
	require.False(t, p.NMIPending()) // polling clears it
}

func TestNMINotRaisedWhenNotArmed(t *testing.T) {
	p := New(testCartridge(t))

	dotsToVBlank := vblankStart*dotsPerScanline + 2 // process (scanline=vblankStart, dot=1)
	for i := 0; i < dotsToVBlank; i++ {
		p.Tick()
	}

	require.False(t, p.NMIPending())
}

// ReadCHR is a passthrough to the cartridge's pattern-table window.
func TestReadCHRReadsThroughCartridge(t *testing.T) {
	p := New(testCartridge(t))
	require.Equal(t, byte(0x10), p.ReadCHR(0x0010))
}

func TestOAMDMARoundTrip(t *testing.T) {
	p := New(testCartridge(t))
	p.WriteOAMDMA(0x42)
	require.Equal(t, byte(0x42), p.ReadOAMDMA())
}

// Reset preserves the cartridge handle while clearing everything else.
func TestResetPreservesCartridge(t *testing.T) {
	p := New(testCartridge(t))
	p.WriteRegister(RegCtrl, 0x80)
	p.Reset()

	require.False(t, p.nmiOutput)
	require.Equal(t, byte(0x10), p.ReadCHR(0x0010))
}
