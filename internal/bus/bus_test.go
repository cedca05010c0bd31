package bus

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"gones-core/internal/cartridge"
)

// buildINES assembles a minimal valid iNES image: prgBanks*16KiB of PRG
// filled with its own address low byte (so reads are distinguishable) and
// one 8KiB CHR bank of zeroes, mapper 0.
func buildINES(prgBanks int) []byte {
	header := []byte{'N', 'E', 'S', 0x1a, byte(prgBanks), 1, 0x00, 0x00, 0, 0, 0, 0, 0, 0, 0, 0}
	prg := make([]byte, prgBanks*16*1024)
	for i := range prg {
		prg[i] = byte(i)
	}
	chr := make([]byte, 8*1024)
	return append(append(header, prg...), chr...)
}

func testCartridge(t *testing.T, prgBanks int) *cartridge.Cartridge {
	t.Helper()
	cart, err := cartridge.Load(bytes.NewReader(buildINES(prgBanks)))
	require.NoError(t, err)
	return cart
}

// RAM mirroring: for any addr in 0x0000-0x1FFF and any offset k in
// {0, 0x0800, 0x1000, 0x1800}, read8(addr & 0x07FF) == read8((addr & 0x07FF) | k).
func TestRAMMirroring(t *testing.T) {
	b := New(testCartridge(t, 1))
	b.Write8(0x0042, 0x99)

	for _, k := range []uint16{0, 0x0800, 0x1000, 0x1800} {
		require.Equal(t, byte(0x99), b.Read8(0x0042|k))
	}
}

// A write to cartridge PRG space is a no-op: a following read at the same
// address returns the original ROM byte.
func TestPRGWriteIsNoOp(t *testing.T) {
	b := New(testCartridge(t, 1))
	before := b.Read8(0x8000)

	b.Write8(0x8000, before^0xff)

	require.Equal(t, before, b.Read8(0x8000))
}

// PPU register mirroring: for any r in 0..8 and any addr == r (mod 8) in
// 0x2000-0x3FFF, reads and writes are equivalent.
func TestPPURegisterMirroring(t *testing.T) {
	b := New(testCartridge(t, 1))
	b.Write8(0x2001, 0x55) // RegMask

	require.Equal(t, byte(0x55), b.Read8(0x2009))
	require.Equal(t, byte(0x55), b.Read8(0x3ff9))
}

func TestDisabledRegionPanics(t *testing.T) {
	b := New(testCartridge(t, 1))
	require.Panics(t, func() { b.Read8(0x4018) })
	require.Panics(t, func() { b.Write8(0x401f, 0x00) })
}

func TestOAMDMAWriteReachesPPU(t *testing.T) {
	b := New(testCartridge(t, 1))
	b.Write8(0x4014, 0x02)
	require.Equal(t, byte(0x02), b.PPU().ReadOAMDMA())
}
