package cartridge

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func buildINES(prgBanks, chrBanks int, mapperHi, mapperLo byte) []byte {
	header := []byte{'N', 'E', 'S', 0x1a, byte(prgBanks), byte(chrBanks), mapperLo << 4, mapperHi << 4, 0, 0, 0, 0, 0, 0, 0, 0}
	prg := make([]byte, prgBanks*prgBankSize)
	for i := range prg {
		prg[i] = byte(i)
	}
	chr := make([]byte, chrBanks*chrBankSize)
	return append(append(header, prg...), chr...)
}

func TestLoadRejectsBadMagic(t *testing.T) {
	data := buildINES(1, 1, 0, 0)
	data[0] = 'X'
	_, err := Load(bytes.NewReader(data))
	require.Error(t, err)
}

func TestLoadRejectsNonZeroMapper(t *testing.T) {
	data := buildINES(1, 1, 0, 1) // mapper 1
	_, err := Load(bytes.NewReader(data))
	require.Error(t, err)
}

func TestLoad16KiBPRGMirrorsAcrossWindow(t *testing.T) {
	cart, err := Load(bytes.NewReader(buildINES(1, 1, 0, 0)))
	require.NoError(t, err)

	require.Equal(t, cart.ReadPRG(0x8000), cart.ReadPRG(0xc000))
	require.Equal(t, byte(0x10), cart.ReadPRG(0x8010))
}

func TestLoad32KiBPRGMapsDirectly(t *testing.T) {
	cart, err := Load(bytes.NewReader(buildINES(2, 1, 0, 0)))
	require.NoError(t, err)

	require.NotEqual(t, cart.ReadPRG(0x8000), cart.ReadPRG(0xc001))
	require.Equal(t, 2*prgBankSize, cart.PRGLen())
}

func TestWritePRGIsNoOp(t *testing.T) {
	cart, err := Load(bytes.NewReader(buildINES(1, 1, 0, 0)))
	require.NoError(t, err)

	before := cart.ReadPRG(0x8000)
	cart.WritePRG(0x8000, before^0xff)
	require.Equal(t, before, cart.ReadPRG(0x8000))
}

func TestZeroCHRBanksFallsBackToCHRRAM(t *testing.T) {
	cart, err := Load(bytes.NewReader(buildINES(1, 0, 0, 0)))
	require.NoError(t, err)

	cart.WriteCHR(0x0000, 0x42)
	require.Equal(t, byte(0x42), cart.ReadCHR(0x0000))
}

func TestCHRROMWriteIsIgnored(t *testing.T) {
	cart, err := Load(bytes.NewReader(buildINES(1, 1, 0, 0)))
	require.NoError(t, err)

	before := cart.ReadCHR(0x0000)
	cart.WriteCHR(0x0000, before^0xff)
	require.Equal(t, before, cart.ReadCHR(0x0000))
}

func TestMirroringFlagFromHeader(t *testing.T) {
	vertical := buildINES(1, 1, 0, 0)
	vertical[6] |= 0x01
	cart, err := Load(bytes.NewReader(vertical))
	require.NoError(t, err)
	require.Equal(t, MirrorVertical, cart.Mirror())
}
