/*------------------------------------------------------------------------------
* gnssfec unit test driver : bit access, text conversion and trace functions
*-----------------------------------------------------------------------------*/
package gnssfec_test

import (
	"gnssfec"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

/* getbitu/setbitu */
func Test_commonutest1(t *testing.T) {
	assert := assert.New(t)

	buff := make([]uint8, 4)
	gnssfec.SetBitU(buff, 0, 8, 0xA5)
	assert.Equal(uint8(0xA5), buff[0])
	gnssfec.SetBitU(buff, 12, 7, 0x55)
	assert.Equal(uint32(0x55), gnssfec.GetBitU(buff, 12, 7))
	assert.Equal(uint32(0xA5), gnssfec.GetBitU(buff, 0, 8))
	assert.Equal(uint32(1), gnssfec.GetBitU(buff, 0, 1))
	assert.Equal(uint32(0), gnssfec.GetBitU(buff, 1, 1))

	gnssfec.SetBitU(buff, 0, 32, 0xFFFFFFFF)
	assert.Equal(uint32(0xFFFFFFFF), gnssfec.GetBitU(buff, 0, 32))
	gnssfec.SetBitU(buff, 3, 0, 0) /* ignored */
	assert.Equal([]uint8{0xFF, 0xFF, 0xFF, 0xFF}, buff)
}

/* bit and symbol strings */
func Test_commonutest2(t *testing.T) {
	assert := assert.New(t)

	bits, err := gnssfec.Str2Bits("1101 0010\t1")
	assert.NoError(err)
	assert.Equal([]uint8{1, 1, 0, 1, 0, 0, 1, 0, 1}, bits)
	assert.Equal("110100101", gnssfec.Bits2Str(bits))

	_, err = gnssfec.Str2Bits("1102")
	assert.ErrorIs(err, gnssfec.ErrInvalidBit)

	syms, err := gnssfec.Str2Syms(" -1 +1  1 0 -1 ")
	assert.NoError(err)
	assert.Equal([]int8{-1, 1, 1, 0, -1}, syms)
	assert.Equal("-1 +1 +1 +0 -1", gnssfec.Syms2Str(syms))

	_, err = gnssfec.Str2Syms("-1 x")
	assert.ErrorIs(err, gnssfec.ErrInvalidBit)
	_, err = gnssfec.Str2Syms("-1 300")
	assert.ErrorIs(err, gnssfec.ErrInvalidBit)

	syms, err = gnssfec.Str2Syms("")
	assert.NoError(err)
	assert.Len(syms, 0)
}

/* trace file output */
func Test_commonutest3(t *testing.T) {
	assert := assert.New(t)
	file := filepath.Join(t.TempDir(), "test.trace")

	require.NoError(t, gnssfec.TraceOpen(file))
	gnssfec.TraceLevel(3)
	gnssfec.Trace(2, "level2 %d\n", 42)
	gnssfec.Trace(4, "level4\n")
	gnssfec.Tracet(3, "level3\n")
	gnssfec.Traceb(3, []uint8{1, 0, 1, 0, 1, 0, 1, 0, 1})
	gnssfec.TraceClose()
	gnssfec.TraceLevel(0)

	/* closed trace is ignored */
	gnssfec.Trace(2, "closed\n")

	buff, err := os.ReadFile(file)
	require.NoError(t, err)
	out := string(buff)
	assert.Contains(out, "2 level2 42\n")
	assert.Contains(out, "level3\n")
	assert.Contains(out, "3 10101010 1\n")
	assert.NotContains(out, "level4")
	assert.NotContains(out, "closed")
	assert.Equal(3, strings.Count(out, "\n"))

	err = gnssfec.TraceOpen(filepath.Join(t.TempDir(), "nodir", "test.trace"))
	assert.Error(err)
}
