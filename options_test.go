/*------------------------------------------------------------------------------
* gnssfec unit test driver : fec options functions
*-----------------------------------------------------------------------------*/
package gnssfec_test

import (
	"gnssfec"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

/* enum conversion */
func Test_optionsutest1(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("on", gnssfec.Enum2Str(gnssfec.SWTOPT, 1))
	assert.Equal("tail", gnssfec.Enum2Str(gnssfec.VITOPT, 2))
	assert.Equal("", gnssfec.Enum2Str(gnssfec.VITOPT, 3))

	tests := []struct {
		str string
		val int
		ok  bool
	}{
		{"off", 0, true},
		{"on", 1, true},
		{"1", 1, true},
		{"2", 0, false},
		{"yes", 0, false},
	}
	for _, tt := range tests {
		val, ok := gnssfec.Str2Enum(tt.str, gnssfec.SWTOPT)
		assert.Equal(tt.ok, ok, tt.str)
		assert.Equal(tt.val, val, tt.str)
	}
	val, ok := gnssfec.Str2Enum("strict", gnssfec.VITOPT)
	assert.True(ok)
	assert.Equal(gnssfec.VITMODE_STRICT, val)
}

/* option string conversion */
func Test_optionsutest2(t *testing.T) {
	assert := assert.New(t)
	defer gnssfec.ResetFecOpts()

	opt := gnssfec.SearchOpt("fec-vitmode", gnssfec.FecOpts)
	require.NotNil(t, opt)
	assert.Nil(gnssfec.SearchOpt("pos1-posmode", gnssfec.FecOpts))

	assert.NoError(opt.Str2Opt("tail"))
	assert.Equal(gnssfec.VITMODE_TAIL, gnssfec.GetFecOpts().VitMode)
	assert.Equal("tail", opt.Opt2Str())
	assert.Equal("fec-vitmode        =tail       # (0:min,1:strict,2:tail)", opt.Opt2Buf())

	assert.ErrorIs(opt.Str2Opt("best"), gnssfec.ErrInvalidOpt)
	assert.Equal(gnssfec.VITMODE_TAIL, gnssfec.GetFecOpts().VitMode)

	opt = gnssfec.SearchOpt("misc-tracelevel", gnssfec.FecOpts)
	assert.NoError(opt.Str2Opt("3"))
	assert.Equal(3, gnssfec.GetFecOpts().TraceLevel)
	assert.Equal("misc-tracelevel    =3", opt.Opt2Buf())
	assert.ErrorIs(opt.Str2Opt("x"), gnssfec.ErrInvalidOpt)

	opt = gnssfec.SearchOpt("file-tracefile", gnssfec.FecOpts)
	assert.NoError(opt.Str2Opt("fec.trace"))
	assert.Equal("fec.trace", gnssfec.GetFecOpts().TraceFile)

	gnssfec.ResetFecOpts()
	assert.Equal(gnssfec.DefaultFecOpt(), gnssfec.GetFecOpts())
}

/* load and save options file */
func Test_optionsutest3(t *testing.T) {
	assert := assert.New(t)
	defer gnssfec.ResetFecOpts()
	dir := t.TempDir()

	file := filepath.Join(dir, "fec.conf")
	conf := "# fec options\n" +
		"\n" +
		"fec-invert2nd      =on          # (0:off,1:on)\n" +
		"fec-vitmode = 2\n" +
		"misc-tracelevel    =abc\n" +
		"pos1-posmode       =kinematic\n" +
		"invalid line\n"
	require.NoError(t, os.WriteFile(file, []byte(conf), 0644))

	gnssfec.ResetFecOpts()
	assert.NoError(gnssfec.LoadOpts(file, gnssfec.FecOpts))
	opt := gnssfec.GetFecOpts()
	assert.Equal(1, opt.Invert2nd)
	assert.Equal(gnssfec.VITMODE_TAIL, opt.VitMode)
	assert.Equal(0, opt.TraceLevel)

	save := filepath.Join(dir, "save.conf")
	assert.NoError(gnssfec.SaveOpts(save, "fecconv options", gnssfec.FecOpts))
	buff, err := os.ReadFile(save)
	require.NoError(t, err)
	assert.Equal("# fecconv options\n\n"+
		"fec-invert2nd      =on         # (0:off,1:on)\n"+
		"fec-vitmode        =tail       # (0:min,1:strict,2:tail)\n"+
		"file-tracefile     =\n"+
		"misc-tracelevel    =0\n", string(buff))

	/* saved options load back */
	gnssfec.ResetFecOpts()
	assert.NoError(gnssfec.LoadOpts(save, gnssfec.FecOpts))
	assert.Equal(opt, gnssfec.GetFecOpts())

	assert.Error(gnssfec.LoadOpts(filepath.Join(dir, "none.conf"), gnssfec.FecOpts))
	assert.Error(gnssfec.SaveOpts(filepath.Join(dir, "none", "save.conf"), "", gnssfec.FecOpts))
}

/* load yaml options file */
func Test_optionsutest4(t *testing.T) {
	assert := assert.New(t)
	defer gnssfec.ResetFecOpts()
	dir := t.TempDir()

	file := filepath.Join(dir, "fec.yaml")
	conf := "# fec options\n" +
		"fec-invert2nd: 1\n" +
		"fec-vitmode: strict\n" +
		"misc-tracelevel: 2\n" +
		"file-tracefile: fec.trace\n" +
		"pos1-posmode: kinematic\n"
	require.NoError(t, os.WriteFile(file, []byte(conf), 0644))

	gnssfec.ResetFecOpts()
	assert.NoError(gnssfec.LoadOpts(file, gnssfec.FecOpts))
	assert.Equal(gnssfec.FecOpt{Invert2nd: 1, VitMode: gnssfec.VITMODE_STRICT, TraceLevel: 2,
		TraceFile: "fec.trace"}, gnssfec.GetFecOpts())

	bad := filepath.Join(dir, "bad.yml")
	require.NoError(t, os.WriteFile(bad, []byte("- fec-vitmode\n- tail\n"), 0644))
	assert.ErrorIs(gnssfec.LoadOpts(bad, gnssfec.FecOpts), gnssfec.ErrInvalidOpt)
}
