package main

import (
	"bytes"
	"strings"
	"testing"

	"gnssfec"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	glodata  = "10101010101010101000000000000000000000000000000000000000001010101010101010101"
	gloframe = glodata + "11011001"
)

func TestFecconvGlo(t *testing.T) {
	assert := assert.New(t)

	opt := &convopt{sys: "glo"}
	var out bytes.Buffer
	in := "# glonass strings\n\n" + glodata + "\n" + "1010\n"
	n, nerr, err := fecconv(opt, strings.NewReader(in), &out, nil)
	require.NoError(t, err)
	assert.Equal(2, n)
	assert.Equal(1, nerr)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(gloframe, lines[0])
	assert.True(strings.HasPrefix(lines[1], "% error: invalid frame length"))

	/* decode with one damaged bit and two damaged bits */
	b := []byte(gloframe)
	b[40] ^= 1
	one := string(b)
	b[50] ^= 1
	two := string(b)

	stat, err := gnssfec.NewFecStat(nil)
	require.NoError(t, err)
	opt.decode = true
	out.Reset()
	n, nerr, err = fecconv(opt, strings.NewReader(gloframe+"\n"+one+"\n"+two+"\n"), &out, stat)
	require.NoError(t, err)
	assert.Equal(3, n)
	assert.Equal(0, nerr)
	assert.Equal(gloframe+" valid\n"+gloframe+" corrected\n"+two+" uncorrectable\n", out.String())

	assert.Equal(1.0, testutil.ToFloat64(stat.GloStrs.WithLabelValues("valid")))
	assert.Equal(1.0, testutil.ToFloat64(stat.GloStrs.WithLabelValues("corrected")))
	assert.Equal(1.0, testutil.ToFloat64(stat.GloStrs.WithLabelValues("uncorrectable")))
}

func TestFecconvGal(t *testing.T) {
	assert := assert.New(t)

	opt := &convopt{sys: "gal", fopt: gnssfec.FecOpt{VitMode: gnssfec.VITMODE_MIN}}
	var out bytes.Buffer
	_, _, err := fecconv(opt, strings.NewReader("1101\n"), &out, nil)
	require.NoError(t, err)
	assert.Equal("-1 -1 +1 -1 +1 -1 -1 -1\n", out.String())

	/* tail bits, decode in tail mode with one symbol error */
	opt.tail = true
	out.Reset()
	_, _, err = fecconv(opt, strings.NewReader("1101\n"), &out, nil)
	require.NoError(t, err)
	syms, err := gnssfec.Str2Syms(out.String())
	require.NoError(t, err)
	require.Len(t, syms, 20)
	syms[3] = -syms[3]

	stat, err := gnssfec.NewFecStat(nil)
	require.NoError(t, err)
	opt.decode = true
	opt.fopt.VitMode = gnssfec.VITMODE_TAIL
	out.Reset()
	n, nerr, err := fecconv(opt, strings.NewReader(gnssfec.Syms2Str(syms)+"\n-1 +1 -1\n"), &out, stat)
	require.NoError(t, err)
	assert.Equal(2, n)
	assert.Equal(1, nerr)
	assert.Equal("1101000000 1\n% error: invalid frame length: 3 symbols\n", out.String())
	assert.Equal(1.0, testutil.ToFloat64(stat.GalFrames.WithLabelValues("ok")))
	assert.Equal(1.0, testutil.ToFloat64(stat.GalFrames.WithLabelValues("error")))
}

func TestFecconvSys(t *testing.T) {
	_, err := convline(&convopt{sys: "gps"}, "1010", nil)
	assert.ErrorIs(t, err, gnssfec.ErrInvalidOpt)
}
