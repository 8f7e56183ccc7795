/*------------------------------------------------------------------------------
* fecconv.go : encode/decode navigation message bits with GLONASS hamming code
*              or Galileo FEC
*
*          Copyright (C) 2022-2025 by feng xuebin, All rights reserved.
*
* history : 2025/03/02 1.0  new
*-----------------------------------------------------------------------------*/

package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"gnssfec"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	PRGNAME   = "FECCONV"
	TRACEFILE = "fecconv.trace"
)

/* help text -----------------------------------------------------------------*/
var help []string = []string{
	"",
	" Synopsys",
	"",
	" fecconv [option ...] file",
	"",
	" Description",
	"",
	" Encode or decode navigation message bits. Each line of the input file is",
	" one frame. Lines started with '#' or '%' and empty lines are skipped.",
	"",
	" GLONASS string (hamming code, ICD 4.7)",
	"     encode: 77 data bits (0/1, string bit 85-9)",
	"     decode: 85 string bits, output corrected string and status",
	" Galileo FEC (rate 1/2 K=7 convolutional code, ICD 4.1.4)",
	"     encode: message bits (0/1), output soft symbols (+1/-1)",
	"     decode: soft symbols separated by spaces, output bits and metric",
	"",
	" Options [default]",
	"",
	"     file         input file [stdin]",
	"     -m sys       navigation system (glo,gal) [glo]",
	"     -d           decode [encode]",
	"     -inv         invert second branch of galileo fec [off]",
	"     -vm mode     viterbi mode (0:min,1:strict,2:tail) [0]",
	"     -tail        append 6 zero tail bits before galileo fec encoding [off]",
	"     -k file      input options from configuration file [off]",
	"     -o file      output file [stdout]",
	"     -s file      output metrics in prometheus textfile format [off]",
	"     -x level     debug trace level (0:off) [0]",
}

/* print help ----------------------------------------------------------------*/
func printhelp() {
	for i := range help {
		fmt.Fprintf(os.Stderr, "%s\n", help[i])
	}
	os.Exit(0)
}

func searchHelp(key string) string {
	for _, v := range help {
		if strings.Contains(v, key) {
			return v
		}
	}
	return "no surported augument"
}

type convopt struct { /* fecconv options */
	sys    string
	decode bool
	tail   bool
	fopt   gnssfec.FecOpt
}

/* convert one line ----------------------------------------------------------*/
func convline(opt *convopt, line string, stat *gnssfec.FecStat) (string, error) {
	switch opt.sys {
	case "glo":
		bits, err := gnssfec.Str2Bits(line)
		if err != nil {
			return "", err
		}
		if !opt.decode {
			frame, err := gnssfec.EncodeGloStr(bits)
			if err != nil {
				return "", err
			}
			return gnssfec.Bits2Str(frame), nil
		}
		s, err := gnssfec.DecodeGloStr(bits)
		if err != nil && !errors.Is(err, gnssfec.ErrUncorrectable) {
			return "", err
		}
		stat.ObserveGlo(s)
		return fmt.Sprintf("%s %s", gnssfec.Bits2Str(bits), s), nil

	case "gal":
		if !opt.decode {
			bits, err := gnssfec.Str2Bits(line)
			if err != nil {
				return "", err
			}
			if opt.tail {
				bits = gnssfec.GalTail(bits)
			}
			syms, err := gnssfec.EncodeGalFec(bits, opt.fopt.Invert2nd != 0)
			if err != nil {
				return "", err
			}
			return gnssfec.Syms2Str(syms), nil
		}
		syms, err := gnssfec.Str2Syms(line)
		if err != nil {
			return "", err
		}
		msg, metric, err := gnssfec.DecodeGalFec(syms, &opt.fopt)
		stat.ObserveGal(metric, err)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%s %d", gnssfec.Bits2Str(msg), metric), nil
	}
	return "", fmt.Errorf("%w: system %s", gnssfec.ErrInvalidOpt, opt.sys)
}

/* convert main ----------------------------------------------------------------
* convert all frames of input, errors of a frame are written to output
* return : number of frames, number of failed frames, error
*-----------------------------------------------------------------------------*/
func fecconv(opt *convopt, r io.Reader, w io.Writer, stat *gnssfec.FecStat) (int, int, error) {
	var n, nerr int

	gnssfec.Trace(3, "fecconv: sys=%s decode=%v\n", opt.sys, opt.decode)

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)
	bw := bufio.NewWriter(w)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if len(line) == 0 || line[0] == '#' || line[0] == '%' {
			continue
		}
		n++
		out, err := convline(opt, line, stat)
		if err != nil {
			nerr++
			gnssfec.Trace(2, "fecconv: frame %d: %v\n", n, err)
			fmt.Fprintf(bw, "%% error: %v\n", err)
			continue
		}
		fmt.Fprintln(bw, out)
	}
	if err := sc.Err(); err != nil {
		return n, nerr, err
	}
	return n, nerr, bw.Flush()
}

/* fecconv main --------------------------------------------------------------*/
func main() {
	var (
		opt                    convopt
		conffile, ofile, sfile string
		trace, vitmode         int       = 0, -1
		binv, bhelp            bool
		r                      io.Reader = os.Stdin
		w                      io.Writer = os.Stdout
	)
	flag.StringVar(&opt.sys, "m", "glo", searchHelp("-m"))
	flag.BoolVar(&opt.decode, "d", false, searchHelp("-d"))
	flag.BoolVar(&binv, "inv", false, searchHelp("-inv"))
	flag.IntVar(&vitmode, "vm", vitmode, searchHelp("-vm"))
	flag.BoolVar(&opt.tail, "tail", false, searchHelp("-tail"))
	flag.StringVar(&conffile, "k", "", searchHelp("-k"))
	flag.StringVar(&ofile, "o", "", searchHelp("-o"))
	flag.StringVar(&sfile, "s", "", searchHelp("-s"))
	flag.IntVar(&trace, "x", trace, searchHelp("-x"))
	flag.BoolVar(&bhelp, "?", false, "print help")
	flag.Parse()

	if bhelp {
		printhelp()
	}
	if conffile != "" {
		gnssfec.ResetFecOpts()
		if err := gnssfec.LoadOpts(conffile, gnssfec.FecOpts); err != nil {
			fmt.Fprintf(os.Stderr, "%s : %v\n", PRGNAME, err)
			os.Exit(-1)
		}
	}
	opt.fopt = gnssfec.GetFecOpts()
	if binv {
		opt.fopt.Invert2nd = 1
	}
	if vitmode >= 0 {
		opt.fopt.VitMode = vitmode
	}
	if trace > 0 {
		opt.fopt.TraceLevel = trace
	}
	if opt.fopt.TraceLevel > 0 {
		tfile := opt.fopt.TraceFile
		if tfile == "" {
			tfile = TRACEFILE
		}
		if err := gnssfec.TraceOpen(tfile); err != nil {
			fmt.Fprintf(os.Stderr, "%s : %v\n", PRGNAME, err)
		}
		gnssfec.TraceLevel(opt.fopt.TraceLevel)
		defer gnssfec.TraceClose()
	}
	if args := flag.Args(); len(args) > 0 {
		fp, err := os.Open(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s : %v\n", PRGNAME, err)
			os.Exit(-1)
		}
		defer fp.Close()
		r = fp
	}
	if ofile != "" {
		fp, err := os.Create(ofile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s : %v\n", PRGNAME, err)
			os.Exit(-1)
		}
		defer fp.Close()
		w = fp
	}
	reg := prometheus.NewRegistry()
	stat, err := gnssfec.NewFecStat(reg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s : %v\n", PRGNAME, err)
		os.Exit(-1)
	}
	n, nerr, err := fecconv(&opt, r, w, stat)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s : %v\n", PRGNAME, err)
	}
	if sfile != "" {
		if err := gnssfec.WriteFecStat(sfile, reg); err != nil {
			fmt.Fprintf(os.Stderr, "%s : %v\n", PRGNAME, err)
		}
	}
	fmt.Fprintf(os.Stderr, "%s : %d frames, %d errors\n", PRGNAME, n, nerr)
}
