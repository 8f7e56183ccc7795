/*------------------------------------------------------------------------------
* common.go : gnssfec common functions
*
*          Copyright (C) 2022-2025 by feng xuebin, All rights reserved.
*
* history : 2022/05/20 1.0  new, trace and bit functions from gnssgo
*           2025/03/02 1.1  add bit/symbol text conversion for fecconv
*-----------------------------------------------------------------------------*/
package gnssfec

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"
)

/* extract unsigned bits -------------------------------------------------------
* extract unsigned bits from byte data
* args   : uint8_t *buff    I   byte data
*          int    pos       I   bit position from start of data (bits)
*          int    len       I   bit length (bits) (len<=32)
* return : extracted unsigned bits
*-----------------------------------------------------------------------------*/
func GetBitU(buff []uint8, pos, len int) uint32 {
	var bits uint32

	for i := pos; i < pos+len; i++ {
		bits = (bits << 1) + uint32((buff[i/8]>>(7-i%8))&1)
	}
	return bits
}

/* set unsigned bits -----------------------------------------------------------
* set unsigned bits to byte data
* args   : uint8_t *buff IO byte data
*          int    pos       I   bit position from start of data (bits)
*          int    len       I   bit length (bits) (len<=32)
*          uint32_t data    I   unsigned data
* return : none
*-----------------------------------------------------------------------------*/
func SetBitU(buff []uint8, pos, len int, data uint32) {
	if len <= 0 || 32 < len {
		return
	}
	var mask uint32 = 1 << (len - 1)
	for i := pos; i < pos+len; i, mask = i+1, mask>>1 {
		if data&mask > 0 {
			buff[i/8] |= 1 << (7 - i%8)
		} else {
			buff[i/8] &= ^(1 << (7 - i%8))
		}
	}
}

/* check bit frame length and values -----------------------------------------*/
func checkbits(bits []uint8, n int) error {
	if n > 0 && len(bits) != n {
		return fmt.Errorf("%w: %d bits (expected %d)", ErrInvalidLength, len(bits), n)
	}
	for i, b := range bits {
		if b > 1 {
			return fmt.Errorf("%w: bit %d = %d", ErrInvalidBit, i, b)
		}
	}
	return nil
}

/* string to bits --------------------------------------------------------------
* convert string of '0'/'1' characters to bit frame (spaces ignored)
* args   : string s         I   bit string
* return : bit frame, error
*-----------------------------------------------------------------------------*/
func Str2Bits(s string) ([]uint8, error) {
	bits := make([]uint8, 0, len(s))
	for i, c := range s {
		switch c {
		case '0', '1':
			bits = append(bits, uint8(c-'0'))
		case ' ', '\t', '\r', '\n':
		default:
			return nil, fmt.Errorf("%w: %q at %d", ErrInvalidBit, c, i)
		}
	}
	return bits, nil
}

/* bits to string ------------------------------------------------------------*/
func Bits2Str(bits []uint8) string {
	var sb strings.Builder
	sb.Grow(len(bits))
	for _, b := range bits {
		sb.WriteByte('0' + b&1)
	}
	return sb.String()
}

/* string to soft symbols ------------------------------------------------------
* convert space separated symbols (+1,-1,1,0...) to soft symbols
*-----------------------------------------------------------------------------*/
func Str2Syms(s string) ([]int8, error) {
	fields := strings.Fields(s)
	syms := make([]int8, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseInt(f, 10, 8)
		if err != nil {
			return nil, fmt.Errorf("%w: symbol %d %q", ErrInvalidBit, i, f)
		}
		syms[i] = int8(v)
	}
	return syms, nil
}

/* soft symbols to string ----------------------------------------------------*/
func Syms2Str(syms []int8) string {
	p := make([]string, len(syms))
	for i, v := range syms {
		p[i] = fmt.Sprintf("%+d", v)
	}
	return strings.Join(p, " ")
}

var (
	mu_trace    sync.Mutex
	fp_trace    *os.File
	level_trace int
	tick_trace  time.Time /* time at traceopen */
)

/* debug trace functions -----------------------------------------------------*/
func TraceOpen(file string) error {
	mu_trace.Lock()
	defer mu_trace.Unlock()

	if fp_trace != nil && fp_trace != os.Stdout {
		fp_trace.Close()
	}
	if len(file) == 0 {
		fp_trace = os.Stdout
	} else {
		fp, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
		if err != nil {
			fp_trace = nil
			return fmt.Errorf("open trace file %s: %w", file, err)
		}
		fp_trace = fp
	}
	tick_trace = time.Now()
	return nil
}
func TraceClose() {
	mu_trace.Lock()
	defer mu_trace.Unlock()

	if fp_trace != nil && fp_trace != os.Stdout {
		fp_trace.Close()
	}
	fp_trace = nil
}
func TraceLevel(level int) {
	mu_trace.Lock()
	level_trace = level
	mu_trace.Unlock()
}
func Trace(level int, format string, v ...interface{}) {
	/* print error message to stdout */
	if level <= 1 {
		fmt.Printf(format, v...)
	}
	mu_trace.Lock()
	defer mu_trace.Unlock()
	if fp_trace == nil || level > level_trace {
		return
	}
	fmt.Fprintf(fp_trace, "%d ", level)
	fmt.Fprintf(fp_trace, format, v...)
}
func Tracet(level int, format string, v ...interface{}) {
	mu_trace.Lock()
	defer mu_trace.Unlock()
	if fp_trace == nil || level > level_trace {
		return
	}
	fmt.Fprintf(fp_trace, "%d %9.3f: ", level, time.Since(tick_trace).Seconds())
	fmt.Fprintf(fp_trace, format, v...)
}

/* trace bit frame, 8 bits per group */
func Traceb(level int, bits []uint8) {
	mu_trace.Lock()
	defer mu_trace.Unlock()
	if fp_trace == nil || level > level_trace {
		return
	}
	fmt.Fprintf(fp_trace, "%d ", level)
	for i, b := range bits {
		if i%8 == 7 {
			fmt.Fprintf(fp_trace, "%d ", b)
		} else {
			fmt.Fprintf(fp_trace, "%d", b)
		}
	}
	fmt.Fprintf(fp_trace, "\n")
}
