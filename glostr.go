/*------------------------------------------------------------------------------
* glostr.go : GLONASS navigation string hamming code
*
*          Copyright (C) 2022-2025 by feng xuebin, All rights reserved.
*
* references :
*     [1] GLONASS/GLONASS-M Interface Control Document, Edition 5.1, 2008
*
* notes   : bit frames are stored string bit 85 first, so frame[i] holds
*           string bit 85-i. check bits beta_1..beta_8 are string bits 1..8.
*
* history : 2014/08/14 1.0  test_glostr() in rcvraw
*           2025/03/02 1.1  hamming encode and single error correction
*-----------------------------------------------------------------------------*/
package gnssfec

import (
	"fmt"
	"math/bits"
)

/* checked bit indexes of checksums C1..C5 (ref [1] 4.7) ---------------------*/
var (
	glo_idx_i = [...]int{
		9, 10, 12, 13, 15, 17, 19, 20, 22, 24, 26, 28, 30, 32, 34, 35, 37, 39,
		41, 43, 45, 47, 49, 51, 53, 55, 57, 59, 61, 63, 65, 66, 68, 70, 72, 74,
		76, 78, 80, 82, 84}
	glo_idx_j = [...]int{
		9, 11, 12, 14, 15, 18, 19, 21, 22, 25, 26, 29, 30, 33, 34, 36, 37, 40,
		41, 44, 45, 48, 49, 52, 53, 56, 57, 60, 61, 64, 65, 67, 68, 71, 72, 75,
		76, 79, 80, 83, 84}
	glo_idx_k = [...]int{
		10, 11, 12, 16, 17, 18, 19, 23, 24, 25, 26, 31, 32, 33, 34, 38, 39, 40,
		41, 46, 47, 48, 49, 54, 55, 56, 57, 62, 63, 64, 65, 69, 70, 71, 72, 77,
		78, 79, 80, 85}
	glo_idx_l = [...]int{
		13, 14, 15, 16, 17, 18, 19, 27, 28, 29, 30, 31, 32, 33, 34, 42, 43, 44,
		45, 46, 47, 48, 49, 58, 59, 60, 61, 62, 63, 64, 65, 73, 74, 75, 76, 77,
		78, 79, 80}
	glo_idx_m = [...]int{
		20, 21, 22, 23, 24, 25, 26, 27, 28, 29, 30, 31, 32, 33, 34, 50, 51, 52,
		53, 54, 55, 56, 57, 58, 59, 60, 61, 62, 63, 64, 65, 81, 82, 83, 84, 85}

	/* checked bit indexes of C1..C7, C6 and C7 are contiguous (k=35-65,66-85) */
	glo_idx = [7][]int{
		glo_idx_i[:], glo_idx_j[:], glo_idx_k[:], glo_idx_l[:], glo_idx_m[:],
		seqidx(35, 65), seqidx(66, 85)}
)

func seqidx(k1, k2 int) []int {
	idx := make([]int, 0, k2-k1+1)
	for k := k1; k <= k2; k++ {
		idx = append(idx, k)
	}
	return idx
}

/* xor of string bits k in index set (frame[85-k]) ---------------------------*/
func gloparity(frame []uint8, idx []int) uint8 {
	var p uint8
	for _, k := range idx {
		p ^= frame[NBIT_GLOSTR-k]
	}
	return p
}

/* encode GLONASS string -------------------------------------------------------
* generate hamming check bits of GLONASS navigation string (ref [1] 4.7)
* args   : uint8_t *data    I   data bits (string bit 85-9, 77 bits)
* return : GLONASS string with check bits (string bit 85-1, 85 bits), error
*-----------------------------------------------------------------------------*/
func EncodeGloStr(data []uint8) ([]uint8, error) {
	Trace(4, "encode_glostr:\n")

	if err := checkbits(data, NDATA_GLOSTR); err != nil {
		return nil, err
	}
	frame := make([]uint8, NBIT_GLOSTR)
	copy(frame, data)

	var sum uint8
	for _, b := range data {
		sum ^= b
	}
	for n := 1; n <= 7; n++ {
		beta := gloparity(frame, glo_idx[n-1])
		frame[NBIT_GLOSTR-n] = beta
		sum ^= beta
	}
	frame[NDATA_GLOSTR] = sum /* beta_8 */

	Traceb(5, frame)
	return frame, nil
}

/* GLONASS string checksums ----------------------------------------------------
* compute checksums C1..C7 and C_sigma of GLONASS string (ref [1] 4.7)
* args   : uint8_t *frame   I   GLONASS string (85 bits)
* return : checksums
*-----------------------------------------------------------------------------*/
func GloChecksums(frame []uint8) GloCheck {
	var c GloCheck

	for n := 1; n <= 7; n++ {
		c.C[n-1] = gloparity(frame, glo_idx[n-1]) ^ frame[NBIT_GLOSTR-n]
	}
	for _, b := range frame {
		c.Csig ^= b
	}
	return c
}

/* condition a) of ref [1] 4.7: data bits valid ------------------------------*/
func glocond_a(c GloCheck) bool {
	n := c.Ones()
	return (n == 0 && c.Csig == 0) || (n <= 1 && c.Csig == 1)
}

/* locate single error by checksums (ref [1] 4.7 condition b) ------------------
* return : string bit number of error (1-85, >85: out of string)
*-----------------------------------------------------------------------------*/
func gloerrpos(c GloCheck) int {
	var K, pos int

	for n := 7; n >= 1; n-- {
		if c.C[n-1] == 1 {
			K = n
			break
		}
	}
	for n := 1; n <= 7; n++ {
		pos += int(c.C[n-1]) << (n - 1)
	}
	return pos + 8 - K
}

/* decode GLONASS string -------------------------------------------------------
* check hamming code of GLONASS string and correct single error (ref [1] 4.7)
* args   : uint8_t *frame   IO  GLONASS string (85 bits), corrected in place
* return : status, error (ErrUncorrectable with GloUncorrectable)
* notes  : at most one bit is flipped. a failed correction is left in frame.
*-----------------------------------------------------------------------------*/
func DecodeGloStr(frame []uint8) (GloStat, error) {
	Trace(4, "decode_glostr:\n")

	if err := checkbits(frame, NBIT_GLOSTR); err != nil {
		return GloUncorrectable, err
	}
	c := GloChecksums(frame)
	n := c.Ones()

	Trace(5, "decode_glostr: c=%v csig=%d\n", c.C, c.Csig)

	switch {
	case n == 0 && c.Csig == 0:
		return GloValid, nil

	case n == 0 && c.Csig == 1: /* error in beta_8 */
		frame[NDATA_GLOSTR] ^= 1
		Trace(3, "decode_glostr: check bit 8 corrected\n")
		return GloCorrected, nil

	case n == 1 && c.Csig == 1: /* error in beta_1..beta_7 */
		for i := 1; i <= 7; i++ {
			if c.C[i-1] == 1 {
				frame[NBIT_GLOSTR-i] ^= 1
				Trace(3, "decode_glostr: check bit %d corrected\n", i)
			}
		}
		return GloCorrected, nil

	case c.Csig == 1 && n >= 2 && n < 7: /* condition b) */
		pos := gloerrpos(c)
		if pos > NBIT_GLOSTR {
			Trace(2, "decode_glostr: error position out of string pos=%d\n", pos)
			return GloUncorrectable, fmt.Errorf("%w: error bit %d", ErrUncorrectable, pos)
		}
		frame[NBIT_GLOSTR-pos] ^= 1

		if c = GloChecksums(frame); !glocond_a(c) {
			Trace(2, "decode_glostr: correction failed pos=%d\n", pos)
			return GloUncorrectable, fmt.Errorf("%w: correction of bit %d failed", ErrUncorrectable, pos)
		}
		Trace(3, "decode_glostr: bit %d corrected\n", pos)
		return GloCorrected, nil
	}
	/* condition c) or no condition */
	Trace(2, "decode_glostr: uncorrectable n=%d csig=%d\n", n, c.Csig)
	return GloUncorrectable, fmt.Errorf("%w: %d checksums csig=%d", ErrUncorrectable, n, c.Csig)
}

/* pack GLONASS string -------------------------------------------------------*
* pack GLONASS string bits into bytes
* args   : uint8_t *frame   I   GLONASS string (85 bits)
* return : packed string     buff[ 0]: string bit 85-78
*                            buff[ 1]: string bit 77-70
*                            ...
*                            buff[10]: string bit  5- 1 (0 padded)
*-----------------------------------------------------------------------------*/
func PackGloStr(frame []uint8) ([]uint8, error) {
	if err := checkbits(frame, NBIT_GLOSTR); err != nil {
		return nil, err
	}
	buff := make([]uint8, NBYTE_GLOSTR)
	for i, b := range frame {
		SetBitU(buff, i, 1, uint32(b))
	}
	return buff, nil
}

/* unpack GLONASS string -----------------------------------------------------*/
func UnpackGloStr(buff []uint8) ([]uint8, error) {
	if len(buff) < NBYTE_GLOSTR {
		return nil, fmt.Errorf("%w: %d bytes (expected %d)", ErrInvalidLength, len(buff), NBYTE_GLOSTR)
	}
	frame := make([]uint8, NBIT_GLOSTR)
	for i := range frame {
		frame[i] = uint8(GetBitU(buff, i, 1))
	}
	return frame, nil
}

/* test hamming code of GLONASS navigation string ------------------------------
* test hamming code of GLONASS navigation string (ref [1] 4.7)
* args   : uint8_t *buff    I   GLONASS navigation string with hamming code
*                                 buff[ 0]: string bit 85-78
*                                 buff[ 1]: string bit 77-70
*                                 ...
*                                 buff[10]: string bit  5- 1 (0 padded)
* return : status (true:ok,false:error)
*-----------------------------------------------------------------------------*/
func TestGloStr(buff []uint8) bool {
	var mask_hamming = [8][NBYTE_GLOSTR]uint8{ /* mask of hamming codes */
		{0x55, 0x55, 0x5A, 0xAA, 0xAA, 0xAA, 0xB5, 0x55, 0x6A, 0xD8, 0x08},
		{0x66, 0x66, 0x6C, 0xCC, 0xCC, 0xCC, 0xD9, 0x99, 0xB3, 0x68, 0x10},
		{0x87, 0x87, 0x8F, 0x0F, 0x0F, 0x0F, 0x1E, 0x1E, 0x3C, 0x70, 0x20},
		{0x07, 0xF8, 0x0F, 0xF0, 0x0F, 0xF0, 0x1F, 0xE0, 0x3F, 0x80, 0x40},
		{0xF8, 0x00, 0x0F, 0xFF, 0xF0, 0x00, 0x1F, 0xFF, 0xC0, 0x00, 0x80},
		{0x00, 0x00, 0x0F, 0xFF, 0xFF, 0xFF, 0xE0, 0x00, 0x00, 0x01, 0x00},
		{0xFF, 0xFF, 0xF0, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x02, 0x00},
		{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xF8}}
	var cs uint8
	var n int

	if len(buff) < NBYTE_GLOSTR {
		return false
	}
	for i := 0; i < 8; i++ {
		cs = 0
		for j := 0; j < NBYTE_GLOSTR; j++ {
			cs ^= uint8(bits.OnesCount8(buff[j]&mask_hamming[i][j]) & 1)
		}
		if cs > 0 {
			n++
		}
	}
	return n == 0 || (n == 2 && cs > 0)
}

/* decode packed GLONASS string ------------------------------------------------
* check and correct GLONASS string packed as TestGloStr(), buff is rewritten
* when a bit is corrected
*-----------------------------------------------------------------------------*/
func DecodeGloStrPacked(buff []uint8) (GloStat, error) {
	frame, err := UnpackGloStr(buff)
	if err != nil {
		return GloUncorrectable, err
	}
	stat, err := DecodeGloStr(frame)
	if stat == GloCorrected {
		for i, b := range frame {
			SetBitU(buff, i, 1, uint32(b))
		}
	}
	return stat, err
}
