/*------------------------------------------------------------------------------
* galfec.go : Galileo navigation message FEC convolutional encoder
*
*          Copyright (C) 2022-2025 by feng xuebin, All rights reserved.
*
* references :
*     [1] European GNSS (Galileo) Open Service Signal In Space Interface
*         Control Document, Issue 2.0, 2021 (4.1.4 FEC coding)
*
* notes   : the encoder register holds the last 6 input bits, bit 5 the most
*           recent (d1) and bit 0 the oldest (d6).
*
* history : 2025/03/02 1.0  new
*-----------------------------------------------------------------------------*/
package gnssfec

import (
	"math/bits"
)

/* encoder outputs of one input bit for register state -----------------------*/
func galencbit(bit, state uint8) (uint8, uint8) {
	o1 := bit ^ uint8(bits.OnesCount8(state&G1_GAL)&1)
	o2 := bit ^ uint8(bits.OnesCount8(state&G2_GAL)&1)
	return o1, o2
}

/* shift input bit into register state ---------------------------------------*/
func galnextstate(bit, state uint8) uint8 {
	return bit<<(NREG_GAL-1) | state>>1
}

/* hard bits to soft symbols (1:-1,0:+1) -------------------------------------*/
func Hard2Soft(hard []uint8) []int8 {
	syms := make([]int8, len(hard))
	for i, b := range hard {
		if b == 1 {
			syms[i] = -1
		} else {
			syms[i] = 1
		}
	}
	return syms
}

/* soft symbols to hard bits (-1:1,others:0) ---------------------------------*/
func Soft2Hard(syms []int8) []uint8 {
	hard := make([]uint8, len(syms))
	for i, v := range syms {
		if v == -1 {
			hard[i] = 1
		}
	}
	return hard
}

/* append tail bits ------------------------------------------------------------
* append the 6 zero tail bits of Galileo message word (ref [1] 4.2.2)
*-----------------------------------------------------------------------------*/
func GalTail(msg []uint8) []uint8 {
	out := make([]uint8, len(msg), len(msg)+NTAIL_GAL)
	copy(out, msg)
	return append(out, make([]uint8, NTAIL_GAL)...)
}

/* encode Galileo FEC ----------------------------------------------------------
* rate 1/2 convolutional encoding, constraint length 7 (ref [1] 4.1.4)
* args   : uint8_t *msg     I   message bits (tail bits appended by caller)
*          bool   invert    I   invert second branch (G2)
* return : soft symbols (2*len(msg), G1 G2 G1 G2 ...), error
*-----------------------------------------------------------------------------*/
func EncodeGalFec(msg []uint8, invert bool) ([]int8, error) {
	var state uint8

	Trace(4, "encode_galfec: n=%d invert=%v\n", len(msg), invert)

	if err := checkbits(msg, 0); err != nil {
		return nil, err
	}
	if len(msg) == 0 {
		return nil, ErrInvalidLength
	}
	hard := make([]uint8, 2*len(msg))
	for i, b := range msg {
		o1, o2 := galencbit(b, state)
		if invert {
			o2 ^= 1
		}
		hard[2*i], hard[2*i+1] = o1, o2
		state = galnextstate(b, state)
	}
	Traceb(5, hard)
	return Hard2Soft(hard), nil
}
