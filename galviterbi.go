/*------------------------------------------------------------------------------
* galviterbi.go : Galileo navigation message FEC viterbi decoder
*
*          Copyright (C) 2022-2025 by feng xuebin, All rights reserved.
*
* references :
*     [1] European GNSS (Galileo) Open Service Signal In Space Interface
*         Control Document, Issue 2.0, 2021 (4.1.4 FEC coding)
*     [2] MIT 6.02 Introduction to EECS II, Fall 2010, chapter 8 viterbi
*         decoding of convolutional codes
*
* history : 2025/03/02 1.0  new
*-----------------------------------------------------------------------------*/
package gnssfec

import (
	"fmt"
)

// GalTrellis is the trellis of one decoding, (n+1) columns of NSTATE_GAL
// nodes. Column 0 holds only the all-zero state.
type GalTrellis struct {
	n     int
	unrch int32 /* metric of unreachable node */
	nodes []TrellisNode
}

/* new trellis -----------------------------------------------------------------
* build and relax trellis for received hard bits
* args   : uint8_t *hard    I   received hard bits (2*n)
*          bool   invert    I   second branch inverted by encoder
* return : trellis, error
*-----------------------------------------------------------------------------*/
func NewGalTrellis(hard []uint8, invert bool) (*GalTrellis, error) {
	if len(hard) == 0 || len(hard)%2 != 0 {
		return nil, fmt.Errorf("%w: %d symbols", ErrInvalidLength, len(hard))
	}
	if err := checkbits(hard, 0); err != nil {
		return nil, err
	}
	n := len(hard) / 2
	tr := &GalTrellis{
		n:     n,
		unrch: int32(2*n + 1),
		nodes: make([]TrellisNode, (n+1)*NSTATE_GAL),
	}
	for i := range tr.nodes {
		tr.nodes[i].Metric = tr.unrch
	}
	tr.nodes[0] = TrellisNode{Metric: 0, Reach: true}

	for t := 0; t < n; t++ {
		r1, r2 := hard[2*t], hard[2*t+1]
		if invert {
			r2 ^= 1
		}
		col, next := tr.col(t), tr.col(t+1)

		for s := 0; s < NSTATE_GAL; s++ {
			if !col[s].Reach {
				continue
			}
			for bit := uint8(0); bit <= 1; bit++ {
				o1, o2 := galencbit(bit, uint8(s))
				bm := int32(o1^r1) + int32(o2^r2)
				ns := galnextstate(bit, uint8(s))

				if m := col[s].Metric + bm; m < next[ns].Metric {
					next[ns] = TrellisNode{Metric: m, Prev: uint8(s), Reach: true}
				}
			}
		}
	}
	return tr, nil
}

func (tr *GalTrellis) col(t int) []TrellisNode {
	return tr.nodes[t*NSTATE_GAL : (t+1)*NSTATE_GAL]
}

// N returns the number of message bits of the trellis.
func (tr *GalTrellis) N() int { return tr.n }

func (tr *GalTrellis) Node(t, s int) TrellisNode { return tr.nodes[t*NSTATE_GAL+s] }
func (tr *GalTrellis) Metric(t, s int) int32 { return tr.Node(t, s).Metric }
func (tr *GalTrellis) Reach(t, s int) bool { return tr.Node(t, s).Reach }
func (tr *GalTrellis) Prev(t, s int) int { return int(tr.Node(t, s).Prev) }

/* select final state ----------------------------------------------------------
* select the final state of the trellis by termination mode
* args   : int    mode      I   termination mode (VITMODE_???)
* return : state, path metric, error (ErrNoValidPath)
*-----------------------------------------------------------------------------*/
func (tr *GalTrellis) Best(mode int) (int, int32, error) {
	last := tr.col(tr.n)

	switch mode {
	case VITMODE_TAIL:
		if !last[0].Reach {
			return 0, 0, fmt.Errorf("%w: zero state unreachable", ErrNoValidPath)
		}
		return 0, last[0].Metric, nil
	case VITMODE_MIN, VITMODE_STRICT:
	default:
		return 0, 0, fmt.Errorf("%w: viterbi mode %d", ErrInvalidOpt, mode)
	}
	best := -1
	for s := range last {
		if last[s].Reach && (best < 0 || last[s].Metric < last[best].Metric) {
			best = s
		}
	}
	if best < 0 {
		return 0, 0, fmt.Errorf("%w: no reachable final state", ErrNoValidPath)
	}
	if mode == VITMODE_STRICT && last[best].Metric != 0 {
		return 0, 0, fmt.Errorf("%w: min metric %d", ErrNoValidPath, last[best].Metric)
	}
	return best, last[best].Metric, nil
}

/* trace back message bits from final state ----------------------------------*/
func (tr *GalTrellis) Traceback(state int) []uint8 {
	msg := make([]uint8, tr.n)
	s := state
	for t := tr.n; t > 0; t-- {
		msg[t-1] = uint8(s >> (NREG_GAL - 1))
		s = tr.Prev(t, s)
	}
	return msg
}

/* decode Galileo FEC ----------------------------------------------------------
* viterbi decoding of rate 1/2, constraint length 7 convolutional code
* args   : int8_t *syms     I   received soft symbols (2*n, -1:hard 1)
*          FecOpt *opt      I   fec options (nil: system options)
* return : message bits (n), path metric of decoded path, error
*-----------------------------------------------------------------------------*/
func DecodeGalFec(syms []int8, opt *FecOpt) ([]uint8, int, error) {
	if opt == nil {
		o := GetFecOpts()
		opt = &o
	}
	Trace(4, "decode_galfec: n=%d invert=%d mode=%d\n", len(syms), opt.Invert2nd, opt.VitMode)

	tr, err := NewGalTrellis(Soft2Hard(syms), opt.Invert2nd != 0)
	if err != nil {
		return nil, 0, err
	}
	state, metric, err := tr.Best(opt.VitMode)
	if err != nil {
		Trace(2, "decode_galfec: %v\n", err)
		return nil, 0, err
	}
	msg := tr.Traceback(state)

	Trace(3, "decode_galfec: state=%d metric=%d\n", state, metric)
	Traceb(5, msg)
	return msg, int(metric), nil
}
