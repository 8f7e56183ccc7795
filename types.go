/*------------------------------------------------------------------------------
* types.go : gnssfec types and constants
*
*          Copyright (C) 2022-2025 by feng xuebin, All rights reserved.
*
 */
package gnssfec

const (
	NBIT_GLOSTR  = 85 /* bits of GLONASS navigation string */
	NDATA_GLOSTR = 77 /* data bits of GLONASS string (bit 85-9) */
	NCHK_GLOSTR  = 8  /* hamming check bits of GLONASS string (bit 8-1) */
	NBYTE_GLOSTR = 11 /* bytes of packed GLONASS string */

	NREG_GAL   = 6               /* galileo fec shift register length */
	NSTATE_GAL = 1 << NREG_GAL   /* number of encoder states */
	NTAIL_GAL  = NREG_GAL        /* galileo fec tail bits */
	G1_GAL     = uint8(0x39)     /* G1=171o taps on register (d1,d2,d3,d6) */
	G2_GAL     = uint8(0x1B)     /* G2=133o taps on register (d2,d3,d5,d6) */
	MSB_GAL    = NSTATE_GAL >> 1 /* register bit of most recent input */

	VITMODE_MIN    = 0 /* viterbi termination: minimum path metric */
	VITMODE_STRICT = 1 /* viterbi termination: exact zero metric */
	VITMODE_TAIL   = 2 /* viterbi termination: all-zero final state */
)

/* GLONASS string decoding status */
type GloStat int

const (
	GloValid         GloStat = iota /* no error */
	GloCorrected                    /* single error corrected */
	GloUncorrectable                /* two or more errors */
)

func (s GloStat) String() string {
	switch s {
	case GloValid:
		return "valid"
	case GloCorrected:
		return "corrected"
	case GloUncorrectable:
		return "uncorrectable"
	}
	return "unknown"
}

/* GLONASS string checksums C1..C7 and C_sigma (ref [1] 4.7) */
type GloCheck struct {
	C    [7]uint8 /* checksums C1..C7 */
	Csig uint8    /* overall checksum C_sigma */
}

/* number of checksums C1..C7 equal to 1 */
func (c GloCheck) Ones() int {
	var n int
	for _, v := range c.C {
		n += int(v)
	}
	return n
}

type TrellisNode struct { /* galileo fec trellis node */
	Metric int32 /* accumulated path metric */
	Prev   uint8 /* predecessor state */
	Reach  bool  /* reachable flag */
}

type FecOpt struct { /* fec options type */
	Invert2nd  int    /* invert second branch of galileo fec (0:off,1:on) */
	VitMode    int    /* viterbi termination mode (VITMODE_???) */
	TraceLevel int    /* debug trace level (0:off) */
	TraceFile  string /* debug trace file */
}

type Opt struct { /* option type */
	Name      string   /* option name */
	Format    byte     /* option format (0:int,1:float64,2:string,3:enum) */
	VarInt    *int     /* pointer to option variable */
	VarFloat  *float64 /* pointer to option variable */
	VarString *string  /* pointer to option variable */
	Comment   string   /* option comment/enum labels/unit */
}
