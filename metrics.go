/*------------------------------------------------------------------------------
* metrics.go : fec decoding metrics
*
*          Copyright (C) 2022-2025 by feng xuebin, All rights reserved.
*
* history : 2022/06/27 1.0  solution metrics for prometheus (plot)
*           2025/03/02 1.1  glonass string and galileo fec decoding metrics
*-----------------------------------------------------------------------------*/
package gnssfec

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

// FecStat counts decoding outcomes of both codecs.
type FecStat struct {
	GloStrs   *prometheus.CounterVec /* glonass strings by status */
	GalFrames *prometheus.CounterVec /* galileo frames by result */
	GalMetric prometheus.Histogram   /* path metric of decoded galileo frames */
}

/* new fec metrics -------------------------------------------------------------
* create fec metrics and register them to reg (nil: not registered)
*-----------------------------------------------------------------------------*/
func NewFecStat(reg prometheus.Registerer) (*FecStat, error) {
	stat := &FecStat{
		GloStrs: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gnssfec_glostr_total",
				Help: "decoded glonass navigation strings by hamming status",
			},
			[]string{"status"},
		),
		GalFrames: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gnssfec_galfec_total",
				Help: "viterbi decoded galileo frames by result",
			},
			[]string{"result"},
		),
		GalMetric: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "gnssfec_galfec_path_metric",
				Help:    "path metric (corrected symbols) of decoded galileo frames",
				Buckets: []float64{0, 1, 2, 4, 8, 16},
			},
		),
	}
	if reg == nil {
		return stat, nil
	}
	for _, c := range []prometheus.Collector{stat.GloStrs, stat.GalFrames, stat.GalMetric} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return stat, nil
}

/* count glonass string status -----------------------------------------------*/
func (stat *FecStat) ObserveGlo(s GloStat) {
	if stat == nil {
		return
	}
	stat.GloStrs.WithLabelValues(s.String()).Inc()
}

/* count galileo frame result ------------------------------------------------*/
func (stat *FecStat) ObserveGal(metric int, err error) {
	if stat == nil {
		return
	}
	switch {
	case err == nil:
		stat.GalFrames.WithLabelValues("ok").Inc()
		stat.GalMetric.Observe(float64(metric))
	case errors.Is(err, ErrNoValidPath):
		stat.GalFrames.WithLabelValues("nopath").Inc()
	default:
		stat.GalFrames.WithLabelValues("error").Inc()
	}
}

/* write metrics to textfile (node exporter textfile collector format) -------*/
func WriteFecStat(file string, g prometheus.Gatherer) error {
	Trace(4, "writefecstat: file=%s\n", file)
	return prometheus.WriteToTextfile(file, g)
}
