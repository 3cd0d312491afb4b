// SPDX-License-Identifier: MIT
// Package: lvlsig/indicator

package indicator

import "errors"

// Kind selects the raw-value evaluator of an indicator definition.
type Kind string

const (
	// KindMorlet reads one Morlet-filtered sample per bar from a
	// reversed window of log closes.
	KindMorlet Kind = "morlet"

	// KindDaubMean .. KindDaubCurve reduce the Daubechies parent band
	// of a reversed log-close window to one scalar per bar.
	KindDaubMean     Kind = "daub_mean"
	KindDaubMin      Kind = "daub_min"
	KindDaubMax      Kind = "daub_max"
	KindDaubStd      Kind = "daub_std"
	KindDaubEnergy   Kind = "daub_energy"
	KindDaubNLEnergy Kind = "daub_nl_energy"
	KindDaubCurve    Kind = "daub_curve"

	// KindATR is the average true range over the trailing window.
	KindATR Kind = "atr"

	// KindVariance is the population variance of log-prices or
	// log-returns over the trailing window.
	KindVariance Kind = "variance"

	// KindTrend regresses log closes on the linear Legendre basis and
	// maps the fit's F statistic through the F distribution CDF into
	// a signed score in [-50, 50].
	KindTrend Kind = "trend"
)

// Mode selects how a raw indicator value is compressed into the
// bounded output range.
type Mode string

const (
	// ModeNone passes the raw value through unchanged.
	ModeNone Mode = "none"

	// ModeScaling divides by the rolling IQR without centering,
	// preserving the raw value's sign.
	ModeScaling Mode = "scaling"

	// ModeRange centres on the rolling median before scaling by the
	// rolling IQR.
	ModeRange Mode = "range"
)

// DefaultWindow is the trailing-history length used for rolling
// median/IQR when a definition leaves Window at zero. Roughly one
// trading year of daily bars.
const DefaultWindow = 250

// Def declares one indicator. Name and Kind are mandatory; the
// remaining fields apply per kind as noted and keep their zero-value
// defaults otherwise.
type Def struct {
	Name string `yaml:"name"`
	Kind Kind   `yaml:"kind"`

	// Morlet parameters. Width zero defaults to 2*Period and Lag zero
	// defaults to Width, the conventional centre read-out.
	Period int  `yaml:"period,omitempty"`
	Width  int  `yaml:"width,omitempty"`
	Lag    int  `yaml:"lag,omitempty"`
	Imag   bool `yaml:"imag,omitempty"`

	// Level is the Daubechies decomposition depth for daub_* kinds.
	Level int `yaml:"level,omitempty"`

	// Length is the trailing window in bars: the transform window for
	// daub_* kinds, the averaging window for atr (non-positive
	// degenerates to the single-bar true range), the sample window
	// for variance and the regression window for trend.
	Length int `yaml:"length,omitempty"`

	// UseLog switches atr to log-ratio true ranges.
	UseLog bool `yaml:"use_log,omitempty"`

	// UseChange switches variance from log-prices to log-returns.
	UseChange bool `yaml:"use_change,omitempty"`

	// Compression controls. Window zero defaults to DefaultWindow and
	// C zero defaults to the mode's conventional constant; both are
	// deliberately tunable per indicator, no single value suits all.
	Compress Mode    `yaml:"compress,omitempty"`
	Window   int     `yaml:"window,omitempty"`
	C        float64 `yaml:"c,omitempty"`
}

// LogConfig controls the engine-boundary logger.
type LogConfig struct {
	// Level is a zerolog level name (trace, debug, info, warn, error);
	// empty or unknown falls back to info.
	Level string `yaml:"level"`

	// Pretty switches from JSON lines to the human console writer.
	Pretty bool `yaml:"pretty"`
}

// Config is the root document of an indicator configuration file.
type Config struct {
	Log        LogConfig `yaml:"log"`
	Indicators []Def     `yaml:"indicators"`
}

var (
	// ErrNoIndicators is returned by New when the config declares no
	// indicator definitions.
	ErrNoIndicators = errors.New("indicator: config declares no indicators")

	// ErrName is returned by New for a missing or duplicate name.
	ErrName = errors.New("indicator: indicator names must be unique and non-empty")

	// ErrKind is returned by New for an unrecognised kind.
	ErrKind = errors.New("indicator: unknown kind")

	// ErrMode is returned by New for an unrecognised compress mode.
	ErrMode = errors.New("indicator: unknown compress mode")

	// ErrLength is returned by New when a kind's Length is unusable.
	ErrLength = errors.New("indicator: length not valid for kind")

	// ErrWindow is returned by New when the compression window cannot
	// ever produce a defined IQR.
	ErrWindow = errors.New("indicator: window too small for rolling IQR")

	// ErrNoBars is returned by Compute for an empty bar series.
	ErrNoBars = errors.New("indicator: no bars")

	// errRawUndefined marks a bar whose evaluator produced a
	// non-finite raw, typically a non-positive price inside a
	// log-domain window. Such bars are logged and skipped, never
	// returned to the caller.
	errRawUndefined = errors.New("indicator: raw value not finite")
)
