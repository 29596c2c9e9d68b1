// 19 Oct 2026

package readsim

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// ErrBadParam is wrapped by every parameter validation failure.
var ErrBadParam = errors.New("bad distribution parameter")

// Default values. These are the numbers the simulator was tuned with.
const (
	DfltMinLength  uint32  = 20
	DfltMaxLength  uint32  = 4_000_000
	DfltMeanLength float64 = 10000.0
	DfltLenShape   float64 = 1.2

	DfltMeanQscore float64 = 18.049912521373
	DfltQscoreSD   float64 = 2.0
	DfltMinQscore  float64 = 1.8
	DfltMaxQscore  float64 = 40.877296
	DfltSkew       float64 = 1.5
	DfltShift      float64 = 1.8

	DfltProbCommon       float64 = 0.85
	DfltProbUnclassified float64 = 0.1
	DfltProbDash         float64 = 0.005
	DfltNBarcode         int     = 96
)

// Params holds every constant that shapes the sampled fields.
// The zero value is not useful. Start from DefaultParams().
type Params struct {
	MinLength  uint32  `toml:"min_length" yaml:"min_length"`
	MaxLength  uint32  `toml:"max_length" yaml:"max_length"`
	MeanLength float64 `toml:"mean_length" yaml:"mean_length"`
	LenShape   float64 `toml:"length_shape" yaml:"length_shape"`

	MeanQscore float64 `toml:"mean_qscore" yaml:"mean_qscore"`
	QscoreSD   float64 `toml:"qscore_sd" yaml:"qscore_sd"`
	MinQscore  float64 `toml:"min_qscore" yaml:"min_qscore"`
	MaxQscore  float64 `toml:"max_qscore" yaml:"max_qscore"`
	Skew       float64 `toml:"skew" yaml:"skew"`   // below mean multiply, above mean divide
	Shift      float64 `toml:"shift" yaml:"shift"` // applied on both sides

	ProbCommon       float64 `toml:"prob_common" yaml:"prob_common"`
	ProbUnclassified float64 `toml:"prob_unclassified" yaml:"prob_unclassified"`
	ProbDash         float64 `toml:"prob_dash" yaml:"prob_dash"`
	NBarcode         int     `toml:"n_barcode" yaml:"n_barcode"`
}

// DefaultParams returns the built in constants.
func DefaultParams() Params {
	return Params{
		MinLength:        DfltMinLength,
		MaxLength:        DfltMaxLength,
		MeanLength:       DfltMeanLength,
		LenShape:         DfltLenShape,
		MeanQscore:       DfltMeanQscore,
		QscoreSD:         DfltQscoreSD,
		MinQscore:        DfltMinQscore,
		MaxQscore:        DfltMaxQscore,
		Skew:             DfltSkew,
		Shift:            DfltShift,
		ProbCommon:       DfltProbCommon,
		ProbUnclassified: DfltProbUnclassified,
		ProbDash:         DfltProbDash,
		NBarcode:         DfltNBarcode,
	}
}

// Validate checks that the distributions can be built from p.
func (p *Params) Validate() error {
	bad := func(format string, a ...any) error {
		return fmt.Errorf("%w: "+format, append([]any{ErrBadParam}, a...)...)
	}
	// Comparisons are written so that NaN fails them.
	switch {
	case !(p.LenShape > 0):
		return bad("gamma shape %v must be positive", p.LenShape)
	case !(p.MeanLength > 0):
		return bad("mean length %v must be positive", p.MeanLength)
	case p.MinLength > p.MaxLength:
		return bad("min length %d > max length %d", p.MinLength, p.MaxLength)
	case math.IsNaN(p.MeanQscore) || math.IsInf(p.MeanQscore, 0):
		return bad("mean q-score %v must be a number", p.MeanQscore)
	case !(p.QscoreSD > 0):
		return bad("q-score standard deviation %v must be positive", p.QscoreSD)
	case !(p.MinQscore <= p.MaxQscore):
		return bad("min q-score %v > max q-score %v", p.MinQscore, p.MaxQscore)
	case !(p.Skew > 0):
		return bad("skew %v must be positive", p.Skew)
	case math.IsNaN(p.Shift):
		return bad("shift must be a number")
	case !(p.ProbCommon >= 0) || !(p.ProbUnclassified >= 0) || !(p.ProbDash >= 0):
		return bad("barcode probabilities must not be negative")
	case !(p.ProbCommon+p.ProbUnclassified+p.ProbDash <= 1):
		return bad("barcode probabilities sum to more than 1")
	case p.NBarcode < 1 || p.NBarcode > 99:
		return bad("number of barcodes %d not in 1..99", p.NBarcode)
	}
	return nil
}

// LoadParams starts from the defaults and overwrites whatever is set in
// fname. The format is chosen by the file extension, .toml, .yaml or .yml.
// The result is validated.
func LoadParams(fname string) (Params, error) {
	p := DefaultParams()
	b, err := os.ReadFile(fname)
	if err != nil {
		return p, fmt.Errorf("params file: %w", err)
	}
	switch ext := strings.ToLower(filepath.Ext(fname)); ext {
	case ".toml":
		if _, err := toml.Decode(string(b), &p); err != nil {
			return p, fmt.Errorf("params file %s: %w", fname, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &p); err != nil {
			return p, fmt.Errorf("params file %s: %w", fname, err)
		}
	default:
		return p, fmt.Errorf("params file %s: unknown extension %q, want .toml, .yaml or .yml", fname, ext)
	}
	if err := p.Validate(); err != nil {
		return p, fmt.Errorf("params file %s: %w", fname, err)
	}
	return p, nil
}
