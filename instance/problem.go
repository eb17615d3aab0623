package instance

import (
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/ringtsp/matrix"
	"github.com/katalvlaran/ringtsp/tsp"
)

// Problem is a YAML problem file:
//
//	name: seven-cities
//	algo: exact            # exact | ring
//	one_based: true
//	matrix: |
//	  [[0, 12, inf], [12, 0, 8], [inf, 8, 0]]
//	ring:  {iterations: 200, learning_rate: 0.6, neighborhood: 1.0, prune_threshold: 0.05}
//	exact: {max_cities: 20}
//
// matrix may also be a YAML sequence of sequences, where inf, .inf, ∞ and -
// mark unreachable pairs.
type Problem struct {
	Name      string      `yaml:"name"`
	Algo      string      `yaml:"algo"`
	OneBased  bool        `yaml:"one_based"`
	Symmetric bool        `yaml:"symmetric"`
	Matrix    CostMatrix  `yaml:"matrix"`
	Ring      RingConfig  `yaml:"ring"`
	Exact     ExactConfig `yaml:"exact"`
}

// RingConfig overrides the neural ring defaults; unset fields keep them.
type RingConfig struct {
	Iterations     *int     `yaml:"iterations"`
	LearningRate   *float64 `yaml:"learning_rate"`
	Neighborhood   *float64 `yaml:"neighborhood"`
	PruneThreshold *float64 `yaml:"prune_threshold"`
}

// ExactConfig overrides the exact solver defaults.
type ExactConfig struct {
	MaxCities *int `yaml:"max_cities"`
}

// CostMatrix decodes either a literal string or a YAML sequence of rows.
type CostMatrix struct {
	*matrix.Dense
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (c *CostMatrix) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		d, err := ParseMatrix(node.Value)
		if err != nil {
			return errors.Wrapf(err, "line %d", node.Line)
		}
		c.Dense = d
		return nil

	case yaml.SequenceNode:
		rows := make([][]float64, len(node.Content))
		for i, rowNode := range node.Content {
			if rowNode.Kind != yaml.SequenceNode {
				return errors.Wrapf(ErrBadMatrix, "line %d: row %d is not a sequence", rowNode.Line, i)
			}
			rows[i] = make([]float64, len(rowNode.Content))
			for j, cell := range rowNode.Content {
				w, err := parseCell(cell.Value)
				if err != nil {
					return errors.Wrapf(ErrBadMatrix, "line %d: cell [%d][%d] %q", cell.Line, i, j, cell.Value)
				}
				rows[i][j] = w
			}
		}
		d, err := fromRows(rows)
		if err != nil {
			return errors.Wrapf(err, "line %d", node.Line)
		}
		c.Dense = d
		return nil

	default:
		return errors.Wrapf(ErrBadMatrix, "line %d: matrix must be a string or a sequence", node.Line)
	}
}

// parseCell reads one scalar cost; strconv already accepts "inf"/"+Inf"/"infinity".
func parseCell(s string) (float64, error) {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "-", "∞", ".inf", "+.inf", "~", "null":
		return math.Inf(1), nil
	}
	return strconv.ParseFloat(s, 64)
}

// Decode reads one problem document. Unknown keys are rejected.
func Decode(r io.Reader) (*Problem, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var p Problem
	if err := dec.Decode(&p); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.Wrap(ErrBadProblem, "empty document")
		}
		return nil, errors.Wrapf(ErrBadProblem, "%v", err)
	}
	if p.Matrix.Dense == nil {
		return nil, errors.Wrap(ErrBadProblem, "matrix is required")
	}
	if _, err := p.Options(); err != nil {
		return nil, err
	}

	return &p, nil
}

// LoadFile opens and decodes a problem file.
func LoadFile(pathname string) (*Problem, error) {
	f, err := os.Open(pathname)
	if err != nil {
		return nil, errors.Wrapf(err, "open problem %q", pathname)
	}
	defer f.Close()

	p, err := Decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "problem %q", pathname)
	}
	if p.Name == "" {
		p.Name = pathname
	}
	return p, nil
}

// Options maps the file onto tsp.Options, starting from tsp.DefaultOptions.
func (p *Problem) Options() (tsp.Options, error) {
	opts := tsp.DefaultOptions()
	opts.Symmetric = p.Symmetric

	if p.Algo != "" {
		algo, err := tsp.ParseAlgo(p.Algo)
		if err != nil {
			return opts, errors.Wrap(ErrBadProblem, err.Error())
		}
		opts.Algo = algo
	}
	if v := p.Exact.MaxCities; v != nil {
		opts.MaxExactCities = *v
	}
	if v := p.Ring.Iterations; v != nil {
		opts.Iterations = *v
	}
	if v := p.Ring.LearningRate; v != nil {
		opts.LearningRate = *v
	}
	if v := p.Ring.Neighborhood; v != nil {
		opts.Neighborhood = *v
	}
	if v := p.Ring.PruneThreshold; v != nil {
		opts.PruneThreshold = *v
	}

	return opts, nil
}
