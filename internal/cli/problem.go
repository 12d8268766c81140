package cli

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/markuspf/libsemigroups/pkg/element"
	"github.com/markuspf/libsemigroups/pkg/errors"
)

// Element type names accepted in problem files.
const (
	typeTransformation = "transformation"
	typePartialPerm    = "partial-perm"
	typeBooleanMat     = "boolean-matrix"
	typeBipartition    = "bipartition"
	typePBR            = "pbr"
	typeMatrix         = "matrix"
)

// Semiring names accepted for matrix problems.
const (
	semiringIntegers        = "integers"
	semiringMaxPlus         = "max-plus"
	semiringMinPlus         = "min-plus"
	semiringTropicalMaxPlus = "tropical-max-plus"
	semiringTropicalMinPlus = "tropical-min-plus"
	semiringNatural         = "natural"
)

// Problem is a parsed problem file: an element type, its generators, and the
// engine settings.
//
// A problem file looks like:
//
//	type = "transformation"
//
//	[engine]
//	batch_size = 1024
//	report = true
//
//	[[generators]]
//	images = [1, 0, 2, 3, 4, 5]
type Problem struct {
	Type       string          `toml:"type"`
	Semiring   string          `toml:"semiring"`
	Threshold  int64           `toml:"threshold"`
	Period     int64           `toml:"period"`
	Engine     EngineConfig    `toml:"engine"`
	Generators []GeneratorSpec `toml:"generators"`
}

// EngineConfig is the [engine] table of a problem file.
type EngineConfig struct {
	BatchSize  int  `toml:"batch_size"`
	MaxThreads int  `toml:"max_threads"`
	Report     bool `toml:"report"`
}

// GeneratorSpec is one [[generators]] entry. Exactly one of its fields is
// used, depending on the problem type. Partial permutation images use -1 for
// undefined points.
type GeneratorSpec struct {
	Images []int64   `toml:"images"`
	Rows   [][]int64 `toml:"rows"`
	Blocks []int64   `toml:"blocks"`
	Adj    [][]int64 `toml:"adj"`
}

// LoadProblem reads and parses a problem file. The raw bytes are returned
// alongside so callers can derive cache keys from the exact file content.
func LoadProblem(path string) (*Problem, []byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "problem file %s", path)
		}
		return nil, nil, errors.Wrap(errors.ErrCodeInvalidProblem, err, "read %s", path)
	}
	p, err := ParseProblem(data)
	if err != nil {
		return nil, nil, err
	}
	return p, data, nil
}

// ParseProblem parses problem file content.
func ParseProblem(data []byte) (*Problem, error) {
	var p Problem
	if err := toml.Unmarshal(data, &p); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidProblem, err, "decode problem file")
	}
	if p.Type == "" {
		return nil, errors.New(errors.ErrCodeInvalidProblem, "missing element type")
	}
	if len(p.Generators) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidProblem, "no generators given")
	}
	if p.Engine.BatchSize < 0 {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "batch_size must be positive")
	}
	if p.Engine.MaxThreads < 0 {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "max_threads must be non-negative")
	}
	return &p, nil
}

// BuildGenerators converts the generator specs into elements of the problem
// type.
func (p *Problem) BuildGenerators() ([]element.Element, error) {
	gens := make([]element.Element, 0, len(p.Generators))
	for i, spec := range p.Generators {
		g, err := p.buildGenerator(spec)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidProblem, err, "generator %d", i)
		}
		gens = append(gens, g)
	}
	return gens, nil
}

func (p *Problem) buildGenerator(spec GeneratorSpec) (element.Element, error) {
	switch p.Type {
	case typeTransformation:
		return element.NewTransformation(toUint32s(spec.Images))
	case typePartialPerm:
		return element.NewPartialPerm(toUint32s(spec.Images))
	case typeBooleanMat:
		rows := make([][]bool, len(spec.Rows))
		for i, row := range spec.Rows {
			rows[i] = make([]bool, len(row))
			for j, v := range row {
				rows[i][j] = v != 0
			}
		}
		return element.NewBooleanMat(rows)
	case typeBipartition:
		return element.NewBipartition(toUint32s(spec.Blocks))
	case typePBR:
		adj := make([][]uint32, len(spec.Adj))
		for i, row := range spec.Adj {
			adj[i] = toUint32s(row)
		}
		return element.NewPBR(adj)
	case typeMatrix:
		sr, err := p.buildSemiring()
		if err != nil {
			return nil, err
		}
		return element.NewMatrix(spec.Rows, sr)
	default:
		return nil, errors.New(errors.ErrCodeUnsupported, "unknown element type %q", p.Type)
	}
}

func (p *Problem) buildSemiring() (element.Semiring, error) {
	switch p.Semiring {
	case semiringIntegers, "":
		return element.Integers{}, nil
	case semiringMaxPlus:
		return element.MaxPlus{}, nil
	case semiringMinPlus:
		return element.MinPlus{}, nil
	case semiringTropicalMaxPlus:
		return element.TropicalMaxPlus{Threshold: p.Threshold}, nil
	case semiringTropicalMinPlus:
		return element.TropicalMinPlus{Threshold: p.Threshold}, nil
	case semiringNatural:
		if p.Period <= 0 {
			return nil, errors.New(errors.ErrCodeInvalidConfig, "natural semiring needs a positive period")
		}
		return element.Natural{Threshold: p.Threshold, Period: p.Period}, nil
	default:
		return nil, errors.New(errors.ErrCodeUnsupported, "unknown semiring %q", p.Semiring)
	}
}

// toUint32s converts TOML integers, mapping -1 to the undefined point.
func toUint32s(vals []int64) []uint32 {
	out := make([]uint32, len(vals))
	for i, v := range vals {
		if v < 0 {
			out[i] = element.UndefinedPoint
		} else {
			out[i] = uint32(v)
		}
	}
	return out
}
