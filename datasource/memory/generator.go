package memory

import (
	"fmt"
	"math"
	"math/bits"
	"math/rand"

	"github.com/go-sif/parsum"
	"github.com/go-sif/parsum/errors"
)

const (
	// DefaultSize is the number of values generated by the benchmark driver
	DefaultSize = 10_000_000
	// DefaultSeed is the random seed used by the benchmark driver
	DefaultSeed = 42
	// DefaultMinValue is the smallest value generated when no range is configured
	DefaultMinValue = 1
	// DefaultMaxValue is the largest value generated when no range is configured
	DefaultMaxValue = 100
)

// GeneratorConf configures Generate
type GeneratorConf struct {
	Size     int   // The number of values to generate. May be 0.
	Seed     int64 // The seed for the pseudo-random source. Equal seeds produce equal Buffers.
	HasRange bool  // Iff true, MinValue and MaxValue bound the generated values. Otherwise they are [DefaultMinValue, DefaultMaxValue].
	MinValue int64 // The smallest value to generate (inclusive)
	MaxValue int64 // The largest value to generate (inclusive)
}

// Generate produces a Buffer of pseudo-random values uniformly distributed in
// [MinValue, MaxValue]. It fails with an errors.OverflowError if a Buffer of
// this Size and range could have a sum outside the range of an int64. A nil
// conf generates an empty Buffer.
func Generate(conf *GeneratorConf) (*parsum.Buffer, error) {
	if conf == nil {
		conf = &GeneratorConf{}
	}
	minValue, maxValue := int64(DefaultMinValue), int64(DefaultMaxValue)
	if conf.HasRange {
		minValue, maxValue = conf.MinValue, conf.MaxValue
	}
	if conf.Size < 0 {
		return nil, errors.InvalidBufferLengthError{Length: conf.Size}
	}
	if maxValue < minValue {
		return nil, fmt.Errorf("MaxValue %d is smaller than MinValue %d", maxValue, minValue)
	}
	magnitude := absUint64(minValue)
	if m := absUint64(maxValue); m > magnitude {
		magnitude = m
	}
	if hi, lo := bits.Mul64(uint64(conf.Size), magnitude); hi != 0 || lo > math.MaxInt64 {
		return nil, errors.OverflowError{Length: conf.Size, MaxValue: magnitude}
	}
	span := maxValue - minValue + 1
	if span <= 0 {
		return nil, fmt.Errorf("Value range [%d, %d] is too wide", minValue, maxValue)
	}

	rng := rand.New(rand.NewSource(conf.Seed))
	values := make([]int64, conf.Size)
	for i := range values {
		values[i] = minValue + rng.Int63n(span)
	}
	return parsum.NewBuffer(values)
}

func absUint64(v int64) uint64 {
	if v < 0 {
		return uint64(-(v + 1)) + 1
	}
	return uint64(v)
}
