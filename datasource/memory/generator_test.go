package memory

import (
	"math"
	"testing"

	"github.com/go-sif/parsum/errors"
	"github.com/stretchr/testify/require"
)

func TestGenerateIsDeterministic(t *testing.T) {
	a, err := Generate(&GeneratorConf{Size: 1000, Seed: 42})
	require.Nil(t, err)
	b, err := Generate(&GeneratorConf{Size: 1000, Seed: 42})
	require.Nil(t, err)
	c, err := Generate(&GeneratorConf{Size: 1000, Seed: 43})
	require.Nil(t, err)
	require.Equal(t, 1000, a.Len())
	require.Equal(t, a.Fingerprint(), b.Fingerprint())
	require.NotEqual(t, a.Fingerprint(), c.Fingerprint())
}

func TestGenerateDefaultRange(t *testing.T) {
	buf, err := Generate(&GeneratorConf{Size: 10_000, Seed: 1})
	require.Nil(t, err)
	for i := 0; i < buf.Len(); i++ {
		require.True(t, buf.At(i) >= DefaultMinValue && buf.At(i) <= DefaultMaxValue)
	}
}

func TestGenerateCustomRange(t *testing.T) {
	buf, err := Generate(&GeneratorConf{Size: 5_000, Seed: 1, HasRange: true, MinValue: -3, MaxValue: 3})
	require.Nil(t, err)
	for i := 0; i < buf.Len(); i++ {
		require.True(t, buf.At(i) >= -3 && buf.At(i) <= 3)
	}
	single, err := Generate(&GeneratorConf{Size: 10, Seed: 1, HasRange: true, MinValue: 7, MaxValue: 7})
	require.Nil(t, err)
	for i := 0; i < single.Len(); i++ {
		require.EqualValues(t, 7, single.At(i))
	}
}

func TestGenerateEmpty(t *testing.T) {
	buf, err := Generate(&GeneratorConf{Size: 0, Seed: 1})
	require.Nil(t, err)
	require.Equal(t, 0, buf.Len())
}

func TestGenerateRejectsInvalidConf(t *testing.T) {
	_, err := Generate(&GeneratorConf{Size: -1})
	require.IsType(t, errors.InvalidBufferLengthError{}, err)
	_, err = Generate(&GeneratorConf{Size: 10, HasRange: true, MinValue: 5, MaxValue: 4})
	require.NotNil(t, err)
}

func TestGenerateRejectsOverflow(t *testing.T) {
	_, err := Generate(&GeneratorConf{Size: 4, HasRange: true, MinValue: 1, MaxValue: math.MaxInt64 / 2})
	require.IsType(t, errors.OverflowError{}, err)
	_, err = Generate(&GeneratorConf{Size: 2, HasRange: true, MinValue: 1, MaxValue: math.MaxInt64 / 2})
	require.Nil(t, err)
}

func TestGenerateZeroRange(t *testing.T) {
	buf, err := Generate(&GeneratorConf{Size: 10, Seed: 1, HasRange: true, MinValue: 0, MaxValue: 0})
	require.Nil(t, err)
	require.Equal(t, 10, buf.Len())
	for i := 0; i < buf.Len(); i++ {
		require.EqualValues(t, 0, buf.At(i))
	}
	// without HasRange the bounds are ignored
	buf, err = Generate(&GeneratorConf{Size: 10, Seed: 1, MinValue: -50, MaxValue: -40})
	require.Nil(t, err)
	for i := 0; i < buf.Len(); i++ {
		require.True(t, buf.At(i) >= DefaultMinValue && buf.At(i) <= DefaultMaxValue)
	}
}

func TestGenerateNilConf(t *testing.T) {
	buf, err := Generate(nil)
	require.Nil(t, err)
	require.Equal(t, 0, buf.Len())
}
