package color

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRelativeLuminanceEndpoints(t *testing.T) {
	require.InDelta(t, 0.0, RelativeLuminance(Opaque(0, 0, 0)), 1e-12)
	require.InDelta(t, 1.0, RelativeLuminance(Opaque(1, 1, 1)), 1e-12)
}

func TestRelativeLuminanceIgnoresAlpha(t *testing.T) {
	opaque := New(0.4, 0.6, 0.2, 1)
	translucent := New(0.4, 0.6, 0.2, 0.1)
	require.Equal(t, RelativeLuminance(opaque), RelativeLuminance(translucent))
}

func TestContrastRatioSelf(t *testing.T) {
	for _, c := range []Color{
		Opaque(0, 0, 0),
		Opaque(1, 1, 1),
		Opaque(0.3, 0.7, 0.2),
	} {
		require.Equal(t, 1.0, ContrastRatio(c, c))
	}
}

func TestContrastRatioSymmetric(t *testing.T) {
	a := Opaque(0.9, 0.1, 0.4)
	b := Opaque(0.2, 0.8, 0.6)
	require.Equal(t, ContrastRatio(a, b), ContrastRatio(b, a))
}

func TestContrastRatioMaximal(t *testing.T) {
	ratio := ContrastRatio(Opaque(1, 1, 1), Opaque(0, 0, 0))
	require.InDelta(t, 21.0, ratio, 1e-9)
}

func TestContrastRatioBounds(t *testing.T) {
	pairs := [][2]Color{
		{Opaque(0.1, 0.1, 0.1), Opaque(0.9, 0.9, 0.9)},
		{Opaque(1, 0, 0), Opaque(0, 0, 1)},
		{Opaque(0.5, 0.5, 0.5), Opaque(0.5, 0.5, 0.5)},
	}
	for _, p := range pairs {
		ratio := ContrastRatio(p[0], p[1])
		require.GreaterOrEqual(t, ratio, 1.0)
		require.LessOrEqual(t, ratio, 21.0)
	}
}

func TestMeetsThresholds(t *testing.T) {
	require.False(t, MeetsAA(4.49))
	require.True(t, MeetsAA(4.5))
	require.False(t, MeetsAAA(6.99))
	require.True(t, MeetsAAA(7.0))
}

func TestAAAImpliesAA(t *testing.T) {
	for ratio := 1.0; ratio <= 21.0; ratio += 0.25 {
		if MeetsAAA(ratio) {
			require.True(t, MeetsAA(ratio), "ratio %v", ratio)
		}
	}
}

func TestLevel(t *testing.T) {
	require.Equal(t, GradeFail, Level(3.0))
	require.Equal(t, GradeAA, Level(4.5))
	require.Equal(t, GradeAA, Level(6.9))
	require.Equal(t, GradeAAA, Level(7.0))
	require.Equal(t, GradeAAA, Level(21.0))
}
