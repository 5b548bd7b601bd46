package calculator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dispersion/model"
)

func TestUpdate(t *testing.T) {
	cg := []float64{0, 0}
	Update(100, cg, 0.5, 1)

	// vg = 50, vmix = 50.5，第二个容器的来液是第一个容器混合后的浓度
	first := 0.5 / 50.5
	assert.InDelta(t, first, cg[0], 1e-12)
	assert.InDelta(t, 0.5/50.5*first, cg[1], 1e-12)
}

func TestSimulate_FirstRound(t *testing.T) {
	values, err := Simulate(1, 1, model.DefaultParams())
	require.NoError(t, err)
	require.Len(t, values, 1)
	assert.InDelta(t, 0.5/100.5, values[0], 1e-12)

	// 水和工具浓度互换
	p := model.DefaultParams()
	p.WaterConcentration, p.ToolConcentration = 1, 0
	values, err = Simulate(1, 1, p)
	require.NoError(t, err)
	assert.InDelta(t, 0.99502, values[0], 1e-5)
}

func TestSimulate_Bounds(t *testing.T) {
	p := model.DefaultParams()
	for _, n := range []int{2, 3, 10, 100} {
		values, err := Simulate(n, 1, p)
		require.NoError(t, err)
		assert.Greater(t, values[0], p.WaterConcentration, "n=%d", n)
		assert.Less(t, values[0], p.ToolConcentration, "n=%d", n)
	}
}

func TestSimulate_Converges(t *testing.T) {
	for _, n := range model.Containers {
		values, err := Simulate(n, model.Rounds, model.DefaultParams())
		require.NoError(t, err)
		require.Len(t, values, model.Rounds)

		for i := 1; i < len(values); i++ {
			assert.GreaterOrEqual(t, values[i], values[i-1], "n=%d round=%d", n, i+1)
		}
		last := values[len(values)-1]
		assert.InDelta(t, last, values[len(values)-2], 1e-4, "n=%d", n)
		assert.LessOrEqual(t, last, 1.0)
	}
}

func TestSimulate_Idempotent(t *testing.T) {
	a, err := Simulate(10, 200, model.DefaultParams())
	require.NoError(t, err)
	b, err := Simulate(10, 200, model.DefaultParams())
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestSimulate_Invalid(t *testing.T) {
	p := model.DefaultParams()

	_, err := Simulate(0, 10, p)
	assert.ErrorIs(t, err, ErrInvalidContainers)

	_, err = Simulate(1, 0, p)
	assert.ErrorIs(t, err, ErrInvalidRounds)

	p.ToolVolume = 0
	_, err = Simulate(1, 10, p)
	assert.ErrorIs(t, err, ErrInvalidVolume)
}

func BenchmarkSimulate(b *testing.B) {
	p := model.DefaultParams()
	for i := 0; i < b.N; i++ {
		_, _ = Simulate(100, 1000, p)
	}
}

func TestSimulate_NonFinite(t *testing.T) {
	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		p := model.DefaultParams()
		p.WaterVolume = v
		_, err := Simulate(1, 1, p)
		assert.ErrorIs(t, err, ErrInvalidVolume, "vw=%g", v)

		p = model.DefaultParams()
		p.ToolVolume = v
		_, err = Simulate(1, 1, p)
		assert.ErrorIs(t, err, ErrInvalidVolume, "vb=%g", v)

		p = model.DefaultParams()
		p.ToolConcentration = v
		_, err = Simulate(1, 1, p)
		assert.ErrorIs(t, err, ErrInvalidParams, "cb0=%g", v)
	}
}
