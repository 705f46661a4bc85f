package winding

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestSolve_DispatchesOnMode(t *testing.T) {
	res, err := Solve(coilRequest(), Options{})
	require.NoError(t, err)
	assert.Equal(t, CoilLength, res.Mode)
	require.NotNil(t, res.CoilLength)
	assert.Nil(t, res.EndPosition)
	assert.InDelta(t, 1603.425, res.CoilLength.CoilLength, 0.0015)

	res, err = Solve(endRequest(), Options{})
	require.NoError(t, err)
	assert.Equal(t, EndPosition, res.Mode)
	require.NotNil(t, res.EndPosition)
	assert.Nil(t, res.CoilLength)
	assert.Equal(t, 61.25, res.EndPosition.PipesOnLastLayer)
}

func TestSolve_ValidationError(t *testing.T) {
	r := coilRequest()
	r.PipeDiameter = 0
	res, err := Solve(r, Options{})
	assert.EqualError(t, err, "pipe diameter must be greater than 0")
	assert.Nil(t, res.CoilLength)
	assert.Nil(t, res.EndPosition)
}

func TestSolve_LogsLayers(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	SetLogger(zap.New(core))
	defer SetLogger(nil)

	res, err := Solve(coilRequest(), Options{})
	require.NoError(t, err)

	entries := logs.FilterMessage("layer wound").All()
	assert.Len(t, entries, res.CoilLength.Layers)
	assert.Equal(t, "coil-length", entries[0].ContextMap()["mode"])
}
