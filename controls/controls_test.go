package controls

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"windingcircle/curve"
	"windingcircle/scene"
)

func newControls(t *testing.T) (*Controls, *scene.Memory) {
	t.Helper()
	store := scene.NewMemory()
	c := New(store)
	c.Log = slog.New(slog.NewTextHandler(io.Discard, nil))
	return c, store
}

func TestDefaults(t *testing.T) {
	c, _ := newControls(t)
	assert.Equal(t, curve.DefaultParams(), c.Params)
	assert.Equal(t, DefaultName, c.Name)
	assert.True(t, c.DeletePrevious)
	assert.False(t, c.LiveUpdate)
}

func TestSetClamps(t *testing.T) {
	c, _ := newControls(t)
	cases := []struct {
		field Field
		in    float64
		want  float64
	}{
		{Radius, 5000, 1000},
		{Radius, -3, 1},
		{Winding, 0, 1},
		{Winding, 7.6, 8},
		{Irregularity, 1.4, 1},
		{VerticalIrregularity, -1, 0},
		{Points, 3, 10},
		{Points, 250.2, 250},
		{Seed, 2000, 1000},
	}
	for _, tc := range cases {
		require.NoError(t, c.Set(tc.field, tc.in))
		assert.Equal(t, tc.want, c.Value(tc.field), "%v <- %v", tc.field, tc.in)
	}
}

func TestStep(t *testing.T) {
	c, _ := newControls(t)
	require.NoError(t, c.Step(Winding, 2))
	assert.Equal(t, 7, c.Params.Winding)
	require.NoError(t, c.Step(Points, -1))
	assert.Equal(t, 90, c.Params.Points)
	require.NoError(t, c.Step(Radius, 1))
	assert.Equal(t, 105.0, c.Params.Radius)

	require.NoError(t, c.Step(FlattenEnds, 1))
	assert.True(t, c.Params.FlattenEnds)
	require.NoError(t, c.Step(FlattenEnds, 1))
	assert.False(t, c.Params.FlattenEnds)
}

func TestReset(t *testing.T) {
	c, store := newControls(t)
	require.NoError(t, c.Set(Seed, 7))
	require.NoError(t, c.Set(LiveUpdate, 1))
	require.NoError(t, c.Set(DeletePrevious, 0))
	c.Reset()
	assert.Equal(t, curve.DefaultParams(), c.Params)
	assert.True(t, c.DeletePrevious)
	assert.False(t, c.LiveUpdate)
	assert.Empty(t, store.Names())
}

func TestLiveUpdate(t *testing.T) {
	c, store := newControls(t)
	var commits []string
	c.OnCommit = func(name string, seq curve.Sequence) {
		commits = append(commits, name)
		assert.Len(t, seq, c.Params.Points+1)
	}

	require.NoError(t, c.Set(Radius, 50))
	assert.Empty(t, commits, "no regeneration while live update is off")

	require.NoError(t, c.Set(LiveUpdate, 1))
	assert.Empty(t, commits, "toggling live update does not regenerate")

	require.NoError(t, c.Set(Radius, 60))
	require.NoError(t, c.Step(Seed, 1))
	assert.Equal(t, []string{DefaultName, DefaultName}, commits)
	assert.Equal(t, []string{DefaultName}, store.Names())

	seq, err := store.Get(DefaultName)
	require.NoError(t, err)
	want, err := curve.Generate(c.Params)
	require.NoError(t, err)
	assert.Equal(t, want, seq)
}

func TestCreateKeepsPrevious(t *testing.T) {
	c, store := newControls(t)
	require.NoError(t, c.Set(DeletePrevious, 0))

	for _, want := range []string{"winding_circle", "winding_circle1", "winding_circle2"} {
		name, err := c.Create()
		require.NoError(t, err)
		assert.Equal(t, want, name)
	}
	assert.Len(t, store.Names(), 3)

	require.NoError(t, c.Set(DeletePrevious, 1))
	name, err := c.Create()
	require.NoError(t, err)
	assert.Equal(t, DefaultName, name)
	assert.Len(t, store.Names(), 3)
}

func TestApplyInvalid(t *testing.T) {
	c, store := newControls(t)
	c.LiveUpdate = true
	p := curve.DefaultParams()
	p.Points = 1
	err := c.Apply(p)
	assert.ErrorIs(t, err, curve.ErrInvalidParameter)
	assert.Empty(t, store.Names())
}

func TestFieldNames(t *testing.T) {
	for f := Radius; f <= LiveUpdate; f++ {
		got, err := ParseField(f.String())
		require.NoError(t, err)
		assert.Equal(t, f, got)
	}
	_, err := ParseField("colour")
	assert.Error(t, err)
	assert.Equal(t, "Field(42)", Field(42).String())
}
