package config

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"windingcircle/controls"
	"windingcircle/curve"
	"windingcircle/scene"
)

func TestParsePartial(t *testing.T) {
	f, err := Parse([]byte("radius = 250.5\nseed = 9\nflatten_ends = true\n"))
	require.NoError(t, err)

	want := curve.DefaultParams()
	want.Radius = 250.5
	want.Seed = 9
	want.FlattenEnds = true
	assert.Equal(t, want, f.Params())
	assert.Equal(t, "uniform", f.Noise)
	assert.Equal(t, controls.DefaultName, f.Name)
	assert.True(t, f.DeletePrevious)
}

func TestParseUnknownKey(t *testing.T) {
	_, err := Parse([]byte("radious = 3\n"))
	assert.Error(t, err)
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "params.toml")
	f := Default()
	f.Noise = "perlin"
	f.Winding = 12
	f.DeletePrevious = false
	require.NoError(t, Save(path, f))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, f, got)
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestConfigure(t *testing.T) {
	store := scene.NewMemory()
	c := controls.New(store)
	c.Log = slog.New(slog.NewTextHandler(io.Discard, nil))
	c.LiveUpdate = true

	f := Default()
	f.Name = "loop"
	f.Points = 12
	require.NoError(t, f.Configure(c))
	assert.Equal(t, []string{"loop"}, store.Names())
	seq, err := store.Get("loop")
	require.NoError(t, err)
	assert.Len(t, seq, 13)

	f.Noise = "violet"
	assert.ErrorIs(t, f.Configure(c), curve.ErrInvalidParameter)
}

func TestWatch(t *testing.T) {
	old := Settle
	Settle = 20 * time.Millisecond
	t.Cleanup(func() { Settle = old })

	path := filepath.Join(t.TempDir(), "params.toml")
	require.NoError(t, Save(path, Default()))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reloads := make(chan File, 8)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, path, func(f File, err error) {
			if err == nil {
				reloads <- f
			}
		})
	}()

	// keep writing until the watcher is up and reports the change
	f := Default()
	f.Seed = 777
	var got File
	require.Eventually(t, func() bool {
		if Save(path, f) != nil {
			return false
		}
		select {
		case got = <-reloads:
			return true
		case <-time.After(50 * time.Millisecond):
			return false
		}
	}, 5*time.Second, 10*time.Millisecond)
	assert.Equal(t, int64(777), got.Seed)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("watch did not stop")
	}
}
