package phosphor

import (
	"bytes"
	"sync"
	"sync/atomic"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/will4381/phosphor-quick/svgicon"
)

const squareSVG = `<svg viewBox="0 0 256 256">
	<path d="M32,32H224V224H32Z" fill="currentColor"/>
</svg>`

// countingResolver counts resolution calls so tests can observe whether the
// markup tier short-circuited a re-parse.
type countingResolver struct {
	icons map[string]string
	calls atomic.Int64
}

func (r *countingResolver) Resolve(name string) ([]byte, bool) {
	r.calls.Add(1)
	text, ok := r.icons[name]
	return []byte(text), ok
}

func newTestRenderer() (*Renderer, *countingResolver) {
	res := &countingResolver{icons: map[string]string{"square": squareSVG}}
	return NewRenderer(res, Options{}), res
}

func TestRenderDeterministic(t *testing.T) {
	r, _ := newTestRenderer()
	first, err := r.Render("square", svgicon.Bold, 64, 64)
	require.NoError(t, err)

	pix := make([]byte, len(first.Pix))
	copy(pix, first.Pix)

	// Recompute from scratch: identical bytes, not just a cache hit.
	r.ClearCaches()
	second, err := r.Render("square", svgicon.Bold, 64, 64)
	require.NoError(t, err)
	assert.True(t, bytes.Equal(pix, second.Pix))
}

func TestRenderBitmapCacheHit(t *testing.T) {
	r, _ := newTestRenderer()
	first, err := r.Render("square", svgicon.Regular, 32, 32)
	require.NoError(t, err)
	second, err := r.Render("square", svgicon.Regular, 32, 32)
	require.NoError(t, err)
	assert.Same(t, first, second)
}

func TestMarkupCacheShortCircuits(t *testing.T) {
	r, res := newTestRenderer()
	weights := []Weight{svgicon.Regular, svgicon.Thin, svgicon.Fill, svgicon.Duotone}
	for _, w := range weights {
		for _, size := range []int{16, 32, 64} {
			_, err := r.Render("square", w, size, size)
			require.NoError(t, err)
		}
	}
	assert.EqualValues(t, 1, res.calls.Load(),
		"one parse serves every weight and size combination")
}

func TestClearCachesKeepsCorrectness(t *testing.T) {
	r, res := newTestRenderer()
	before, err := r.Render("square", svgicon.Light, 48, 48)
	require.NoError(t, err)

	r.ClearCaches()
	after, err := r.Render("square", svgicon.Light, 48, 48)
	require.NoError(t, err)

	assert.NotSame(t, before, after)
	assert.True(t, bytes.Equal(before.Pix, after.Pix))
	assert.EqualValues(t, 2, res.calls.Load())
}

func TestPlaceholderOnResolutionMiss(t *testing.T) {
	r, res := newTestRenderer()
	img, err := r.Render("no-such-icon", svgicon.Regular, 64, 64)
	require.NoError(t, err, "a missing icon still renders")
	assert.False(t, blank(img.Pix), "placeholder must be visible")

	// Placeholder results stay out of both cache tiers.
	_, err = r.Render("no-such-icon", svgicon.Regular, 64, 64)
	require.NoError(t, err)
	assert.EqualValues(t, 2, res.calls.Load())
}

func TestPlaceholderOnParseFailure(t *testing.T) {
	res := &countingResolver{icons: map[string]string{
		"empty": `<svg viewBox="0 0 24 24"></svg>`,
	}}
	r := NewRenderer(res, Options{})
	img, err := r.Render("empty", svgicon.Regular, 64, 64)
	require.NoError(t, err)
	assert.False(t, blank(img.Pix))
}

func TestRenderInvalidSize(t *testing.T) {
	r, _ := newTestRenderer()
	for _, size := range [][2]int{{0, 64}, {64, 0}, {-1, 64}, {1 << 15, 1 << 15}} {
		_, err := r.Render("square", svgicon.Regular, size[0], size[1])
		assert.ErrorIs(t, err, ErrInvalidSize)
	}
}

func TestRenderConcurrent(t *testing.T) {
	// Meaningful under -race: concurrent renders share both cache tiers.
	r, _ := newTestRenderer()
	want, err := r.Render("square", svgicon.Regular, 40, 40)
	require.NoError(t, err)
	r.ClearCaches()

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 20; i++ {
				img, err := r.Render("square", svgicon.Regular, 40, 40)
				assert.NoError(t, err)
				assert.True(t, bytes.Equal(want.Pix, img.Pix))
				if i%7 == 0 {
					r.ClearCaches()
				}
			}
		}()
	}
	wg.Wait()
}

func TestDirResolver(t *testing.T) {
	res := Dir(fstest.MapFS{
		"square.svg": &fstest.MapFile{Data: []byte(squareSVG)},
	})
	data, ok := res.Resolve("square")
	require.True(t, ok)
	assert.Contains(t, string(data), "viewBox")

	_, ok = res.Resolve("missing")
	assert.False(t, ok)
	_, ok = res.Resolve("../escape")
	assert.False(t, ok)
}

func blank(pix []byte) bool {
	for _, b := range pix {
		if b != 0 {
			return false
		}
	}
	return true
}
