// Package phosphor renders vector icons on demand: given an icon name, a
// visual weight and a target size it produces a bitmap. Icons are parsed
// once from a restricted SVG dialect and every weight and size variant is
// derived algorithmically at request time, with a parsed-document cache and
// a rendered-bitmap cache keeping repeated requests cheap.
package phosphor

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/rs/zerolog"

	"github.com/will4381/phosphor-quick/svgcache"
	"github.com/will4381/phosphor-quick/svgicon"
	"github.com/will4381/phosphor-quick/svgraster"
)

// ErrInvalidSize reports a target size whose pixel buffer cannot be
// allocated. It is the only failure Render propagates; everything else is
// recovered with a placeholder rendering.
var ErrInvalidSize = errors.New("phosphor: invalid render size")

// maxRenderPixels bounds a single bitmap allocation (4096x4096 RGBA).
const maxRenderPixels = 4096 * 4096

const (
	defaultDocCacheSize    = 128
	defaultBitmapCacheSize = 1024
)

// Weight re-exports the icon weight type for the public surface.
type Weight = svgicon.Weight

type renderKey struct {
	name          string
	weight        Weight
	width, height int
}

// Options configures a Renderer. The zero value is usable: black
// foreground, default cache capacities, no logging.
type Options struct {
	// Foreground is the color painted for currentColor (and any other
	// non-"none" paint token). Defaults to opaque black.
	Foreground color.Color

	// DocCacheSize and BitmapCacheSize bound the two cache tiers. The
	// document tier can stay small: one parsed document serves every
	// weight and size combination.
	DocCacheSize    int
	BitmapCacheSize int

	// Logger receives warnings about resolution misses and parse
	// fallbacks. Defaults to a no-op logger.
	Logger *zerolog.Logger
}

// Renderer is the render pipeline. It owns the two cache tiers and is safe
// for concurrent use; construct one and share it by reference rather than
// keeping ambient global state.
type Renderer struct {
	resolver   Resolver
	foreground color.Color
	log        zerolog.Logger

	docs    *svgcache.Cache[string, *svgicon.Icon]
	bitmaps *svgcache.Cache[renderKey, *image.RGBA]
}

// NewRenderer builds a pipeline over the given markup resolver.
func NewRenderer(res Resolver, opts Options) *Renderer {
	if opts.Foreground == nil {
		opts.Foreground = color.NRGBA{0x00, 0x00, 0x00, 0xff}
	}
	if opts.DocCacheSize <= 0 {
		opts.DocCacheSize = defaultDocCacheSize
	}
	if opts.BitmapCacheSize <= 0 {
		opts.BitmapCacheSize = defaultBitmapCacheSize
	}
	log := zerolog.Nop()
	if opts.Logger != nil {
		log = *opts.Logger
	}
	return &Renderer{
		resolver:   res,
		foreground: opts.Foreground,
		log:        log,
		docs:       svgcache.New[string, *svgicon.Icon](opts.DocCacheSize),
		bitmaps:    svgcache.New[renderKey, *image.RGBA](opts.BitmapCacheSize),
	}
}

// Render produces the icon bitmap for the given name, weight and size.
//
// Rendering is deterministic: the same (name, weight, width, height) always
// yields byte-identical pixels, so results are cached and the returned
// image is shared; callers must treat it as read-only. When the icon cannot
// be resolved or parsed a placeholder is rendered instead, so a valid
// request always gets a drawable result.
func (r *Renderer) Render(name string, weight Weight, width, height int) (*image.RGBA, error) {
	if width <= 0 || height <= 0 || width*height > maxRenderPixels {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	key := renderKey{name, weight, width, height}
	if img, ok := r.bitmaps.Get(key); ok {
		return img, nil
	}

	doc, ok := r.document(name)
	img := svgraster.Draw(doc.WithWeight(weight), width, height, r.foreground)
	if ok {
		r.bitmaps.Put(key, img)
	}
	return img, nil
}

// document returns the parsed document for name, from cache or by
// resolving and parsing. The second result is false when the placeholder
// was substituted; placeholder renders stay out of the bitmap cache.
func (r *Renderer) document(name string) (*svgicon.Icon, bool) {
	if doc, ok := r.docs.Get(name); ok {
		return doc, true
	}
	data, ok := r.resolver.Resolve(name)
	if !ok {
		r.log.Warn().Str("icon", name).Msg("icon markup not found, using placeholder")
		return placeholderIcon, false
	}
	doc, err := svgicon.Parse(data)
	if err != nil {
		r.log.Warn().Str("icon", name).Err(err).Msg("icon markup unparseable, using placeholder")
		return placeholderIcon, false
	}
	r.docs.Put(name, doc)
	return doc, true
}

// ClearCaches drops both cache tiers. Subsequent renders recompute and
// produce identical bytes; clearing affects performance, never correctness.
func (r *Renderer) ClearCaches() {
	r.docs.Clear()
	r.bitmaps.Clear()
}

// ClearOn clears the caches whenever the event source fires, until it is
// closed or the context ends. It adapts platform memory-pressure signals,
// whose only effect on the pipeline is a cache clear.
func (r *Renderer) ClearOn(ctx context.Context, events <-chan struct{}) {
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case _, ok := <-events:
				if !ok {
					return
				}
				r.ClearCaches()
			}
		}
	}()
}
