package ggplot

import (
	"fmt"
	"sync"

	"codeberg.org/go-fonts/liberation/liberationmonoregular"
	"codeberg.org/go-fonts/liberation/liberationsansregular"
	"codeberg.org/go-fonts/liberation/liberationserifregular"
	"github.com/go-text/typesetting/fontscan"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

// Keys of the two built-in font sources.
const (
	proportionalKey = "\x00proportional"
	monospaceKey    = "\x00monospace"
)

// builtinFonts are the embedded font files, parsed on first use. The
// Liberation families match gonum/plot's default text metrics.
var builtinFonts = map[string][]byte{
	proportionalKey:    goregular.TTF,
	monospaceKey:       gomono.TTF,
	"Liberation Serif": liberationserifregular.TTF,
	"Liberation Sans":  liberationsansregular.TTF,
	"Liberation Mono":  liberationmonoregular.TTF,
}

type faceKey struct {
	source string
	size   float64
}

// FontResolver turns host font ids into gg text faces.
//
// Proportional text uses Go Regular and monospace text uses Go Mono, both
// embedded. Named families are looked up among registered sources, then
// the embedded Liberation families and, when system fonts are enabled,
// installed fonts. Unknown names
// fall back to the proportional face.
//
// FontResolver is safe for concurrent use.
type FontResolver struct {
	mu       sync.Mutex
	sources  map[string]*text.FontSource
	faces    map[faceKey]text.Face
	missing  map[string]bool
	system   bool
	cacheDir string
	fontMap  *fontscan.FontMap
}

// FontOption configures a FontResolver.
type FontOption func(*FontResolver)

// WithSystemFonts lets named families resolve to installed fonts. The first
// lookup scans the system; cacheDir holds the scan index ("" picks a
// platform default).
func WithSystemFonts(cacheDir string) FontOption {
	return func(r *FontResolver) {
		r.system = true
		r.cacheDir = cacheDir
	}
}

// NewFontResolver creates a resolver with the embedded Go fonts.
func NewFontResolver(opts ...FontOption) *FontResolver {
	r := &FontResolver{
		sources: make(map[string]*text.FontSource),
		faces:   make(map[faceKey]text.Face),
		missing: make(map[string]bool),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

var (
	defaultFontsOnce sync.Once
	defaultFonts     *FontResolver
)

// DefaultFontResolver returns the process-wide resolver used by backends
// created without WithFontResolver. It does not scan system fonts.
func DefaultFontResolver() *FontResolver {
	defaultFontsOnce.Do(func() {
		defaultFonts = NewFontResolver()
	})
	return defaultFonts
}

// Register makes src available under the family name.
func (r *FontResolver) Register(family string, src *text.FontSource) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sources[family] = src
	delete(r.missing, family)
	for k := range r.faces {
		if k.source == family {
			delete(r.faces, k)
		}
	}
}

// Face returns the face for id, creating and caching it on first use.
func (r *FontResolver) Face(id FontID) (text.Face, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := r.sourceKey(id)
	if face, ok := r.faces[faceKey{key, id.Size}]; ok {
		return face, nil
	}
	src, err := r.source(key)
	if err != nil {
		return nil, err
	}
	face := src.Face(id.Size)
	r.faces[faceKey{key, id.Size}] = face
	return face, nil
}

// sourceKey picks the source that serves id, resolving named families.
func (r *FontResolver) sourceKey(id FontID) string {
	switch id.Kind {
	case FontMonospace:
		return monospaceKey
	case FontNamed:
		if r.lookupNamed(id.Name) {
			return id.Name
		}
		return proportionalKey
	default:
		return proportionalKey
	}
}

// lookupNamed reports whether a source for the family exists, loading it
// from the system fonts if needed. Must be called with r.mu held.
func (r *FontResolver) lookupNamed(family string) bool {
	if _, ok := r.sources[family]; ok {
		return true
	}
	if _, ok := builtinFonts[family]; ok {
		return true
	}
	if r.missing[family] {
		return false
	}
	if src := r.systemSource(family); src != nil {
		r.sources[family] = src
		return true
	}
	r.missing[family] = true
	Logger().Warn("ggplot: font family not found, using proportional face", "family", family)
	return false
}

func (r *FontResolver) systemSource(family string) *text.FontSource {
	if !r.system {
		return nil
	}
	if r.fontMap == nil {
		fm := fontscan.NewFontMap(scanLogger{})
		if err := fm.UseSystemFonts(r.cacheDir); err != nil {
			Logger().Warn("ggplot: system font scan failed", "err", err)
			r.system = false
			return nil
		}
		r.fontMap = fm
	}
	loc, ok := r.fontMap.FindSystemFont(family)
	if !ok {
		return nil
	}
	src, err := text.NewFontSourceFromFile(loc.File, text.WithCollectionIndex(int(loc.Index)))
	if err != nil {
		Logger().Warn("ggplot: cannot load system font", "family", family, "file", loc.File, "err", err)
		return nil
	}
	return src
}

// source returns the font source for key, parsing built-ins lazily.
// Must be called with r.mu held.
func (r *FontResolver) source(key string) (*text.FontSource, error) {
	if src, ok := r.sources[key]; ok {
		return src, nil
	}
	data, ok := builtinFonts[key]
	if !ok {
		return nil, fmt.Errorf("ggplot: no font source %q", key)
	}
	src, err := text.NewFontSource(data)
	if err != nil {
		return nil, fmt.Errorf("ggplot: parse built-in font %q: %w", key, err)
	}
	r.sources[key] = src
	return src, nil
}

// scanLogger routes fontscan's diagnostics to the ggplot logger.
type scanLogger struct{}

// Printf logs at debug level.
func (scanLogger) Printf(format string, args ...any) {
	Logger().Debug(fmt.Sprintf(format, args...))
}
