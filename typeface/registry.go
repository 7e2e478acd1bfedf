package typeface

import (
	"bytes"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"

	"github.com/gogpu/vecdev"
	"github.com/gogpu/vecdev/backend"
	"github.com/gogpu/vecdev/internal/cache"
)

// builtins maps RegisterBuiltin names to bundled font data.
var builtins = map[string][]byte{
	"goregular": goregular.TTF,
	"gobold":    gobold.TTF,
	"goitalic":  goitalic.TTF,
	"gomono":    gomono.TTF,
}

// BuiltinNames returns the names accepted by RegisterBuiltin, sorted.
func BuiltinNames() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// typeface is one registered font.
type typeface struct {
	id     vecdev.TypefaceID
	family string
	sfnt   *sfnt.Font
	text   *font.Font
	runes  map[uint32]rune
	face   *backend.FontFace
}

// Registry owns registered fonts.
type Registry struct {
	mu       sync.RWMutex
	faces    []*typeface
	byFamily map[string]vecdev.TypefaceID
	outlines *cache.LRU[outlineKey, *vecdev.Path]

	// shaperPool pools HarfbuzzShaper instances, which are not safe for
	// concurrent use.
	shaperPool sync.Pool
}

var _ vecdev.FontService = (*Registry)(nil)

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		byFamily: make(map[string]vecdev.TypefaceID),
		outlines: cache.New[outlineKey, *vecdev.Path](outlineCacheSize),
		shaperPool: sync.Pool{
			New: func() any {
				return &shaping.HarfbuzzShaper{}
			},
		},
	}
}

// Register parses data and returns its handle. An empty family is taken
// from the font's name table. Registering a family twice replaces the
// family lookup but keeps the old handle valid.
func (r *Registry) Register(family string, data []byte) (vecdev.TypefaceID, error) {
	sf, err := sfnt.Parse(data)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidFont, err)
	}
	tf, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidFont, err)
	}
	if family == "" {
		family, _ = sf.Name(nil, sfnt.NameIDFamily)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	id := vecdev.TypefaceID(len(r.faces) + 1)
	if family == "" {
		family = fmt.Sprintf("typeface%d", id)
	}
	t := &typeface{
		id:     id,
		family: family,
		sfnt:   sf,
		text:   tf.Font,
		runes:  reverseCmap(tf.Font.Cmap),
	}
	t.face = &backend.FontFace{
		ID:     uint32(id),
		Family: family,
		Data:   data,
		Rune:   t.runeFor,
	}
	r.faces = append(r.faces, t)
	r.byFamily[strings.ToLower(family)] = id

	vecdev.Logger().Debug("typeface: registered", "id", id, "family", family, "glyphs", sf.NumGlyphs())
	return id, nil
}

// RegisterBuiltin registers one of the bundled Go fonts by name, for
// example "goregular". See BuiltinNames.
func (r *Registry) RegisterBuiltin(name string) (vecdev.TypefaceID, error) {
	data, ok := builtins[name]
	if !ok {
		return 0, fmt.Errorf("%w %q", ErrUnknownBuiltin, name)
	}
	return r.Register(name, data)
}

// Lookup returns the handle registered for family, ignoring case.
func (r *Registry) Lookup(family string) (vecdev.TypefaceID, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.byFamily[strings.ToLower(family)]
	return id, ok
}

// Family returns the family name of id.
func (r *Registry) Family(id vecdev.TypefaceID) (string, error) {
	t, err := r.get(id)
	if err != nil {
		return "", err
	}
	return t.family, nil
}

// Len returns the number of registered typefaces.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.faces)
}

func (r *Registry) get(id vecdev.TypefaceID) (*typeface, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if id == 0 || int(id) > len(r.faces) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownTypeface, id)
	}
	return r.faces[id-1], nil
}

// SelectFontByID implements vecdev.FontSelector.
func (r *Registry) SelectFontByID(ctx backend.Context, id vecdev.TypefaceID) error {
	t, err := r.get(id)
	if err != nil {
		return err
	}
	ctx.SetFontFace(t.face)
	return nil
}

// reverseCmap maps every glyph reachable from the cmap back to its lowest
// character.
func reverseCmap(cmap font.Cmap) map[uint32]rune {
	runes := make(map[uint32]rune)
	it := cmap.Iter()
	for it.Next() {
		ch, gid := it.Char()
		if prev, ok := runes[uint32(gid)]; !ok || ch < prev {
			runes[uint32(gid)] = ch
		}
	}
	return runes
}

func (t *typeface) runeFor(gid uint32) (rune, bool) {
	ch, ok := t.runes[gid]
	return ch, ok
}
