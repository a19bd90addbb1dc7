package render

import (
	"sync"

	"github.com/charmbracelet/glamour"
)

// Markdown renders markdown content for terminal display. Renderers are
// pooled per option set because building one is expensive and a
// glamour.TermRenderer is not safe for concurrent Render calls: each
// call checks a renderer out, renders, and puts it back.
func Markdown(content string, opts Options) (string, error) {
	renderer, err := checkout(opts)
	if err != nil {
		return "", err
	}
	out, err := renderer.Render(content)
	checkin(opts, renderer)
	return out, err
}

// pools holds one sync.Pool of renderers per option set. Options has
// only comparable fields, so it keys the map directly.
var pools struct {
	sync.Mutex
	m map[Options]*sync.Pool
}

func poolFor(opts Options) *sync.Pool {
	pools.Lock()
	defer pools.Unlock()

	if pools.m == nil {
		pools.m = make(map[Options]*sync.Pool)
	}
	if p, ok := pools.m[opts]; ok {
		return p
	}

	p := &sync.Pool{
		New: func() any {
			r, err := newRenderer(opts)
			if err != nil {
				return nil
			}
			return r
		},
	}
	pools.m[opts] = p
	return p
}

// checkout takes a renderer for opts out of its pool. When the pool is
// empty and its constructor failed, the error surfaces here.
func checkout(opts Options) (*glamour.TermRenderer, error) {
	if r := poolFor(opts).Get(); r != nil {
		return r.(*glamour.TermRenderer), nil
	}
	return newRenderer(opts)
}

// checkin returns a renderer to its pool.
func checkin(opts Options, renderer *glamour.TermRenderer) {
	if renderer != nil {
		poolFor(opts).Put(renderer)
	}
}

// newRenderer builds a glamour renderer for opts.
func newRenderer(opts Options) (*glamour.TermRenderer, error) {
	gopts := []glamour.TermRendererOption{
		glamour.WithStylePath(opts.Style),
		glamour.WithWordWrap(opts.Width),
		glamour.WithTableWrap(opts.TableWrap),
		glamour.WithInlineTableLinks(opts.InlineTableLinks),
	}
	if opts.EnableEmoji {
		gopts = append(gopts, glamour.WithEmoji())
	}
	if opts.PreserveNewLines {
		gopts = append(gopts, glamour.WithPreservedNewLines())
	}
	return glamour.NewTermRenderer(gopts...)
}

// resetPools drops every pooled renderer. Tests use it to start cold.
func resetPools() {
	pools.Lock()
	pools.m = nil
	pools.Unlock()
}

// poolCount returns the number of distinct pooled option sets.
func poolCount() int {
	pools.Lock()
	defer pools.Unlock()
	return len(pools.m)
}
