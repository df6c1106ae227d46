// Package pdfium wraps github.com/klippa-app/go-pdfium's WebAssembly
// backend, exposing plain Document/Page/Rect/Segment/Path/Glyph data types
// with no dependency on the root module (see backend.go there for the
// adapter that turns these into PageGeometry/PageText). Nothing outside
// this package talks to pdfium directly.
package pdfium

import (
	"sync"

	"github.com/klippa-app/go-pdfium"
	"github.com/klippa-app/go-pdfium/webassembly"
	"github.com/pkg/errors"
)

var (
	libOnce sync.Once
	libPool webassembly.Pool
	libErr  error
)

// Library is the process-wide pdfium backend. Open is idempotent: the pool
// is initialized once with a fixed config, and every later call just
// returns the same pool, mirroring a library-level singleton rather than a
// per-document handle.
type Library struct {
	pool webassembly.Pool
}

// Open initializes (once, process-wide) and returns the shared Library.
func Open() (*Library, error) {
	libOnce.Do(func() {
		libPool, libErr = webassembly.Init(webassembly.Config{
			MinIdle:  1,
			MaxIdle:  2,
			MaxTotal: 4,
		})
	})
	if libErr != nil {
		return nil, errors.Wrap(libErr, "initializing pdfium backend")
	}
	return &Library{pool: libPool}, nil
}

func (l *Library) instance() (pdfium.Pdfium, error) {
	inst, err := l.pool.GetInstance(defaultInstanceTimeout)
	if err != nil {
		return nil, errors.Wrap(err, "acquiring pdfium instance")
	}
	return inst, nil
}
