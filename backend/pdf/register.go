package pdf

import "github.com/gogpu/vecdev/backend"

func init() {
	backend.Register("pdf", func(width, height int) (backend.Surface, error) {
		return New(float64(width), float64(height))
	})
}
