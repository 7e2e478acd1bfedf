package record

import "github.com/gogpu/vecdev/backend"

func init() {
	backend.Register("record", func(width, height int) (backend.Surface, error) {
		return New(width, height), nil
	})
}
