//go:build !linux

package framebuffer

// Open is only available on Linux.
func Open(_ string) (*FrameBuffer, error) {
	return nil, ErrNotSupported
}
