package framebuffer

import (
	"fmt"
	"os"
	"syscall"
	"unsafe"

	"github.com/BeatGlow/gfx/internal/ioctl"
)

// From <linux/fb.h>
const (
	fbioGetVScreenInfo ioctl.Command = 0x4600
	fbioGetFScreenInfo ioctl.Command = 0x4602
)

type fixScreenInfo struct {
	ID         [16]byte  // Identification string eg "TT Builtin"
	SmemStart  uintptr   // Start of frame buffer mem
	SmemLen    uint32    // Length of frame buffer mem
	Type       uint32    // FB_TYPE_
	TypeAux    uint32    // Interleave for interleaved Planes
	Visual     uint32    // FB_VISUAL_
	Xpanstep   uint16    // Zero if no hardware panning
	Ypanstep   uint16    // Zero if no hardware panning
	Ywrapstep  uint16    // Zero if no hardware ywrap
	LineLength uint32    // Length of a line in bytes
	MmioStart  uintptr   // Start of Memory Mapped I/O (physical address)
	MmioLen    uint32    // Length of Memory Mapped I/O
	Accel      uint32    // Type of acceleration available
	Reserved   [3]uint16 // Reserved for future compatibility
}

type bitField struct {
	Offset   uint32
	Length   uint32
	MsbRight uint32
}

// varScreenInfo is the changeable information about a video mode.
type varScreenInfo struct {
	Xres                    uint32
	Yres                    uint32
	XresVirtual             uint32
	YresVirtual             uint32
	Xoffset                 uint32
	Yoffset                 uint32
	BitsPerPixel            uint32
	Grayscale               uint32
	Red, Green, Blue, Alpha bitField
	Nonstd                  uint32
	Activate                uint32
	Height                  uint32
	Width                   uint32
	AccelFlags              uint32
	Pixclock                uint32
	LeftMargin              uint32
	RightMargin             uint32
	UpperMargin             uint32
	LowerMargin             uint32
	HsyncLen                uint32
	VsyncLen                uint32
	Sync                    uint32
	Vmode                   uint32
	Rotate                  uint32
	Colorspace              uint32
	Reserved                [4]uint32
}

func (info *varScreenInfo) format() Format {
	return Format{
		BitsPerPixel: int(info.BitsPerPixel),
		Red:          Bitfield{uint(info.Red.Offset), uint(info.Red.Length)},
		Green:        Bitfield{uint(info.Green.Offset), uint(info.Green.Length)},
		Blue:         Bitfield{uint(info.Blue.Offset), uint(info.Blue.Length)},
	}
}

// Open a Linux framebuffer device (fbdev) by name, typically /dev/fb[0..x].
func Open(name string) (*FrameBuffer, error) {
	f, err := os.OpenFile(name, os.O_RDWR, os.ModeDevice)
	if err != nil {
		return nil, err
	}

	var (
		fix  = new(fixScreenInfo)
		info = new(varScreenInfo)
	)
	if err = ioctl.Call(f.Fd(), fbioGetFScreenInfo, unsafe.Pointer(fix)); err != nil {
		_ = f.Close()
		return nil, err
	}
	if err = ioctl.Call(f.Fd(), fbioGetVScreenInfo, unsafe.Pointer(info)); err != nil {
		_ = f.Close()
		return nil, err
	}

	pix, err := syscall.Mmap(int(f.Fd()), 0, int(fix.SmemLen), syscall.PROT_READ|syscall.PROT_WRITE, syscall.MAP_SHARED)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("framebuffer: map %s: %w", name, err)
	}

	fb, err := New(pix, int(info.Xres), int(info.Yres), int(fix.LineLength), info.format())
	if err != nil {
		_ = syscall.Munmap(pix)
		_ = f.Close()
		return nil, err
	}
	fb.close = func() error {
		if err := syscall.Munmap(pix); err != nil {
			return err
		}
		return f.Close()
	}
	return fb, nil
}
