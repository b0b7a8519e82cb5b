//go:build unix

package ioctl

import (
	"fmt"
	"syscall"
	"unsafe"
)

// Call does a plain ioctl system call with a pointer to the command's structure.
func Call(fd uintptr, command Command, arg unsafe.Pointer) error {
	if _, _, errno := syscall.Syscall(syscall.SYS_IOCTL, fd, uintptr(command), uintptr(arg)); errno != 0 {
		return fmt.Errorf("%s failed: %w", command, errno)
	}
	return nil
}
