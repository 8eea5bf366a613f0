//go:build windows

package fs

import "syscall"

const (
	fileAttributeSystem       = 0x04
	fileAttributeReparsePoint = 0x0400
)

// isSystemJunction reports whether fullPath is one of the protected
// compatibility junctions (e.g. "Application Data") that cmd's dir hides
// even with /a.
func isSystemJunction(fullPath string) bool {
	if fullPath == "" {
		return false
	}
	ptr, err := syscall.UTF16PtrFromString(fullPath)
	if err != nil {
		return false
	}
	attrs, err := syscall.GetFileAttributes(ptr)
	if err != nil {
		return false
	}
	const protectedMask = fileAttributeSystem | fileAttributeReparsePoint
	return attrs&protectedMask == protectedMask
}
