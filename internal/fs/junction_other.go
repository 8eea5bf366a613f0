//go:build !windows

package fs

func isSystemJunction(_ string) bool {
	return false
}
