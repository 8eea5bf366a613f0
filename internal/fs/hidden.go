package fs

// IsHidden reports whether name is a dot file.
func IsHidden(name string) bool {
	return len(name) > 0 && name[0] == '.'
}
