package ptr

// Ptr returns a pointer to v. Handy for optional filter fields and
// literals in tests.
func Ptr[T any](v T) *T {
	return &v
}
