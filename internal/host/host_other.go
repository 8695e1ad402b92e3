//go:build !windows

package host

// Attach always fails outside Windows.
func Attach() (Session, error) {
	return nil, ErrUnsupported
}
