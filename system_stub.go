//go:build !windows

package blink

import "github.com/pkg/errors"

// NewSystem returns the native windowing system. Only Windows is
// implemented; on other platforms the library still compiles so the
// portable parts can be used and tested against a fake System.
func NewSystem() (System, error) {
	return nil, errors.New("blink: native windowing is only implemented on windows")
}
