//go:build !unix

package pipeline

import "errors"

var errUnsupported = errors.New("process groups are not supported on this platform")

func groups() (int, int, error) { return 0, 0, errUnsupported }

func interruptGroup(int) error { return errUnsupported }
