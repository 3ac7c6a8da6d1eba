//go:build unix

package pipeline

import (
	"fmt"
	"os"
	"os/signal"

	"golang.org/x/sys/unix"
)

func groups() (self, parent int, err error) {
	self = unix.Getpgrp()
	parent, err = unix.Getpgid(unix.Getppid())
	if err != nil {
		return 0, 0, fmt.Errorf("getpgid of parent: %w", err)
	}
	return self, parent, nil
}

// interruptGroup sends SIGINT to every member of pgid after making this
// process ignore it.
func interruptGroup(pgid int) error {
	signal.Ignore(os.Interrupt)
	return unix.Kill(-pgid, unix.SIGINT)
}
