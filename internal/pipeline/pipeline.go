package pipeline

import "go.uber.org/zap"

// shouldSignal reports whether this process sits in a process group of its
// own, separate from its parent's. That is the layout a job-control shell
// gives a pipeline, so signalling the group reaches only the producers
// feeding us and never the shell.
func shouldSignal(self, parent int) bool {
	return self > 0 && parent > 0 && self != parent
}

// StopGroup interrupts the upstream pipeline, if it is safe to do so.
// It reports whether a signal was sent.
func StopGroup(logger *zap.Logger) bool {
	if logger == nil {
		logger = zap.NewNop()
	}
	self, parent, err := groups()
	if err != nil {
		logger.Debug("process group lookup failed", zap.Error(err))
		return false
	}
	if !shouldSignal(self, parent) {
		logger.Debug("sharing process group with parent; not signalling",
			zap.Int("pgid", self), zap.Int("parent_pgid", parent))
		return false
	}
	if err := interruptGroup(self); err != nil {
		logger.Warn("interrupt pipeline group", zap.Int("pgid", self), zap.Error(err))
		return false
	}
	logger.Info("interrupted pipeline group", zap.Int("pgid", self))
	return true
}
