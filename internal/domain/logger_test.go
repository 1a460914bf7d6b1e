package domain

import "sync"

// recordingLogger captures log lines by level.
type recordingLogger struct {
	mu    sync.Mutex
	debug []string
	info  []string
	warn  []string
}

func (l *recordingLogger) LogDebug(message string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.debug = append(l.debug, message)
}

func (l *recordingLogger) LogInfo(message string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.info = append(l.info, message)
}

func (l *recordingLogger) LogWarn(message string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.warn = append(l.warn, message)
}
