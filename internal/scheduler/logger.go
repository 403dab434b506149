package scheduler

import "github.com/charmbracelet/log"

// gocronLogger routes gocron's internal logging through charmbracelet/log.
type gocronLogger struct {
	l *log.Logger
}

func newLogger() *gocronLogger {
	return &gocronLogger{l: log.Default().WithPrefix("scheduler")}
}

func (g *gocronLogger) Debug(msg string, args ...any) { g.l.Debug(msg, args...) }
func (g *gocronLogger) Info(msg string, args ...any)  { g.l.Info(msg, args...) }
func (g *gocronLogger) Warn(msg string, args ...any)  { g.l.Warn(msg, args...) }
func (g *gocronLogger) Error(msg string, args ...any) { g.l.Error(msg, args...) }
