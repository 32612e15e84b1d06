package logrusadapter

import (
	"github.com/sirupsen/logrus"

	"github.com/safecharge/safecharge-go/log"
)

// Adapter bridges a logrus logger into the SDK's log.Logger interface.
type Adapter struct {
	entry *logrus.Entry
}

var _ log.Logger = (*Adapter)(nil)

// New wraps a logrus logger. A nil logger falls back to logrus.StandardLogger().
func New(l *logrus.Logger) *Adapter {
	if l == nil {
		l = logrus.StandardLogger()
	}
	return &Adapter{entry: logrus.NewEntry(l)}
}

// NewWithEntry wraps an entry so callers can attach their own fields.
func NewWithEntry(e *logrus.Entry) *Adapter {
	if e == nil {
		return New(nil)
	}
	return &Adapter{entry: e}
}

func (a *Adapter) Debugf(format string, args ...any) {
	if a == nil || a.entry == nil {
		return
	}
	a.entry.Debugf(format, args...)
}

func (a *Adapter) Infof(format string, args ...any) {
	if a == nil || a.entry == nil {
		return
	}
	a.entry.Infof(format, args...)
}

func (a *Adapter) Warnf(format string, args ...any) {
	if a == nil || a.entry == nil {
		return
	}
	a.entry.Warnf(format, args...)
}

func (a *Adapter) Errorf(format string, args ...any) {
	if a == nil || a.entry == nil {
		return
	}
	a.entry.Errorf(format, args...)
}
