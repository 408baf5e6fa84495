package log

import (
	"go.uber.org/zap"
)

var base = zap.NewNop()

// Init builds the process-wide logger. prod selects the production encoder
// (JSON, info level); otherwise the development console encoder is used.
func Init(prod bool) (*zap.Logger, error) {
	var (
		l   *zap.Logger
		err error
	)
	if prod {
		l, err = zap.NewProduction()
	} else {
		l, err = zap.NewDevelopment()
	}
	if err != nil {
		return nil, err
	}
	base = l
	return l, nil
}

// L returns the current logger. Safe to call before Init (no-op logger).
func L() *zap.Logger { return base }

func Sync() { _ = base.Sync() }

func Infof(format string, args ...any)  { base.Sugar().Infof(format, args...) }
func Errorf(format string, args ...any) { base.Sugar().Errorf(format, args...) }
