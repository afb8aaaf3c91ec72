package logger

import "go.uber.org/zap"

var global *zap.Logger = zap.NewNop()

// Init builds the process-wide logger. Development mode switches to the
// human-readable console encoder.
func Init(isDev bool) error {
	var (
		l   *zap.Logger
		err error
	)
	if isDev {
		l, err = zap.NewDevelopment()
	} else {
		l, err = zap.NewProduction()
	}
	if err != nil {
		return err
	}
	global = l
	return nil
}

func L() *zap.Logger { return global }

func Sync() {
	_ = global.Sync()
}
