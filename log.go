package gfx

import "go.uber.org/zap"

var logger = zap.NewNop()

// SetLogger sets the logger used for shader diagnostics and GL errors.
// A nil logger silences output.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger = l.Named("gfx")
}
