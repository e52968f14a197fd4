package pathgeom

import "go.uber.org/zap"

// logger receives diagnostics: dropped duplicate entities during cycle
// resolution and failed numerical postconditions. It discards everything
// until SetLogger is called.
var logger = zap.NewNop()

// SetLogger routes the package's diagnostics to l. Passing nil restores
// the default no-op logger.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger = l
}
