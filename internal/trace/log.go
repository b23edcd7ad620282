package trace

import (
	"go.uber.org/zap"

	"github.com/san-kum/kinetic/internal/engine"
	"github.com/san-kum/kinetic/internal/vector"
)

// LogListener logs engine lifecycle transitions and every Nth frame.
type LogListener struct {
	log   *zap.Logger
	every int
	frame int
}

var _ engine.Listener = (*LogListener)(nil)

// NewLogListener logs lifecycle events through log and one in every `every`
// frames; every <= 0 disables frame logging.
func NewLogListener(log *zap.Logger, every int) *LogListener {
	return &LogListener{log: log, every: every}
}

func (l *LogListener) OnStart() {
	l.frame = 0
	l.log.Info("simulation started")
}

func (l *LogListener) OnUpdate(x, v *vector.Vector) {
	l.frame++
	if l.every > 0 && l.frame%l.every == 0 {
		l.log.Debug("frame",
			zap.Int("frame", l.frame),
			zap.Float64s("x", x.Values()),
			zap.Float64s("v", v.Values()),
		)
	}
}

func (l *LogListener) OnSettle() {
	l.log.Info("simulation settled", zap.Int("frames", l.frame))
}

func (l *LogListener) OnStop() {
	l.log.Info("simulation stopped", zap.Int("frames", l.frame))
}
