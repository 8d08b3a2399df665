package nanolog

import "github.com/max-chem-eng/nanolog/models"

// LoggerBuilder is a fluent alternative to filling a Config by hand. It
// starts from DefaultConfig.
type LoggerBuilder struct {
	cfg  Config
	sink Sink
}

func NewLoggerBuilder() *LoggerBuilder {
	return &LoggerBuilder{cfg: DefaultConfig()}
}

func (b *LoggerBuilder) WithEnabled(on bool) *LoggerBuilder {
	b.cfg.Enabled = on
	return b
}

func (b *LoggerBuilder) WithMinLevel(level models.Level) *LoggerBuilder {
	b.cfg.MinLevel = level
	return b
}

func (b *LoggerBuilder) WithLevelEnabled(level models.Level, on bool) *LoggerBuilder {
	switch level {
	case models.LevelError:
		b.cfg.EnableError = on
	case models.LevelWarning:
		b.cfg.EnableWarning = on
	case models.LevelInfo:
		b.cfg.EnableInfo = on
	case models.LevelDebug:
		b.cfg.EnableDebug = on
	}
	return b
}

func (b *LoggerBuilder) WithTimestamp(on bool) *LoggerBuilder {
	b.cfg.EnableTimestamp = on
	return b
}

func (b *LoggerBuilder) WithColor(on bool) *LoggerBuilder {
	b.cfg.UseColor = on
	return b
}

func (b *LoggerBuilder) WithMaxMessageSize(n int) *LoggerBuilder {
	b.cfg.MaxMessageSize = n
	return b
}

func (b *LoggerBuilder) ToTerminal() *LoggerBuilder {
	b.cfg.Output = DestTerminal
	return b
}

// ToFile routes output to dir/name.format.
func (b *LoggerBuilder) ToFile(dir, name, format string) *LoggerBuilder {
	b.cfg.Output = DestFile
	b.cfg.FileDir = dir
	b.cfg.FileName = name
	b.cfg.FileFormat = format
	return b
}

func (b *LoggerBuilder) ToMemory(capacity int) *LoggerBuilder {
	b.cfg.Output = DestMemory
	b.cfg.MemoryCapacity = capacity
	return b
}

// ToSink injects a sink directly, like WithSink.
func (b *LoggerBuilder) ToSink(s Sink) *LoggerBuilder {
	b.sink = s
	return b
}

func (b *LoggerBuilder) Build() (Logger, error) {
	if b.sink != nil {
		return New(b.cfg, WithSink(b.sink))
	}
	return New(b.cfg)
}
