package logging

import "go.uber.org/zap/zapcore"

// newCore builds the console core and, when file is non-nil, tees it with a
// JSON file core at the same level. In development mode the console gets the
// coloured human-readable encoder; otherwise both sides emit JSON.
func newCore(level zapcore.LevelEnabler, console, file zapcore.WriteSyncer, development bool) zapcore.Core {
	consoleEncoder := zapcore.NewJSONEncoder(newEncoderConfig(false))
	if development {
		consoleEncoder = zapcore.NewConsoleEncoder(newEncoderConfig(true))
	}
	consoleCore := zapcore.NewCore(consoleEncoder, console, level)
	if file == nil {
		return consoleCore
	}

	fileCore := zapcore.NewCore(zapcore.NewJSONEncoder(newEncoderConfig(false)), file, level)
	return zapcore.NewTee(consoleCore, fileCore)
}
