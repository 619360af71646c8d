package log_drivers

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type StructuredLogDriver struct {
	zapLogger *zap.Logger
}

func NewStructuredLogDriver() *StructuredLogDriver {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.Lock(os.Stdout),
		zapcore.InfoLevel,
	)

	return &StructuredLogDriver{
		zapLogger: zap.New(core),
	}
}

func (s *StructuredLogDriver) Info(msg string, fields ...zapcore.Field) {
	s.zapLogger.Info(msg, fields...)
}

func (s *StructuredLogDriver) Debug(msg string, fields ...zapcore.Field) {
	s.zapLogger.Debug(msg, fields...)
}

func (s *StructuredLogDriver) Error(msg string, fields ...zapcore.Field) {
	s.zapLogger.Error(msg, fields...)
}

func (s *StructuredLogDriver) Warn(msg string, fields ...zapcore.Field) {
	s.zapLogger.Warn(msg, fields...)
}

func (s *StructuredLogDriver) LogBuildOutput(target string, data string) {
	s.zapLogger.Info(data, zap.String("target", target))
}
