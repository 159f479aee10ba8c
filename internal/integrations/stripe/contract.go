package stripe

// Logger интерфейс для логирования
type Logger interface {
	Debug(format string, v ...interface{})
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Metrics интерфейс для учета вызовов платежного провайдера
type Metrics interface {
	ObservePaymentCall(operation, status string)
}

type noopMetrics struct{}

func (noopMetrics) ObservePaymentCall(string, string) {}

// leveledLogger адаптирует Logger под интерфейс логгера stripe-go
type leveledLogger struct {
	log Logger
}

func (l leveledLogger) Debugf(format string, v ...interface{}) { l.log.Debug(format, v...) }
func (l leveledLogger) Infof(format string, v ...interface{})  { l.log.Debug(format, v...) }
func (l leveledLogger) Warnf(format string, v ...interface{})  { l.log.Warn(format, v...) }
func (l leveledLogger) Errorf(format string, v ...interface{}) { l.log.Error(format, v...) }
