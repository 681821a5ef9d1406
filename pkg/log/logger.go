package log

import (
	"io"
	"os"

	"github.com/op/go-logging"
)

// Level selects which log lines reach the sink
type Level int

// Verbosity levels, from most to least chatty. The CLI maps -vv to Debug and -v to Info.
const (
	Debug Level = iota
	Info
	Notice
	Warning
	Error
)

// lineFormat prefixes every line with time, module and level
var lineFormat = logging.MustStringFormatter(
	`%{color}[%{time:15:04:05.000}] [%{module}] [%{level}]%{color:reset} %{message}`,
)

// backend is shared by all loggers; SetSink replaces it
var backend logging.LeveledBackend

// Logger is the leveled logger handed out by New. The renderer only
// needs the core.Logger subset.
type Logger interface {
	Debug(v ...interface{})
	Debugf(format string, v ...interface{})

	Info(v ...interface{})
	Infof(format string, v ...interface{})

	Notice(v ...interface{})
	Noticef(format string, v ...interface{})

	Warning(v ...interface{})
	Warningf(format string, v ...interface{})

	Error(v ...interface{})
	Errorf(format string, v ...interface{})
}

// New returns the logger for a component; name shows up in the [module] column.
func New(name string) Logger {
	return logging.MustGetLogger(name)
}

// SetSink sends the output of every logger to w and resets verbosity to Notice.
func SetSink(w io.Writer) {
	formatted := logging.NewBackendFormatter(logging.NewLogBackend(w, "", 0), lineFormat)
	backend = logging.AddModuleLevel(formatted)
	backend.SetLevel(logging.NOTICE, "")
	logging.SetBackend(backend)
}

// SetLevel changes the verbosity of every logger.
func SetLevel(level Level) {
	backend.SetLevel(level.backendLevel(), "")
}

// backendLevel maps a Level onto go-logging, treating unknown values as Notice
func (l Level) backendLevel() logging.Level {
	switch l {
	case Debug:
		return logging.DEBUG
	case Info:
		return logging.INFO
	case Warning:
		return logging.WARNING
	case Error:
		return logging.ERROR
	default:
		return logging.NOTICE
	}
}

// Render logs go to stderr so that image data can be piped from stdout
func init() {
	SetSink(os.Stderr)
}
