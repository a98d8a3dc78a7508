package logger

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
)

const (
	White = iota
	Black = iota + 30
	Red
	Green
	Yellow
	Blue
	Purple
	Cyan
	Grey
)

// Level is a logging severity. Messages below the logger's level are dropped.
type Level int

const (
	LevelDefault Level = iota
	LevelTrace
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
	LevelFatal
	LevelPanic
)

var colors = map[int]string{
	White:  "\033[0m",
	Black:  "\033[30m",
	Red:    "\033[31m",
	Green:  "\033[32m",
	Yellow: "\033[33m",
	Blue:   "\033[34m",
	Purple: "\033[35m",
	Cyan:   "\033[36m",
	Grey:   "\033[37m",
}

type levelInfo struct {
	color string
	tag   string
}

var levels = map[Level]levelInfo{
	LevelTrace:   {colors[Grey], "TRCE"},
	LevelDebug:   {colors[Grey], "DBUG"},
	LevelInfo:    {colors[Blue], "INFO"},
	LevelWarn:    {colors[Yellow], "WARN"},
	LevelError:   {colors[Red], "EROR"},
	LevelFatal:   {colors[Red], "FATL"},
	LevelPanic:   {colors[Red], "PANC"},
	LevelDefault: {colors[White], "NORM"},
}

// ParseLevel maps a level name (trace, debug, info, warn, error) to a Level.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "default", "norm":
		return LevelDefault, nil
	case "trace", "trce":
		return LevelTrace, nil
	case "debug", "dbug":
		return LevelDebug, nil
	case "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error", "eror":
		return LevelError, nil
	}
	return LevelDefault, fmt.Errorf("logger: unknown level %q", s)
}

func (lv Level) String() string {
	if li, ok := levels[lv]; ok {
		return li.tag
	}
	return levels[LevelDefault].tag
}

var DefaultLogger = NewLogger()

type Logger struct {
	lock      sync.Mutex
	log       *log.Logger
	buf       *bytes.Buffer
	level     Level
	color     bool
	printFunc bool
	printFile bool
	dep       int // call depth
}

// NewLogger returns a colored logger writing to stderr.
func NewLogger() *Logger {
	l := NewWriterLogger(os.Stderr)
	l.color = true
	return l
}

// NewWriterLogger returns a logger writing plain (uncolored) lines to w.
func NewWriterLogger(w io.Writer) *Logger {
	return &Logger{
		log: log.New(w, "", log.LstdFlags),
		buf: new(bytes.Buffer),
		dep: 4,
	}
}

func (l *Logger) logInternal(level Level, depth int, format string, args ...interface{}) {
	l.lock.Lock()
	defer l.lock.Unlock()
	if level != LevelDefault && level < l.level {
		return
	}
	li, ok := levels[level]
	if !ok {
		li = levels[LevelDefault]
	}
	l.buf.Reset()
	l.buf.WriteString("| ")
	if l.color {
		l.buf.WriteString(li.color)
	}
	l.buf.WriteString(li.tag)
	if l.color {
		l.buf.WriteString(colors[White])
	}
	l.buf.WriteString(" | ")
	if (l.printFunc || l.printFile) && level != LevelPanic {
		fn, file := trace(depth)
		if l.printFunc {
			l.buf.WriteByte('[')
			l.buf.WriteString(fn)
			l.buf.WriteByte(']')
		}
		if l.printFunc && l.printFile {
			l.buf.WriteByte(' ')
		}
		if l.printFile {
			l.buf.WriteString(file)
		}
		l.buf.WriteString(" - ")
	}
	if len(args) == 0 {
		l.buf.WriteString(format)
	} else {
		fmt.Fprintf(l.buf, format, args...)
	}
	l.log.Print(l.buf.String())
}

func (l *Logger) SetLevel(level Level) {
	l.lock.Lock()
	defer l.lock.Unlock()
	l.level = level
}

func (l *Logger) SetColor(ok bool) {
	l.lock.Lock()
	defer l.lock.Unlock()
	l.color = ok
}

func (l *Logger) SetPrefix(prefix string) {
	l.lock.Lock()
	defer l.lock.Unlock()
	l.log.SetPrefix(prefix)
}

func (l *Logger) SetPrintFunc(ok bool) {
	l.lock.Lock()
	defer l.lock.Unlock()
	l.printFunc = ok
}

func (l *Logger) SetPrintFile(ok bool) {
	l.lock.Lock()
	defer l.lock.Unlock()
	l.printFile = ok
}

func (l *Logger) Trace(message string) {
	l.logInternal(LevelTrace, l.dep, "%s", message)
}

func (l *Logger) Tracef(format string, args ...interface{}) {
	l.logInternal(LevelTrace, l.dep, format, args...)
}

func (l *Logger) Debug(message string) {
	l.logInternal(LevelDebug, l.dep, "%s", message)
}

func (l *Logger) Debugf(format string, args ...interface{}) {
	l.logInternal(LevelDebug, l.dep, format, args...)
}

func (l *Logger) Info(message string) {
	l.logInternal(LevelInfo, l.dep, "%s", message)
}

func (l *Logger) Infof(format string, args ...interface{}) {
	l.logInternal(LevelInfo, l.dep, format, args...)
}

func (l *Logger) Warn(message string) {
	l.logInternal(LevelWarn, l.dep, "%s", message)
}

func (l *Logger) Warnf(format string, args ...interface{}) {
	l.logInternal(LevelWarn, l.dep, format, args...)
}

func (l *Logger) Error(message string) {
	l.logInternal(LevelError, l.dep, "%s", message)
}

func (l *Logger) Errorf(format string, args ...interface{}) {
	l.logInternal(LevelError, l.dep, format, args...)
}

func (l *Logger) Fatal(message string) {
	l.logInternal(LevelFatal, l.dep, "%s", message)
	os.Exit(1)
}

func (l *Logger) Fatalf(format string, args ...interface{}) {
	l.logInternal(LevelFatal, l.dep, format, args...)
	os.Exit(1)
}

func (l *Logger) Print(message string) {
	l.logInternal(LevelDefault, l.dep, "%s", message)
}

func (l *Logger) Printf(format string, args ...interface{}) {
	l.logInternal(LevelDefault, l.dep, format, args...)
}

func trace(calldepth int) (string, string) {
	pc := make([]uintptr, 1)
	if runtime.Callers(calldepth, pc) == 0 {
		return "???", "???:0"
	}
	fn := runtime.FuncForPC(pc[0])
	if fn == nil {
		return "???", "???:0"
	}
	file, line := fn.FileLine(pc[0])
	return filepath.Base(fn.Name()), fmt.Sprintf("%s:%d", filepath.Base(file), line)
}
