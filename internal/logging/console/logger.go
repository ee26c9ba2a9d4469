package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/goliatone/go-sitemark/internal/logging"
	"github.com/goliatone/go-sitemark/pkg/interfaces"
)

// Level represents the severity attached to a log entry.
type Level uint8

const (
	LevelTrace Level = iota
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
	LevelFatal
)

var levelNames = [...]string{"TRACE", "DEBUG", "INFO", "WARN", "ERROR", "FATAL"}

func (l Level) String() string {
	if int(l) < len(levelNames) {
		return levelNames[l]
	}
	return "INFO"
}

// ErrUnknownLevel is returned by ParseLevel for names it does not know.
var ErrUnknownLevel = errors.New("console: unknown log level")

// ParseLevel maps a level name such as "info" or "WARN" onto a Level.
// "warning" is accepted as an alias for warn.
func ParseLevel(name string) (Level, error) {
	trimmed := strings.TrimSpace(name)
	if strings.EqualFold(trimmed, "warning") {
		return LevelWarn, nil
	}
	for i, label := range levelNames {
		if strings.EqualFold(trimmed, label) {
			return Level(i), nil
		}
	}
	return LevelInfo, fmt.Errorf("%w %q", ErrUnknownLevel, name)
}

// leadingKeys are written right after the message, in this order, so render
// and command correlation fields line up across entries.
var leadingKeys = []string{
	"logger",
	"command",
	"operation",
	"render_id",
	"engine",
	"markdown_path",
}

// Options configures the console provider. Zero values mean stdout, the
// wall clock and DEBUG.
type Options struct {
	Writer   io.Writer
	TimeFunc func() time.Time
	MinLevel *Level
}

// Provider writes one line per entry:
//
//	<RFC3339 UTC time> <LEVEL> <message> <leading keys> <other keys sorted>
type Provider struct {
	mu  sync.Mutex
	out io.Writer
	now func() time.Time
	min Level
}

func NewProvider(opts Options) *Provider {
	p := &Provider{out: opts.Writer, now: opts.TimeFunc, min: LevelDebug}
	if p.out == nil {
		p.out = os.Stdout
	}
	if p.now == nil {
		p.now = time.Now
	}
	if opts.MinLevel != nil {
		p.min = *opts.MinLevel
	}
	return p
}

func (p *Provider) GetLogger(name string) interfaces.Logger {
	return &entryLogger{provider: p, fields: map[string]any{"logger": name}}
}

func (p *Provider) write(line string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	// write errors are dropped
	_, _ = io.WriteString(p.out, line)
}

type entryLogger struct {
	provider *Provider
	fields   map[string]any
	ctx      context.Context
}

var (
	_ interfaces.Logger       = (*entryLogger)(nil)
	_ interfaces.FieldsLogger = (*entryLogger)(nil)
)

func (l *entryLogger) Trace(msg string, args ...any) { l.emit(LevelTrace, msg, args) }
func (l *entryLogger) Debug(msg string, args ...any) { l.emit(LevelDebug, msg, args) }
func (l *entryLogger) Info(msg string, args ...any)  { l.emit(LevelInfo, msg, args) }
func (l *entryLogger) Warn(msg string, args ...any)  { l.emit(LevelWarn, msg, args) }
func (l *entryLogger) Error(msg string, args ...any) { l.emit(LevelError, msg, args) }
func (l *entryLogger) Fatal(msg string, args ...any) { l.emit(LevelFatal, msg, args) }

func (l *entryLogger) WithFields(fields map[string]any) interfaces.Logger {
	if len(fields) == 0 {
		return l
	}
	merged := maps.Clone(l.fields)
	maps.Copy(merged, fields)
	return &entryLogger{provider: l.provider, fields: merged, ctx: l.ctx}
}

func (l *entryLogger) WithContext(ctx context.Context) interfaces.Logger {
	return &entryLogger{provider: l.provider, fields: l.fields, ctx: ctx}
}

// emit merges bound fields, context fields and call arguments, later sources
// winning, and writes the entry.
func (l *entryLogger) emit(level Level, msg string, args []any) {
	if l.provider == nil || level < l.provider.min {
		return
	}

	fields := maps.Clone(l.fields)
	if fields == nil {
		fields = map[string]any{}
	}
	maps.Copy(fields, logging.ContextFields(l.ctx))
	for i := 0; i < len(args); i += 2 {
		if i+1 == len(args) {
			fields["arg"+strconv.Itoa(i)] = args[i]
			break
		}
		key, ok := args[i].(string)
		if !ok || key == "" {
			key = "arg" + strconv.Itoa(i)
		}
		fields[key] = args[i+1]
	}

	var line strings.Builder
	line.WriteString(l.provider.now().UTC().Format(time.RFC3339Nano))
	line.WriteByte(' ')
	line.WriteString(level.String())
	line.WriteByte(' ')
	line.WriteString(msg)
	for _, key := range orderedKeys(fields) {
		line.WriteByte(' ')
		line.WriteString(key)
		line.WriteByte('=')
		line.WriteString(renderValue(fields[key]))
	}
	line.WriteByte('\n')
	l.provider.write(line.String())
}

func orderedKeys(fields map[string]any) []string {
	keys := make([]string, 0, len(fields))
	for _, key := range leadingKeys {
		if _, ok := fields[key]; ok {
			keys = append(keys, key)
		}
	}
	for _, key := range slices.Sorted(maps.Keys(fields)) {
		if !slices.Contains(leadingKeys, key) {
			keys = append(keys, key)
		}
	}
	return keys
}

func renderValue(value any) string {
	var text string
	switch v := value.(type) {
	case nil:
		return "null"
	case time.Time:
		text = v.UTC().Format(time.RFC3339Nano)
	case *time.Time:
		if v == nil {
			return "null"
		}
		text = v.UTC().Format(time.RFC3339Nano)
	default:
		// fmt covers error and Stringer values
		text = fmt.Sprint(v)
	}
	if text == "" || strings.ContainsAny(text, " \t\r\n=\"") {
		return strconv.Quote(text)
	}
	return text
}
