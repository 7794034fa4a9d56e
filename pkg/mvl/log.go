package mvl

import (
	"fmt"
	"io"
	"runtime"
	"sort"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// Minimally viable logging. All the CLI needs is a level switch and a
// format that stays out of the way of secret values printed to stdout.

func SetSimpleFormat() {
	logrus.SetFormatter(&formatter{})
}

func SetDebug() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetLevel(logrus.DebugLevel)
}

func SetError() {
	logrus.SetLevel(logrus.ErrorLevel)
}

func SetOutput(out io.Writer) {
	logrus.SetOutput(out)
}

type formatter struct {
}

func (formatter) Format(entry *logrus.Entry) ([]byte, error) {
	msg := entry.Message
	keys := make([]string, 0, len(entry.Data))
	for k := range entry.Data {
		if k == "logger" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		msg += fmt.Sprintf(" [%s=%v]", k, entry.Data[k])
	}
	return []byte(fmt.Sprintf("%s %s\n", entry.Time.Format(time.TimeOnly), msg)), nil
}

func Package() Logger {
	_, p, _, _ := runtime.Caller(1)
	if _, suffix, ok := strings.Cut(p, "vessel"); ok {
		if i := strings.LastIndex(suffix, "/"); i > 0 {
			return New(suffix[:i])
		}
	}
	return New(p)
}

func New(name string) Logger {
	var fields logrus.Fields
	if name != "" {
		fields = logrus.Fields{
			"logger": name,
		}
	}
	return Logger{
		log:    logrus.StandardLogger(),
		fields: fields,
	}
}

type Logger struct {
	log    *logrus.Logger
	fields logrus.Fields
}

func (l Logger) Fields(kv ...any) Logger {
	fields := logrus.Fields{}
	for k, v := range l.fields {
		fields[k] = v
	}
	for i := 1; i < len(kv); i += 2 {
		fields[fmt.Sprint(kv[i-1])] = kv[i]
	}
	return Logger{
		log:    l.log,
		fields: fields,
	}
}

func (l Logger) Debugf(msg string, args ...any) {
	l.log.WithFields(l.fields).Debugf(msg, args...)
}

func (l Logger) Infof(msg string, args ...any) {
	l.log.WithFields(l.fields).Infof(msg, args...)
}

func (l Logger) Warnf(msg string, args ...any) {
	l.log.WithFields(l.fields).Warnf(msg, args...)
}

func (l Logger) Errorf(msg string, args ...any) {
	l.log.WithFields(l.fields).Errorf(msg, args...)
}
