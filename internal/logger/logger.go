// Package logger builds the logrus logger used by the CLI
package logger

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
)

// ConsoleFormatter prints one line per entry: time, level, message, then sorted fields
type ConsoleFormatter struct {
	TimestampFormat string
	DisableColors   bool
}

// Format implements logrus.Formatter
func (f *ConsoleFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	var levelColor *color.Color
	switch entry.Level {
	case logrus.ErrorLevel, logrus.FatalLevel, logrus.PanicLevel:
		levelColor = color.New(color.FgRed, color.Bold)
	case logrus.WarnLevel:
		levelColor = color.New(color.FgYellow, color.Bold)
	case logrus.InfoLevel:
		levelColor = color.New(color.FgCyan)
	default:
		levelColor = color.New(color.FgWhite, color.Faint)
	}
	if f.DisableColors {
		levelColor.DisableColor()
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "[%s] %s: %s",
		entry.Time.Format(f.TimestampFormat),
		levelColor.Sprint(strings.ToUpper(entry.Level.String())),
		entry.Message,
	)

	if len(entry.Data) > 0 {
		keys := make([]string, 0, len(entry.Data))
		for k := range entry.Data {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		fields := make([]string, 0, len(keys))
		for _, k := range keys {
			fields = append(fields, fmt.Sprintf("%s=%v", k, entry.Data[k]))
		}
		faint := color.New(color.FgWhite, color.Faint)
		if f.DisableColors {
			faint.DisableColor()
		}
		sb.WriteString(faint.Sprint(" {" + strings.Join(fields, ", ") + "}"))
	}

	sb.WriteString("\n")
	return []byte(sb.String()), nil
}

// New creates a logger writing to out. Unknown levels fall back to warn;
// format "json" selects the logrus JSON formatter.
func New(level, format string, out io.Writer) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(out)

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.WarnLevel
	}
	log.SetLevel(lvl)

	if strings.EqualFold(format, "json") {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&ConsoleFormatter{
			TimestampFormat: "15:04:05",
			DisableColors:   color.NoColor,
		})
	}

	return log
}
