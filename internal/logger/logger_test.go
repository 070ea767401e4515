package logger_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/alexiusacademia/gopile/internal/logger"
	"github.com/sirupsen/logrus"
)

func TestNew_Levels(t *testing.T) {
	tests := []struct {
		level string
		want  logrus.Level
	}{
		{"debug", logrus.DebugLevel},
		{"info", logrus.InfoLevel},
		{"error", logrus.ErrorLevel},
		{"nonsense", logrus.WarnLevel},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			log := logger.New(tt.level, "text", &bytes.Buffer{})
			if log.GetLevel() != tt.want {
				t.Errorf("level = %v, want %v", log.GetLevel(), tt.want)
			}
		})
	}
}

func TestConsoleFormatter(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New("info", "text", &buf)
	log.SetFormatter(&logger.ConsoleFormatter{TimestampFormat: "15:04:05", DisableColors: true})

	log.WithFields(logrus.Fields{"layers": 3, "convention": "bgl"}).Info("normalized layers")
	log.Debug("hidden")

	out := buf.String()
	if !strings.Contains(out, "INFO: normalized layers {convention=bgl, layers=3}") {
		t.Errorf("unexpected output: %q", out)
	}
	if strings.Contains(out, "hidden") {
		t.Error("debug entry written at info level")
	}
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New("info", "json", &buf)
	log.WithField("depth", 15.0).Info("calculated")

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, buf.String())
	}
	if entry["msg"] != "calculated" || entry["depth"] != 15.0 {
		t.Errorf("entry = %v", entry)
	}
}
