package mylog

import (
	"context"
	"os"
	"strings"
	"sync/atomic"
)

type Severity string

const (
	SeverityDebug Severity = "DEBUG"
	SeverityInfo  Severity = "INFO"
	SeverityWarn  Severity = "WARN"
	SeverityError Severity = "ERROR"
)

var New func(name string) Logger

type Logger interface {
	Log(ctx context.Context, traceLabel string, severity Severity, format string, a ...any)
}

var minimumRank atomic.Int32

func init() {
	SetMinimumSeverity(Severity(strings.ToUpper(os.Getenv("LOG_LEVEL"))))
}

// SetMinimumSeverity drops every entry below s. Unknown values select DEBUG.
func SetMinimumSeverity(s Severity) {
	minimumRank.Store(rank(s))
}

func enabled(s Severity) bool {
	return rank(s) >= minimumRank.Load()
}

func rank(s Severity) int32 {
	switch s {
	case SeverityInfo:
		return 1
	case SeverityWarn:
		return 2
	case SeverityError:
		return 3
	default:
		return 0
	}
}

// Redact keeps only a short prefix of a bearer credential so it can be correlated in logs.
func Redact(secret string) string {
	if len(secret) <= 4 {
		return "****"
	}
	return secret[:4] + "****"
}
