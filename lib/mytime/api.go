package mytime

import "time"

var (
	ExampleTime time.Time
)

func init() {
	ExampleTime, _ = time.Parse("2006-01-02T15:04:05Z", "2023-02-27T23:58:59Z")
}

//go:generate mockgen -source=api.go -package mytime -destination nower_mock.go Nower
type Nower interface {
	Now() time.Time
}

type RealNower struct{}

func (n RealNower) Now() time.Time {
	return time.Now()
}

// Timer is a pending call started by an AfterFunc.
type Timer interface {
	Stop() bool
}

// AfterFunc calls f in its own goroutine once d has elapsed.
type AfterFunc func(d time.Duration, f func()) Timer

func RealAfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// FromUnixMillis converts epoch milliseconds, zero means unknown.
func FromUnixMillis(millis int64) time.Time {
	if millis == 0 {
		return time.Time{}
	}
	return time.UnixMilli(millis)
}
