package logging

import (
	"time"
)

// Common field constructors
func String(key, value string) Field {
	return Field{Key: key, Value: value}
}

func Int(key string, value int) Field {
	return Field{Key: key, Value: value}
}

func Float64(key string, value float64) Field {
	return Field{Key: key, Value: value}
}

func Bool(key string, value bool) Field {
	return Field{Key: key, Value: value}
}

func Duration(key string, value time.Duration) Field {
	return Field{Key: key, Value: value.String()}
}

func Error(err error) Field {
	if err == nil {
		return Field{Key: "error", Value: nil}
	}
	return Field{Key: "error", Value: err.Error()}
}

// Experiment field helpers for common experiment dimensions
func Component(name string) Field {
	return String("component", name)
}

func RunID(id string) Field {
	return String("run_id", id)
}

func Beta(b float64) Field {
	return Float64("beta", b)
}

func Nodes(n int) Field {
	return Int("nodes", n)
}

func Degree(k int) Field {
	return Int("degree", k)
}

func Trial(t int) Field {
	return Int("trial", t)
}

func Seed(s uint64) Field {
	return Field{Key: "seed", Value: s}
}

func Artifact(path string) Field {
	return String("artifact", path)
}

func Elapsed(d time.Duration) Field {
	return Duration("elapsed", d)
}
