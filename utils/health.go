package utils

import (
	"context"
	"time"
)

// Pinger is anything that can prove its backend is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// PingFunc adapts a function to Pinger.
type PingFunc func(ctx context.Context) error

func (f PingFunc) Ping(ctx context.Context) error { return f(ctx) }

// HealthStatus represents current status of external services.
type HealthStatus struct {
	Healthy   bool              `json:"healthy"`
	Checks    map[string]string `json:"checks"`
	CheckedAt time.Time         `json:"checkedAt"`
}

// CheckHealth pings every dependency with a shared deadline.
func CheckHealth(ctx context.Context, deps map[string]Pinger) HealthStatus {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	status := HealthStatus{Healthy: true, Checks: make(map[string]string, len(deps)), CheckedAt: time.Now().UTC()}
	for name, dep := range deps {
		if err := dep.Ping(ctx); err != nil {
			status.Healthy = false
			status.Checks[name] = err.Error()
			continue
		}
		status.Checks[name] = "ok"
	}
	return status
}
