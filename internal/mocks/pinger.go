package mocks

import "context"

// MockPinger reports gateway reachability for health checks.
type MockPinger struct {
	PingFn func(ctx context.Context) error
	Err    error
}

// Ping returns Err unless PingFn is set.
func (m *MockPinger) Ping(ctx context.Context) error {
	if m.PingFn != nil {
		return m.PingFn(ctx)
	}
	return m.Err
}
