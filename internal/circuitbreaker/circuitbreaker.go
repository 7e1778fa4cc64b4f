// Package circuitbreaker implements the circuit breaker pattern used to
// protect MongoDB-backed repositories from cascading failures.
package circuitbreaker

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// ErrCircuitOpen is returned when the circuit breaker rejects a call.
var ErrCircuitOpen = errors.New("circuit breaker is open")

// State represents the state of the circuit breaker.
type State int

const (
	// StateClosed means calls pass through normally.
	StateClosed State = iota
	// StateOpen means calls are rejected immediately.
	StateOpen
	// StateHalfOpen means a limited number of probe calls are allowed.
	StateHalfOpen
)

// String returns the string representation of the state.
func (s State) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateOpen:
		return "open"
	case StateHalfOpen:
		return "half-open"
	default:
		return "unknown"
	}
}

// Config holds circuit breaker configuration.
type Config struct {
	// FailureThreshold is the number of consecutive failures before the circuit opens.
	FailureThreshold int
	// SuccessThreshold is the number of consecutive probe successes needed to close again.
	SuccessThreshold int
	// Timeout is how long the circuit stays open before allowing a probe call.
	Timeout time.Duration
	// Name identifies the breaker in logs and health output.
	Name string
}

// DefaultConfig returns a default circuit breaker configuration.
func DefaultConfig() Config {
	return Config{
		FailureThreshold: 5,
		SuccessThreshold: 2,
		Timeout:          30 * time.Second,
		Name:             "circuit-breaker",
	}
}

// CircuitBreaker tracks consecutive failures and short-circuits calls once the
// failure threshold is reached.
type CircuitBreaker struct {
	config          Config
	state           State
	failureCount    int
	successCount    int
	lastFailureTime time.Time
	mu              sync.RWMutex
}

// New creates a new circuit breaker with the given configuration.
func New(config Config) *CircuitBreaker {
	return &CircuitBreaker{
		config: config,
		state:  StateClosed,
	}
}

// Execute runs fn with circuit breaker protection. If the circuit is open and
// the timeout has not elapsed, fn is not called and ErrCircuitOpen is returned.
func (cb *CircuitBreaker) Execute(ctx context.Context, fn func() error) error {
	if !cb.allow() {
		return ErrCircuitOpen
	}

	err := fn()
	cb.record(err)
	return err
}

// allow decides whether a call may proceed, transitioning open circuits to
// half-open once the timeout has elapsed.
func (cb *CircuitBreaker) allow() bool {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	if cb.state != StateOpen {
		return true
	}

	if time.Since(cb.lastFailureTime) < cb.config.Timeout {
		return false
	}

	cb.state = StateHalfOpen
	cb.successCount = 0
	log.Info().
		Str("circuit_breaker", cb.config.Name).
		Msg("Circuit breaker transitioning to half-open")
	return true
}

// record updates breaker state after a call completes.
func (cb *CircuitBreaker) record(err error) {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	if err != nil {
		cb.onFailure()
		return
	}
	cb.onSuccess()
}

func (cb *CircuitBreaker) onFailure() {
	cb.failureCount++
	cb.lastFailureTime = time.Now()

	switch cb.state {
	case StateClosed:
		if cb.failureCount >= cb.config.FailureThreshold {
			cb.state = StateOpen
			log.Warn().
				Str("circuit_breaker", cb.config.Name).
				Int("failure_count", cb.failureCount).
				Msg("Circuit breaker opened due to consecutive failures")
		}
	case StateHalfOpen:
		// A failed probe reopens the circuit immediately
		cb.state = StateOpen
		cb.failureCount = cb.config.FailureThreshold
		log.Warn().
			Str("circuit_breaker", cb.config.Name).
			Msg("Circuit breaker reopened after failed probe")
	}
}

func (cb *CircuitBreaker) onSuccess() {
	cb.failureCount = 0

	switch cb.state {
	case StateHalfOpen:
		cb.successCount++
		if cb.successCount >= cb.config.SuccessThreshold {
			cb.state = StateClosed
			cb.successCount = 0
			log.Info().
				Str("circuit_breaker", cb.config.Name).
				Msg("Circuit breaker closed after recovery")
		}
	case StateClosed:
		cb.successCount = 0
	}
}

// State returns the current state of the circuit breaker.
func (cb *CircuitBreaker) State() State {
	cb.mu.RLock()
	defer cb.mu.RUnlock()
	return cb.state
}

// IsOpen returns true if the circuit breaker is open.
func (cb *CircuitBreaker) IsOpen() bool {
	cb.mu.RLock()
	defer cb.mu.RUnlock()
	return cb.state == StateOpen
}

// Stats is a point-in-time snapshot of breaker state for health reporting.
type Stats struct {
	State        string    `json:"state"`
	FailureCount int       `json:"failure_count"`
	SuccessCount int       `json:"success_count"`
	LastFailure  time.Time `json:"last_failure,omitempty"`
	IsHealthy    bool      `json:"is_healthy"`
}

// GetStats returns current circuit breaker statistics.
func (cb *CircuitBreaker) GetStats() Stats {
	cb.mu.RLock()
	defer cb.mu.RUnlock()

	return Stats{
		State:        cb.state.String(),
		FailureCount: cb.failureCount,
		SuccessCount: cb.successCount,
		LastFailure:  cb.lastFailureTime,
		IsHealthy:    cb.state == StateClosed,
	}
}
