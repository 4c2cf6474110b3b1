package server

import (
	"log/slog"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// windowCount is mutated in place so the entry keeps the expiry of its first request,
// giving each client a fixed window rather than a sliding one.
type windowCount struct {
	n int
}

// ClientGuard counts requests and failed authentications per client IP over a fixed window
type ClientGuard struct {
	mu         sync.Mutex
	limit      int
	requests   *expirable.LRU[string, *windowCount]
	failedAuth *expirable.LRU[string, *windowCount]
}

// NewClientGuard allows limit requests per client within each window
func NewClientGuard(limit int, window time.Duration) *ClientGuard {
	return &ClientGuard{
		limit:      limit,
		requests:   expirable.NewLRU[string, *windowCount](maxTrackedClients, nil, window),
		failedAuth: expirable.NewLRU[string, *windowCount](maxTrackedClients, nil, window),
	}
}

func (g *ClientGuard) bump(lru *expirable.LRU[string, *windowCount], ip string) int {
	if c, ok := lru.Get(ip); ok {
		c.n++
		return c.n
	}
	lru.Add(ip, &windowCount{n: 1})
	return 1
}

// RecordFailedAuth records a failed authentication attempt and alerts past the threshold
func (g *ClientGuard) RecordFailedAuth(ip string) {
	g.mu.Lock()
	n := g.bump(g.failedAuth, ip)
	g.mu.Unlock()

	if n >= failedAuthAlertThreshold {
		slog.Warn(SecurityAlertFailedAuth, "ip", ip, "count", n)
	}
}

// RecordRequest counts a request and reports false once the client is over its limit
func (g *ClientGuard) RecordRequest(ip string) bool {
	g.mu.Lock()
	n := g.bump(g.requests, ip)
	g.mu.Unlock()

	if n <= g.limit {
		return true
	}
	if n%rateLogEvery == 0 {
		slog.Warn(SecurityAlertHighRate, "ip", ip, "count_in_window", n)
	}
	return false
}
