package utils

import (
	"sync/atomic"

	"go.mongodb.org/mongo-driver/event"
)

type MongoMetrics struct {
	ActiveConnections  int64
	CreatedConnections int64
	ClosedConnections  int64
}

var metrics MongoMetrics

// MongoPoolMonitor feeds the connection counters from driver pool events.
// Attach it with options.Client().SetPoolMonitor.
func MongoPoolMonitor() *event.PoolMonitor {
	return &event.PoolMonitor{
		Event: func(evt *event.PoolEvent) {
			switch evt.Type {
			case event.ConnectionCreated:
				atomic.AddInt64(&metrics.CreatedConnections, 1)
			case event.ConnectionClosed:
				atomic.AddInt64(&metrics.ClosedConnections, 1)
			case event.GetSucceeded:
				atomic.AddInt64(&metrics.ActiveConnections, 1)
			case event.ConnectionReturned:
				atomic.AddInt64(&metrics.ActiveConnections, -1)
			}
		},
	}
}

func GetMongoMetrics() MongoMetrics {
	return MongoMetrics{
		ActiveConnections:  atomic.LoadInt64(&metrics.ActiveConnections),
		CreatedConnections: atomic.LoadInt64(&metrics.CreatedConnections),
		ClosedConnections:  atomic.LoadInt64(&metrics.ClosedConnections),
	}
}
