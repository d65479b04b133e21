package sweepaoi

import (
	"github.com/xiaonanln/go-sweepaoi/aoi"
	"github.com/xiaonanln/go-sweepaoi/config"
)

// EntityID is the handle of an entity managed by an AOIManager
type EntityID = aoi.EntityID

// InvalidEntityID is a EntityID that is never assigned to any entity
const InvalidEntityID = aoi.InvalidEntityID

// MAX_ENTITIES is the capacity of every AOIManager
const MAX_ENTITIES = aoi.MAX_ENTITIES

// AOIManager manages entities and answers proximity queries
type AOIManager = aoi.AOIManager

// Event is an enter or leave transition reported by Trigger
type Event = aoi.Event

// EventKind is the kind of Event
type EventKind = aoi.EventKind

const (
	// EventEnter is reported when another entity becomes a neighbor
	EventEnter = aoi.EventEnter
	// EventLeave is reported when a neighbor stops being one
	EventLeave = aoi.EventLeave
)

// NewAOIManager creates a new AOI manager
func NewAOIManager() *AOIManager {
	return aoi.NewAOIManager()
}

// SetConfigFile sets the config file path (sweepaoi.ini by default)
func SetConfigFile(f string) {
	config.SetConfigFile(f)
}

// GetDemoConfig returns the aoi_demo config
func GetDemoConfig() *config.DemoConfig {
	return config.GetDemo()
}
