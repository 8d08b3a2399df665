package models

import "time"

// Record is a single log entry as captured at the emit call site, before
// rendering. Seq is assigned by the logger and is unique per logger
// instance; Timestamp is only populated when timestamping is enabled.
type Record struct {
	Seq       uint64
	Level     Level
	Tag       string
	Timestamp time.Time
	Body      string
}
