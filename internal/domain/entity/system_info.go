package entity

import "time"

// SystemInfo describes the running build and environment.
type SystemInfo struct {
	ServiceName       string    `json:"serviceName"`
	Env               string    `json:"env"`
	ShowSwaggerUILink bool      `json:"showSwaggerUILink"`
	SourceRepo        string    `json:"sourceRepo"`
	CommitID          string    `json:"commitId"`
	StartedAt         time.Time `json:"startedAt"`
}
