package domo

import "time"

// LogEntry is one activity log (audit) record.
type LogEntry struct {
	UserName          *string    `json:"userName,omitempty"          yaml:"userName,omitempty"`
	UserID            *string    `json:"userId,omitempty"            yaml:"userId,omitempty"`
	UserType          *string    `json:"userType,omitempty"          yaml:"userType,omitempty"`
	ActorID           *int64     `json:"actorId,omitempty"           yaml:"actorId,omitempty"`
	ActorType         *string    `json:"actorType,omitempty"         yaml:"actorType,omitempty"`
	ObjectName        *string    `json:"objectName,omitempty"        yaml:"objectName,omitempty"`
	ObjectID          *string    `json:"objectId,omitempty"          yaml:"objectId,omitempty"`
	ObjectType        *string    `json:"objectType,omitempty"        yaml:"objectType,omitempty"`
	AdditionalComment *string    `json:"additionalComment,omitempty" yaml:"additionalComment,omitempty"`
	Time              *time.Time `json:"time,omitempty"              yaml:"time,omitempty"`
	EventText         *string    `json:"eventText,omitempty"         yaml:"eventText,omitempty"`
	Device            *string    `json:"device,omitempty"            yaml:"device,omitempty"`
	BrowserDetails    *string    `json:"browserDetails,omitempty"    yaml:"browserDetails,omitempty"`
	IPAddress         *string    `json:"ipAddress,omitempty"         yaml:"ipAddress,omitempty"`
}

// ActivityQuery filters an activity log listing. Start and End are epoch
// milliseconds; Start is required by the API.
type ActivityQuery struct {
	User   *int64
	Start  int64
	End    *int64
	Limit  *int
	Offset *int
}
