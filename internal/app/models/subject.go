package models

import (
	"strconv"
	"time"
)

type Subject struct {
	ID        string     `bson:"_id,omitempty" json:"id"`
	State     string     `bson:"state" json:"state"`
	Surname   string     `bson:"surname" json:"surname"`
	GivenName string     `bson:"givenName" json:"given_name"`
	Email     string     `bson:"email" json:"email"`
	Gender    string     `bson:"gender" json:"gender"`
	NextRun   *time.Time `bson:"nextRun,omitempty" json:"next_run,omitempty"`
	FormType  string     `bson:"formType" json:"form_type"`
	Language  string     `bson:"language" json:"language"`
}

// NextRunID returns the run id for the subject's upcoming run, the year
// of the scheduled next run.
func (s Subject) NextRunID() string {
	if s.NextRun == nil {
		return ""
	}
	return strconv.Itoa(s.NextRun.Year())
}
