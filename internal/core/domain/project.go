package domain

import "time"

// Project is a fire-protection works project. Only the fields needed to own
// a cash box and scope ledger activity are modelled here.
type Project struct {
	ProjectID int64      `json:"projectID"`
	Name      string     `json:"name"`
	Client    string     `json:"client,omitempty"`
	StartDate *time.Time `json:"startDate,omitempty"`
	EndDate   *time.Time `json:"endDate,omitempty"`
}
