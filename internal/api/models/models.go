// Package models holds the JSON representations served by the API.
package models

import (
	"time"

	"github.com/mergestat/timediff"
	"github.com/samber/lo"

	"github.com/namesprouts/namesprouts/internal/database"
)

// Project is the API view of a saved design.
type Project struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Month       string    `json:"month"`
	FlowerImage string    `json:"flowerImage"`
	CreatedAt   time.Time `json:"createdAt"`
	CreatedAgo  string    `json:"createdAgo"`
}

// ToProject converts a database record to its API view.
func ToProject(p database.Project) Project {
	return Project{
		ID:          p.ID,
		Name:        p.Name,
		Month:       p.Month,
		FlowerImage: p.FlowerImage,
		CreatedAt:   p.CreatedAt,
		CreatedAgo:  timediff.TimeDiff(p.CreatedAt),
	}
}

// ToProjects converts a list of database records to their API views.
func ToProjects(projects []database.Project) []Project {
	return lo.Map(projects, func(p database.Project, _ int) Project {
		return ToProject(p)
	})
}
