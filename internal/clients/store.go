package clients

import (
	"context"
	"time"
)

// Client is one coached person.
type Client struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Age       int       `json:"age,omitempty"`
	Weight    float64   `json:"weight,omitempty"`
	Height    float64   `json:"height,omitempty"`
	Goals     string    `json:"goals,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// TrainingPlan is a generated plan kept for the history listing.
type TrainingPlan struct {
	ID         string    `json:"id"`
	Difficulty string    `json:"difficulty"`
	Mode       string    `json:"mode"`
	NumPeople  int       `json:"num_people"`
	Duration   int       `json:"duration"`
	TargetUser string    `json:"target_user,omitempty"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"created_at"`
}

// Store is the record persistence collaborator. The engine never
// embeds persistence logic; handlers call these operations and
// translate outcomes into results.
type Store interface {
	Create(ctx context.Context, client *Client) (*Client, error)

	List(ctx context.Context) ([]*Client, error)

	// GetByName finds the first client whose name contains the given
	// fragment, case-insensitively. Returns nil when nothing matches.
	GetByName(ctx context.Context, name string) (*Client, error)

	// DeleteByName removes the first matching client and returns it,
	// or nil when nothing matched.
	DeleteByName(ctx context.Context, name string) (*Client, error)

	SavePlan(ctx context.Context, plan *TrainingPlan) (*TrainingPlan, error)

	ListPlans(ctx context.Context) ([]*TrainingPlan, error)
}
