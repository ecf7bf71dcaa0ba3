package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/renoquote/quote-backend/internal/quotes/domain"
)

// ProjectRepository provides persistence operations for projects
type ProjectRepository struct {
	db *sql.DB
}

// NewProjectRepository creates a new project repository
func NewProjectRepository(db *sql.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// Create inserts a new project and returns it with its assigned id.
// Ids are monotonically assigned by the database and never reused.
func (r *ProjectRepository) Create(ctx context.Context, userName, projectDetails string, imageURL *string) (*domain.Project, error) {
	const q = `
INSERT INTO projects (user_name, project_details, image_url)
VALUES ($1, $2, $3)
RETURNING id, user_name, project_details, image_url, created_at;
`
	var p domain.Project
	err := r.db.QueryRowContext(ctx, q, userName, projectDetails, imageURL).
		Scan(&p.ID, &p.UserName, &p.ProjectDetails, &p.ImageURL, &p.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert project: %w", err)
	}
	return &p, nil
}

// ListAll returns every project in creation order.
func (r *ProjectRepository) ListAll(ctx context.Context) ([]domain.Project, error) {
	const q = `
SELECT id, user_name, project_details, image_url, created_at
FROM projects
ORDER BY id ASC;
`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Project, 0, 16)
	for rows.Next() {
		var p domain.Project
		if err := rows.Scan(&p.ID, &p.UserName, &p.ProjectDetails, &p.ImageURL, &p.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// CountSince returns the number of projects created at or after t.
func (r *ProjectRepository) CountSince(ctx context.Context, t time.Time) (int64, error) {
	const q = `SELECT COUNT(*) FROM projects WHERE created_at >= $1;`

	var n int64
	if err := r.db.QueryRowContext(ctx, q, t).Scan(&n); err != nil {
		return 0, fmt.Errorf("count projects: %w", err)
	}
	return n, nil
}
