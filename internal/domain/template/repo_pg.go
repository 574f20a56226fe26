package template

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct {
	pool *pgxpool.Pool
}

func NewRepo(pool *pgxpool.Pool) Repository {
	return &repoPG{pool: pool}
}

const columns = `id, name, domain, kind, version, payload, created_at, updated_at`

func (r *repoPG) Create(ctx context.Context, t *Template) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	_, err := r.pool.Exec(ctx, `
		INSERT INTO report_template (id, name, domain, kind, version, payload)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		t.ID, t.Name, t.Domain, t.Kind, t.Version, t.Payload,
	)
	return err
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*Template, error) {
	var t Template
	err := r.pool.QueryRow(ctx,
		`SELECT `+columns+` FROM report_template WHERE id = $1`, id,
	).Scan(&t.ID, &t.Name, &t.Domain, &t.Kind, &t.Version, &t.Payload, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *repoPG) Update(ctx context.Context, t *Template) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE report_template SET
			name = $2, version = $3, payload = $4, updated_at = NOW()
		WHERE id = $1`,
		t.ID, t.Name, t.Version, t.Payload,
	)
	return err
}

func (r *repoPG) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM report_template WHERE id = $1`, id)
	return err
}

func (r *repoPG) List(ctx context.Context, domain string, limit, offset int) ([]*Template, int, error) {
	var (
		total int
		err   error
	)
	if domain != "" {
		err = r.pool.QueryRow(ctx,
			`SELECT COUNT(*) FROM report_template WHERE domain = $1`, domain).Scan(&total)
	} else {
		err = r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM report_template`).Scan(&total)
	}
	if err != nil {
		return nil, 0, err
	}

	var rows pgx.Rows
	if domain != "" {
		rows, err = r.pool.Query(ctx,
			`SELECT `+columns+` FROM report_template WHERE domain = $1 ORDER BY name LIMIT $2 OFFSET $3`,
			domain, limit, offset)
	} else {
		rows, err = r.pool.Query(ctx,
			`SELECT `+columns+` FROM report_template ORDER BY name LIMIT $1 OFFSET $2`,
			limit, offset)
	}
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var out []*Template
	for rows.Next() {
		var t Template
		if err := rows.Scan(&t.ID, &t.Name, &t.Domain, &t.Kind, &t.Version, &t.Payload, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, 0, err
		}
		out = append(out, &t)
	}
	return out, total, rows.Err()
}
