package catalog

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PGRepo is the swappable PostgreSQL implementation, selected when
// POSTGRES_DSN is configured.
type PGRepo struct{ db *pgxpool.Pool }

func NewPGRepo(db *pgxpool.Pool) *PGRepo { return &PGRepo{db: db} }

func (r *PGRepo) List(ctx context.Context) ([]Product, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.Query(ctx, `
		SELECT id, name, description, price, image, category, subcategory
		FROM products ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Product
	for rows.Next() {
		var p Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Image, &p.Category, &p.Subcategory); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *PGRepo) GetByID(ctx context.Context, id int64) (*Product, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var p Product
	err := r.db.QueryRow(ctx, `
		SELECT id, name, description, price, image, category, subcategory
		FROM products WHERE id=$1
	`, id).Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Image, &p.Category, &p.Subcategory)
	if err != nil {
		return nil, ErrNotFound
	}
	return &p, nil
}

func (r *PGRepo) Create(ctx context.Context, p *Product) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	return r.db.QueryRow(ctx, `
		INSERT INTO products (name, description, price, image, category, subcategory)
		VALUES ($1,$2,$3,$4,$5,$6)
		RETURNING id
	`, p.Name, p.Description, p.Price, p.Image, p.Category, p.Subcategory).Scan(&p.ID)
}

func (r *PGRepo) Update(ctx context.Context, p *Product) (*Product, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var out Product
	err := r.db.QueryRow(ctx, `
		UPDATE products
		SET name        = COALESCE(NULLIF($2,''), name),
		    description = COALESCE(NULLIF($3,''), description),
		    price       = COALESCE(NULLIF($4,''), price),
		    image       = COALESCE(NULLIF($5,''), image),
		    category    = COALESCE(NULLIF($6,''), category),
		    subcategory = COALESCE(NULLIF($7,''), subcategory)
		WHERE id = $1
		RETURNING id, name, description, price, image, category, subcategory
	`, p.ID, p.Name, p.Description, p.Price, p.Image, p.Category, p.Subcategory).
		Scan(&out.ID, &out.Name, &out.Description, &out.Price, &out.Image, &out.Category, &out.Subcategory)
	if err != nil {
		return nil, ErrNotFound
	}
	return &out, nil
}

func (r *PGRepo) Delete(ctx context.Context, id int64) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cmd, err := r.db.Exec(ctx, `DELETE FROM products WHERE id=$1`, id)
	if err != nil {
		return false, err
	}
	return cmd.RowsAffected() > 0, nil
}
