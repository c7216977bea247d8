package users

import (
	"context"

	"go.uber.org/zap"

	"github.com/CypherNinjaa/SeminarHall-booking-App-sub002/internal/store"
)

type UserProfile struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	Phone      *string `json:"phone"`
	Department *string `json:"department"`
	Role       string  `json:"role"`
}

type UsersRepository struct {
	db  *store.DB
	log *zap.Logger
}

func NewUsersRepository(db *store.DB, log *zap.Logger) *UsersRepository {
	return &UsersRepository{db: db, log: log}
}

// List returns user profiles, optionally restricted to the given ids.
// Missing ids are simply absent from the result.
func (r *UsersRepository) List(ctx context.Context, ids []string) ([]*UserProfile, error) {
	query := `SELECT id, name, email, phone, department, role FROM profiles`
	var args []any
	if len(ids) > 0 {
		query += ` WHERE id = ANY($1)`
		args = append(args, ids)
	}

	rows, err := r.db.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*UserProfile
	for rows.Next() {
		u := &UserProfile{}
		err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.Phone, &u.Department, &u.Role)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}
