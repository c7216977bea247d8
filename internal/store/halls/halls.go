package halls

import (
	"context"

	"go.uber.org/zap"

	"github.com/CypherNinjaa/SeminarHall-booking-App-sub002/internal/store"
)

type Hall struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Capacity         int    `json:"capacity"`
	Location         string `json:"location"`
	Type             string `json:"type"`
	IsActive         bool   `json:"is_active"`
	UnderMaintenance bool   `json:"under_maintenance"`
}

type HallsRepository struct {
	db  *store.DB
	log *zap.Logger
}

func NewHallsRepository(db *store.DB, log *zap.Logger) *HallsRepository {
	return &HallsRepository{db: db, log: log}
}

// List returns halls, optionally restricted to the given ids. The result may
// be a strict subset of the requested ids; callers must not assume every
// referenced hall still exists.
func (r *HallsRepository) List(ctx context.Context, ids []string) ([]*Hall, error) {
	query := `
		SELECT id, name, capacity, location, type, is_active, under_maintenance
		FROM halls`
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

	var out []*Hall
	for rows.Next() {
		h := &Hall{}
		err := rows.Scan(&h.ID, &h.Name, &h.Capacity, &h.Location, &h.Type, &h.IsActive, &h.UnderMaintenance)
		if err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	return out, rows.Err()
}
