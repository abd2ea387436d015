package repository

import (
	"context"

	"github.com/Nikil-Srinivasan/Stint360-API/internal/model"
	"github.com/uptrace/bun"
)

type ManagerRepository struct {
	db *bun.DB
}

func NewManagerRepository(db *bun.DB) *ManagerRepository {
	return &ManagerRepository{db: db}
}

func selectManagers(db bun.IDB, dest any) *bun.SelectQuery {
	return db.NewSelect().
		Model(dest).
		Relation("Department")
}

func (r *ManagerRepository) GetAll(ctx context.Context) ([]model.Manager, error) {
	managers := []model.Manager{}
	err := selectManagers(r.db, &managers).
		OrderExpr("m.manager_id ASC").
		Scan(ctx)
	return managers, err
}

func (r *ManagerRepository) GetByID(ctx context.Context, id int) (*model.Manager, error) {
	return getManager(ctx, r.db, id)
}

// Create inserts the manager and reads it back with its department.
func (r *ManagerRepository) Create(ctx context.Context, manager *model.Manager) (*model.Manager, error) {
	if _, err := r.db.NewInsert().Model(manager).Returning("*").Exec(ctx); err != nil {
		return nil, err
	}
	return getManager(ctx, r.db, manager.ManagerID)
}

func (r *ManagerRepository) Update(ctx context.Context, id int, apply func(*model.Manager)) (*model.Manager, error) {
	var updated *model.Manager
	err := inTx(ctx, r.db, func(ctx context.Context, tx bun.Tx) error {
		manager, err := getManager(ctx, tx, id)
		if err != nil {
			return err
		}

		apply(manager)

		if _, err := tx.NewUpdate().Model(manager).WherePK().Exec(ctx); err != nil {
			return err
		}

		updated, err = getManager(ctx, tx, id)
		return err
	})
	return updated, err
}

// Delete removes the manager. Their employees keep working without one.
func (r *ManagerRepository) Delete(ctx context.Context, id int) (*model.Manager, error) {
	var deleted *model.Manager
	err := inTx(ctx, r.db, func(ctx context.Context, tx bun.Tx) error {
		manager, err := getManager(ctx, tx, id)
		if err != nil {
			return err
		}

		if _, err := tx.NewDelete().Model(manager).WherePK().Exec(ctx); err != nil {
			return err
		}
		deleted = manager
		return nil
	})
	return deleted, err
}

func getManager(ctx context.Context, db bun.IDB, id int) (*model.Manager, error) {
	manager := new(model.Manager)
	err := selectManagers(db, manager).
		Where("m.manager_id = ?", id).
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return manager, nil
}
