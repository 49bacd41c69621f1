package sqlxrepos

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/pkg/errors"

	"github.com/jnedu/classroom2030/core/group"
)

// groupColumns is the only column list ever selected for reads;
// password_hash stays out of every result a handler can serialize.
const groupColumns = "id, name, description, how_to_join, docs_link, created_at, updated_at"

type groupRepository struct {
	db *sqlx.DB
}

var _ group.Repository = (*groupRepository)(nil) // interface compliance check

func NewGroupRepository(db *sqlx.DB) *groupRepository {
	return &groupRepository{db: db}
}

// trapNoRowsErr maps psql "no rows" err to group.ErrNotFound
func (repo groupRepository) trapNoRowsErr(err error, msg string) error {
	if errors.Is(err, sql.ErrNoRows) {
		return group.ErrNotFound
	}
	return trapErr(err, msg)
}

func (repo groupRepository) CheckNameUniqueness(ctx context.Context, name string, exclGroups ...group.Group) error {
	query := `SELECT EXISTS (SELECT 1 FROM research_groups WHERE name = $1`
	args := []interface{}{name}
	if len(exclGroups) > 0 {
		ids := make([]string, 0, len(exclGroups))
		for _, grp := range exclGroups {
			ids = append(ids, grp.ID)
		}
		query += ` AND id != ALL($2)`
		args = append(args, pq.Array(ids))
	}
	query += `)`

	var exists bool
	if err := repo.db.GetContext(ctx, &exists, query, args...); err != nil {
		return trapErr(err, "checking research group name")
	}
	if exists {
		return group.ErrNameExists
	}
	return nil
}

func (repo groupRepository) CreateGroup(ctx context.Context, grp group.Group) (group.Group, error) {
	const query = `
		INSERT INTO research_groups (id, name, description, how_to_join, docs_link, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + groupColumns
	var created group.Group
	err := repo.db.GetContext(
		ctx, &created, query,
		grp.ID, grp.Name, grp.Description, grp.HowToJoin, grp.DocsLink, grp.PasswordHash, grp.CreatedAt, grp.UpdatedAt,
	)
	if err != nil {
		return group.Group{}, trapErr(err, "inserting research group")
	}
	return created, nil
}

func (repo groupRepository) QueryAllGroups(ctx context.Context) ([]group.Group, error) {
	const query = `SELECT ` + groupColumns + ` FROM research_groups ORDER BY created_at DESC`
	groups := make([]group.Group, 0)
	if err := repo.db.SelectContext(ctx, &groups, query); err != nil {
		return nil, trapErr(err, "querying research groups")
	}
	return groups, nil
}

func (repo groupRepository) GetGroupByID(ctx context.Context, id string) (group.Group, error) {
	const query = `SELECT ` + groupColumns + ` FROM research_groups WHERE id = $1`
	var grp group.Group
	if err := repo.db.GetContext(ctx, &grp, query, id); err != nil {
		return group.Group{}, repo.trapNoRowsErr(err, "getting research group")
	}
	return grp, nil
}

func (repo groupRepository) GetGroupPasswordHash(ctx context.Context, id string) (string, error) {
	const query = `SELECT password_hash FROM research_groups WHERE id = $1`
	var hash string
	if err := repo.db.GetContext(ctx, &hash, query, id); err != nil {
		return "", repo.trapNoRowsErr(err, "getting research group password hash")
	}
	return hash, nil
}

func (repo groupRepository) UpdateGroup(ctx context.Context, grp group.Group) (group.Group, error) {
	const query = `
		UPDATE research_groups
		SET name = $1, description = $2, how_to_join = $3, docs_link = $4, updated_at = $5
		WHERE id = $6
		RETURNING ` + groupColumns
	var updated group.Group
	err := repo.db.GetContext(
		ctx, &updated, query,
		grp.Name, grp.Description, grp.HowToJoin, grp.DocsLink, grp.UpdatedAt, grp.ID,
	)
	if err != nil {
		return group.Group{}, repo.trapNoRowsErr(err, "updating research group")
	}
	return updated, nil
}

func (repo groupRepository) UpdateGroupPasswordHash(ctx context.Context, id, hash string) error {
	const query = `UPDATE research_groups SET password_hash = $1, updated_at = $2 WHERE id = $3`
	res, err := repo.db.ExecContext(ctx, query, hash, time.Now().UTC(), id)
	if err != nil {
		return trapErr(err, "updating research group password hash")
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return group.ErrNotFound
	}
	return nil
}

func (repo groupRepository) DeleteGroupByID(ctx context.Context, id string) error {
	const query = `DELETE FROM research_groups WHERE id = $1`
	res, err := repo.db.ExecContext(ctx, query, id)
	if err != nil {
		return trapErr(err, "deleting research group")
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return group.ErrNotFound
	}
	return nil
}
