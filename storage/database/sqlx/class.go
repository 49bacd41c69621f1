package sqlxrepos

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/jnedu/classroom2030/core/class"
)

const classColumns = "id, title, teacher, subject, grade, class_date, class_time, location, description, drive_link, region, created_at"

type classRepository struct {
	db *sqlx.DB
}

var _ class.Repository = (*classRepository)(nil) // interface compliance check

func NewClassRepository(db *sqlx.DB) *classRepository {
	return &classRepository{db: db}
}

func (repo classRepository) CreateClass(ctx context.Context, cls class.Class) (class.Class, error) {
	const query = `
		INSERT INTO classes (id, title, teacher, subject, grade, class_date, class_time, location, description, drive_link, region)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING ` + classColumns
	var created class.Class
	err := repo.db.GetContext(
		ctx, &created, query,
		cls.ID, cls.Title, cls.Teacher, cls.Subject, cls.Grade, cls.Date, cls.Time,
		cls.Location, cls.Description, cls.DriveLink, cls.Region,
	)
	if err != nil {
		return class.Class{}, trapErr(err, "inserting class")
	}
	return created, nil
}

func (repo classRepository) QueryAllClasses(ctx context.Context) ([]class.Class, error) {
	// seq keeps the fixture's publication order without leaking it.
	const query = `SELECT ` + classColumns + ` FROM classes ORDER BY seq ASC`
	classes := make([]class.Class, 0)
	if err := repo.db.SelectContext(ctx, &classes, query); err != nil {
		return nil, trapErr(err, "querying classes")
	}
	return classes, nil
}

func (repo classRepository) GetClassByID(ctx context.Context, id string) (class.Class, error) {
	const query = `SELECT ` + classColumns + ` FROM classes WHERE id = $1`
	var cls class.Class
	if err := repo.db.GetContext(ctx, &cls, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return class.Class{}, class.ErrNotFound
		}
		return class.Class{}, trapErr(err, "getting class")
	}
	return cls, nil
}
