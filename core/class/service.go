package class

import (
	"context"
	"errors"
	"time"
)

var ErrNotFound = errors.New("class not found")

type (
	Repository interface {
		CreateClass(ctx context.Context, cls Class) (Class, error)
		// QueryAllClasses returns classes in insertion order.
		QueryAllClasses(ctx context.Context) ([]Class, error)
		GetClassByID(ctx context.Context, id string) (Class, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns all classes with Status evaluated at `now`. Status is
// recomputed on every read instead of on a polling tick; the computation is
// pure, so reads always observe boundary transitions immediately.
func (svc *Service) List(ctx context.Context, now time.Time) ([]Class, error) {
	classes, err := svc.repo.QueryAllClasses(ctx)
	if err != nil {
		return nil, err
	}
	for i := range classes {
		classes[i].Status = StatusAt(classes[i].Date, classes[i].Time, now)
	}
	return classes, nil
}

// Find lists classes and narrows them through the filter.
func (svc *Service) Find(ctx context.Context, f Filter, now time.Time) ([]Class, error) {
	f.Clean()
	classes, err := svc.List(ctx, now)
	if err != nil {
		return nil, err
	}
	if f.IsEmpty() {
		return classes, nil
	}
	return Apply(classes, f), nil
}

func (svc *Service) Get(ctx context.Context, id string, now time.Time) (Class, error) {
	cls, err := svc.repo.GetClassByID(ctx, id)
	if err != nil {
		return Class{}, err
	}
	cls.Status = StatusAt(cls.Date, cls.Time, now)
	return cls, nil
}

// Seed inserts fixture classes, skipping ids that already exist.
// Returns the number of classes actually created.
func (svc *Service) Seed(ctx context.Context, classes []Class) (int, error) {
	var created int
	for _, cls := range classes {
		if _, err := svc.repo.GetClassByID(ctx, cls.ID); err == nil {
			continue
		} else if !errors.Is(err, ErrNotFound) {
			return created, err
		}
		if _, err := svc.repo.CreateClass(ctx, cls); err != nil {
			return created, err
		}
		created++
	}
	return created, nil
}
