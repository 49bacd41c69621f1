package group

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/jnedu/classroom2030/core"
)

var (
	ErrNotFound   = errors.New("research group not found")
	ErrNameExists = errors.New("a research group with this name already exists")
	// ErrInvalidPassword carries the message the site has always shown;
	// the API returns it verbatim with a 401.
	ErrInvalidPassword = errors.New("비밀번호가 일치하지 않습니다.")
)

type (
	Repository interface {
		// CheckNameUniqueness returns ErrNameExists when a group other
		// than exclGroups already uses the name.
		CheckNameUniqueness(ctx context.Context, name string, exclGroups ...Group) error
		CreateGroup(ctx context.Context, grp Group) (Group, error)
		// QueryAllGroups returns groups ordered by creation time, newest first.
		QueryAllGroups(ctx context.Context) ([]Group, error)
		GetGroupByID(ctx context.Context, id string) (Group, error)
		// GetGroupPasswordHash is the only read that touches password_hash.
		GetGroupPasswordHash(ctx context.Context, id string) (string, error)
		// UpdateGroup replaces the mutable content fields and refreshes
		// updated_at; it never touches password_hash or created_at.
		UpdateGroup(ctx context.Context, grp Group) (Group, error)
		UpdateGroupPasswordHash(ctx context.Context, id, hash string) error
		DeleteGroupByID(ctx context.Context, id string) error
	}

	Service struct {
		repo      Repository
		adminHash string
	}
)

// NewService wires the directory service. adminPassword is the staff
// override: its hash lives in the same space as per-group hashes, so it
// authorizes mutation of any group. resetpassword in the admin CLI is the
// companion recovery path.
func NewService(repo Repository, adminPassword string) *Service {
	return &Service{
		repo:      repo,
		adminHash: HashPassword(adminPassword),
	}
}

// HashPassword returns the hex sha256 digest of pwd. Unsalted on purpose:
// stored hashes must stay comparable with the staff override hash.
func HashPassword(pwd string) string {
	sum := sha256.Sum256([]byte(pwd))
	return hex.EncodeToString(sum[:])
}

func (svc *Service) verifyPassword(pwd, storedHash string) bool {
	h := HashPassword(pwd)
	return h == svc.adminHash || h == storedHash
}

func (svc *Service) checkUniqueness(ctx context.Context, name string, exclGroups ...Group) error {
	if err := svc.repo.CheckNameUniqueness(ctx, name, exclGroups...); err != nil {
		if errors.Is(err, ErrNameExists) {
			return core.NewValidationError(err, core.FieldError{Field: "name", Error: err.Error()})
		}
		return err
	}
	return nil
}

func (svc *Service) Create(ctx context.Context, ng NewGroup) (Group, error) {
	if err := svc.checkUniqueness(ctx, ng.Name); err != nil {
		return Group{}, err
	}

	now := time.Now().UTC()
	grp := Group{
		ID:           uuid.New().String(),
		Name:         ng.Name,
		Description:  ng.Description,
		HowToJoin:    ng.HowToJoin,
		DocsLink:     ng.DocsLink,
		PasswordHash: HashPassword(ng.Password),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	return svc.repo.CreateGroup(ctx, grp)
}

func (svc *Service) QueryAll(ctx context.Context) ([]Group, error) {
	return svc.repo.QueryAllGroups(ctx)
}

func (svc *Service) GetByID(ctx context.Context, id string) (Group, error) {
	return svc.repo.GetGroupByID(ctx, id)
}

func (svc *Service) Update(ctx context.Context, id string, ug UpdateGroup) (Group, error) {
	storedHash, err := svc.repo.GetGroupPasswordHash(ctx, id)
	if err != nil {
		return Group{}, err
	}
	if !svc.verifyPassword(ug.Password, storedHash) {
		return Group{}, ErrInvalidPassword
	}
	if err = svc.checkUniqueness(ctx, ug.Name, Group{ID: id}); err != nil {
		return Group{}, err
	}

	grp := Group{
		ID:          id,
		Name:        ug.Name,
		Description: ug.Description,
		HowToJoin:   ug.HowToJoin,
		DocsLink:    ug.DocsLink,
		UpdatedAt:   time.Now().UTC(),
	}
	return svc.repo.UpdateGroup(ctx, grp)
}

func (svc *Service) Delete(ctx context.Context, id, password string) error {
	storedHash, err := svc.repo.GetGroupPasswordHash(ctx, id)
	if err != nil {
		return err
	}
	if !svc.verifyPassword(password, storedHash) {
		return ErrInvalidPassword
	}
	return svc.repo.DeleteGroupByID(ctx, id)
}

// ResetPassword sets a new password hash without verifying the old one.
// Admin CLI only; never reachable from the HTTP API.
func (svc *Service) ResetPassword(ctx context.Context, id, pwd string) error {
	if _, err := svc.repo.GetGroupPasswordHash(ctx, id); err != nil {
		return err
	}
	return svc.repo.UpdateGroupPasswordHash(ctx, id, HashPassword(pwd))
}
