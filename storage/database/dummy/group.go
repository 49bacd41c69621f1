package dummydb

import (
	"context"
	"sort"

	"github.com/jnedu/classroom2030/core/group"
)

type groupRepository struct {
	db *groupTable
}

var _ group.Repository = (*groupRepository)(nil) // interface compliance check

func NewGroupRepository(db *DB) group.Repository {
	return &groupRepository{db: db.group}
}

// strip mirrors the SQL repository's explicit column list: reads never
// carry the password hash.
func strip(grp group.Group) group.Group {
	grp.PasswordHash = ""
	return grp
}

func (repo *groupRepository) CheckNameUniqueness(_ context.Context, name string, exclGroups ...group.Group) error {
	repo.db.RLock()
	defer repo.db.RUnlock()

	excl := make(map[string]bool, len(exclGroups))
	for _, grp := range exclGroups {
		excl[grp.ID] = true
	}
	for _, grp := range repo.db.table {
		if grp.Name == name && !excl[grp.ID] {
			return group.ErrNameExists
		}
	}
	return nil
}

func (repo *groupRepository) CreateGroup(_ context.Context, grp group.Group) (group.Group, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	stored := grp
	repo.db.table[grp.ID] = &stored
	return strip(grp), nil
}

func (repo *groupRepository) QueryAllGroups(_ context.Context) ([]group.Group, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	groups := make([]group.Group, 0, len(repo.db.table))
	for _, grp := range repo.db.table {
		groups = append(groups, strip(*grp))
	}
	sort.SliceStable(groups, func(i, j int) bool { return groups[i].CreatedAt.After(groups[j].CreatedAt) })
	return groups, nil
}

func (repo *groupRepository) GetGroupByID(_ context.Context, id string) (group.Group, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	if grp, ok := repo.db.table[id]; ok {
		return strip(*grp), nil
	}
	return group.Group{}, group.ErrNotFound
}

func (repo *groupRepository) GetGroupPasswordHash(_ context.Context, id string) (string, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	if grp, ok := repo.db.table[id]; ok {
		return grp.PasswordHash, nil
	}
	return "", group.ErrNotFound
}

func (repo *groupRepository) UpdateGroup(_ context.Context, grp group.Group) (group.Group, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	curr, ok := repo.db.table[grp.ID]
	if !ok {
		return group.Group{}, group.ErrNotFound
	}
	curr.Name = grp.Name
	curr.Description = grp.Description
	curr.HowToJoin = grp.HowToJoin
	curr.DocsLink = grp.DocsLink
	curr.UpdatedAt = grp.UpdatedAt
	return strip(*curr), nil
}

func (repo *groupRepository) UpdateGroupPasswordHash(_ context.Context, id, hash string) error {
	repo.db.Lock()
	defer repo.db.Unlock()

	curr, ok := repo.db.table[id]
	if !ok {
		return group.ErrNotFound
	}
	curr.PasswordHash = hash
	return nil
}

func (repo *groupRepository) DeleteGroupByID(_ context.Context, id string) error {
	repo.db.Lock()
	defer repo.db.Unlock()

	if _, ok := repo.db.table[id]; !ok {
		return group.ErrNotFound
	}
	delete(repo.db.table, id)
	return nil
}
