package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/jnedu/classroom2030/core/class"
	"github.com/jnedu/classroom2030/core/group"
)

func CreateGroup(
	t *testing.T,
	repo group.Repository,
	name, description, howToJoin, docsLink, pwd string,
	createdAt ...time.Time,
) group.Group {
	t.Helper()

	tstamp := time.Now().UTC()
	if len(createdAt) > 0 {
		tstamp = createdAt[0].UTC()
	}
	grp := group.Group{
		ID:           uuid.New().String(),
		Name:         name,
		Description:  description,
		HowToJoin:    howToJoin,
		DocsLink:     docsLink,
		PasswordHash: group.HashPassword(pwd),
		CreatedAt:    tstamp,
		UpdatedAt:    tstamp,
	}
	grp, err := repo.CreateGroup(context.Background(), grp)
	if err != nil {
		t.Fatalf("CreateGroup() failed: %v", err)
	}
	return grp
}

func CreateClass(
	t *testing.T,
	repo class.Repository,
	id, title, teacher, subject, grade, date, timeRange, location, region string,
) class.Class {
	t.Helper()

	cls := class.Class{
		ID:        id,
		Title:     title,
		Teacher:   teacher,
		Subject:   subject,
		Grade:     grade,
		Date:      date,
		Time:      timeRange,
		Location:  location,
		Region:    region,
		CreatedAt: time.Now().UTC(),
	}
	cls, err := repo.CreateClass(context.Background(), cls)
	if err != nil {
		t.Fatalf("CreateClass() failed: %v", err)
	}
	return cls
}
