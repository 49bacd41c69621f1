package group

import (
	"time"

	"github.com/jnedu/classroom2030/core"
)

// Group is a self-registered research group. PasswordHash is only ever
// selected explicitly where needed and never serialized.
type Group struct {
	ID           string    `db:"id" json:"id"`
	Name         string    `db:"name" json:"name"`
	Description  string    `db:"description" json:"description"`
	HowToJoin    string    `db:"how_to_join" json:"how_to_join"`
	DocsLink     string    `db:"docs_link" json:"docs_link"`
	PasswordHash string    `db:"password_hash" json:"-"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"` // UTC
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"` // UTC
}

// NewGroup contains information needed to register a Group. The legacy web
// client sent camelCase while the current one sends snake_case; both are
// accepted for the two multi-word fields and coalesced by Validate.
type NewGroup struct {
	Name         string `json:"name" validate:"required"`
	Description  string `json:"description" validate:"required"`
	HowToJoin    string `json:"how_to_join" validate:"required_without=HowToJoinAlt"`
	HowToJoinAlt string `json:"howToJoin"`
	DocsLink     string `json:"docs_link" validate:"required_without=DocsLinkAlt"`
	DocsLinkAlt  string `json:"docsLink"`
	Password     string `json:"password" validate:"required"`
}

func (ng *NewGroup) Validate() error {
	ng.Name = core.CleanString(ng.Name)
	ng.Description = core.CleanString(ng.Description)
	ng.HowToJoin = core.CleanString(ng.HowToJoin)
	ng.HowToJoinAlt = core.CleanString(ng.HowToJoinAlt)
	ng.DocsLink = core.CleanString(ng.DocsLink)
	ng.DocsLinkAlt = core.CleanString(ng.DocsLinkAlt)

	if err := core.Validate.Struct(ng); err != nil {
		return err
	}

	if ng.HowToJoin == "" {
		ng.HowToJoin = ng.HowToJoinAlt
	}
	if ng.DocsLink == "" {
		ng.DocsLink = ng.DocsLinkAlt
	}
	return nil
}

// UpdateGroup carries a full replacement of the mutable fields; every
// mutation re-verifies the submitted password.
type UpdateGroup struct {
	Name         string `json:"name" validate:"required"`
	Description  string `json:"description" validate:"required"`
	HowToJoin    string `json:"how_to_join" validate:"required_without=HowToJoinAlt"`
	HowToJoinAlt string `json:"howToJoin"`
	DocsLink     string `json:"docs_link" validate:"required_without=DocsLinkAlt"`
	DocsLinkAlt  string `json:"docsLink"`
	Password     string `json:"password" validate:"required"`
}

func (ug *UpdateGroup) Validate() error {
	ug.Name = core.CleanString(ug.Name)
	ug.Description = core.CleanString(ug.Description)
	ug.HowToJoin = core.CleanString(ug.HowToJoin)
	ug.HowToJoinAlt = core.CleanString(ug.HowToJoinAlt)
	ug.DocsLink = core.CleanString(ug.DocsLink)
	ug.DocsLinkAlt = core.CleanString(ug.DocsLinkAlt)

	if err := core.Validate.Struct(ug); err != nil {
		return err
	}

	if ug.HowToJoin == "" {
		ug.HowToJoin = ug.HowToJoinAlt
	}
	if ug.DocsLink == "" {
		ug.DocsLink = ug.DocsLinkAlt
	}
	return nil
}

type DeleteGroup struct {
	Password string `json:"password" validate:"required"`
}

func (dg *DeleteGroup) Validate() error { return core.Validate.Struct(dg) }
