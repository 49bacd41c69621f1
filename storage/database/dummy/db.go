// Package dummydb is an in-memory stand-in for the relational store. It is
// the direct descendant of the site's first document-store backend and
// doubles as the handler-test backend.
package dummydb

import (
	"sync"

	"github.com/jnedu/classroom2030/core/class"
	"github.com/jnedu/classroom2030/core/group"
)

type (
	DB struct {
		group *groupTable
		class *classTable
	}

	groupTable struct {
		sync.RWMutex
		table map[string]*group.Group
	}

	classTable struct {
		sync.RWMutex
		table map[string]*class.Class
		order []string // insertion order
	}
)

func Open() (*DB, error) {
	db := &DB{
		group: &groupTable{table: make(map[string]*group.Group)},
		class: &classTable{table: make(map[string]*class.Class)},
	}
	return db, nil
}
