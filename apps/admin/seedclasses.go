package main

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"

	"github.com/jnedu/classroom2030/core/class"
)

// classesFixture is the schedule published for the current festival run.
//
//go:embed fixtures/classes.json
var classesFixture []byte

func loadClassesFixture() ([]class.Class, error) {
	var classes []class.Class
	if err := json.Unmarshal(classesFixture, &classes); err != nil {
		return nil, errors.Wrap(err, "parsing classes fixture")
	}
	return classes, nil
}

func (cli *commandLine) seedClasses() error {
	classes, err := loadClassesFixture()
	if err != nil {
		return err
	}
	created, err := cli.classSvc.Seed(context.Background(), classes)
	if err != nil {
		return err
	}
	fmt.Printf("seeded %d classes (%d already present)\n", created, len(classes)-created)
	return nil
}
