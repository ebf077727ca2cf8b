//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
)

type Test mg.Namespace

// Runs every unit test with the race detector.
func (Test) All() error {
	_, err := executeCmd("go", withArgs("test", "-race", "-count=1", "./..."), withStream())
	return err
}

// Runs the navigation mode tests only.
func (Test) Navigation() error {
	_, err := executeCmd("go", withArgs("test", "-count=1", "-v", "./engine/navigation/..."), withStream())
	return err
}
