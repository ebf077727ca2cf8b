//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
)

type Run mg.Namespace

// Replays the scripted session with the default configuration.
func (Run) Testbed() error {
	fmt.Println("Run testbed...")
	_, err := executeCmd("go", withArgs("run", "main.go"), withStream())
	return err
}

// Replays the scripted session with navigator.toml and keeps watching it.
func (Run) Watch() error {
	mg.Deps(Test.Navigation)
	_, err := executeCmd("go", withArgs("run", "main.go", "-config", "navigator.toml", "-hold"), withStream())
	return err
}
