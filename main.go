/*
This is an example of application that will use the
engine package to replay a navigation session
*/
package main

import (
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spaghettifunk/navigator/engine"
	"github.com/spaghettifunk/navigator/engine/config"
	"github.com/spaghettifunk/navigator/engine/core"
	"github.com/spaghettifunk/navigator/testbed"
)

func main() {
	configPath := flag.String("config", "", "path to a TOML configuration file")
	hold := flag.Bool("hold", false, "keep running after the scripted session, reloading the configuration on change")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			panic(err)
		}
		cfg = loaded
	}

	nav, err := engine.New(cfg)
	if err != nil {
		panic(err)
	}

	session := testbed.NewTestSession(nav, 1280, 720)
	if err := session.Boot(); err != nil {
		panic(err)
	}

	var updates <-chan *config.Config
	var watchErrors <-chan error
	if *configPath != "" {
		watcher, err := config.NewWatcher(*configPath)
		if err != nil {
			core.LogWarn("configuration hot reload disabled: %s", err)
		} else {
			defer watcher.Close()
			updates = watcher.Updates()
			watchErrors = watcher.Errors()
		}
	}

	// signal channel to capture system calls
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)

	ticker := time.NewTicker(time.Second / 60)
	defer ticker.Stop()

	var pending *config.Config
loop:
	for {
		select {
		case <-sigCh:
			break loop
		case <-nav.Done():
			break loop
		case next := <-updates:
			pending = next
		case err := <-watchErrors:
			core.LogError("configuration reload failed: %s", err)
		case <-ticker.C:
			if pending != nil {
				// retried on the next tick while a gesture is in progress
				if err := nav.Reload(pending); err == nil {
					pending = nil
				}
			}
			if !session.Update() && !*hold {
				break loop
			}
		}
	}

	session.Shutdown()
	if err := nav.Shutdown(); err != nil {
		core.LogError(err.Error())
		os.Exit(1)
	}
}
