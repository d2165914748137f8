package main

import (
	"fmt"

	"github.com/xd-jeff/logutil"
)

func main() {
	// Console-mode logger for interactive development
	dev, err := logutil.NewBuilder().
		Tag("DEV").
		ConsoleMode(true).
		Build()
	if err != nil {
		panic(err)
	}
	defer dev.Close()

	dev.V("verbose message")
	dev.D("debug message")
	dev.I("starting up, port", 8080)
	dev.W("cache miss ratio", 0.42)
	dev.E("boom:", fmt.Errorf("connection refused"))

	// File-mode logger: only error-and-above is persisted to dated files,
	// with a 7-day retention sweep at startup
	prod, err := logutil.NewBuilder().
		Tag("API").
		ConsoleMode(false).
		Directory("./logs").
		MinFileLevelString("error").
		RetentionDays(7).
		Build()
	if err != nil {
		panic(err)
	}
	defer prod.Close()

	// Forward every dispatched line somewhere else
	prod.SetLogListener(func(level logutil.Level, line string) {
		fmt.Println("listener:", level, line)
	})

	prod.I("dropped: below the file threshold")
	prod.E("persisted: lands in today's file")
}
