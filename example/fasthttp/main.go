package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/valyala/fasthttp"

	"github.com/xd-jeff/logutil"
	"github.com/xd-jeff/logutil/compat"
)

func main() {
	logger, err := logutil.NewBuilder().
		Tag("HTTP").
		ConsoleMode(false).
		Directory("/var/log/fasthttp").
		MinFileLevelString("info").
		Build()
	if err != nil {
		panic(err)
	}
	defer logger.Close()

	// Create fasthttp adapter with custom level detection
	fasthttpAdapter := compat.NewFastHTTPAdapter(
		logger,
		compat.WithDefaultLevel(logutil.LevelInfo),
		compat.WithLevelDetector(customLevelDetector),
	)

	server := &fasthttp.Server{
		Handler: requestHandler,
		Logger:  fasthttpAdapter,

		Name:         "ExampleServer",
		Concurrency:  fasthttp.DefaultConcurrency,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	fmt.Println("Starting server on :8080")
	if err := server.ListenAndServe(":8080"); err != nil {
		panic(err)
	}
}

func requestHandler(ctx *fasthttp.RequestCtx) {
	ctx.SetContentType("text/plain")
	fmt.Fprintf(ctx, "Hello, world! Path: %s\n", ctx.Path())
}

func customLevelDetector(msg string) logutil.Level {
	if strings.Contains(msg, "connection cannot be served") {
		return logutil.LevelWarn
	}
	if strings.Contains(msg, "error when serving connection") {
		return logutil.LevelError
	}
	return compat.DetectLogLevel(msg)
}
