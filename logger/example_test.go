package logger_test

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/routelog/routelog/handler"
	"github.com/routelog/routelog/logger"
)

func ExampleNewBuilder() {
	target := filepath.Join(os.TempDir(), "routelog-logger-example.txt")
	defer os.Remove(target)

	fileHandler, err := handler.NewFileHandler(handler.FileConfig{Filename: target})
	if err != nil {
		fmt.Println(err)
		return
	}

	log, err := logger.NewBuilder().
		WithHandlers(
			handler.NewFatalHandler(),
			fileHandler,
			handler.NewConsoleHandler(handler.ConsoleConfig{Writer: os.Stdout}),
			handler.NewCatchAllHandler(),
		).
		Build()
	if err != nil {
		fmt.Println(err)
		return
	}
	defer log.Close()

	log.Warn("real warning")

	log.Error("some_error")
	contents, _ := os.ReadFile(target)
	fmt.Print(string(contents))

	if err := log.Fatal("fatal error"); err != nil {
		fmt.Println(err)
	}
	// Output:
	// real warning
	// some_error
	// fatal error
}

func ExampleParseSeverity() {
	fmt.Println(logger.ParseSeverity("warning"))
	fmt.Println(logger.ParseSeverity("no such level"))
	// Output:
	// WARNING
	// UNCLASSIFIED
}
