// Package logger is the public front end of routelog. Most users only
// need to import this package.
//
// A Logger is immutable after construction — the chain is set once via
// the Builder and never modified, so a Logger needs no locking of its
// own (the chain's dispatch contract still applies: serialize
// externally if several goroutines share one Logger).
//
// Terminal severities are expected control flow here, not process
// aborts: Fatal and Unclassified dispatches return a
// *handler.TerminalError for the caller to inspect. Nothing in this
// package calls os.Exit.
//
// The package initializes a default Logger whose chain routes Warning
// to stderr and terminates on FatalError and Unclassified. It carries
// no file handler, because the error-file target is an
// environment-specific path the caller must supply:
//
//	fileHandler, err := handler.NewFileHandler(handler.FileConfig{Filename: cfg.ErrorFile})
//	if err != nil {
//	    return err
//	}
//	log, err := logger.NewBuilder().
//	    WithHandlers(
//	        handler.NewFatalHandler(),
//	        fileHandler,
//	        handler.NewConsoleHandler(handler.ConsoleConfig{}),
//	        handler.NewCatchAllHandler(),
//	    ).
//	    Build()
package logger
