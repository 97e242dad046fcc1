// Package logger provides the structured logging used throughout this
// library, as a thin wrapper around Uber's Zap.
//
// Every other package in this module accepts its own small Logger
// interface (Info/Debug/Warn/Error/Fatal with an error and optional field
// maps); the *Logger type here satisfies all of them. Passing a logger is
// always optional (components fall back to no-op logging), so tests and
// minimal setups need no logging configuration at all.
//
// Basic Usage:
//
//	log := logger.NewLoggerClient(logger.Config{Level: logger.Info, ServiceName: "my-service"})
//	log.Info("exporter ready", nil, map[string]interface{}{"endpoint": url})
//
// FX Module Integration:
//
//	app := fx.New(
//		logger.FXModule,
//		fx.Provide(func() logger.Config { return logger.Config{Level: logger.Info} }),
//		// ... other modules
//	)
//
// All methods are safe for concurrent use.
package logger
