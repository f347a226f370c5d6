// Package logger provides structured logging backed by zerolog.
//
// The client logs nothing unless a Logger is supplied. A Logger built from
// Config writes JSON or console output at the configured level:
//
//	log := logger.New(&logger.Config{Level: "debug", Format: "json"}, "xapi")
//	log.Debug("redirect", logger.Fields("status", 302, "location", loc))
//
// NewNop returns a Logger that discards everything.
package logger
