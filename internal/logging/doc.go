// Package logging provides structured logging using uber/zap.
//
// Production mode emits JSON; development mode emits colored console output.
// Constructors never fail hard: on configuration errors they fall back to a
// no-op logger so classification is never blocked by logging setup.
package logging
