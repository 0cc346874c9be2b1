// Package logger provides a small factory around Go's slog package and a set
// of attribute helpers shared by the filtering packages.
//
// New builds a *slog.Logger from functional options:
//
//   • WithFormat / WithTextFormatter / WithJSONFormatter – output format.
//   • WithLevel – minimum level.
//   • WithOutput – destination writer.
//   • WithAttr – static attributes attached to every record.
//
// NewNop returns a logger that discards everything. Library types that accept
// a logger fall back to it so that logging stays opt-in.
//
// # Usage
//
//	import "github.com/dmitrymomot/charclass/pkg/logger"
//
//	log := logger.New(
//	    logger.WithTextFormatter(),
//	    logger.WithLevel(slog.LevelDebug),
//	)
//
//	f := charfilter.New(input, cats, charfilter.WithLogger(log))
//
// Attribute helpers such as Mode, Source and Error keep attribute naming
// consistent across packages. Error returns an empty attribute for a nil
// error so it can be passed unconditionally:
//
//	log.Warn("mode rejected", logger.Mode(string(m)), logger.Error(err))
package logger
