package logger

import (
	"log/slog"
	"strconv"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Errors groups multiple non-nil errors under the key "errors".
// If all errors are nil, it returns an empty Attr.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Mode records a filter mode under the key "mode".
func Mode(mode string) slog.Attr {
	return slog.String("mode", mode)
}

// Source records pattern source text under the key "pattern".
func Source(source string) slog.Attr {
	return slog.String("pattern", source)
}

// Flags records a regular expression flag string under the key "flags".
// An empty flag string returns an empty Attr.
func Flags(flags string) slog.Attr {
	if flags == "" {
		return slog.Attr{}
	}
	return slog.String("flags", flags)
}

// Categories groups the enabled state of each character category under "categories".
func Categories(lowercase, uppercase, numeric, special bool) slog.Attr {
	return Group("categories",
		slog.Bool("lowercase", lowercase),
		slog.Bool("uppercase", uppercase),
		slog.Bool("numeric", numeric),
		slog.Bool("special", special),
	)
}
