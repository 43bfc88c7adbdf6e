// Package logger provides slog construction and attribute helpers shared by the
// l10n packages.
//
//	log := logger.New(
//		logger.WithDevelopment("catalog"),
//		logger.WithOutput(os.Stderr),
//	)
//
//	log.Warn("member not localized",
//		logger.Component("localizer"),
//		logger.Type("catalog.Product"),
//		logger.Field("Name"),
//		logger.Error(err),
//	)
//
// Helpers return an empty slog.Attr for nil errors and blank values, which slog
// drops, so they can be passed without checks.
package logger
