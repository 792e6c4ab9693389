// Package logger builds *slog.Logger instances from functional options and
// provides attribute helpers so that log keys stay consistent across packages.
//
// New wraps the text or JSON slog handler in LogHandlerDecorator, which runs
// the registered ContextExtractor callbacks on every record. This is how
// values carried in context.Context (such as the environment name) end up in
// the output without every call site adding them.
//
//	log := logger.New(
//	    logger.WithEnvironment("production", "shopcheck"),
//	    logger.WithOutput(os.Stderr),
//	    logger.WithContextExtractors(environment.LoggerExtractor()),
//	)
//	log.DebugContext(ctx, "address rejected", logger.Fields(errs.Fields()), logger.Country("GB"))
//
// Libraries in this module accept a *slog.Logger and fall back to Discard.
package logger
