// Package environment names the deployment environment the application runs
// in and carries it through context.Context so that loggers can tag records
// with it.
//
//	env := environment.Parse(os.Getenv("APP_ENV")) // "prod" -> Production
//	ctx := environment.WithContext(context.Background(), string(env))
//
//	log := logger.New(logger.WithContextExtractors(environment.LoggerExtractor()))
//	log.InfoContext(ctx, "started") // ... env=production
package environment
