// Package logger provides the leveled, structured logger used by the
// PromoStandards client, backed by zerolog.
//
// A Logger is cheap to derive: WithFields, WithComponent and WithError return
// new loggers sharing the same output. Levels are applied per logger rather
// than through zerolog's global level, so a client configured for debug
// output does not change the verbosity of the host application.
//
// # Configuration
//
//	promostandards:
//	  logging:
//	    level: "info"
//	    format: "json"
//
// # Usage
//
//	log := logger.NewDefault("promostandards")
//	log.Info("request sent", logger.Fields("operation", "getProduct"))
package logger
