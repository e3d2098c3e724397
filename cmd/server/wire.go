// File: cmd/server/wire.go
//go:build wireinject
// +build wireinject

package main

import (
	"talento_backend/internal/app"
	"talento_backend/internal/application"
	"talento_backend/internal/careers"
	"talento_backend/internal/config"
	"talento_backend/internal/contact"
	"talento_backend/internal/firebase"
	"talento_backend/internal/gateway"
	"talento_backend/internal/jobs"
	"talento_backend/internal/platform/logger"
	"talento_backend/internal/profile"
	"talento_backend/internal/shared"

	"github.com/google/wire"
)

// initializeServer is the main Wire injector.
func initializeServer(cfg *config.Config) (*app.Server, func(), error) {
	wire.Build(
		// Platform Layer
		logger.New,
		provideDatabase,
		provideFileStorage,

		// Firebase Service
		firebase.NewService,

		// Profile module (also backs session resolution for middleware)
		profile.NewGORMRepository,
		profile.NewService,
		wire.Bind(new(profile.Service), new(*profile.ServiceImplementation)),
		wire.Bind(new(shared.Service), new(*profile.ServiceImplementation)),
		profile.NewHandler,

		// Candidate applications
		application.NewGORMRepository,
		application.NewService,
		application.NewHandler,

		// Contact forms
		contact.NewGORMRepository,
		contact.NewService,
		contact.NewHandler,

		// Careers catalog
		careers.NewService,
		careers.NewHandler,

		// Remote data gateway
		gateway.New,
		gateway.NewHandler,

		// Jobs
		jobs.NewCVCleanupJob,

		// Application Layer
		app.NewServer,
	)
	return nil, nil, nil
}
