package main

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/Solace-Health-LLC/beacon/internal/calendar"
	"github.com/Solace-Health-LLC/beacon/internal/db"
	"github.com/Solace-Health-LLC/beacon/internal/http/api"
	adminapi "github.com/Solace-Health-LLC/beacon/internal/http/api/admin/endpoints"
	displayapi "github.com/Solace-Health-LLC/beacon/internal/http/api/display/endpoints"
	notifyapi "github.com/Solace-Health-LLC/beacon/internal/http/api/notify/endpoints"
	"github.com/Solace-Health-LLC/beacon/internal/hub"
	"github.com/Solace-Health-LLC/beacon/internal/storage"
)

// RegisterRoutes sets up all application routes.
func RegisterRoutes(r *gin.Engine, env Environment, store db.Store, storageSystem storage.Storage, h *hub.Hub) {
	r.Use(cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool { return true },
		AllowMethods: []string{
			"GET",
			"POST",
			"PUT",
			"PATCH",
			"DELETE",
			"OPTIONS",
			"HEAD",
		},
		AllowHeaders: []string{
			"Origin",
			"Content-Type",
			"Authorization",
			"Accept",
		},
		AllowCredentials: false,
	}))

	api.MountGroup(r, api.GroupConfig{
		Prefix: "/api/admin",
	},
		adminapi.AuthPublicModule(env.SecretKey, store),
	)

	api.MountGroup(r, api.GroupConfig{
		Prefix:    "/api/admin",
		Auth:      true,
		SecretKey: env.SecretKey,
		Store:     store,
	},
		adminapi.DeviceModule(store, h),
		adminapi.ContentModule(store, storageSystem, h),
		adminapi.PatientModule(store, h),
		adminapi.AlertModule(h),
		adminapi.CalendarModule(calendar.NewKRProvider()),
		adminapi.AuthSessionModule(env.SecretKey, store),
	)

	api.MountGroup(r, api.GroupConfig{
		Prefix: "/api/display",
	},
		displayapi.PairingModule(store),
		displayapi.ScreenModule(store, h),
	)

	// local-network hook for split admin/socket deployments
	api.MountGroup(r, api.GroupConfig{
		Prefix: "/api/notify",
	},
		notifyapi.BroadcastModule(h),
	)

	// static uploads when not serving from a CDN
	if !env.UseSpaces {
		r.Static("/uploads", "./uploads")
	}
}
