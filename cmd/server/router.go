package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/harwick/shelf-api/internal/api"
	apimiddleware "github.com/harwick/shelf-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all
// routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(apimiddleware.Trace)

	storeHandler := api.NewStoreHandler(app.storeStore, app.validate)
	itemHandler := api.NewItemHandler(app.itemStore, app.validate)
	tagHandler := api.NewTagHandler(app.tagStore, app.storeStore, app.itemStore, app.validate)
	authHandler := api.NewAuthHandler(
		app.userStore,
		app.jwtService,
		app.hasher,
		app.hasher,
		app.revocation,
		app.eventEmitter,
		app.validate,
	)
	authMiddleware := apimiddleware.NewAuthMiddleware(app.jwtService, app.revocation)

	// Stores and tags are public, matching the original API surface.
	r.Get("/store", storeHandler.List)
	r.Post("/store", storeHandler.Create)
	r.Get("/store/{store_id}", storeHandler.Get)
	r.Delete("/store/{store_id}", storeHandler.Delete)
	r.Get("/store/{store_id}/tag", tagHandler.ListByStore)
	r.Post("/store/{store_id}/tag", tagHandler.Create)
	r.Get("/tag/{tag_id}", tagHandler.Get)
	r.Delete("/tag/{tag_id}", tagHandler.Delete)
	r.Post("/item/{item_id}/tag/{tag_id}", tagHandler.Link)
	r.Delete("/item/{item_id}/tag/{tag_id}", tagHandler.Unlink)

	// Item reads require a valid token.
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware.Authenticate)
		r.Get("/item", itemHandler.List)
		r.Get("/item/{item_id}", itemHandler.Get)
		r.Post("/logout", authHandler.Logout)
	})

	// Item writes require a token issued directly from a login.
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware.Authenticate, authMiddleware.RequireFresh)
		r.Post("/item", itemHandler.Create)
		r.Put("/item/{item_id}", itemHandler.Update)
	})

	// Destructive and user administration routes are admin only.
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware.Authenticate, authMiddleware.RequireAdmin)
		r.Delete("/item/{item_id}", itemHandler.Delete)
		r.Get("/user/{user_id}", authHandler.GetUser)
		r.Delete("/user/{user_id}", authHandler.DeleteUser)
	})

	// Authentication endpoints (public; /refresh validates its own
	// refresh token since the standard gate only accepts access tokens).
	r.Post("/register", authHandler.Register)
	r.Post("/login", authHandler.Login)
	r.Post("/refresh", authHandler.Refresh)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("failed to write health check response", "error", err)
		}
	})

	return r
}
