// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/poiesic/materna"
)

// NewRouter wires the HTTP routes to the application.
func NewRouter(app *materna.App) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	h := &handlers{app: app}

	r.Route("/api", func(api chi.Router) {
		api.Get("/healthz", h.health)
		api.Get("/search", h.search)
		api.Get("/journal", h.listJournal)
		api.Post("/journal", h.addJournal)
		api.Post("/companion/reply", h.reply)
		api.Get("/duedate", h.dueDate)
		api.Get("/profile", h.getProfile)
		api.Put("/profile", h.saveProfile)
	})

	return r
}
