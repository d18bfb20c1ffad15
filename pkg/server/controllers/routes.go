/* Copyright 2025 Landsraad Companion Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package controllers

import (
	"net/http"

	"github.com/landsraad/landsraad/pkg/server/app"
	mw "github.com/landsraad/landsraad/pkg/server/middleware"
	"github.com/gorilla/mux"
	"github.com/pkg/errors"
)

// Route represents a single route
type Route struct {
	Method    string
	Pattern   string
	Handler   http.HandlerFunc
	RateLimit bool
}

// RouteConfig is the configuration for routes
type RouteConfig struct {
	Controllers *Controllers
	APIRoutes   []Route
}

// NewAPIRoutes returns a new api routes
func NewAPIRoutes(a *app.App, c *Controllers) []Route {
	ret := []Route{
		{"POST", "/v3/signin", c.Users.V3Login, true},
		{"POST", "/v3/signout", c.Users.V3Logout, true},
		{"GET", "/v3/state", mw.Auth(a.DB, c.State.V3Get), false},
		{"PUT", "/v3/state", mw.Auth(a.DB, c.State.V3Put), false},
		{"GET", "/v3/shared/todos", mw.Auth(a.DB, c.Shared.V3GetTodos), false},
		{"PUT", "/v3/shared/todos", mw.Auth(a.DB, c.Shared.V3PutTodos), false},
		{"GET", "/v3/shared/content", mw.Auth(a.DB, c.Shared.V3GetContent), false},
		{"PUT", "/v3/shared/content", mw.Auth(a.DB, c.Shared.V3PutContent), false},
		{"POST", "/v3/files/{bucket}", mw.Auth(a.DB, c.Files.V3Upload), true},
		{"DELETE", "/v3/files/{bucket}/{filename}", mw.Auth(a.DB, c.Files.V3Delete), true},
	}

	if !a.DisableRegistration {
		ret = append(ret, Route{"POST", "/v3/signup", c.Users.V3Register, true})
	}

	return ret
}

func registerRoutes(router *mux.Router, wrapper mw.Middleware, app *app.App, routes []Route) {
	for _, route := range routes {
		wrappedHandler := wrapper(route.Handler, app, route.RateLimit)

		router.
			Handle(route.Pattern, wrappedHandler).
			Methods(route.Method)
	}
}

// NewRouter creates and returns a new router
func NewRouter(app *app.App, rc RouteConfig) (http.Handler, error) {
	if err := app.Validate(); err != nil {
		return nil, errors.Wrap(err, "validating the app parameters")
	}

	router := mux.NewRouter().StrictSlash(true)

	apiRouter := router.PathPrefix("/api").Subrouter()
	registerRoutes(apiRouter, mw.APIMw, app, rc.APIRoutes)

	router.PathPrefix("/api/v1").Handler(mw.ApplyLimit(mw.NotSupported, true))
	router.PathPrefix("/api/v2").Handler(mw.ApplyLimit(mw.NotSupported, true))

	// uploaded files are public
	filesHandler := http.StripPrefix("/files/", http.FileServer(http.Dir(app.UploadDir)))
	router.PathPrefix("/files/").Handler(filesHandler)

	router.HandleFunc("/health", rc.Controllers.Health.Index)

	router.HandleFunc("/robots.txt", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("User-agent: *\nDisallow: /\n"))
	})

	return mw.Global(router), nil
}
