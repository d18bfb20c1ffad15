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

// Package middleware provides middlewares for the server
package middleware

import (
	"net/http"

	"github.com/landsraad/landsraad/pkg/server/app"
	"github.com/landsraad/landsraad/pkg/server/log"
)

// Middleware wraps an HTTP handler with a chain of concerns shared by
// a group of routes
type Middleware func(h http.Handler, app *app.App, rateLimit bool) http.Handler

// DoError logs the error and responds with the given status code.
// The error detail never leaves the process.
func DoError(w http.ResponseWriter, msg string, err error, statusCode int) {
	log.WithFields(log.Fields{
		"statusCode": statusCode,
		"error":      err,
	}).Error(msg)

	http.Error(w, http.StatusText(statusCode), statusCode)
}

// RespondUnauthorized responds with 401
func RespondUnauthorized(w http.ResponseWriter) {
	w.Header().Set("WWW-Authenticate", `Bearer realm="landsraad"`)
	http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
}

// NotSupported is a handler for endpoints that are no longer served
func NotSupported(w http.ResponseWriter, r *http.Request) {
	http.Error(w, "API version is not supported. Please upgrade your client.", http.StatusGone)
}

func logging(inner http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		inner.ServeHTTP(w, r)

		log.WithFields(log.Fields{
			"uri":    r.RequestURI,
			"method": r.Method,
			"remote": lookupIP(r),
		}).Debug("incoming request")
	})
}

func recovery(inner http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				log.WithFields(log.Fields{
					"uri":   r.RequestURI,
					"panic": rec,
				}).Error("recovered from a panic")
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			}
		}()

		inner.ServeHTTP(w, r)
	})
}

// APIMw is the middleware chain for API routes
func APIMw(h http.Handler, a *app.App, rateLimit bool) http.Handler {
	ret := h
	ret = ApplyLimit(ret.ServeHTTP, rateLimit)
	ret = logging(ret)

	return ret
}

// Global wraps the whole router with concerns applied to every route
func Global(h http.Handler) http.Handler {
	return recovery(h)
}
