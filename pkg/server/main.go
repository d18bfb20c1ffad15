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

package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"

	"github.com/landsraad/landsraad/pkg/clock"
	"github.com/landsraad/landsraad/pkg/server/app"
	"github.com/landsraad/landsraad/pkg/server/buildinfo"
	"github.com/landsraad/landsraad/pkg/server/config"
	"github.com/landsraad/landsraad/pkg/server/controllers"
	"github.com/landsraad/landsraad/pkg/server/database"
	"github.com/landsraad/landsraad/pkg/server/job"
	"github.com/landsraad/landsraad/pkg/server/log"
	"github.com/landsraad/landsraad/pkg/server/mailer"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

func initDB(dbPath string) *gorm.DB {
	db := database.Open(dbPath)
	database.InitSchema(db)

	return db
}

func initApp(cfg config.Config) app.App {
	db := initDB(cfg.DBPath)

	var emailBackend mailer.Backend
	emailBackend, err := mailer.NewDefaultBackend()
	if err != nil {
		emailBackend = mailer.NewStdoutBackend()
		log.Info("SMTP not configured. Emails will be logged instead of sent")
	} else {
		log.Info("Email backend configured")
	}

	return app.App{
		DB:                  db,
		Clock:               clock.New(),
		EmailBackend:        emailBackend,
		AppEnv:              cfg.AppEnv,
		WebURL:              cfg.WebURL,
		DisableRegistration: cfg.DisableRegistration,
		Port:                cfg.Port,
		DBPath:              cfg.DBPath,
		UploadDir:           cfg.UploadDir,
		AdminEmail:          cfg.AdminEmail,
	}
}

func startCmd(args []string) {
	startFlags := flag.NewFlagSet("start", flag.ExitOnError)
	startFlags.Usage = func() {
		fmt.Printf(`Usage:
  landsraad-server start [flags]

Flags:
`)
		startFlags.PrintDefaults()
	}

	appEnv := startFlags.String("appEnv", "", "Application environment (env: APP_ENV, default: PRODUCTION)")
	port := startFlags.String("port", "", "Server port (env: PORT, default: 3001)")
	webURL := startFlags.String("webUrl", "", "Full URL to server without trailing slash (env: WebURL, example: https://example.com)")
	dbPath := startFlags.String("dbPath", "", "Path to SQLite database file (env: DBPath, default: $XDG_DATA_HOME/landsraad/server.db)")
	uploadDir := startFlags.String("uploadDir", "", "Directory for uploaded location images (env: UploadDir, default: $XDG_DATA_HOME/landsraad/uploads)")
	adminEmail := startFlags.String("adminEmail", "", "Email of the guild admin allowed to edit the curated content (env: AdminEmail)")
	disableRegistration := startFlags.Bool("disableRegistration", false, "Disable user registration (env: DisableRegistration, default: false)")
	logLevel := startFlags.String("logLevel", "", "Log level: debug, info, warn, or error (env: LOG_LEVEL, default: info)")

	startFlags.Parse(args)

	// .env is optional
	godotenv.Load()

	cfg, err := config.New(config.Params{
		AppEnv:              *appEnv,
		Port:                *port,
		WebURL:              *webURL,
		DBPath:              *dbPath,
		UploadDir:           *uploadDir,
		AdminEmail:          *adminEmail,
		DisableRegistration: *disableRegistration,
		LogLevel:            *logLevel,
	})
	if err != nil {
		fmt.Printf("Error: %s\n\n", err)
		startFlags.Usage()
		os.Exit(1)
	}

	// Set log level
	log.SetLevel(cfg.LogLevel)

	app := initApp(cfg)
	defer func() {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}()

	jobs := job.NewRunner(&app)
	if err := jobs.Start(); err != nil {
		panic(errors.Wrap(err, "starting background jobs"))
	}
	defer jobs.Stop()

	ctl := controllers.New(&app)
	rc := controllers.RouteConfig{
		APIRoutes:   controllers.NewAPIRoutes(&app, ctl),
		Controllers: ctl,
	}

	r, err := controllers.NewRouter(&app, rc)
	if err != nil {
		panic(errors.Wrap(err, "initializing router"))
	}

	log.WithFields(log.Fields{
		"version": buildinfo.Version,
		"port":    cfg.Port,
	}).Info("Landsraad server starting")

	if err := http.ListenAndServe(fmt.Sprintf(":%s", cfg.Port), r); err != nil {
		log.ErrorWrap(err, "server failed")
		os.Exit(1)
	}
}

func versionCmd() {
	fmt.Printf("landsraad-server-%s\n", buildinfo.Version)
}

func rootCmd() {
	fmt.Printf(`Landsraad server - the sync backend for the Landsraad companion

Usage:
  landsraad-server [command] [flags]

Available commands:
  start: Start the server (use 'landsraad-server start --help' for flags)
  version: Print the version
`)
}

func main() {
	if len(os.Args) < 2 {
		rootCmd()
		return
	}

	cmd := os.Args[1]

	switch cmd {
	case "start":
		startCmd(os.Args[2:])
	case "version":
		versionCmd()
	default:
		fmt.Printf("Unknown command %s\n", cmd)
		rootCmd()
		os.Exit(1)
	}
}
