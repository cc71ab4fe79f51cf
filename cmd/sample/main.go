// Command sample demonstrates humadocs with a small user API.
//
// Run:
//
//	go run ./cmd/sample
//
// Generate the OpenAPI spec:
//
//	go run ./cmd/sample -spec                      (print JSON to stdout)
//	go run ./cmd/sample -spec -o openapi.yaml      (write YAML to a file)
//
// Then explore:
//
//	GET    http://localhost:8080/openapi.json       OpenAPI spec
//	GET    http://localhost:8080/docs               docs UI
//	GET    http://localhost:8080/v1/healthz         plain-text health check
//	GET    http://localhost:8080/v1/users           list users
//	POST   http://localhost:8080/v1/users           create user
//	GET    http://localhost:8080/v1/users/{id}      get user
//	DELETE http://localhost:8080/v1/users/{id}      delete user (204)
//	GET    http://localhost:8080/v1/users/{id}/avatar
//	GET    http://localhost:8080/v1/ping            deprecated route
//
//go:generate go run github.com/bjaus/humadocs/cmd/docsgen generate --source .
package main

import (
	"flag"
	"net/http"
	"os"
	"strings"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/bjaus/humadocs"
)

type config struct {
	Host     string `envconfig:"HOST" default:"localhost:8080"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
}

func main() {
	specFlag := flag.Bool("spec", false, "Print the OpenAPI spec and exit")
	outFlag := flag.String("o", "", "Output file for the spec (requires -spec); .yaml or .yml selects YAML")
	flag.Parse()

	var cfg config
	if err := envconfig.Process("sample", &cfg); err != nil {
		log.Fatal().Err(err).Msg("could not read environment config")
	}
	setupLogging(cfg.LogLevel)

	router := chi.NewMux()
	api := newAPI(router)

	if *specFlag {
		if err := writeSpec(api, *outFlag); err != nil {
			log.Fatal().Err(err).Msg("spec generation failed")
		}
		return
	}

	log.Info().Str("addr", cfg.Host).Str("spec", "http://"+cfg.Host+"/openapi.json").Msg("starting server")
	if err := http.ListenAndServe(cfg.Host, router); err != nil {
		log.Fatal().Err(err).Msg("server exited abnormally")
	}
}

func newAPI(router chi.Router) huma.API {
	humaConfig := huma.DefaultConfig("Sample API", "1.0.0")
	humaConfig.DocsPath = "" // replaced by the Elements page below
	api := humachi.New(router, humaConfig)
	reg := api.OpenAPI().Components.Schemas

	users := humadocs.NewTagRouter("Users")
	humadocs.Add(users, huma.Operation{
		OperationID: "ListUsers",
		Method:      http.MethodGet,
		Path:        "/users",
	}, ListUsers, opDocsListUsers())
	humadocs.Add(users, huma.Operation{
		OperationID:   "CreateUser",
		Method:        http.MethodPost,
		Path:          "/users",
		DefaultStatus: http.StatusCreated,
	}, CreateUser, opDocsCreateUser())
	humadocs.Add(users, huma.Operation{
		OperationID: "GetUser",
		Method:      http.MethodGet,
		Path:        "/users/{id}",
	}, GetUser, opDocsGetUser())
	humadocs.AddOutput(users, huma.Operation{
		OperationID: "DeleteUser",
		Method:      http.MethodDelete,
		Path:        "/users/{id}",
	}, humadocs.NoContent{}, deleteUser,
		humadocs.RouteInfo("Delete a user", "Deleting an unknown user returns 404."))
	humadocs.AddOutput(users, huma.Operation{
		OperationID: "DownloadAvatar",
		Method:      http.MethodGet,
		Path:        "/users/{id}/avatar",
	}, humadocs.Text(""), downloadAvatar,
		humadocs.RouteInfo("Download a user's avatar", "The avatar is served as plain text in this sample."))

	system := humadocs.New()
	humadocs.Add(system, huma.Operation{
		OperationID: "Ping",
		Method:      http.MethodGet,
		Path:        "/ping",
	}, Ping, opDocsPing())
	humadocs.AddOutput(system, huma.Operation{
		OperationID: "Healthz",
		Method:      http.MethodGet,
		Path:        "/healthz",
	}, humadocs.Text(""), healthz,
		humadocs.RouteInfo("Health check", "Returns ok while the server is able to serve traffic."),
		humadocs.Parameters(
			humadocs.SimpleHeader(reg, "X-Request-Id", "Correlation id echoed into server logs.", false),
		))

	root := humadocs.New()
	root.Nest("/v1", users.Router())
	root.Nest("/v1", system)
	root.Mount(api)

	router.Handle("/docs", humadocs.Elements(
		humadocs.WithElementsTitle("Sample API"),
		humadocs.WithSpecURL("/openapi.json"),
	))

	return api
}

func writeSpec(api huma.API, path string) error {
	out := os.Stdout
	if path != "" {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}
	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		return humadocs.WriteSpecYAML(api, out)
	}
	return humadocs.WriteSpecJSON(api, out)
}

func setupLogging(level string) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
}
