package handler

import (
	"net/http"
	"sync"

	"libraryhub/config"
	"libraryhub/di"
	"libraryhub/shared/logger"
	"libraryhub/shared/timezone"
)

var (
	server *http.ServeMux
	once   sync.Once
)

// Handler is the serverless entrypoint. The service graph is built on the first
// request and reused while the instance stays warm.
func Handler(w http.ResponseWriter, r *http.Request) {
	once.Do(func() {
		cfg := config.Get()

		logger.InitLogger()

		logger.SetLogLevel(cfg)

		timezone.SetLocation(cfg.App.Timezone)

		server = http.NewServeMux()
		server.Handle("/", di.InitializeService())
	})

	r.RequestURI = r.URL.String()

	server.ServeHTTP(w, r)
}
