package api

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/ledger-server/internal/handlers/v1/account"
	"github.com/carson-networks/ledger-server/internal/handlers/v1/admin"
	"github.com/carson-networks/ledger-server/internal/handlers/v1/status"
	"github.com/carson-networks/ledger-server/internal/handlers/v1/transaction"
	"github.com/carson-networks/ledger-server/internal/logging"
	"github.com/carson-networks/ledger-server/internal/operator"
	"github.com/carson-networks/ledger-server/internal/service"
)

type Rest struct {
	Logger   *logrus.Logger
	Port     string
	Service  *service.Service
	Operator *operator.OperatorDelegator

	mu     sync.Mutex
	server *http.Server
}

func (r *Rest) Serve() {
	mux := http.NewServeMux()

	statusHandler := status.NewHandler()
	mux.HandleFunc("/status", logging.LoggingWrapper("Status", r.Logger, statusHandler.Handler))

	config := huma.DefaultConfig("ledger-server", "1.0.0")
	config.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
		"bearer": {Type: "http", Scheme: "bearer", BearerFormat: "JWT"},
	}
	api := humago.New(mux, config)
	api.UseMiddleware(
		NewLoggingMiddleware(r.Logger),
		NewAuthMiddleware(api, r.Service.Auth),
	)

	account.NewCreateAccountHandler(r.Service.Accounts).Register(api)
	account.NewLoginHandler(r.Service.Auth).Register(api)
	account.NewGetAccountHandler(r.Service.Accounts).Register(api)
	account.NewStatementHandler(r.Service.Accounts).Register(api)
	account.NewChangePINHandler(r.Service.Accounts).Register(api)
	transaction.NewDepositHandler(r.Operator, r.Service.Accounts).Register(api)
	transaction.NewWithdrawHandler(r.Operator, r.Service.Accounts).Register(api)
	transaction.NewTransferHandler(r.Operator, r.Service.Accounts).Register(api)
	admin.NewAccrueInterestHandler(r.Operator, r.Service.Auth).Register(api)
	admin.NewListAccountsHandler(r.Service.Accounts, r.Service.Auth).Register(api)

	server := &http.Server{
		Addr:              ":" + r.Port,
		Handler:           mux,
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}
	r.mu.Lock()
	r.server = server
	r.mu.Unlock()

	r.Logger.Info("HttpServer.Serve.listening")
	err := server.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
	}
	r.Logger.Info("HttpServer.Serve.shutting down")
}

// Shutdown gracefully drains in-flight requests and stops accepting new
// ones. It must run before the operator queue stops so no request can hit
// a stopped queue.
func (r *Rest) Shutdown(ctx context.Context) error {
	r.mu.Lock()
	server := r.server
	r.mu.Unlock()
	if server == nil {
		return nil
	}
	return server.Shutdown(ctx)
}
