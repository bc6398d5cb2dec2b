package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/notHeisenberg/TakaFlow-Server/internal/config"
	"github.com/notHeisenberg/TakaFlow-Server/internal/domain"
	"github.com/notHeisenberg/TakaFlow-Server/internal/gateway"
	"github.com/notHeisenberg/TakaFlow-Server/internal/infra/http/handler"
	internalMiddleware "github.com/notHeisenberg/TakaFlow-Server/internal/infra/http/middleware"
	"github.com/notHeisenberg/TakaFlow-Server/internal/infra/postgres"
	"github.com/notHeisenberg/TakaFlow-Server/internal/infra/rabbitmq"
	redisInfra "github.com/notHeisenberg/TakaFlow-Server/internal/infra/redis"
	"github.com/notHeisenberg/TakaFlow-Server/internal/infra/security"
	"github.com/notHeisenberg/TakaFlow-Server/internal/infra/token"
	"github.com/notHeisenberg/TakaFlow-Server/internal/usecase"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg := config.Load()
	if cfg.JWTSecret == "" {
		log.Fatal().Msg("ACCESS_TOKEN_SECRET is not set")
	}

	ctx := context.Background()

	dbPool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("could not connect to the database")
	}
	defer dbPool.Close()

	if err := dbPool.Ping(ctx); err != nil {
		log.Fatal().Err(err).Msg("database is not responding")
	}
	log.Info().Msg("connected to PostgreSQL")

	redisClient := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Warn().Err(err).Msg("could not connect to Redis (idempotency disabled)")
	} else {
		log.Info().Msg("connected to Redis")
	}

	rabbitConn, err := amqp.DialConfig(cfg.RabbitURL, amqp.Config{
		Properties: amqp.Table{
			"connection_name": "TakaFlowAPI_Publisher",
		},
	})
	if err != nil {
		log.Warn().Err(err).Msg("could not connect to RabbitMQ (audit events will not be sent)")
	} else {
		defer rabbitConn.Close()
		log.Info().Msg("connected to RabbitMQ")
	}

	var eventPublisher gateway.EventPublisher
	if rabbitConn != nil {
		ch, err := rabbitConn.Channel()
		if err != nil {
			log.Fatal().Err(err).Msg("failed to open RabbitMQ channel")
		}
		defer ch.Close()

		err = ch.ExchangeDeclare(
			"takaflow_events", // name
			"topic",           // type
			true,              // durable
			false,             // auto-deleted
			false,             // internal
			false,             // no-wait
			nil,               // arguments
		)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to declare exchange")
		}

		eventPublisher = rabbitmq.NewPublisher(ch)
	}

	// Infrastructure layer
	idempotencyRepo := redisInfra.NewIdempotencyRepository(redisClient)
	accountRepository := postgres.NewAccountRepository(dbPool)
	transactionRepository := postgres.NewTransactionRepository(dbPool)
	uow := postgres.NewUow(dbPool)
	pinHasher := security.NewBcryptPINHasher()
	tokenManager := token.NewManager(cfg.JWTSecret, cfg.TokenTTL)

	// Usecase layer
	transferUseCase := usecase.NewTransferMoney(accountRepository, transactionRepository, uow, pinHasher, eventPublisher)
	historyUseCase := usecase.NewTransactionHistory(transactionRepository)
	loginUseCase := usecase.NewLogin(accountRepository, pinHasher, tokenManager)
	registerUseCase := usecase.NewRegisterAccount(accountRepository, pinHasher)
	approveUseCase := usecase.NewApproveAccount(accountRepository)
	balanceUseCase := usecase.NewGetBalance(accountRepository)

	// Handlers
	transferHandler := handler.NewTransferHandler(transferUseCase)
	historyHandler := handler.NewHistoryHandler(historyUseCase)
	authHandler := handler.NewAuthHandler(loginUseCase, registerUseCase)
	accountHandler := handler.NewAccountHandler(balanceUseCase, approveUseCase)

	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Timeout(60 * time.Second))

	authenticated := internalMiddleware.Authenticated(tokenManager)
	idempotency := internalMiddleware.Idempotency(idempotencyRepo)

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			log.Error().Err(err).Msg("failed to write health check response")
		}
	})

	// Public routes
	router.Post("/login", authHandler.Login)
	router.Post("/register", authHandler.Register)

	// Authenticated routes
	router.Group(func(r chi.Router) {
		r.Use(authenticated)
		r.With(idempotency).Post("/transfers", transferHandler.Create)
		r.Get("/transactions", historyHandler.List)
		r.Get("/balance", accountHandler.Balance)

		// Admin workflows
		r.Group(func(r chi.Router) {
			r.Use(internalMiddleware.RequireRole(domain.RoleAdmin))
			r.Patch("/accounts/{id}/approve", accountHandler.Approve)
			r.Patch("/accounts/{id}/block", accountHandler.Block)
		})
	})

	addr := ":" + cfg.Port
	log.Info().Msgf("server listening on %s", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatal().Err(err).Msg("failed to start HTTP server")
	}
}
