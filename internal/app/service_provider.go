package app

import (
	"context"

	authAPI "gamehall_backend/internal/api/auth"
	bingoAPI "gamehall_backend/internal/api/bingo"
	kenoAPI "gamehall_backend/internal/api/keno"
	lottoAPI "gamehall_backend/internal/api/lotto"
	walletAPI "gamehall_backend/internal/api/wallet"
	"gamehall_backend/internal/config"
	"gamehall_backend/internal/config/env"
	"gamehall_backend/internal/draw"
	"gamehall_backend/internal/middleware"
	"gamehall_backend/internal/repository"
	"gamehall_backend/internal/repository/auth_repo"
	"gamehall_backend/internal/repository/user_repo"
	"gamehall_backend/internal/repository/wallet_repo"
	"gamehall_backend/internal/service"
	authserv "gamehall_backend/internal/service/auth"
	bingoserv "gamehall_backend/internal/service/bingo"
	"gamehall_backend/internal/service/coordinator"
	kenoserv "gamehall_backend/internal/service/keno"
	lottoserv "gamehall_backend/internal/service/lotto"
	walletserv "gamehall_backend/internal/service/wallet"
	"gamehall_backend/internal/wallet"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ServiceProvider struct {
	//TXManager
	txManager trm.Manager

	// Database
	pgConfig config.PGConfig
	dbClient *pgxpool.Pool

	// Auth bits
	jwtCfg   config.JWTConfig
	authRepo repository.AuthRepository
	authServ service.AuthService
	authHand *authAPI.Handler

	// User bits
	userRepo repository.UserRepository

	// Wallet bits
	ledgers    *wallet.Registry
	walletRepo repository.WalletRepository
	walletServ service.WalletService
	walletHand *walletAPI.Handler

	// Draw engine and round coordinator
	provider draw.Provider
	coord    *coordinator.Coordinator

	// Keno bits
	kenoCfg  config.KenoConfig
	kenoServ service.KenoService
	kenoHand *kenoAPI.Handler

	// Bingo bits
	bingoCfg  config.BingoConfig
	bingoServ service.BingoService
	bingoHand *bingoAPI.Handler

	// Lotto bits
	lottoCfg  config.LottoConfig
	lottoServ service.LottoService
	lottoHand *lottoAPI.Handler

	// Router and HTTP config
	httpCfg config.HTTPConfig
	router  chi.Router
}

func newServiceProvider() *ServiceProvider {
	return &ServiceProvider{}
}

func (sp *ServiceProvider) PgConfig() config.PGConfig {
	if sp.pgConfig == nil {
		cfg, err := env.NewPGConfig()
		if err != nil {
			panic("failed to get database config: " + err.Error())
		}
		sp.pgConfig = cfg
	}
	return sp.pgConfig
}

func (sp *ServiceProvider) DBClient(ctx context.Context) *pgxpool.Pool {
	if sp.dbClient == nil {
		dbc, err := pgxpool.New(ctx, sp.PgConfig().DSN())
		if err != nil {
			panic("failed to create db pool: " + err.Error())
		}
		err = dbc.Ping(ctx)
		if err != nil {
			panic("failed to ping db: " + err.Error())
		}
		sp.dbClient = dbc
	}
	return sp.dbClient
}

func (sp *ServiceProvider) TXManager(ctx context.Context) trm.Manager {
	if sp.txManager == nil {
		m, err := manager.New(trmpgx.NewDefaultFactory(sp.DBClient(ctx)))
		if err != nil {
			panic("failed to create tx manager: " + err.Error())
		}

		sp.txManager = m
	}

	return sp.txManager
}

func (sp *ServiceProvider) JWTCfg() config.JWTConfig {
	if sp.jwtCfg == nil {
		cfg, err := env.NewJWTConfig()
		if err != nil {
			panic("failed to get jwt config: " + err.Error())
		}
		sp.jwtCfg = cfg
	}
	return sp.jwtCfg
}

func (sp *ServiceProvider) AuthRepo(ctx context.Context) repository.AuthRepository {
	if sp.authRepo == nil {
		sp.authRepo = auth_repo.NewAuthRepository(sp.DBClient(ctx))
	}
	return sp.authRepo
}

func (sp *ServiceProvider) UserRepo(ctx context.Context) repository.UserRepository {
	if sp.userRepo == nil {
		sp.userRepo = user_repo.NewUserRepository(sp.DBClient(ctx))
	}
	return sp.userRepo
}

func (sp *ServiceProvider) WalletRepo(ctx context.Context) repository.WalletRepository {
	if sp.walletRepo == nil {
		sp.walletRepo = wallet_repo.NewWalletRepository(sp.DBClient(ctx))
	}
	return sp.walletRepo
}

func (sp *ServiceProvider) Ledgers() *wallet.Registry {
	if sp.ledgers == nil {
		sp.ledgers = wallet.NewRegistry()
	}
	return sp.ledgers
}

func (sp *ServiceProvider) DrawProvider() draw.Provider {
	if sp.provider == nil {
		sp.provider = draw.NewProvider()
	}
	return sp.provider
}

func (sp *ServiceProvider) Coordinator(ctx context.Context) *coordinator.Coordinator {
	if sp.coord == nil {
		sp.coord = coordinator.New(
			sp.Ledgers(),
			sp.DrawProvider(),
			sp.WalletRepo(ctx),
			sp.TXManager(ctx),
		)
	}
	return sp.coord
}

func (sp *ServiceProvider) WalletService(ctx context.Context) service.WalletService {
	if sp.walletServ == nil {
		sp.walletServ = walletserv.NewWalletService(
			sp.Ledgers(),
			sp.WalletRepo(ctx),
			sp.TXManager(ctx),
		)
	}
	return sp.walletServ
}

func (sp *ServiceProvider) WalletHandler(ctx context.Context) *walletAPI.Handler {
	if sp.walletHand == nil {
		sp.walletHand = walletAPI.NewHandler(walletAPI.HandlerDeps{Serv: sp.WalletService(ctx)})
	}
	return sp.walletHand
}

func (sp *ServiceProvider) AuthService(ctx context.Context) service.AuthService {
	if sp.authServ == nil {
		sp.authServ = authserv.NewService(
			sp.TXManager(ctx),
			sp.UserRepo(ctx),
			sp.AuthRepo(ctx),
			sp.JWTCfg(),
			sp.WalletService(ctx),
		)
	}
	return sp.authServ
}

func (sp *ServiceProvider) AuthHandler(ctx context.Context) *authAPI.Handler {
	if sp.authHand == nil {
		sp.authHand = authAPI.NewHandler(authAPI.HandlerDeps{Serv: sp.AuthService(ctx)})
	}
	return sp.authHand
}

func (sp *ServiceProvider) KenoCfg() config.KenoConfig {
	if sp.kenoCfg == nil {
		cfg, err := env.NewKenoConfigFromYAML("config.yaml")
		if err != nil {
			panic("failed to get keno config: " + err.Error())
		}
		sp.kenoCfg = cfg
	}
	return sp.kenoCfg
}

func (sp *ServiceProvider) KenoService(ctx context.Context) service.KenoService {
	if sp.kenoServ == nil {
		sp.kenoServ = kenoserv.NewKenoService(sp.KenoCfg(), sp.Coordinator(ctx))
	}
	return sp.kenoServ
}

func (sp *ServiceProvider) KenoHandler(ctx context.Context) *kenoAPI.Handler {
	if sp.kenoHand == nil {
		sp.kenoHand = kenoAPI.NewHandler(kenoAPI.HandlerDeps{Serv: sp.KenoService(ctx)})
	}
	return sp.kenoHand
}

func (sp *ServiceProvider) BingoCfg() config.BingoConfig {
	if sp.bingoCfg == nil {
		cfg, err := env.NewBingoConfigFromYAML("config.yaml")
		if err != nil {
			panic("failed to get bingo config: " + err.Error())
		}
		sp.bingoCfg = cfg
	}
	return sp.bingoCfg
}

func (sp *ServiceProvider) BingoService(ctx context.Context) service.BingoService {
	if sp.bingoServ == nil {
		sp.bingoServ = bingoserv.NewBingoService(sp.BingoCfg(), sp.Coordinator(ctx), sp.DrawProvider())
	}
	return sp.bingoServ
}

func (sp *ServiceProvider) BingoHandler(ctx context.Context) *bingoAPI.Handler {
	if sp.bingoHand == nil {
		sp.bingoHand = bingoAPI.NewHandler(bingoAPI.HandlerDeps{Serv: sp.BingoService(ctx)})
	}
	return sp.bingoHand
}

func (sp *ServiceProvider) LottoCfg() config.LottoConfig {
	if sp.lottoCfg == nil {
		cfg, err := env.NewLottoConfigFromYAML("config.yaml")
		if err != nil {
			panic("failed to get lotto config: " + err.Error())
		}
		sp.lottoCfg = cfg
	}
	return sp.lottoCfg
}

func (sp *ServiceProvider) LottoService(ctx context.Context) service.LottoService {
	if sp.lottoServ == nil {
		sp.lottoServ = lottoserv.NewLottoService(sp.LottoCfg(), sp.Coordinator(ctx), sp.DrawProvider())
	}
	return sp.lottoServ
}

func (sp *ServiceProvider) LottoHandler(ctx context.Context) *lottoAPI.Handler {
	if sp.lottoHand == nil {
		sp.lottoHand = lottoAPI.NewHandler(lottoAPI.HandlerDeps{Serv: sp.LottoService(ctx)})
	}
	return sp.lottoHand
}

func (sp *ServiceProvider) HTTPCfg() config.HTTPConfig {
	if sp.httpCfg == nil {
		cfg, err := env.NewHTTPConfig()
		if err != nil {
			panic("failed to get http config: " + err.Error())
		}
		sp.httpCfg = cfg
	}

	return sp.httpCfg
}

func (sp *ServiceProvider) Router(ctx context.Context) chi.Router {
	if sp.router == nil {
		r := chi.NewRouter()

		// CORS middleware
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
			ExposedHeaders:   []string{"Link"},
			AllowCredentials: false,
			MaxAge:           60 * 15,
		}))

		// Auth endpoints
		authHandler := sp.AuthHandler(ctx)
		r.Route("/auth", func(rr chi.Router) {
			rr.Post("/register", authHandler.Register)
			rr.Post("/login", authHandler.Login)
			rr.Post("/refresh", authHandler.Refresh)
			rr.Post("/logout", authHandler.Logout)
		})

		// Игровые и кошельковые ручки только для авторизованных
		authGuard := middleware.Auth(sp.JWTCfg())

		// Keno endpoints
		kenoHandler := sp.KenoHandler(ctx)
		r.Route("/keno", func(rr chi.Router) {
			rr.Use(authGuard)
			rr.Post("/session", kenoHandler.NewSession)
			rr.Post("/select", kenoHandler.Select)
			rr.Post("/deselect", kenoHandler.Deselect)
			rr.Post("/clear", kenoHandler.Clear)
			rr.Get("/state", kenoHandler.State)
			rr.Post("/play", kenoHandler.Play)
		})

		// Bingo endpoints
		bingoHandler := sp.BingoHandler(ctx)
		r.Route("/bingo", func(rr chi.Router) {
			rr.Use(authGuard)
			rr.Post("/session", bingoHandler.NewSession)
			rr.Post("/mark", bingoHandler.Mark)
			rr.Post("/unmark", bingoHandler.Unmark)
			rr.Post("/clear", bingoHandler.Clear)
			rr.Get("/state", bingoHandler.State)
			rr.Post("/play", bingoHandler.Play)
		})

		// Lotto endpoints
		lottoHandler := sp.LottoHandler(ctx)
		r.Route("/lotto", func(rr chi.Router) {
			rr.Use(authGuard)
			rr.Post("/session", lottoHandler.NewSession)
			rr.Post("/select-main", lottoHandler.SelectMain)
			rr.Post("/select-bonus", lottoHandler.SelectBonus)
			rr.Post("/deselect-main", lottoHandler.DeselectMain)
			rr.Post("/deselect-bonus", lottoHandler.DeselectBonus)
			rr.Post("/quick-pick", lottoHandler.QuickPick)
			rr.Post("/clear", lottoHandler.Clear)
			rr.Get("/state", lottoHandler.State)
			rr.Post("/play", lottoHandler.Play)
		})

		// Wallet endpoints
		walletHandler := sp.WalletHandler(ctx)
		r.Route("/wallet", func(rr chi.Router) {
			rr.Use(authGuard)
			rr.Post("/deposit", walletHandler.Deposit)
			rr.Post("/withdraw", walletHandler.Withdraw)
			rr.Get("/balance", walletHandler.Balance)
			rr.Get("/transactions", walletHandler.Transactions)
		})

		sp.router = r
	}

	return sp.router
}
