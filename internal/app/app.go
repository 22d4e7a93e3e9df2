package app

import (
	"context"
	"net/http"
	"os"

	"go.uber.org/zap"

	"github.com/NguyenZak/ikigai-app-sub001/domain"
	"github.com/NguyenZak/ikigai-app-sub001/internal/config"
	httpx "github.com/NguyenZak/ikigai-app-sub001/internal/http"
	"github.com/NguyenZak/ikigai-app-sub001/internal/http/handlers"
	"github.com/NguyenZak/ikigai-app-sub001/internal/http/middleware"
	"github.com/NguyenZak/ikigai-app-sub001/internal/infrastructure/auth"
	"github.com/NguyenZak/ikigai-app-sub001/internal/infrastructure/database"
	"github.com/NguyenZak/ikigai-app-sub001/internal/infrastructure/repositories"
	"github.com/NguyenZak/ikigai-app-sub001/internal/services"
)

func Run(cfg *config.Config, logger *zap.Logger) error {
	gdb, err := database.Open(cfg.DSN)
	if err != nil {
		return err
	}
	if err := database.AutoMigrate(gdb); err != nil {
		return err
	}
	cas, err := auth.NewCasbinService(gdb, cfg.CasbinModelPath)
	if err != nil {
		return err
	}
	rdb := database.NewRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB).Client
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return err
	}

	passwordSvc := auth.NewPasswordService()

	userRepo := repositories.NewUserRepository(gdb)
	sessionRepo := repositories.NewSessionRepository(rdb, cfg.SessionTTL)
	customerRepo := repositories.NewCustomerRepository(gdb)
	roomRepo := repositories.NewRoomRepository(gdb)
	newsRepo := repositories.NewNewsRepository(gdb)
	bannerRepo := repositories.NewBannerRepository(gdb)

	authSvc := services.NewAuthService(userRepo, sessionRepo, passwordSvc, cfg.SessionTTL, logger)
	customerSvc := services.NewCustomerService(customerRepo, userRepo, logger)
	contentSvc := services.NewContentService(roomRepo, newsRepo, bannerRepo, logger)

	authH := handlers.NewAuthHandlers(authSvc, cfg.SessionCookie, cfg.SessionSecure)
	customerH := handlers.NewCustomerHandlers(customerSvc)
	contentH := handlers.NewContentHandlers(contentSvc)
	polH := &handlers.PolicyHandlers{Svc: services.NewPolicyService(cas.E)}

	sessMW := middleware.NewAuthMW(authSvc, cfg.SessionCookie)
	casbinMW := middleware.NewCasbinMW(cas.E)

	r := httpx.BuildRouter(authH, customerH, contentH, polH, sessMW, casbinMW)

	policies, _ := cas.E.GetPolicy()
	if len(policies) == 0 {
		if err := cas.SeedDefaultPolicies(); err != nil {
			return err
		}
		logger.Info("casbin: seeded default policies")
	}

	seedAdminUser(userRepo, passwordSvc, logger)

	addr := ":" + cfg.Port
	logger.Info("listening", zap.String("addr", addr))
	return http.ListenAndServe(addr, r)
}

// seedAdminUser provisions the first admin account when ADMIN_EMAIL and
// ADMIN_PASSWORD are set and no account exists for that email yet.
func seedAdminUser(userRepo domain.UserRepository, passwordSvc domain.PasswordService, logger *zap.Logger) {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		return
	}
	if _, err := userRepo.FindByEmail(context.Background(), email); err == nil {
		return
	}
	hash, err := passwordSvc.Hash(password)
	if err != nil {
		logger.Error("failed to hash seed admin password", zap.Error(err))
		return
	}
	user := &domain.User{
		Name:         "Administrator",
		Email:        email,
		PasswordHash: hash,
		Role:         domain.RoleAdmin,
		IsActive:     true,
	}
	if err := userRepo.Create(context.Background(), user); err != nil {
		logger.Error("failed to seed admin user", zap.Error(err))
		return
	}
	logger.Info("seeded admin user", zap.String("email", email))
}
