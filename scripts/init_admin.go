package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"agora/internal/config"
	"agora/internal/model/auth"
	"agora/internal/pkg/id"
	"agora/internal/pkg/logger"
	"agora/internal/pkg/mongodb"
	"agora/internal/pkg/password"
	authrepo "agora/internal/repository/auth"
	systemrepo "agora/internal/repository/system"
)

func main() {
	// 1. 加载配置（与 cmd/root.go 保持一致的搜索路径）
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./configs")
	viper.AddConfigPath(".")
	viper.AddConfigPath("$HOME/.agora")

	viper.SetEnvPrefix("AGORA")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to read config: %v\n", err)
		os.Exit(1)
	}

	var cfg config.Config
	if err := viper.Unmarshal(&cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to unmarshal config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(&cfg.Log); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to init logger: %v\n", err)
		os.Exit(1)
	}

	// 2. 连接 MongoDB
	client, err := mongodb.New(&cfg.Mongo)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect mongo")
	}
	defer func() {
		_ = client.Close(context.Background())
	}()

	db := client.Database()
	ctx := context.Background()

	userRepo := authrepo.NewUserRepo(db)
	settingsRepo := systemrepo.NewSettingsRepo(db)

	// 3. 读取管理员账号（环境变量 > 配置 > 默认值）
	login := os.Getenv("INIT_ADMIN_LOGIN")
	if login == "" {
		login = cfg.Admin.Login
	}
	if login == "" {
		login = "admin"
	}
	passwordPlain := os.Getenv("INIT_ADMIN_PASSWORD")
	if passwordPlain == "" {
		passwordPlain = cfg.Admin.Password
	}
	if passwordPlain == "" {
		passwordPlain = "admin123"
	}

	// 4. 创建或升级管理员
	user, err := userRepo.FindByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			log.Info().Str("login", login).Msg("admin user not found, will create")
			if err := createAdmin(ctx, userRepo, &cfg, login, passwordPlain); err != nil {
				log.Fatal().Err(err).Msg("create admin user failed")
			}
		} else {
			log.Fatal().Err(err).Msg("failed to query user")
		}
	} else {
		// 已存在，更新为 admin + active
		log.Info().Str("login", login).Msg("admin user exists, will update role/status")
		update := bson.M{
			"$set": bson.M{
				"role":   auth.RoleAdmin,
				"status": auth.UserStatusActive,
			},
		}
		if err := userRepo.Update(ctx, user.ID, update); err != nil {
			log.Fatal().Err(err).Msg("update admin user failed")
		}
	}

	// 5. 初始化站点设置单例（已存在时不覆盖）
	if err := settingsRepo.EnsureDefault(ctx); err != nil {
		log.Fatal().Err(err).Msg("init settings failed")
	}

	fmt.Printf("Admin initialized: login=%s password=%s role=admin status=active\n",
		login, passwordPlain)
}

func createAdmin(ctx context.Context, repo *authrepo.UserRepo, cfg *config.Config, login, pwd string) error {
	hashed, err := password.Hash(pwd)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	firstName := cfg.Admin.FirstName
	if firstName == "" {
		firstName = "Site"
	}
	lastName := cfg.Admin.LastName
	if lastName == "" {
		lastName = "Admin"
	}

	now := time.Now()
	user := &auth.User{
		ID:        id.New(),
		Login:     login,
		Password:  hashed,
		FirstName: firstName,
		LastName:  lastName,
		Role:      auth.RoleAdmin,
		Status:    auth.UserStatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}

	return repo.Create(ctx, user)
}
