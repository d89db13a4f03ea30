// createuser 创建用户（首个管理员由此引导，系统不提供注册接口）
//
//	go run ./backend/cmd/createuser -name Admin -email admin@example.com -password 'secret123' -role 3
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/Shadomax/Elearning/backend/config"
	"github.com/Shadomax/Elearning/backend/internal/model"
	"github.com/Shadomax/Elearning/backend/internal/repository"
	"github.com/Shadomax/Elearning/backend/internal/service"
	"github.com/Shadomax/Elearning/backend/pkg/database"
	applogger "github.com/Shadomax/Elearning/backend/pkg/logger"
)

func main() {
	name := flag.String("name", "", "用户姓名")
	email := flag.String("email", "", "登录邮箱")
	password := flag.String("password", "", "初始密码（至少 8 位）")
	role := flag.Int("role", int(model.RoleViewer), "角色等级：1 viewer / 2 editor / 3 admin")
	flag.Parse()

	if *email == "" || *password == "" {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(*name, *email, *password, model.Role(*role)); err != nil {
		fmt.Fprintf(os.Stderr, "创建用户失败: %v\n", err)
		os.Exit(1)
	}
}

func run(name, email, password string, role model.Role) error {
	cfg, err := config.Load(os.Getenv("ELEARNING_CONFIG"))
	if err != nil {
		return err
	}
	logger, err := applogger.NewLogger(&cfg.Log)
	if err != nil {
		return err
	}
	defer logger.Sync()

	db, err := database.NewDB(&cfg.Database, cfg.Log.Level, logger)
	if err != nil {
		return err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()
	if err := database.RunMigrations(sqlDB, logger); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	users := service.NewUserService(repository.NewRepository(db), logger)
	user, err := users.Create(ctx, &service.CreateUserInput{
		Name:     name,
		Email:    email,
		Password: password,
		Role:     role,
	})
	if err != nil {
		return err
	}

	fmt.Printf("已创建用户 #%d %s (%s)\n", user.ID, user.Email, role)
	return nil
}
