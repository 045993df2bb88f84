package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"prezumi-backend/internal/admin"
	googleauth "prezumi-backend/internal/auth"
	"prezumi-backend/internal/coverletters"
	"prezumi-backend/internal/generate"
	"prezumi-backend/internal/generate/openai"
	"prezumi-backend/internal/render"
	"prezumi-backend/internal/resumes"
	"prezumi-backend/internal/shared/config"
	"prezumi-backend/internal/shared/server"
	"prezumi-backend/internal/shared/storage/db"
	"prezumi-backend/internal/shared/telemetry"
)

// App holds shared dependencies. Tests build one and drive Router directly.
type App struct {
	Config config.Config
	Router *gin.Engine
	DB     *sql.DB

	ResumesRepo    resumes.Repo
	LettersRepo    coverletters.Repo
	ResumesService *resumes.Service
	LettersService *coverletters.Service
	Generator      generate.Client
	PDF            render.PDFExporter

	ResumeHandler   *resumes.Handler
	LetterHandler   *coverletters.Handler
	RenderHandler   *render.Handler
	GenerateHandler *generate.Handler
	AdminHandler    *admin.Handler
	GoogleAuth      *googleauth.GoogleService
}

// Build prepares shared dependencies and wires the router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config: cfg,
		DB:     sqlDB,
	}

	if err := buildServices(app); err != nil {
		return nil, err
	}

	app.Router = server.NewRouter(server.RouterDeps{
		Config:          app.Config,
		ResumeHandler:   app.ResumeHandler,
		LetterHandler:   app.LetterHandler,
		RenderHandler:   app.RenderHandler,
		GenerateHandler: app.GenerateHandler,
		AdminHandler:    app.AdminHandler,
		GoogleAuth:      app.GoogleAuth,
	})

	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			telemetry.Info("bootstrap.memory_repos", map[string]any{"reason": "DATABASE_URL empty"})
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			telemetry.Warn("bootstrap.memory_repos", map[string]any{
				"reason": "database connect failed",
				"error":  err.Error(),
			})
			return nil, nil
		}
		return nil, err
	}

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return sqlDB, nil
}

func buildServices(app *App) error {
	var resumeRepo resumes.Repo
	var letterRepo coverletters.Repo

	if app.DB != nil {
		resumeRepo = &resumes.PGRepo{DB: app.DB}
		letterRepo = &coverletters.PGRepo{DB: app.DB}
	} else {
		resumeRepo = resumes.NewMemoryRepo()
		letterRepo = coverletters.NewMemoryRepo()
	}

	resumeSvc := &resumes.Service{Repo: resumeRepo}
	letterSvc := coverletters.NewService(letterRepo)

	generator, err := openai.NewClient(app.Config.OpenAIAPIKey, app.Config.OpenAIModel)
	if err != nil {
		return err
	}

	pdf := render.NewChromePDF(app.Config.ChromePath)

	googleAuthSvc := googleauth.NewGoogleService(
		app.Config.GoogleClientID,
		app.Config.GoogleClientSecret,
		app.Config.GoogleRedirectURL,
		app.Config.UIRedirectURL,
	)

	app.ResumesRepo = resumeRepo
	app.LettersRepo = letterRepo
	app.ResumesService = resumeSvc
	app.LettersService = letterSvc
	app.Generator = generator
	app.PDF = pdf
	app.ResumeHandler = resumes.NewHandler(resumeSvc)
	app.LetterHandler = coverletters.NewHandler(letterSvc)
	app.RenderHandler = render.NewHandler(resumeSvc, letterSvc, pdf)
	app.GenerateHandler = generate.NewHandler(generator)
	app.AdminHandler = admin.NewHandler(resumeRepo, letterRepo, admin.NewEmailAllowList(app.Config.AdminEmails))
	app.GoogleAuth = googleAuthSvc

	return nil
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}
