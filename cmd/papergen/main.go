package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"

	"github.com/acadport/papergen/internal/catalog"
	"github.com/acadport/papergen/internal/handler"
	appI18n "github.com/acadport/papergen/internal/i18n"
	"github.com/acadport/papergen/internal/llm"
	"github.com/acadport/papergen/internal/model"
	"github.com/acadport/papergen/internal/pdf"
	"github.com/acadport/papergen/internal/store"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "papergen",
		Short: "Exam question-paper portal for academic departments",
	}

	serve := serveCmd()
	root.AddCommand(serve, exportCmd())

	// Make "serve" the default when no subcommand is given.
	root.RunE = serve.RunE

	// Register serve flags on root so bare `papergen --addr ...` still works.
	root.Flags().AddFlagSet(serve.Flags())

	return root
}

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP portal server",
		RunE:  runServe,
	}
	f := cmd.Flags()
	f.StringP("addr", "a", ":8080", "HTTP listen address")
	f.String("data-dir", ".", "Directory holding users.json and past_papers.json")
	f.String("sessions-db", "papergen.db", "SQLite database path for auth sessions")
	f.String("llm-url", "https://generativelanguage.googleapis.com/v1beta/openai/", "OpenAI-compatible API base URL")
	f.String("llm-key", "", "API key for the generation API (empty disables it, forcing local fallback)")
	f.String("llm-model", "gemini-2.0-flash", "Generation model name")
	f.StringP("lang", "l", "en", "UI language")
	f.Bool("secure-cookies", true, "Set Secure flag on session cookies")
	f.String("log-level", "info", "Log level (debug, info, warn, error)")
	f.String("log-format", "text", "Log format (text, json)")
	return cmd
}

func exportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export a stored paper as PDF",
		RunE:  runExport,
	}
	f := cmd.Flags()
	f.String("data-dir", ".", "Directory holding users.json and past_papers.json")
	f.Int("paper-id", 0, "Paper identifier to export (required)")
	f.StringP("output", "o", "", "Output file path (default <course>_<id>.pdf)")
	f.String("log-level", "info", "Log level (debug, info, warn, error)")
	f.String("log-format", "text", "Log format (text, json)")

	_ = cmd.MarkFlagRequired("paper-id")

	return cmd
}

func setupLogging(cmd *cobra.Command) {
	v := viperForCmd(cmd)

	var logLevel slog.Level
	switch strings.ToLower(v.GetString("log-level")) {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}
	handlerOpts := &slog.HandlerOptions{Level: logLevel}
	var logHandler slog.Handler
	switch strings.ToLower(v.GetString("log-format")) {
	case "json":
		logHandler = slog.NewJSONHandler(os.Stderr, handlerOpts)
	default:
		logHandler = slog.NewTextHandler(os.Stderr, handlerOpts)
	}
	slog.SetDefault(slog.New(logHandler))
}

// viperForCmd binds a command's flags and environment to a fresh viper instance.
func viperForCmd(cmd *cobra.Command) *viper.Viper {
	v := viper.New()
	_ = v.BindPFlags(cmd.Flags())

	v.SetEnvPrefix("PAPERGEN")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetConfigName("papergen")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.config/papergen")
	v.AddConfigPath("/etc/papergen")
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			slog.Warn("error reading config file", "error", err)
		}
	} else {
		slog.Info("loaded config file", "path", v.ConfigFileUsed())
	}

	return v
}

func runServe(cmd *cobra.Command, _ []string) error {
	setupLogging(cmd)
	v := viperForCmd(cmd)

	db, err := store.New(v.GetString("data-dir"), v.GetString("sessions-db"))
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer db.Close()

	if err := seedUsers(db); err != nil {
		return fmt.Errorf("seed users: %w", err)
	}
	if err := db.CleanupExpiredSessions(); err != nil {
		slog.Warn("failed to clean up expired sessions", "error", err)
	}

	lang := v.GetString("lang")
	if err := appI18n.Init(lang); err != nil {
		return fmt.Errorf("init i18n: %w", err)
	}

	// No API key means the external generation path is disabled and
	// every paper/quiz comes from the local fallback.
	var llmClient *llm.Client
	if key := v.GetString("llm-key"); key != "" {
		llmClient = llm.New(v.GetString("llm-url"), key, v.GetString("llm-model"))
		slog.Info("generation API enabled", "url", v.GetString("llm-url"), "model", v.GetString("llm-model"))
	} else {
		slog.Info("no API key configured, local fallback generation only")
	}

	h, err := handler.New(db, llmClient, handler.Config{
		SecureCookies: v.GetBool("secure-cookies"),
	})
	if err != nil {
		return fmt.Errorf("create handler: %w", err)
	}

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(appI18n.Middleware(lang))
	h.Routes(r)

	addr := v.GetString("addr")
	slog.Info("starting server",
		"addr", addr,
		"data_dir", v.GetString("data-dir"),
		"sessions_db", v.GetString("sessions-db"),
		"lang", lang,
		"departments", len(catalog.Codes()),
	)
	return http.ListenAndServe(addr, r)
}

func runExport(cmd *cobra.Command, _ []string) error {
	setupLogging(cmd)
	v := viperForCmd(cmd)

	// Sessions are irrelevant for a one-shot export.
	db, err := store.New(v.GetString("data-dir"), ":memory:")
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer db.Close()

	id := v.GetInt("paper-id")
	paper, err := db.GetPaper(id)
	if err != nil {
		return fmt.Errorf("get paper %d: %w", id, err)
	}
	if paper == nil {
		return fmt.Errorf("paper %d not found", id)
	}

	data, err := pdf.Render(*paper, catalog.Name(paper.Department))
	if err != nil {
		return fmt.Errorf("render PDF: %w", err)
	}

	outPath := v.GetString("output")
	if outPath == "" {
		outPath = fmt.Sprintf("%s_%d.pdf", strings.ReplaceAll(paper.Course, " ", "_"), paper.ID)
	}
	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	slog.Info("exported paper", "id", id, "path", outPath)
	return nil
}

// seedUsers installs the three built-in accounts on first boot.
func seedUsers(db *store.Store) error {
	seeds := []struct {
		username, password, name, department string
		role                                 model.UserRole
	}{
		{"student1", "student123", "John Student", "AI&DS", model.UserRoleStudent},
		{"staff1", "staff123", "Ms. Smith", "IT", model.UserRoleStaff},
		{"admin", "admin123", "Admin", "CS", model.UserRoleStaff},
	}

	users := make([]model.User, 0, len(seeds))
	for _, s := range seeds {
		hash, err := bcrypt.GenerateFromPassword([]byte(s.password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("hash seed password for %s: %w", s.username, err)
		}
		users = append(users, model.User{
			Username:     s.username,
			PasswordHash: string(hash),
			Role:         s.role,
			Name:         s.name,
			Department:   s.department,
		})
	}

	return db.SeedUsers(users)
}
