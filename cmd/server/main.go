package main

import (
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"sintomed/internal/cases"
	"sintomed/internal/catalog"
	"sintomed/internal/config"
	"sintomed/internal/consultation"
	"sintomed/internal/inference"
	"sintomed/internal/report"
)

func main() {
	root := &cobra.Command{
		Use:   "sintomed",
		Short: "Sistema de diagnóstico preliminar basado en síntomas",
	}
	root.AddCommand(serveCmd(), validateCmd(), exportCmd(), evaluateCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newLogger(cfg *config.Config) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}

	var out = os.Stderr
	logger := zerolog.New(out)
	if cfg.LogPretty {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: out})
	}
	return logger.Level(level).With().Timestamp().Logger()
}

func buildEngine() (*catalog.KnowledgeBase, *catalog.SymptomRegistry, *inference.Engine) {
	kb := catalog.NewKnowledgeBase()
	reg := catalog.NewSymptomRegistry()
	return kb, reg, inference.NewEngine(kb, reg)
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Inicia el servidor HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			log := newLogger(cfg)

			// 1. Infrastructure
			var db *sql.DB
			for i := 0; i < 10; i++ {
				db, err = sql.Open("postgres", cfg.DatabaseURL)
				if err == nil {
					err = db.Ping()
				}
				if err == nil {
					break
				}
				log.Warn().Err(err).Int("attempt", i+1).Msg("waiting for database")
				time.Sleep(2 * time.Second)
			}
			if err != nil {
				return fmt.Errorf("connect to database: %w", err)
			}
			log.Info().Msg("connected to database")

			m, err := migrate.New(cfg.MigrationsPath, cfg.DatabaseURL)
			if err != nil {
				return fmt.Errorf("migration init: %w", err)
			}
			if err := m.Up(); err != nil && err != migrate.ErrNoChange {
				return fmt.Errorf("migration up: %w", err)
			}
			log.Info().Msg("migrations applied")

			// 2. Domain
			kb, reg, engine := buildEngine()
			if issues := catalog.Validate(kb, reg); len(issues) > 0 {
				for _, issue := range issues {
					log.Warn().Str("subject", issue.Subject).
						Str("kind", string(issue.Kind)).
						Msg(issue.Detail)
				}
				log.Warn().Int("issues", len(issues)).Msg("catalog loaded with data defects")
			}

			// 3. Services
			repo := consultation.NewRepository(db)
			reportSvc := report.NewService(reg)
			consultationSvc := consultation.NewService(repo, engine, reg, reportSvc, log)

			consultationHandler := consultation.NewHandler(consultationSvc)
			catalogHandler := catalog.NewHandler(kb, reg)

			// 4. Router
			r := chi.NewRouter()
			r.Use(middleware.RequestID)
			r.Use(middleware.Recoverer)

			r.Use(func(next http.Handler) http.Handler {
				return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					w.Header().Set("Access-Control-Allow-Origin", "*")
					w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS, PUT, DELETE")
					w.Header().Set("Access-Control-Allow-Headers", "Accept, Content-Type, Content-Length, Accept-Encoding, Authorization")
					if r.Method == "OPTIONS" {
						return
					}
					next.ServeHTTP(w, r)
				})
			})

			r.Route("/api", func(r chi.Router) {
				consultation.RegisterRoutes(r, consultationHandler)
				catalog.RegisterRoutes(r, catalogHandler)
			})

			log.Info().Str("port", cfg.Port).Msg("server starting")
			return http.ListenAndServe(":"+cfg.Port, r)
		},
	}
}

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Valida la consistencia de los catálogos de síntomas y enfermedades",
		RunE: func(cmd *cobra.Command, args []string) error {
			kb, reg, _ := buildEngine()

			issues := catalog.Validate(kb, reg)
			if len(issues) == 0 {
				fmt.Println("Catálogos consistentes: sin problemas detectados.")
				return nil
			}
			for _, issue := range issues {
				fmt.Println(issue)
			}
			return fmt.Errorf("%d problema(s) detectado(s)", len(issues))
		},
	}
}

func exportCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "export [symptoms|diseases]",
		Short: "Exporta un catálogo a stdout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kb, reg, _ := buildEngine()

			switch args[0] {
			case "symptoms":
				if format != "csv" {
					return fmt.Errorf("los síntomas solo se exportan como csv")
				}
				return catalog.ExportSymptomsCSV(os.Stdout, reg)
			case "diseases":
				if format == "csv" {
					return catalog.ExportDiseasesCSV(os.Stdout, kb)
				}
				return catalog.ExportDiseasesJSON(os.Stdout, kb)
			default:
				return fmt.Errorf("catálogo desconocido: %s", args[0])
			}
		},
	}
	cmd.Flags().StringVar(&format, "format", "json", "formato de salida (json o csv)")
	return cmd
}

func evaluateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "evaluate",
		Short: "Ejecuta la batería de casos simulados contra el motor",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, _, engine := buildEngine()

			result := cases.Validate(engine)
			fmt.Printf("Casos evaluados: %d\n", result.TotalCases)
			fmt.Printf("Diagnósticos correctos: %d\n", result.CorrectDiagnoses)
			fmt.Printf("Coincidencias parciales (top 3): %d\n", result.PartialMatches)
			fmt.Printf("Incorrectos: %d\n", result.Incorrect)
			fmt.Printf("Precisión: %.1f%%\n", result.Accuracy)
			fmt.Println()
			for _, cr := range result.CaseResults {
				fmt.Printf("%-10s esperado=%-16s obtenido=%-16s confianza=%.2f  %s\n",
					cr.CaseID, cr.Expected, cr.Predicted, cr.Confidence, cr.Status)
			}
			return nil
		},
	}
}
