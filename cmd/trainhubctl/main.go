package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"sort"

	"github.com/dangerclosesec/trainhub"
	"github.com/dangerclosesec/trainhub/internal/auth"
	"github.com/dangerclosesec/trainhub/internal/config"
	"github.com/dangerclosesec/trainhub/internal/database"
	"github.com/dangerclosesec/trainhub/internal/migration"
	"github.com/dangerclosesec/trainhub/internal/model"
	"github.com/dangerclosesec/trainhub/internal/repository"
	"github.com/dangerclosesec/trainhub/internal/service"
	"github.com/dangerclosesec/trainhub/internal/validation"
	_ "github.com/lib/pq"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var (
	cfg     *config.Config
	logger  *slog.Logger
	verbose bool
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	normalizeSkillsCmd.Flags().Bool("dry-run", false, "Report legacy rows without rewriting them")

	createAdminCmd.Flags().String("email", "", "Administrator email")
	createAdminCmd.Flags().String("password", "", "Administrator password (min 8 characters)")
	createAdminCmd.Flags().String("name", "", "Display name")
	_ = createAdminCmd.MarkFlagRequired("email")
	_ = createAdminCmd.MarkFlagRequired("password")

	issueTokenCmd.Flags().String("email", "", "Email of an existing user")
	_ = issueTokenCmd.MarkFlagRequired("email")

	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(normalizeSkillsCmd)
	rootCmd.AddCommand(createAdminCmd)
	rootCmd.AddCommand(issueTokenCmd)
}

var rootCmd = &cobra.Command{
	Use:   "trainhubctl",
	Short: "Operational commands for the TrainHub API",
	Long:  `trainhubctl applies schema migrations, repairs stored data and bootstraps accounts for the TrainHub API.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
		slog.SetDefault(logger)
		cfg = config.Load()
	},
	SilenceUsage: true,
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending schema migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := sql.Open("postgres", cfg.DSN())
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer db.Close()

		applied, err := migration.NewMigrator(db).Apply(cmd.Context(), trainhub.MigrationsFS, "migrations")
		if err != nil {
			return err
		}
		if len(applied) == 0 {
			fmt.Println("No pending migrations")
			return nil
		}
		for _, v := range applied {
			fmt.Printf("Applied %s\n", v)
		}
		return nil
	},
}

var normalizeSkillsCmd = &cobra.Command{
	Use:   "normalize-skills",
	Short: "Rewrite legacy skills values as JSON arrays",
	RunE: func(cmd *cobra.Command, args []string) error {
		dryRun, _ := cmd.Flags().GetBool("dry-run")

		db, err := openDB(cmd.Context())
		if err != nil {
			return err
		}

		report, err := repository.NewSkillsNormalizer(db).Normalize(cmd.Context(), dryRun)
		if err != nil {
			return err
		}

		verb := "Rewrote"
		if dryRun {
			verb = "Would rewrite"
		}
		tables := make([]string, 0, len(report.Scanned))
		for t := range report.Scanned {
			tables = append(tables, t)
		}
		sort.Strings(tables)
		for _, t := range tables {
			fmt.Printf("%s %d of %d rows in %s\n", verb, report.Rewritten[t], report.Scanned[t], t)
		}
		return nil
	},
}

var createAdminCmd = &cobra.Command{
	Use:   "create-admin",
	Short: "Create an ADMIN user",
	RunE: func(cmd *cobra.Command, args []string) error {
		email, _ := cmd.Flags().GetString("email")
		password, _ := cmd.Flags().GetString("password")
		name, _ := cmd.Flags().GetString("name")

		db, err := openDB(cmd.Context())
		if err != nil {
			return err
		}

		actionLogs := service.NewActionLogService(repository.NewActionLogRepository(db))
		users := service.NewUserService(repository.NewUserRepository(db), nil, auth.NewPasswordHasher(), actionLogs, logger)

		in := service.CreateUserInput{Email: email, Password: password, Role: model.RoleAdmin}
		if name != "" {
			in.Name = &name
		}
		user, err := users.Create(cmd.Context(), in)
		if err != nil {
			return err
		}
		fmt.Printf("Created administrator %s (%s)\n", user.Email, user.ID)
		return nil
	},
}

var issueTokenCmd = &cobra.Command{
	Use:   "issue-token",
	Short: "Print a bearer token for an existing user",
	RunE: func(cmd *cobra.Command, args []string) error {
		email, _ := cmd.Flags().GetString("email")
		if err := cfg.Validate(); err != nil {
			return err
		}

		db, err := openDB(cmd.Context())
		if err != nil {
			return err
		}

		user, err := repository.NewUserRepository(db).FindByEmail(cmd.Context(), validation.NormalizeEmail(email))
		if err != nil {
			return err
		}
		token, err := auth.NewTokenManager(cfg.JWT.Secret, cfg.JWT.ExpiryPeriod).Generate(user)
		if err != nil {
			return fmt.Errorf("signing token: %w", err)
		}
		fmt.Println(token)
		return nil
	},
}

func openDB(ctx context.Context) (*gorm.DB, error) {
	db, err := database.Open(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("setting up database: %w", err)
	}
	return db, nil
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
