package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"syscall"

	"golang.org/x/term"

	"github.com/JoelMaldonado222/Restaurant-phase1/internal/config"
	"github.com/JoelMaldonado222/Restaurant-phase1/internal/crypto"
	"github.com/JoelMaldonado222/Restaurant-phase1/internal/db"
	"github.com/JoelMaldonado222/Restaurant-phase1/internal/domain"
	"github.com/JoelMaldonado222/Restaurant-phase1/internal/logging"
	"github.com/JoelMaldonado222/Restaurant-phase1/internal/repository"
	"github.com/JoelMaldonado222/Restaurant-phase1/internal/service"
)

// Options tweak how the container is built
type Options struct {
	// Memory skips the database entirely; nothing survives the process
	Memory bool
}

// App is the dependency injection container for all application components
type App struct {
	Config *config.Config
	Log    *logging.Logger

	// ConfigPath is where SaveConfig writes; empty means the default path
	ConfigPath string

	// DB is nil in memory mode
	DB *db.DB

	// Repositories, nil in memory mode
	EmployeeRepo repository.EmployeeRepository
	DishRepo     repository.DishRepository
	SettingsRepo repository.SettingsRepository

	Restaurant service.RestaurantService
}

// New creates a new App instance, initializing all dependencies
// It handles:
// 1. Loading config
// 2. Building the logger
// 3. Getting the database key from the keyring
// 4. Opening database and running migrations
// 5. Creating repositories and the restaurant service
// 6. Loading stored records into memory
func New(ctx context.Context, opts Options) (*App, error) {
	cfg, err := config.LoadDefault()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	return NewWithConfig(ctx, cfg, opts)
}

// NewWithConfig creates an App with a provided config (useful for testing)
func NewWithConfig(ctx context.Context, cfg *config.Config, opts Options) (*App, error) {
	memory := opts.Memory || !cfg.Database.Enabled
	if memory {
		cfg.Database.Enabled = false
	}

	// Ensure all necessary directories exist
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("failed to create directories: %w", err)
	}

	log, err := logging.New(logging.Config{
		Mode:  cfg.Log.Mode,
		Level: cfg.Log.Level,
		File:  cfg.Log.File,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}

	restaurant, err := domain.NewRestaurant(cfg.Restaurant.Name)
	if err != nil {
		return nil, fmt.Errorf("invalid restaurant: %w", err)
	}

	a := &App{Config: cfg, Log: log}

	if memory {
		log.Info("starting in memory mode", "restaurant", restaurant.Name())
		a.Restaurant = service.NewRestaurantService(restaurant, nil, log)
		return a, nil
	}

	password, err := databaseKey(log)
	if err != nil {
		return nil, err
	}

	// Open the database with encryption
	database, err := db.Open(cfg.Database.Path, password)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Run migrations to ensure schema is up to date
	if err := database.RunMigrations(); err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	a.DB = database
	a.EmployeeRepo = repository.NewEmployeeRepo(database)
	a.DishRepo = repository.NewDishRepo(database)
	a.SettingsRepo = repository.NewSettingsRepo(database)
	a.Restaurant = service.NewRestaurantService(restaurant, &service.Store{
		Employees: a.EmployeeRepo,
		Dishes:    a.DishRepo,
		Settings:  a.SettingsRepo,
	}, log)

	if err := a.Restaurant.Sync(ctx); err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to load records: %w", err)
	}

	log.Info("database opened", "path", database.Path(), "restaurant", restaurant.Name())
	return a, nil
}

// Close cleanly shuts down the application
func (a *App) Close() error {
	if a.Log != nil {
		a.Log.Sync()
	}
	if a.DB != nil {
		return a.DB.Close()
	}
	return nil
}

// databaseKey returns the stored key, asking for a new one on first run
func databaseKey(log *logging.Logger) (string, error) {
	keyring := crypto.NewKeyring()

	password, err := keyring.GetKey()
	if err == nil {
		return password, nil
	}
	log.Debug("no stored database key", "error", err)

	if !term.IsTerminal(int(syscall.Stdin)) {
		return "", fmt.Errorf("no database key available: set %s or use --memory", crypto.EnvKey)
	}

	fmt.Println("Setting up database encryption for the first time...")
	password, err = promptForPassword()
	if err != nil {
		return "", fmt.Errorf("failed to set password: %w", err)
	}

	// Without a system keyring the key only lives for this run
	if err := keyring.SetKey(password); err != nil {
		log.Warn("database key not stored", "error", err)
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
	}
	return password, nil
}

// promptForPassword prompts user for a new database password (first run)
func promptForPassword() (string, error) {
	fmt.Println()
	fmt.Println("Your restaurant records will be encrypted with a password.")
	fmt.Println("This password will be stored in your system keyring when one is available.")
	fmt.Println()
	fmt.Print("Enter a password for database encryption: ")

	// Read password securely (no echo)
	password, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}

	if len(password) == 0 {
		return "", errors.New("password cannot be empty")
	}

	fmt.Print("Confirm password: ")
	confirm, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("failed to read confirmation: %w", err)
	}

	if string(password) != string(confirm) {
		return "", errors.New("passwords do not match")
	}

	fmt.Println()
	fmt.Println("✓ Database encryption configured successfully")
	fmt.Println()

	return string(password), nil
}

// SaveConfig saves the current configuration to disk
func (a *App) SaveConfig() error {
	path := a.ConfigPath
	if path == "" {
		path = config.DefaultConfigPath()
	}
	if err := a.Config.Validate(); err != nil {
		return err
	}
	return a.Config.Save(path)
}
