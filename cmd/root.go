package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/artti-capital/linea/internal/models"
	"github.com/artti-capital/linea/internal/output"
	"github.com/artti-capital/linea/internal/persist"
	"github.com/artti-capital/linea/internal/state"
)

// Package-level shared dependencies, initialized in cobra.OnInitialize.
var (
	ui      *output.UI
	session *state.Store

	verbose bool
	seed    bool

	buildVersion string
	buildCommit  string
	buildDate    string
)

var rootCmd = &cobra.Command{
	Use:   "linea",
	Short: "linea - a Linear-style issue tracker in your terminal",
	Long: `linea tracks issues, projects, and cycles for one team.

Issues live in memory for the session; saved views, projects, cycles,
identity, and theme persist across runs.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	DisableAutoGenTag: true,
}

// Execute is the main entry point called from main.go.
func Execute(version, commit, date string) {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig, initDeps)

	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().BoolVar(&seed, "seed", false, "Load demo issues into the session")
	rootCmd.PersistentFlags().String("config", "", "Config file (default ~/.config/linea/config.yaml)")

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(ui.Out, "linea %s (commit %s, built %s)\n", buildVersion, buildCommit, buildDate)
	},
}

func initConfig() {
	// If --config is explicitly set, use that file
	if cfgFile, _ := rootCmd.PersistentFlags().GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		dir, err := configDirFunc()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: cannot find home directory: %v\n", err)
			os.Exit(1)
		}
		viper.AddConfigPath(dir)
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("LINEA")
	viper.AutomaticEnv()

	defaultConfigDir, _ := configDirFunc()

	viper.SetDefault("state_dir", defaultConfigDir)
	viper.SetDefault("db_path", filepath.Join(defaultConfigDir, "linea.db"))
	viper.SetDefault("user.id", "u-1")
	viper.SetDefault("user.name", "Senior Dev")
	viper.SetDefault("user.email", "dev@artti.capital")
	viper.SetDefault("team.id", "t-1")
	viper.SetDefault("team.name", "Artti Engineering")
	viper.SetDefault("team.identifier", "ART")
	viper.SetDefault("theme", string(models.ThemeDark))

	// Read config file if it exists (optional)
	_ = viper.ReadInConfig()
}

func initDeps() {
	ui = output.New()
	ui.Verbose = verbose

	// The session store is initialized lazily so config/version commands run
	// without touching the database.
}

// getSession returns the shared state store, building it on first call:
// identity from config, durable subset rehydrated from the snapshot store,
// and demo data seeded when --seed is set.
func getSession() *state.Store {
	if session != nil {
		return session
	}

	user := models.User{
		ID:    viper.GetString("user.id"),
		Name:  viper.GetString("user.name"),
		Email: viper.GetString("user.email"),
		Role:  models.RoleAdmin,
	}
	team := models.Team{
		ID:         viper.GetString("team.id"),
		Name:       viper.GetString("team.name"),
		Identifier: viper.GetString("team.identifier"),
		Members:    []models.User{user},
	}

	cfg := state.Config{User: user, Team: team}

	// Persistence is best effort: a broken snapshot database downgrades to a
	// purely in-memory session instead of failing the command.
	snapStore, err := persist.NewSnapshotStore(viper.GetString("db_path"))
	if err != nil {
		ui.Warning("Snapshot store unavailable, running in-memory: %v", err)
	} else if err := snapStore.Migrate(context.Background()); err != nil {
		ui.Warning("Snapshot store unavailable, running in-memory: %v", err)
		_ = snapStore.Close()
		snapStore = nil
	} else {
		cfg.Persister = snapStore
	}

	session = state.New(cfg)
	hadTheme := false
	if snapStore != nil {
		snap := snapStore.Load(context.Background())
		session.Restore(snap)
		hadTheme = snap.Theme != ""
	}
	// A persisted theme wins over the config default.
	if !hadTheme {
		session.SetTheme(models.Theme(viper.GetString("theme")))
	}
	if seed {
		state.Seed(session)
	}
	return session
}
