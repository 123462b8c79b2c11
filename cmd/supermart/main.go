package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	backofficeUCPkg "github.com/openretail/supermart-sim/internal/backoffice/usecase"
	checkoutUCPkg "github.com/openretail/supermart-sim/internal/checkout/usecase"
	storeRepoPkg "github.com/openretail/supermart-sim/internal/store/repository"

	"github.com/openretail/supermart-sim/config"
	"github.com/openretail/supermart-sim/internal/console"
	"github.com/openretail/supermart-sim/internal/loader"
	"github.com/openretail/supermart-sim/internal/logger"
	"github.com/openretail/supermart-sim/internal/membership"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var dataFile string
	var envFile string

	cmd := &cobra.Command{
		Use:           "supermart",
		Short:         "Interactive supermarket simulator",
		Long:          "Loads a store data file and runs an interactive console session for browsing aisles, checking out customers and running the employee back office.",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(dataFile, envFile)
		},
	}

	cmd.Flags().StringVar(&dataFile, "data", "", "store data file (falls back to SUPERMART_DATA_FILE, then an interactive prompt)")
	cmd.Flags().StringVar(&envFile, "env", ".env", "env file to load before reading configuration")

	return cmd
}

func run(dataFile, envFile string) error {
	// 1. Load Configuration
	_ = godotenv.Load(envFile)
	cfg := config.LoadEnv()

	// 2. Initialize Logger
	logConfig := &logger.ZapLoggerConfig{
		IsDevelopment:     cfg.App.Env == "dev",
		Encoding:          cfg.Logger.Encoding,
		Level:             cfg.Logger.Level,
		DisableCaller:     cfg.Logger.DisableCaller,
		DisableStacktrace: cfg.Logger.DisableStacktrace,
	}
	appLogger := logger.NewZapLogger(logConfig)
	defer appLogger.Sync()

	in := bufio.NewReader(os.Stdin)
	out := os.Stdout

	// 3. Resolve the store data file: flag, then env, then prompt
	if dataFile == "" {
		dataFile = cfg.Store.DataFile
	}
	if dataFile == "" {
		path, err := console.PromptForDataFile(in, out)
		if errors.Is(err, console.ErrPromptExited) {
			return nil
		}
		if err != nil {
			return err
		}
		dataFile = path
	}

	// 4. Load the store snapshot
	st, err := loader.NewFileLoader(appLogger).Load(dataFile)
	if err != nil {
		appLogger.Error("could not load store data", zap.Error(err))
		fmt.Fprintln(out, "File could not be opened. Please try again.")
		return err
	}

	// 5. Initialize Repositories
	repo := storeRepoPkg.NewMemoryRepository(st)
	members := membership.NewStoreDirectory(st)

	// 6. Initialize UseCases
	taxRate := cfg.Store.SalesTaxRate
	checkoutUC := checkoutUCPkg.NewCheckoutUseCase(repo, members, taxRate, appLogger)
	backofficeUC := backofficeUCPkg.NewBackofficeUseCase(repo, members, taxRate, appLogger)

	// 7. Run the console session
	app := console.NewApp(repo, checkoutUC, backofficeUC, appLogger, in, out)
	appLogger.Info("store session started",
		zap.String("store", st.Name),
		zap.String("sales_tax", taxRate.String()),
	)
	return app.Run(context.Background())
}
