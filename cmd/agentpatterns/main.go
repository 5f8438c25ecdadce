// =============================================================================
// agentpatterns 主入口
// =============================================================================
// 运行多智能体协调模式的 YAML 场景：拍卖结算、共识投票与黑板快照
//
// 使用方法:
//
//	agentpatterns simulate --scenario scenario.yaml                    # 运行场景
//	agentpatterns simulate --config config.yaml --scenario s.yaml      # 指定配置文件
//	agentpatterns simulate --scenario s.yaml --metrics-addr :9091      # 运行后持续暴露指标
//	agentpatterns version                                              # 显示版本信息
// =============================================================================

package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/BaSui01/agentpatterns/config"
	"github.com/BaSui01/agentpatterns/internal/metrics"
	"github.com/BaSui01/agentpatterns/internal/server"
	"github.com/BaSui01/agentpatterns/internal/telemetry"
	"github.com/BaSui01/agentpatterns/persistence"
)

// =============================================================================
// 📦 版本信息（构建时注入）
// =============================================================================

var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// =============================================================================
// 🎯 主函数
// =============================================================================

func main() {
	if len(os.Args) < 2 {
		printUsage(os.Stdout)
		os.Exit(1)
	}

	switch os.Args[1] {
	case "simulate":
		if err := runSimulate(context.Background(), os.Args[2:], os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "simulate failed: %v\n", err)
			os.Exit(1)
		}
	case "version":
		printVersion(os.Stdout)
	case "help", "-h", "--help":
		printUsage(os.Stdout)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", os.Args[1])
		printUsage(os.Stderr)
		os.Exit(1)
	}
}

// =============================================================================
// 🐝 simulate 命令
// =============================================================================

type simulateOptions struct {
	configPath   string
	scenarioPath string
	metricsAddr  string
}

func parseSimulateFlags(args []string) (simulateOptions, error) {
	var opts simulateOptions
	fs := flag.NewFlagSet("simulate", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&opts.configPath, "config", "", "Path to config file")
	fs.StringVar(&opts.scenarioPath, "scenario", "", "Path to scenario file (YAML)")
	fs.StringVar(&opts.metricsAddr, "metrics-addr", "", "Serve /metrics on this address until interrupted")
	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if opts.scenarioPath == "" {
		return opts, fmt.Errorf("--scenario is required")
	}
	return opts, nil
}

func runSimulate(ctx context.Context, args []string, out io.Writer) error {
	opts, err := parseSimulateFlags(args)
	if err != nil {
		return err
	}

	// 加载配置
	loader := config.NewLoader()
	if opts.configPath != "" {
		loader = loader.WithConfigPath(opts.configPath)
	}
	cfg, err := loader.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if opts.metricsAddr != "" {
		cfg.Metrics.Addr = opts.metricsAddr
	}

	sc, err := LoadScenario(opts.scenarioPath)
	if err != nil {
		return err
	}

	// 初始化日志
	logger := initLogger(cfg.Log)
	defer func() { _ = logger.Sync() }()

	logger.Info("starting simulation",
		zap.String("version", Version),
		zap.String("scenario", opts.scenarioPath),
	)

	providers, err := telemetry.Init(cfg.Telemetry, logger)
	if err != nil {
		logger.Warn("failed to initialize telemetry", zap.Error(err))
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := providers.Shutdown(shutdownCtx); err != nil {
			logger.Warn("telemetry shutdown failed", zap.Error(err))
		}
	}()

	registry := prometheus.NewRegistry()
	var (
		collector *metrics.Collector
		storeMtx  persistence.Metrics
	)
	if cfg.Metrics.Enabled {
		collector = metrics.NewCollector(cfg.Metrics.Namespace, registry, logger)
		storeMtx = collector
	}

	ledger, err := persistence.NewLedgerFromConfig(cfg, logger, storeMtx)
	if err != nil {
		return fmt.Errorf("open ledger: %w", err)
	}
	defer ledger.Close()

	store, err := persistence.NewBlackboardStoreFromConfig(cfg, logger, storeMtx)
	if err != nil {
		return fmt.Errorf("open blackboard store: %w", err)
	}
	defer store.Close()

	runner := &Runner{
		Config:    cfg,
		Logger:    logger,
		Ledger:    ledger,
		Store:     store,
		Collector: collector,
		Tracer:    providers.Tracer(telemetry.InstrumentationName),
	}
	report, err := runner.Run(ctx, sc)
	if err != nil {
		return err
	}
	report.Print(out)

	if cfg.Metrics.Addr == "" || collector == nil {
		return nil
	}

	// 持续暴露指标直到收到信号
	srvCfg := server.DefaultConfig()
	srvCfg.Addr = cfg.Metrics.Addr
	srv := server.NewManager(server.NewMetricsHandler(registry), srvCfg, logger)
	if err := srv.Start(); err != nil {
		return err
	}
	fmt.Fprintf(out, "serving metrics on http://%s/metrics (Ctrl+C to stop)\n", srv.Addr())
	srv.WaitForShutdown(ctx)
	return nil
}

// =============================================================================
// 📋 版本和帮助
// =============================================================================

func printVersion(w io.Writer) {
	fmt.Fprintf(w, "agentpatterns %s\n", Version)
	fmt.Fprintf(w, "  Build Time: %s\n", BuildTime)
	fmt.Fprintf(w, "  Git Commit: %s\n", GitCommit)
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, `agentpatterns - multi-agent coordination patterns

Usage:
  agentpatterns <command> [options]

Commands:
  simulate  Run a coordination scenario
  version   Show version information
  help      Show this help message

Options for 'simulate':
  --config <path>        Path to configuration file (YAML)
  --scenario <path>      Path to scenario file (YAML, required)
  --metrics-addr <addr>  Keep serving /metrics on addr after the run

Examples:
  agentpatterns simulate --scenario examples/auction.yaml
  agentpatterns simulate --config config.yaml --scenario s.yaml --metrics-addr :9091
  agentpatterns version`)
}

// =============================================================================
// 🔧 日志初始化
// =============================================================================

func initLogger(cfg config.LogConfig) *zap.Logger {
	// 解析日志级别
	var level zapcore.Level
	switch cfg.Level {
	case "debug":
		level = zapcore.DebugLevel
	case "warn":
		level = zapcore.WarnLevel
	case "error":
		level = zapcore.ErrorLevel
	default:
		level = zapcore.InfoLevel
	}

	// 配置编码器
	var encoderConfig zapcore.EncoderConfig
	encoding := "json"
	if cfg.Format == "console" {
		encoding = "console"
		encoderConfig = zap.NewDevelopmentEncoderConfig()
		encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		encoderConfig = zap.NewProductionEncoderConfig()
		encoderConfig.TimeKey = "timestamp"
		encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}

	outputs := cfg.OutputPaths
	if len(outputs) == 0 {
		outputs = []string{"stderr"}
	}

	zapConfig := zap.Config{
		Level:             zap.NewAtomicLevelAt(level),
		Development:       encoding == "console",
		Encoding:          encoding,
		EncoderConfig:     encoderConfig,
		OutputPaths:       outputs,
		ErrorOutputPaths:  []string{"stderr"},
		DisableCaller:     !cfg.EnableCaller,
		DisableStacktrace: !cfg.EnableStacktrace,
	}

	logger, err := zapConfig.Build()
	if err != nil {
		// 回退到基本 logger
		logger, _ = zap.NewProduction()
	}
	return logger
}
