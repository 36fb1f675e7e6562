package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
	"go.opentelemetry.io/otel/attribute"

	"github.com/memelaunch/launcher/internal/launcher"
	"github.com/memelaunch/launcher/internal/scheduler"
)

const envPrefix = "LAUNCHER"

var (
	ErrConfigFailedToSetDefaults = errors.New("error occurred while setting defaults")
	ErrConfigPath                = errors.New("config path error")
	ErrConfigInvalid             = errors.New("invalid config")
)

// legacyEnv maps the environment names used by earlier releases to config keys.
// The prefixed LAUNCHER_ variable wins when both are set.
var legacyEnv = map[string]string{
	"chain.rpcUrl":          "BSC_RPC_URL",
	"chain.secondaryRpcUrl": "SECONDARY_RPC_URL",
	"launch.mode":           "LAUNCH_MODE",
	"launch.concurrency":    "CONCURRENCY",
	"launch.templatesPath":  "TEMPLATES_PATH",
}

// legacy millisecond durations
var legacyEnvMillis = map[string]string{
	"polling.interval": "POLL_INTERVAL_MS",
	"polling.jitter":   "POLL_JITTER_MS",
}

func Load(configFileDirs ...string) (*LauncherConfig, error) {
	launcherConfig := getDefaultLauncherConfig()
	v := viper.New()

	err := setDefaults(v, launcherConfig)
	if err != nil {
		return nil, err
	}

	err = overrideWithFiles(v, configFileDirs...)
	if err != nil {
		return nil, err
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for key, legacy := range legacyEnv {
		err = v.BindEnv(key, envName(key), legacy)
		if err != nil {
			return nil, fmt.Errorf("failed to bind env %s: %w", legacy, err)
		}
	}

	err = v.Unmarshal(launcherConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	err = applyLegacyMillis(launcherConfig)
	if err != nil {
		return nil, err
	}

	if launcherConfig.Tracing != nil {
		tracingAttributes := make([]attribute.KeyValue, 0, len(launcherConfig.Tracing.Attributes))
		for key, value := range launcherConfig.Tracing.Attributes {
			tracingAttributes = append(tracingAttributes, attribute.String(key, value))
		}

		if len(tracingAttributes) > 0 {
			launcherConfig.Tracing.KeyValueAttributes = tracingAttributes
		}
	}

	return launcherConfig, nil
}

func setDefaults(v *viper.Viper, defaultConfig *LauncherConfig) error {
	defaultsMap := make(map[string]interface{})

	if err := mapstructure.Decode(defaultConfig, &defaultsMap); err != nil {
		err = errors.Join(ErrConfigFailedToSetDefaults, err)
		return err
	}

	for key, value := range defaultsMap {
		v.SetDefault(key, value)
	}

	return nil
}

func overrideWithFiles(v *viper.Viper, configFileDirs ...string) error {
	if len(configFileDirs) == 0 || configFileDirs[0] == "" {
		return nil
	}

	for _, path := range configFileDirs {
		stat, err := os.Stat(path)
		if err != nil {
			if os.IsNotExist(err) {
				return errors.Join(ErrConfigPath, fmt.Errorf("path: %s does not exist", path))
			}
			return err
		}
		if !stat.IsDir() {
			return errors.Join(ErrConfigPath, fmt.Errorf("path: %s should be a directory", path))
		}

		v.AddConfigPath(path)
	}

	err := v.ReadInConfig()
	if err != nil {
		return err
	}

	return nil
}

func envName(key string) string {
	return envPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}

func applyLegacyMillis(cfg *LauncherConfig) error {
	if cfg.Polling == nil {
		cfg.Polling = getDefaultPollingConfig()
	}

	targets := map[string]*time.Duration{
		"polling.interval": &cfg.Polling.Interval,
		"polling.jitter":   &cfg.Polling.Jitter,
	}

	for key, legacy := range legacyEnvMillis {
		if _, ok := os.LookupEnv(envName(key)); ok {
			continue
		}

		raw, ok := os.LookupEnv(legacy)
		if !ok || strings.TrimSpace(raw) == "" {
			continue
		}

		ms, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
		if err != nil {
			return errors.Join(ErrConfigInvalid, fmt.Errorf("%s: %w", legacy, err))
		}

		*targets[key] = time.Duration(ms) * time.Millisecond
	}

	return nil
}

// Validate checks the values the launcher cannot run without.
func (c *LauncherConfig) Validate() error {
	var errs []error

	if c.Chain == nil || strings.TrimSpace(c.Chain.RpcURL) == "" {
		errs = append(errs, errors.New("chain.rpcUrl is required"))
	}

	if c.Launch == nil {
		errs = append(errs, errors.New("launch section is required"))
	} else {
		if _, err := scheduler.ParseMode(c.Launch.Mode); err != nil {
			errs = append(errs, fmt.Errorf("launch.mode: %w", err))
		}
		if c.Launch.Concurrency < 0 {
			errs = append(errs, fmt.Errorf("launch.concurrency must not be negative: %d", c.Launch.Concurrency))
		}
	}

	if c.Polling == nil {
		errs = append(errs, errors.New("polling section is required"))
	} else {
		if c.Polling.Interval <= 0 {
			errs = append(errs, fmt.Errorf("polling.interval must be positive: %s", c.Polling.Interval))
		}
		if c.Polling.Timeout <= 0 {
			errs = append(errs, fmt.Errorf("polling.timeout must be positive: %s", c.Polling.Timeout))
		}
		if c.Polling.Jitter < 0 {
			errs = append(errs, fmt.Errorf("polling.jitter must not be negative: %s", c.Polling.Jitter))
		}
	}

	if _, err := c.LaunchParams(); err != nil {
		errs = append(errs, err)
	}

	if c.Tracing.IsEnabled() && c.Tracing.DialAddr == "" {
		errs = append(errs, errors.New("tracing.dialAddr is required when tracing is enabled"))
	}

	if c.ObjectStore != nil && c.ObjectStore.Enabled() {
		if err := c.ObjectStore.Validate(); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return errors.Join(append([]error{ErrConfigInvalid}, errs...)...)
	}

	return nil
}

// LaunchParams builds the platform terms from the contracts section.
func (c *LauncherConfig) LaunchParams() (launcher.Params, error) {
	if c.Contracts == nil {
		return launcher.DefaultParams(), nil
	}

	return launcher.NewParams(
		launcher.WithTokenManager(c.Contracts.TokenManager),
		launcher.WithQuoteToken(c.Contracts.QuoteToken, c.Contracts.QuoteSymbol),
		launcher.WithCreateFee(c.Contracts.CreateFee),
		launcher.WithTokenURLBase(c.Contracts.TokenURLBase),
	)
}
