package config

import (
	"time"

	"github.com/memelaunch/launcher/internal/chain"
	"github.com/memelaunch/launcher/internal/imagesource"
	"github.com/memelaunch/launcher/internal/launcher"
	"github.com/memelaunch/launcher/internal/platform"
	"github.com/memelaunch/launcher/internal/publisher"
)

func getDefaultLauncherConfig() *LauncherConfig {
	return &LauncherConfig{
		LogLevel:    "INFO",
		LogFormat:   "tint",
		Prometheus:  getDefaultPrometheusConfig(),
		Tracing:     getDefaultTracingConfig(),
		Chain:       getDefaultChainConfig(),
		Platform:    getDefaultPlatformConfig(),
		Polling:     getDefaultPollingConfig(),
		Launch:      getDefaultLaunchConfig(),
		Contracts:   getDefaultContractsConfig(),
		ObjectStore: &imagesource.ObjectStoreConfig{},
		Publisher:   getDefaultPublisherConfig(),
	}
}

func getDefaultPrometheusConfig() *PrometheusConfig {
	return &PrometheusConfig{
		Enabled:  false,
		Endpoint: "/metrics",
		Addr:     ":2112",
	}
}

func getDefaultTracingConfig() *TracingConfig {
	return &TracingConfig{
		Enabled: false,
		Sample:  100,
	}
}

func getDefaultChainConfig() *ChainConfig {
	return &ChainConfig{
		ChainID:          0, // resolved from the node
		GasPriceCacheTTL: 2 * time.Second,
	}
}

func getDefaultPlatformConfig() *PlatformConfig {
	return &PlatformConfig{
		BaseURL:         platform.BaseURLDefault,
		ValidateTimeout: 10 * time.Second,
		NetworkCode:     platform.NetworkCodeDefault,
		Timeout:         platform.TimeoutDefault,
	}
}

func getDefaultPollingConfig() *PollingConfig {
	return &PollingConfig{
		Interval: chain.PollIntervalDefault,
		Jitter:   chain.PollJitterDefault,
		Timeout:  chain.PollTimeoutDefault,
	}
}

func getDefaultLaunchConfig() *LaunchConfig {
	return &LaunchConfig{
		Mode:          "parallel",
		Concurrency:   0,
		TemplatesPath: "./data/templates.json",
	}
}

func getDefaultContractsConfig() *ContractsConfig {
	return &ContractsConfig{
		TokenManager: launcher.TokenManagerDefault,
		QuoteToken:   launcher.QuoteTokenDefault,
		QuoteSymbol:  launcher.QuoteSymbolDefault,
		CreateFee:    launcher.CreateFeeDefault,
		TokenURLBase: launcher.TokenURLBaseDefault,
	}
}

func getDefaultPublisherConfig() *PublisherConfig {
	return &PublisherConfig{
		Subject:       publisher.SubjectDefault,
		MaxReconnects: 5,
		ReconnectWait: 2 * time.Second,
	}
}
