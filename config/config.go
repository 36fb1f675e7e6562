package config

import (
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/memelaunch/launcher/internal/imagesource"
)

type LauncherConfig struct {
	LogLevel    string                         `mapstructure:"logLevel"`
	LogFormat   string                         `mapstructure:"logFormat"`
	Prometheus  *PrometheusConfig              `mapstructure:"prometheus"`
	Tracing     *TracingConfig                 `mapstructure:"tracing"`
	Chain       *ChainConfig                   `mapstructure:"chain"`
	Platform    *PlatformConfig                `mapstructure:"platform"`
	Polling     *PollingConfig                 `mapstructure:"polling"`
	Launch      *LaunchConfig                  `mapstructure:"launch"`
	Contracts   *ContractsConfig               `mapstructure:"contracts"`
	ObjectStore *imagesource.ObjectStoreConfig `mapstructure:"objectStore"`
	Publisher   *PublisherConfig               `mapstructure:"publisher"`
}

type PrometheusConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Endpoint string `mapstructure:"endpoint"`
	Addr     string `mapstructure:"addr"`
}

func (p *PrometheusConfig) IsEnabled() bool {
	return p != nil && p.Enabled && p.Addr != "" && p.Endpoint != ""
}

type TracingConfig struct {
	Enabled            bool                 `mapstructure:"enabled"`
	DialAddr           string               `mapstructure:"dialAddr"`
	Sample             int                  `mapstructure:"sample"`
	Attributes         map[string]string    `mapstructure:"attributes"`
	KeyValueAttributes []attribute.KeyValue `mapstructure:"-"`
}

func (t *TracingConfig) IsEnabled() bool {
	return t != nil && t.Enabled
}

type ChainConfig struct {
	RpcURL           string        `mapstructure:"rpcUrl"`
	SecondaryRpcURL  string        `mapstructure:"secondaryRpcUrl"`
	ChainID          int64         `mapstructure:"chainId"`
	GasPriceCacheTTL time.Duration `mapstructure:"gasPriceCacheTTL"`
}

type PlatformConfig struct {
	BaseURL         string        `mapstructure:"baseUrl"`
	ValidateURL     string        `mapstructure:"validateUrl"`
	ValidateTimeout time.Duration `mapstructure:"validateTimeout"`
	NetworkCode     string        `mapstructure:"networkCode"`
	Timeout         time.Duration `mapstructure:"timeout"`
}

type PollingConfig struct {
	Interval time.Duration `mapstructure:"interval"`
	Jitter   time.Duration `mapstructure:"jitter"`
	Timeout  time.Duration `mapstructure:"timeout"`
}

type LaunchConfig struct {
	Mode          string `mapstructure:"mode"`
	Concurrency   int    `mapstructure:"concurrency"`
	TemplatesPath string `mapstructure:"templatesPath"`
	// relative image paths are resolved against ImageRoot, or the working directory when empty
	ImageRoot string `mapstructure:"imageRoot"`
}

type ContractsConfig struct {
	TokenManager string `mapstructure:"tokenManager"`
	QuoteToken   string `mapstructure:"quoteToken"`
	QuoteSymbol  string `mapstructure:"quoteSymbol"`
	CreateFee    string `mapstructure:"createFee"`
	TokenURLBase string `mapstructure:"tokenUrlBase"`
}

type PublisherConfig struct {
	NatsURL       string        `mapstructure:"natsUrl"`
	Subject       string        `mapstructure:"subject"`
	MaxReconnects int           `mapstructure:"maxReconnects"`
	ReconnectWait time.Duration `mapstructure:"reconnectWait"`
}
