package templates

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"gopkg.in/yaml.v3"

	"github.com/memelaunch/launcher/internal/launcher"
)

const (
	launchDelayMsDefault = int64(60_000)

	reasonMissing = "missing"
)

var (
	ErrFailedToReadTemplates  = errors.New("failed to read templates")
	ErrFailedToParseTemplates = errors.New("failed to parse templates")
	ErrNotAList               = errors.New("templates document must be a list")
)

// FieldError names the offending field of one template.
type FieldError struct {
	Index  int
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("templates[%d].%s: %s", e.Index, e.Field, e.Reason)
}

func (e *FieldError) Unwrap() error {
	return launcher.ErrConfigInvalid
}

// Scalar accepts both quoted and unquoted YAML/JSON scalars, so that 0.5 and "0.5" read the same.
type Scalar string

func (s *Scalar) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: expected a scalar", node.Line)
	}

	if node.Tag == "!!null" {
		*s = ""
		return nil
	}

	*s = Scalar(node.Value)

	return nil
}

type Wallet struct {
	AccountAddress string `yaml:"accountAddress"`
	PrivateKey     string `yaml:"privateKey"`
}

// Template is one entry of the templates file.
type Template struct {
	Wallet              *Wallet `yaml:"wallet"`
	Name                string  `yaml:"name"`
	Symbol              string  `yaml:"symbol"`
	Desc                string  `yaml:"desc"`
	ImagePath           string  `yaml:"imagePath"`
	Label               string  `yaml:"label"`
	PresaleBNB          Scalar  `yaml:"presaleBNB"`
	OnlyMPC             bool    `yaml:"onlyMPC"`
	WebURL              string  `yaml:"webUrl"`
	TwitterURL          string  `yaml:"twitterUrl"`
	TelegramURL         string  `yaml:"telegramUrl"`
	LaunchDelayMs       Scalar  `yaml:"launchDelayMs"`
	RPCURL              string  `yaml:"rpcUrl"`
	ApproveAfterCreate  *bool   `yaml:"approveAfterCreate"`
	ApproveSpender      string  `yaml:"approveSpender"`
	ApproveAmountTokens Scalar  `yaml:"approveAmountTokens"`
}

type Loader struct {
	logger *slog.Logger
}

func NewLoader(logger *slog.Logger) *Loader {
	return &Loader{logger: logger.With(slog.String("module", "templates"))}
}

// Load reads a JSON or YAML list of templates. Only an unreadable file or a document that is not
// a list fails the whole load; an invalid template becomes a job carrying its ConfigErr.
func (l *Loader) Load(path string) ([]launcher.Job, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadTemplates, err)
	}

	data, err := os.ReadFile(abs)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadTemplates, err)
	}

	jobs, rpcOverrides, err := Parse(data)
	if err != nil {
		return nil, err
	}

	l.logger.Info(fmt.Sprintf("Loaded %d template(s) from %s", len(jobs), abs))

	for _, index := range rpcOverrides {
		l.logger.Warn("template rpcUrl is ignored, all launches use the configured rpc endpoint", slog.Int("template", index))
	}

	return jobs, nil
}

// Parse converts a templates document into jobs. It also returns the indexes of templates
// that set their own rpcUrl.
func Parse(data []byte) ([]launcher.Job, []int, error) {
	var doc yaml.Node
	err := yaml.Unmarshal(data, &doc)
	if err != nil {
		return nil, nil, errors.Join(ErrFailedToParseTemplates, err)
	}

	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 || doc.Content[0].Kind != yaml.SequenceNode {
		return nil, nil, ErrNotAList
	}

	items := doc.Content[0].Content
	jobs := make([]launcher.Job, len(items))
	var rpcOverrides []int

	for i, item := range items {
		var tpl Template
		err = item.Decode(&tpl)
		if err != nil {
			jobs[i] = launcher.Job{Index: i, ConfigErr: errors.Join(launcher.ErrConfigInvalid, fmt.Errorf("templates[%d]: %w", i, err))}
			continue
		}

		if strings.TrimSpace(tpl.RPCURL) != "" {
			rpcOverrides = append(rpcOverrides, i)
		}

		jobs[i] = tpl.job(i)
	}

	return jobs, rpcOverrides, nil
}

func (t Template) job(index int) launcher.Job {
	job := launcher.Job{Index: index}

	if t.Wallet != nil {
		job.Account = launcher.Account{
			Address:    strings.TrimSpace(t.Wallet.AccountAddress),
			PrivateKey: strings.TrimSpace(t.Wallet.PrivateKey),
		}
	}

	launchDelayMs, delayErr := parseMillis(string(t.LaunchDelayMs), launchDelayMsDefault)

	job.Request = launcher.LaunchRequest{
		Name:        strings.TrimSpace(t.Name),
		Symbol:      strings.TrimSpace(t.Symbol),
		Description: strings.TrimSpace(t.Desc),
		ImageRef:    strings.TrimSpace(t.ImagePath),
		Label:       strings.TrimSpace(t.Label),
		PresaleBNB:  strings.TrimSpace(string(t.PresaleBNB)),
		OnlyMPC:     t.OnlyMPC,
		WebURL:      t.WebURL,
		TwitterURL:  t.TwitterURL,
		TelegramURL: t.TelegramURL,
		LaunchDelay: time.Duration(launchDelayMs) * time.Millisecond,
		Approve: launcher.ApprovePolicy{
			Disabled:     t.ApproveAfterCreate != nil && !*t.ApproveAfterCreate,
			AmountTokens: strings.TrimSpace(string(t.ApproveAmountTokens)),
		},
	}

	var errs []error
	required := []struct {
		field string
		value string
	}{
		{"wallet.accountAddress", job.Account.Address},
		{"wallet.privateKey", job.Account.PrivateKey},
		{"name", job.Request.Name},
		{"symbol", job.Request.Symbol},
		{"desc", job.Request.Description},
		{"imagePath", job.Request.ImageRef},
		{"label", job.Request.Label},
	}
	for _, r := range required {
		if r.value == "" {
			errs = append(errs, &FieldError{Index: index, Field: r.field, Reason: reasonMissing})
		}
	}

	switch {
	case delayErr != nil:
		errs = append(errs, &FieldError{Index: index, Field: "launchDelayMs", Reason: "not a number"})
	case launchDelayMs < 0:
		errs = append(errs, &FieldError{Index: index, Field: "launchDelayMs", Reason: "must not be negative"})
	}

	if spender := strings.TrimSpace(t.ApproveSpender); spender != "" {
		if !common.IsHexAddress(spender) {
			errs = append(errs, &FieldError{Index: index, Field: "approveSpender", Reason: "not an address"})
		} else {
			job.Request.Approve.Spender = common.HexToAddress(spender)
		}
	}

	job.ConfigErr = errors.Join(errs...)

	return job
}

// parseMillis reads a millisecond count given as a number or a numeric string.
// Fractions are truncated and an empty value yields the fallback.
func parseMillis(raw string, fallback int64) (int64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fallback, nil
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, err
	}

	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, fmt.Errorf("%q is not finite", raw)
	}

	return int64(value), nil
}
