package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"wordoverlap/internal/config"
	"wordoverlap/internal/history"
	"wordoverlap/internal/logging"
	"wordoverlap/internal/wordcount"
)

var errHistoryDisabled = errors.New("history is disabled (set history.enabled = true)")

type commandContext struct {
	configFlag   *string
	logLevelFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	sessionID string
	logger    *slog.Logger
}

func newCommandContext(configFlag, logLevelFlag *string) *commandContext {
	return &commandContext{
		configFlag:   configFlag,
		logLevelFlag: logLevelFlag,
		sessionID:    uuid.NewString(),
	}
}

func (c *commandContext) configPath() string {
	if c.configFlag == nil {
		return ""
	}
	return strings.TrimSpace(*c.configFlag)
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		cfg, _, _, err := config.Load(c.configPath())
		if err != nil {
			c.configErr = err
			return
		}
		if c.logLevelFlag != nil && strings.TrimSpace(*c.logLevelFlag) != "" {
			cfg.Logging.Level = strings.ToLower(strings.TrimSpace(*c.logLevelFlag))
			if err := cfg.Validate(); err != nil {
				c.configErr = fmt.Errorf("--log-level: %w", err)
				return
			}
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// loggerFor returns the session logger, writing console output to the
// command's stderr so stdout only carries results.
func (c *commandContext) loggerFor(cmd *cobra.Command) *slog.Logger {
	if c.logger != nil {
		return c.logger
	}
	cfg, err := c.ensureConfig()
	if err != nil {
		return logging.NewNop()
	}
	opts := logging.OptionsFromConfig(cfg, c.sessionID)
	opts.Writer = cmd.ErrOrStderr()
	logger, err := logging.New(opts)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "logging disabled: %v\n", err)
		logger = logging.NewNop()
	}
	c.logger = logger
	return logger
}

func (c *commandContext) openHistory(ctx context.Context) (*history.Store, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	if !cfg.History.Enabled {
		return nil, errHistoryDisabled
	}
	store, err := history.Open(ctx, cfg.History.Path)
	if err != nil {
		return nil, fmt.Errorf("open history: %w", err)
	}
	return store, nil
}

func (c *commandContext) withHistory(ctx context.Context, fn func(*history.Store) error) error {
	store, err := c.openHistory(ctx)
	if err != nil {
		return err
	}
	defer store.Close()
	return fn(store)
}

// tokenizerFlags holds the per-command overrides of the [tokenizer] section.
type tokenizerFlags struct {
	policy   string
	foldCase bool
	stem     bool
}

func (f *tokenizerFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.policy, "policy", "", "Tokenizer policy: normalized or literal (default from config)")
	cmd.Flags().BoolVar(&f.foldCase, "fold-case", false, "Case-fold and NFC-normalize words before counting")
	cmd.Flags().BoolVar(&f.stem, "stem", false, "Reduce words to their English stem before counting")
}

// options merges explicitly set flags over the configured tokenizer.
func (f *tokenizerFlags) options(cmd *cobra.Command, cfg *config.Config) (wordcount.Options, error) {
	opts, err := cfg.TokenizerOptions()
	if err != nil {
		return wordcount.Options{}, err
	}
	if cmd.Flags().Changed("policy") {
		policy, err := wordcount.ParsePolicy(f.policy)
		if err != nil {
			return wordcount.Options{}, fmt.Errorf("--policy: %w", err)
		}
		opts.Policy = policy
	}
	if cmd.Flags().Changed("fold-case") {
		opts.FoldCase = f.foldCase
	}
	if cmd.Flags().Changed("stem") {
		opts.Stem = f.stem
	}
	return opts, nil
}

// outputFormat picks the render format: --json wins, then the configured format.
func outputFormat(cfg *config.Config, jsonFlag bool) string {
	if jsonFlag {
		return "json"
	}
	if cfg == nil || cfg.Output.Format == "" {
		return "plain"
	}
	return cfg.Output.Format
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
