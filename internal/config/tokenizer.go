package config

import (
	"fmt"

	"wordoverlap/internal/wordcount"
)

// TokenizerOptions converts the [tokenizer] section into pipeline options.
func (c *Config) TokenizerOptions() (wordcount.Options, error) {
	policy, err := wordcount.ParsePolicy(c.Tokenizer.Policy)
	if err != nil {
		return wordcount.Options{}, fmt.Errorf("tokenizer.policy: %w", err)
	}
	return wordcount.Options{
		Policy:   policy,
		FoldCase: c.Tokenizer.FoldCase,
		Stem:     c.Tokenizer.Stem,
	}, nil
}
