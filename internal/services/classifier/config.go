package classifier

import "fmt"

type Config struct {
	// ModelDir is the directory holding the pretrained artifact:
	// config.json (label map) and weights.json (vocabulary weights).
	ModelDir string

	// TopK limits how many ranked predictions a classification returns.
	TopK int
}

func (c *Config) Validate() error {
	if c.ModelDir == "" {
		return fmt.Errorf("model_dir is required")
	}
	if c.TopK <= 0 {
		return fmt.Errorf("top_k must be positive")
	}
	if c.TopK > 10 {
		return fmt.Errorf("top_k cannot exceed 10")
	}
	return nil
}

func DefaultConfig() *Config {
	return &Config{
		ModelDir: "model",
		TopK:     3,
	}
}
