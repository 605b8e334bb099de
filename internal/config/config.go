package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config carries the run settings. Environment variables provide the
// defaults; command-line flags override them.
type Config struct {
	// TemplateDir is the directory scanned for packages.
	TemplateDir string
	// Marker is the segment inserted into output filenames, e.g. "fixed"
	// turns template.docx into template.fixed.docx.
	Marker string
	// Strict escalates member-level skips and document failures to a
	// non-zero exit.
	Strict bool
}

func Load() Config {
	return Config{
		TemplateDir: envOr("DOCXNORM_DIR", "template"),
		Marker:      envOr("DOCXNORM_MARKER", "fixed"),
		Strict:      envBool("DOCXNORM_STRICT", false),
	}
}

func (c Config) Validate() error {
	if c.Marker == "" {
		return fmt.Errorf("marker must not be empty")
	}
	if strings.ContainsAny(c.Marker, `/\`) {
		return fmt.Errorf("marker must not contain path separators")
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}
