package cmd

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the config file",
	Long: `Interactively creates the wachatview config file.
Prompts for the display locale and the default output format,
validates them and writes ~/.config/wachatview/config.json.`,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, _ []string) error {
	dir, err := configDir()
	if err != nil {
		return err
	}
	configPath := filepath.Join(dir, "config.json")
	in := bufio.NewReader(cmd.InOrStdin())
	out := cmd.OutOrStdout()

	cfg := defaultConfig()

	if _, err := os.Stat(configPath); err == nil {
		if existing, err := readExistingConfig(configPath); err == nil {
			cfg = existing
		}

		fmt.Fprintf(out, "Config already exists at %s\n", configPath)
		if !strings.EqualFold(prompt(in, out, "Overwrite? [y/N]: "), "y") {
			return nil
		}
	}

	if v := prompt(in, out, fmt.Sprintf("Locale [%s]: ", cfg.Locale)); v != "" {
		cfg.Locale = v
	}
	if v := prompt(in, out, fmt.Sprintf("Output format (text, markdown, json) [%s]: ", cfg.Format)); v != "" {
		cfg.Format = v
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	if err := os.MkdirAll(dir, 0750); err != nil { //nolint:gosec // path from WACHATVIEW_CONFIG_DIR, XDG_CONFIG_HOME or user home dir
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(configPath, append(data, '\n'), 0600); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	fmt.Fprintf(out, "Config written to %s\n", configPath)
	return nil
}

func prompt(in *bufio.Reader, out io.Writer, question string) string {
	fmt.Fprint(out, question)
	line, _ := in.ReadString('\n') // EOF leaves the default in place
	return strings.TrimSpace(line)
}

func readExistingConfig(path string) (Config, error) {
	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}

	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
