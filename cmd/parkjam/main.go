// parkjam is a sliding-block parking puzzle for the terminal.
//
// Usage:
//
//	parkjam                  - Play (main menu, or --level to jump in)
//	parkjam levels           - List the built-in levels
//	parkjam scores [level]   - Show the best winning runs
//	parkjam serve            - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--db <path>           - Set database path (default: ~/.parkjam/results.db)
//	--config <path>       - Custom rules YAML
//	--difficulty <preset> - easy, normal or hard
//	--log <path>          - Event log file (default: ~/.parkjam/parkjam.log)
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/parkjam/internal/config"
	"github.com/vovakirdan/parkjam/internal/games/parkjam"
	"github.com/vovakirdan/parkjam/internal/platform/tui"
)

var (
	// Global flags
	flagFPS        int
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogPath    string
	flagDebug      bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "parkjam",
	Short: "Parking Jam - get the red car out of the lot",
	Args:  cobra.NoArgs,
	Run:   runPlay,
}

const rootIntro = `Parking Jam is a sliding-block puzzle played in your terminal.

Every car slides along one axis only: horizontal cars move left and
right, vertical cars move up and down. Clear a path and drive the red
target car through the exit on the right edge before time runs out.
`

const rootOutro = `
Mouse: click a button, or hover to focus it. Arrow keys repeat while held.

Scoring:
  Every level starts with a score and a countdown. Bumping into
  another car costs points (at most once per cooldown). Reaching the
  exit adds a bonus for every second left.

Examples:
  parkjam
  parkjam --level 2
  parkjam --difficulty hard
  parkjam --config ./my-rules.yaml
  parkjam scores 1
  parkjam serve --ssh :2222`

func init() {
	rootCmd.Long = rootIntro + "\nControls:\n" + indent(tui.ControlsHelp(true), "  ") + "\n" + rootOutro

	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.parkjam/results.db", "Path to results database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom rules YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "~/.parkjam/parkjam.log", "Path to event log file (empty disables)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log collisions and car selections too")

	// Add subcommands
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}

// indent prefixes every line of s.
func indent(s, prefix string) string {
	return prefix + strings.ReplaceAll(s, "\n", "\n"+prefix)
}

// loadRules loads the rules config, applies the difficulty preset and
// installs the result for every game created afterwards.
func loadRules() (config.RulesConfig, error) {
	cfg, err := config.LoadRules(flagConfig)
	if err != nil {
		return config.RulesConfig{}, err
	}

	preset, err := config.ParseDifficultyPreset(flagDifficulty)
	if err != nil {
		return config.RulesConfig{}, err
	}
	config.ApplyPreset(&cfg, preset)

	rules := parkjam.RulesFromConfig(cfg)
	if err := parkjam.CheckRules(rules); err != nil {
		return config.RulesConfig{}, err
	}
	parkjam.SetRules(rules)
	return cfg, nil
}
