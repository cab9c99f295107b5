package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	configfile "github.com/srclink/srclink/internal/adapters/driven/config/file"
	"github.com/srclink/srclink/internal/adapters/driven/discovery/msbuild"
	"github.com/srclink/srclink/internal/adapters/driven/indexer/pdbstr"
	"github.com/srclink/srclink/internal/adapters/driven/symbols/srctool"
	"github.com/srclink/srclink/internal/core/domain"
	"github.com/srclink/srclink/internal/core/ports/driven"
	"github.com/srclink/srclink/internal/core/ports/driving"
	"github.com/srclink/srclink/internal/core/services"
)

var (
	flagRoot          string
	flagSolution      string
	flagConfiguration string
	flagPlatform      string
	flagSymbolsDir    string
	flagIgnore        []string
	flagHost          string
	flagOwner         string
	flagRepo          string
	flagRef           string
	flagRevision      string
	flagRawBase       string
	flagPdbstr        string
	flagSrctool       string
)

var linkCmd = &cobra.Command{
	Use:   "link",
	Short: "Link every project's symbol file to a repository revision",
	Long: `Resolves the repository revision once, then for each non-ignored
project: verifies recorded source checksums, builds the path mapping,
writes the index document beside the symbol file and invokes the external
indexer. One project's failure never aborts the others.`,
	RunE: runLink,
}

func init() {
	linkCmd.Flags().StringVar(&flagRoot, "root", ".", "solution root directory")
	linkCmd.Flags().StringVar(&flagSolution, "solution", "", "explicit solution file (default: discover under root)")
	linkCmd.Flags().StringVarP(&flagConfiguration, "configuration", "c", "", "build configuration (default Release)")
	linkCmd.Flags().StringVarP(&flagPlatform, "platform", "p", "", "build platform (default AnyCPU)")
	linkCmd.Flags().StringVar(&flagSymbolsDir, "symbols", "", "symbol-file output directory override")
	linkCmd.Flags().StringSliceVar(&flagIgnore, "ignore", nil, "project-name patterns to skip")
	linkCmd.Flags().StringVar(&flagHost, "host", "", "target repository host (default github.com)")
	linkCmd.Flags().StringVar(&flagOwner, "owner", "", "repository owner (github)")
	linkCmd.Flags().StringVar(&flagRepo, "repo", "", "repository name (github)")
	linkCmd.Flags().StringVar(&flagRef, "ref", "", "branch, tag or commit to resolve (github; default: default branch)")
	linkCmd.Flags().StringVar(&flagRevision, "revision", "", "explicit revision stamp (custom provider)")
	linkCmd.Flags().StringVar(&flagRawBase, "raw-base", "", "raw content base URL (custom provider)")
	linkCmd.Flags().StringVar(&flagPdbstr, "pdbstr", "", "path to the pdbstr executable (default: PATH lookup)")
	linkCmd.Flags().StringVar(&flagSrctool, "srctool", "", "path to the source-table dump tool")
	rootCmd.AddCommand(linkCmd)
}

//nolint:gocyclo // Wiring function with necessary sequential steps
func runLink(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	root, err := filepath.Abs(flagRoot)
	if err != nil {
		return fmt.Errorf("resolve root: %w", err)
	}

	cfg, err := loadConfig(root)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	configuration := setting(flagConfiguration, cfg, "build.configuration", "Release")
	platform := setting(flagPlatform, cfg, "build.platform", "AnyCPU")
	host := setting(flagHost, cfg, "provider.host", "github.com")
	ignore := append(flagIgnore, cfg.GetStringSlice("link.ignore")...)

	// 1. Enumerate solutions. An explicitly named file that does not exist
	// is fatal before any project is processed.
	discovery := msbuild.NewDiscovery()
	solutions, err := resolveSolutions(discovery, root)
	if err != nil {
		return err
	}

	// 2. Select the provider: a pure registry lookup, exactly once.
	registry := buildRegistry(cfg)
	provider, err := registry.Select(host)
	if err != nil {
		return err
	}

	// 3. Resolve the revision stamp, once, shared by every project.
	log.Info("resolving revision via %s provider", provider.Name())
	stamp, err := provider.ResolveRevision(ctx, root)
	if err != nil {
		return fmt.Errorf("resolve revision: %w", err)
	}
	log.Info("revision %s", stamp)

	// 4. Locate and stage the external indexer. The staging dir is removed
	// on every exit path.
	located, err := pdbstr.Locate(setting(flagPdbstr, cfg, "tools.pdbstr", ""))
	if err != nil {
		return err
	}
	staged, cleanup, err := pdbstr.Stage(located)
	if err != nil {
		return err
	}
	defer cleanup()

	reader := srctool.NewReader(setting(flagSrctool, cfg, "tools.srctool", "srctool"))
	engine := services.NewLinkEngine(reader, pdbstr.NewIndexer(staged), log)

	// 5. Link every solution, aggregating one run-level result.
	aggregate := &domain.RunResult{}
	for _, solution := range solutions {
		log.Info("solution %s", solution)
		projects, err := discovery.Projects(solution, configuration, platform)
		if err != nil {
			return fmt.Errorf("discover projects: %w", err)
		}

		done := log.Indent()
		result := engine.Run(ctx, projects, stamp, provider, driving.RunOptions{
			SolutionRoot:    root,
			RepoRoot:        root,
			SymbolOutputDir: flagSymbolsDir,
			IgnorePatterns:  ignore,
		})
		done()

		aggregate.Succeeded = append(aggregate.Succeeded, result.Succeeded...)
		aggregate.Failed = append(aggregate.Failed, result.Failed...)
		aggregate.Skipped = append(aggregate.Skipped, result.Skipped...)
	}

	services.NewReporter(log).Report(aggregate)
	printSummary(cmd.OutOrStdout(), aggregate)

	if !aggregate.OK() {
		return ErrLinkFailed
	}
	return nil
}

// loadConfig opens the config store at --config or <root>/srclink.toml.
func loadConfig(root string) (driven.ConfigStore, error) {
	path := flagConfig
	if path == "" {
		path = filepath.Join(root, configfile.DefaultName)
	}
	return configfile.NewConfigStore(path)
}

// resolveSolutions returns the explicit solution file, or every solution
// discovered under root.
func resolveSolutions(discovery driven.ProjectDiscovery, root string) ([]string, error) {
	if flagSolution != "" {
		path, err := filepath.Abs(flagSolution)
		if err != nil {
			return nil, fmt.Errorf("resolve solution path: %w", err)
		}
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("%w: %s", domain.ErrSolutionNotFound, path)
		}
		return []string{path}, nil
	}

	solutions, err := discovery.DiscoverSolutions(root)
	if err != nil {
		return nil, err
	}
	if len(solutions) == 0 {
		return nil, fmt.Errorf("%w: no solution files under %s", domain.ErrSolutionNotFound, root)
	}
	return solutions, nil
}

// setting resolves a string setting: flag wins, then config, then default.
func setting(flagValue string, cfg driven.ConfigStore, key, fallback string) string {
	if flagValue != "" {
		return flagValue
	}
	if v := cfg.GetString(key); v != "" {
		return v
	}
	return fallback
}
