package msbuild

import (
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/srclink/srclink/internal/core/domain"
)

// projectFile mirrors the subset of the MSBuild project format we read.
type projectFile struct {
	PropertyGroups []propertyGroup `xml:"PropertyGroup"`
	ItemGroups     []itemGroup     `xml:"ItemGroup"`
}

type propertyGroup struct {
	Condition    string `xml:"Condition,attr"`
	OutputPath   string `xml:"OutputPath"`
	AssemblyName string `xml:"AssemblyName"`
}

type itemGroup struct {
	Compile []compileItem `xml:"Compile"`
}

type compileItem struct {
	Include string `xml:"Include,attr"`
}

// conditionSpace collapses whitespace when comparing Condition attributes.
var conditionSpace = regexp.MustCompile(`\s+`)

// loadProject parses one project file into a domain.Project for the
// selected configuration and platform.
func loadProject(path, name, relativePath, configuration, platform string) (*domain.Project, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read project file: %w", err)
	}

	var parsed projectFile
	if err := xml.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("parse project file: %w", err)
	}

	projectDir := filepath.Dir(path)

	assemblyName := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	outputPath := ""
	for _, group := range parsed.PropertyGroups {
		if group.AssemblyName != "" {
			assemblyName = group.AssemblyName
		}
		if group.OutputPath == "" {
			continue
		}
		// Conditioned groups win over unconditional ones; the first group
		// matching the selected configuration|platform is taken.
		if group.Condition == "" && outputPath == "" {
			outputPath = group.OutputPath
		}
		if matchesCondition(group.Condition, configuration, platform) {
			outputPath = group.OutputPath
		}
	}
	if outputPath == "" {
		outputPath = filepath.Join("bin", configuration)
	}

	var sources []string
	for _, group := range parsed.ItemGroups {
		for _, item := range group.Compile {
			if item.Include == "" {
				continue
			}
			sources = append(sources, filepath.Join(projectDir, fromWindows(item.Include)))
		}
	}

	symbolPath := filepath.Join(projectDir, fromWindows(outputPath), assemblyName+".pdb")

	return &domain.Project{
		Name:           name,
		RelativePath:   relativePath,
		SourceFiles:    sources,
		SymbolFilePath: symbolPath,
		Configuration:  configuration,
		Platform:       platform,
	}, nil
}

// matchesCondition reports whether an MSBuild Condition attribute selects
// the given configuration|platform pair. Only the common
// '$(Configuration)|$(Platform)' == 'Release|AnyCPU' shape is understood.
func matchesCondition(condition, configuration, platform string) bool {
	if condition == "" {
		return false
	}
	c := conditionSpace.ReplaceAllString(condition, "")
	want := fmt.Sprintf("'$(Configuration)|$(Platform)'=='%s|%s'", configuration, platform)
	return strings.EqualFold(c, want)
}
