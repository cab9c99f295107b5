// Package msbuild discovers build projects from Visual Studio solution and
// project files. It reads just enough of the two formats to enumerate each
// project's compiled sources and symbol-file output path; it is not an
// MSBuild evaluator.
package msbuild
