package services

import (
	"strings"

	"github.com/srclink/srclink/internal/core/domain"
)

// The index document layout is a stable external contract consumed by an
// unmodifiable tool. Section ordering, separators and placeholder tokens
// below must not change.
const (
	sectionIni       = "SRCSRV: ini ------------------------------------------------"
	sectionVariables = "SRCSRV: variables ------------------------------------------"
	sectionSources   = "SRCSRV: source files ---------------------------------------"
	sectionEnd       = "SRCSRV: end ------------------------------------------------"

	// revisionToken is the revision placeholder inside a raw URL template.
	// It is substituted exactly once per document.
	revisionToken = "{0}"

	// fileToken is the per-file placeholder. It is resolved by the external
	// indexer at debug time, never by the core.
	fileToken = "%var2%"
)

// RawURLTemplate builds the raw URL template for a provider's content base:
// <base>/{0}/%var2%, where {0} is the revision placeholder and %var2% the
// per-file placeholder.
func RawURLTemplate(rawBase string) string {
	return strings.TrimRight(rawBase, "/") + "/" + revisionToken + "/" + fileToken
}

// IndexWriter renders a path mapping and revision stamp into the index
// document format. Identical inputs always produce byte-identical output.
type IndexWriter struct{}

// NewIndexWriter creates an index writer.
func NewIndexWriter() *IndexWriter {
	return &IndexWriter{}
}

// Write produces the index document bytes for one symbol file.
//
// Layout: an ini header declaring the format, a variables block holding the
// raw URL template with the revision substituted, and one data line per
// mapping entry in insertion order:
//
//	localPath*revision*repositoryRelativePath
func (w *IndexWriter) Write(mapping *domain.PathMapping, stamp domain.RevisionStamp, rawURLTemplate string) []byte {
	rawURL := strings.Replace(rawURLTemplate, revisionToken, string(stamp), 1)

	var b strings.Builder
	b.WriteString(sectionIni + "\r\n")
	b.WriteString("VERSION=2\r\n")
	b.WriteString("INDEXVERSION=2\r\n")
	b.WriteString("VERCTRL=http\r\n")
	b.WriteString(sectionVariables + "\r\n")
	b.WriteString("RAWURL=" + rawURL + "\r\n")
	b.WriteString("SRCSRVVERCTRL=http\r\n")
	b.WriteString("SRCSRVTRG=%RAWURL%\r\n")
	b.WriteString(sectionSources + "\r\n")
	mapping.Walk(func(localPath, repositoryPath string) {
		b.WriteString(localPath + "*" + string(stamp) + "*" + repositoryPath + "\r\n")
	})
	b.WriteString(sectionEnd + "\r\n")

	return []byte(b.String())
}
