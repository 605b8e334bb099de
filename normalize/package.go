package normalize

import (
	"archive/zip"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"
)

const (
	// PackageExt is the file extension of the archives this tool processes.
	PackageExt = ".docx"
	// XMLSuffix marks the archive members eligible for rewriting.
	XMLSuffix = ".xml"
)

// Normalizer rewrites section tags inside DOCX-style zip packages.
// The zero value is not usable; construct it with New.
type Normalizer struct {
	marker string
	log    *slog.Logger
}

func New(marker string, log *slog.Logger) *Normalizer {
	if log == nil {
		log = slog.Default()
	}
	return &Normalizer{marker: marker, log: log}
}

// Result describes one processed package.
type Result struct {
	OutputPath   string
	Replacements int
	// Skipped lists the XML members that could not be rewritten and were
	// copied into the output as extracted.
	Skipped []string
}

// OutputPath derives the destination path by inserting the marker segment
// before the file extension: template.docx becomes template.fixed.docx.
func (n *Normalizer) OutputPath(inputPath string) string {
	ext := filepath.Ext(inputPath)
	return strings.TrimSuffix(inputPath, ext) + "." + n.marker + ext
}

// ProcessPackage extracts the package at inputPath into a scratch directory,
// rewrites every XML member, and repacks all members into a new archive at
// the derived output path. The original file is never modified. The scratch
// directory is removed on every exit path.
func (n *Normalizer) ProcessPackage(inputPath string) (*Result, error) {
	outputPath := n.OutputPath(inputPath)
	if outputPath == inputPath {
		return nil, fmt.Errorf("output path equals input path %s, refusing to overwrite the original", inputPath)
	}

	scratch, err := os.MkdirTemp("", "docxnorm-")
	if err != nil {
		return nil, fmt.Errorf("unable to create scratch directory: %s", err)
	}
	defer os.RemoveAll(scratch)

	if err := extractPackage(inputPath, scratch); err != nil {
		return nil, err
	}

	result := &Result{OutputPath: outputPath}
	err = filepath.WalkDir(scratch, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), XMLSuffix) {
			return nil
		}
		count, err := rewriteMember(path)
		if err != nil {
			rel, relErr := filepath.Rel(scratch, path)
			if relErr != nil {
				rel = d.Name()
			}
			n.log.Warn("could not rewrite member, keeping it as extracted",
				"package", filepath.Base(inputPath), "member", filepath.ToSlash(rel), "error", err)
			result.Skipped = append(result.Skipped, filepath.ToSlash(rel))
			return nil
		}
		result.Replacements += count
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("unable to rewrite extracted members: %s", err)
	}

	if err := writePackage(scratch, outputPath); err != nil {
		return nil, err
	}
	return result, nil
}

// rewriteMember runs the tag rewriter over one extracted file and writes the
// result back only when something changed.
func rewriteMember(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	if !utf8.Valid(data) {
		return 0, fmt.Errorf("member is not valid UTF-8")
	}

	rewritten, count := Rewrite(string(data))
	if count == 0 {
		return 0, nil
	}
	if err := os.WriteFile(path, []byte(rewritten), 0644); err != nil {
		return 0, err
	}
	return count, nil
}

func extractPackage(inputPath, scratch string) error {
	reader, err := zip.OpenReader(inputPath)
	if err != nil {
		return fmt.Errorf("unable to open package %s: %s", inputPath, err)
	}
	defer reader.Close()

	for _, member := range reader.File {
		target, err := scratchPath(scratch, member.Name)
		if err != nil {
			return err
		}
		if member.FileInfo().IsDir() {
			if err := os.MkdirAll(target, 0755); err != nil {
				return fmt.Errorf("unable to extract %s: %s", member.Name, err)
			}
			continue
		}
		if err := extractMember(member, target); err != nil {
			return fmt.Errorf("unable to extract %s: %s", member.Name, err)
		}
	}
	return nil
}

// scratchPath resolves a member name inside the scratch directory, rejecting
// names that would escape it.
func scratchPath(scratch, name string) (string, error) {
	target := filepath.Join(scratch, filepath.FromSlash(name))
	if target != scratch && !strings.HasPrefix(target, scratch+string(os.PathSeparator)) {
		return "", fmt.Errorf("member %s escapes the extraction directory", name)
	}
	return target, nil
}

func extractMember(member *zip.File, target string) error {
	if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return err
	}

	in, err := member.Open()
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(target)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// writePackage repacks every file below scratch into a new archive. Members
// are written in lexicographic order with forward-slash names so that
// repeated runs over the same input produce byte-identical output.
func writePackage(scratch, outputPath string) error {
	var members []string
	err := filepath.WalkDir(scratch, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(scratch, path)
		if err != nil {
			return err
		}
		members = append(members, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return fmt.Errorf("unable to collect members for repacking: %s", err)
	}
	sort.Strings(members)

	out, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("unable to create output package: %s", err)
	}

	if err := writeMembers(out, scratch, members); err != nil {
		out.Close()
		os.Remove(outputPath)
		return err
	}
	return out.Close()
}

func writeMembers(out io.Writer, scratch string, members []string) error {
	zipWriter := zip.NewWriter(out)
	for _, member := range members {
		memberWriter, err := zipWriter.Create(member)
		if err != nil {
			return fmt.Errorf("unable to create member %s: %s", member, err)
		}
		data, err := os.ReadFile(filepath.Join(scratch, filepath.FromSlash(member)))
		if err != nil {
			return fmt.Errorf("unable to read back member %s: %s", member, err)
		}
		if _, err := memberWriter.Write(data); err != nil {
			return fmt.Errorf("unable to write member %s: %s", member, err)
		}
	}
	return zipWriter.Close()
}
