package normalize

import (
	"archive/zip"
	"fmt"
	"io"
	"sort"
	"strings"
	"unicode/utf8"
)

// MemberReport describes the rewritable tags found in one XML member.
type MemberReport struct {
	Name string
	Tags []Tag
	// Text holds the member's plaintext when requested via ScanPackage.
	Text string
}

// ScanPackage reports the section tags of every XML member without writing
// anything. With withText set, each report also carries the member's
// plaintext so tags can be read in context. Reports are sorted by member
// name.
func (n *Normalizer) ScanPackage(inputPath string, withText bool) ([]MemberReport, error) {
	reader, err := zip.OpenReader(inputPath)
	if err != nil {
		return nil, fmt.Errorf("unable to open package %s: %s", inputPath, err)
	}
	defer reader.Close()

	var reports []MemberReport
	for _, member := range reader.File {
		if member.FileInfo().IsDir() || !strings.HasSuffix(member.Name, XMLSuffix) {
			continue
		}
		data, err := readMember(member)
		if err != nil {
			n.log.Warn("could not read member, skipping it", "member", member.Name, "error", err)
			continue
		}
		if !utf8.Valid(data) {
			n.log.Warn("member is not valid UTF-8, skipping it", "member", member.Name)
			continue
		}

		text := string(data)
		report := MemberReport{Name: member.Name, Tags: FindTags(text)}
		if withText {
			report.Text = Plaintext(text)
		}
		reports = append(reports, report)
	}

	sort.Slice(reports, func(i, j int) bool { return reports[i].Name < reports[j].Name })
	return reports, nil
}

func readMember(member *zip.File) ([]byte, error) {
	rc, err := member.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}
