package helix

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

// stderr is for logging to Stderr (without an annoying timestamp)
var stderr = log.New(os.Stderr, "", 0)

// SeqRecord is a named sequence parsed from a FASTA or GenBank file
type SeqRecord struct {
	// ID of the record. In a ">example" FASTA record it's "example"
	ID string

	// Seq of the record
	Seq string

	// Circular is true when the source file marks the sequence circular
	Circular bool
}

// read a FASTA or GenBank file (by its path on the local FS) to a slice
// of SeqRecords. When feature is true, a GenBank file's features are
// returned rather than its full sequence
func read(path string, feature bool) (records []SeqRecord, err error) {
	if !filepath.IsAbs(path) {
		path, err = filepath.Abs(path)
		if err != nil {
			return nil, fmt.Errorf("failed to create path to input file: %s", err)
		}
	}

	dat, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read input file: %s", err)
	}
	file := string(dat)

	lowerPath := strings.ToLower(path)
	if strings.HasSuffix(lowerPath, "fa") || strings.HasSuffix(lowerPath, "fasta") || (len(file) > 0 && file[0] == '>') {
		return readFasta(path, file)
	}

	if strings.HasSuffix(lowerPath, "gb") || strings.HasSuffix(lowerPath, "gbk") || strings.HasSuffix(lowerPath, "genbank") || strings.HasPrefix(file, "LOCUS") {
		return readGenbank(path, file, feature)
	}

	return nil, fmt.Errorf("failed to parse %s: unrecognized file type", path)
}

// readFasta parses a multi-FASTA file's records
func readFasta(path, contents string) (records []SeqRecord, err error) {
	lines := strings.Split(contents, "\n")

	// find the header lines
	var headerIndices []int
	var ids []string
	for i, line := range lines {
		if strings.HasPrefix(line, ">") {
			headerIndices = append(headerIndices, i)
			ids = append(ids, strings.Fields(line[1:])[0])
		}
	}

	// non-sequence characters are stripped, ambiguity codes are kept
	unwantedChars := regexp.MustCompile(`(?im)[^acgtryswkmbvdhn]`)

	// accumulate the sequences from between the headers
	var seqs []string
	for i, headerIndex := range headerIndices {
		nextLine := len(lines)
		if i < len(headerIndices)-1 {
			nextLine = headerIndices[i+1]
		}
		seqJoined := strings.Join(lines[headerIndex+1:nextLine], "")
		seqs = append(seqs, strings.ToUpper(unwantedChars.ReplaceAllString(seqJoined, "")))
	}

	for i, id := range ids {
		records = append(records, SeqRecord{
			ID:  id,
			Seq: seqs[i],
		})
	}

	// opened and parsed file but found nothing
	if len(records) < 1 {
		return nil, fmt.Errorf("failed to parse record(s) from %s", path)
	}

	return
}

// readGenbank parses a GenBank file. Returns either the file's sequence or
// its features, depending on the feature parameter
func readGenbank(path, contents string, feature bool) (records []SeqRecord, err error) {
	genbankSplit := strings.Split(contents, "ORIGIN")
	if len(genbankSplit) != 2 {
		return nil, fmt.Errorf("failed to parse %s: improperly formatted genbank file", path)
	}

	seq := strings.ToUpper(genbankSplit[1])
	nonBpRegex := regexp.MustCompile("[^ACGTRYSWKMBVDHN]")
	cleanedSeq := nonBpRegex.ReplaceAllString(seq, "")

	circular := regexp.MustCompile(`LOCUS.*circular`).MatchString(genbankSplit[0])

	if feature {
		// parse each feature to a record
		splitOnFeatures := strings.Split(genbankSplit[0], "FEATURES")
		if len(splitOnFeatures) < 2 {
			return nil, fmt.Errorf("failed to parse features from %s", path)
		}

		featureSplitRegex := regexp.MustCompile(`\w+\s+\w+`)
		featureStrings := featureSplitRegex.Split(splitOnFeatures[1], -1)

		rangeRegex := regexp.MustCompile(`(\d+)\.\.(\d+)`)
		labelRegex := regexp.MustCompile(`/label="?([^"\n]+)"?`)

		for featureIndex, f := range featureStrings {
			rangeIndexes := rangeRegex.FindStringSubmatch(f)
			if len(rangeIndexes) < 3 {
				continue
			}

			start, err := strconv.Atoi(rangeIndexes[1])
			if err != nil {
				return nil, err
			}
			end, err := strconv.Atoi(rangeIndexes[2])
			if err != nil {
				return nil, err
			}
			if start < 1 || end > len(cleanedSeq) || start > end {
				continue
			}

			label := strconv.Itoa(featureIndex)
			if labelMatch := labelRegex.FindStringSubmatch(f); len(labelMatch) > 1 {
				label = labelMatch[1]
			}

			records = append(records, SeqRecord{
				ID:       label,
				Seq:      cleanedSeq[start-1 : end], // make 0-indexed
				Circular: circular,
			})
		}

		return records, nil
	}

	// parse just the file's sequence
	idRegex := regexp.MustCompile(`LOCUS[ \t]+([^ \t]+)`)
	idMatch := idRegex.FindStringSubmatch(genbankSplit[0])
	if len(idMatch) < 2 {
		return nil, fmt.Errorf("failed to parse locus from %s", path)
	}

	return []SeqRecord{
		{
			ID:       idMatch[1],
			Seq:      cleanedSeq,
			Circular: circular,
		},
	}, nil
}

// readTarget gets the target sequence for a command: the first argument,
// or the first record of the file passed with --in
func readTarget(cmd *cobra.Command, args []string) (name, seq string, circular bool) {
	if len(args) > 0 {
		return "", args[0], false
	}

	in, err := cmd.Flags().GetString("in")
	if in == "" || err != nil {
		cmd.Help()
		stderr.Fatalln("must pass a file with a sequence or the sequence as an argument.")
	}

	records, err := read(in, false)
	if err != nil {
		stderr.Fatalln(err)
	}
	return records[0].ID, records[0].Seq, records[0].Circular
}

// writeGenbank writes a sequence and its annotation hits to a GenBank file
func writeGenbank(filename, name, seq string, circular bool, hits []AnnotationHit) {
	if name == "" {
		name = "helix_annotate"
	}

	topology := "linear"
	if circular {
		topology = "circular"
	}

	// header row
	d := time.Now().Local()
	header := fmt.Sprintf(
		"LOCUS       %s        %d bp DNA      %s      %s\n",
		name, len(seq), topology, strings.ToUpper(d.Format("02-Jan-2006")),
	)

	// feature rows
	var fsb strings.Builder
	fsb.WriteString("DEFINITION  .\nACCESSION   .\nFEATURES             Location/Qualifiers\n")
	for _, h := range hits {
		location := fmt.Sprintf("%d..%d", h.TargetStart+1, h.TargetEnd)
		if h.ReverseComplement {
			location = "complement(" + location + ")"
		}

		fsb.WriteString(
			fmt.Sprintf("     misc_feature    %s\n", location) +
				fmt.Sprintf("                     /label=\"%s\"\n", h.Name),
		)
	}

	// origin rows, 60 bp per line in blocks of 10
	var ori strings.Builder
	ori.WriteString("ORIGIN\n")
	for i := 0; i < len(seq); i += 60 {
		n := strconv.Itoa(i + 1)
		ori.WriteString(strings.Repeat(" ", 9-len(n)) + n)
		for s := i; s < i+60 && s < len(seq); s += 10 {
			e := s + 10
			if e > len(seq) {
				e = len(seq)
			}
			ori.WriteString(" " + seq[s:e])
		}
		ori.WriteString("\n")
	}
	ori.WriteString("//\n")

	gb := header + fsb.String() + ori.String()
	if err := os.WriteFile(filename, []byte(gb), 0644); err != nil {
		stderr.Fatalln(err)
	}
}

// hitsOutput is the JSON document written for an annotation run
type hitsOutput struct {
	// Target name, from the input file
	Target string `json:"target"`

	// TargetSeq that was annotated
	TargetSeq string `json:"seq"`

	// Time the annotation was run, ex "2018-01-01 20:41:00"
	Time string `json:"time"`

	// Hits found on the target
	Hits []AnnotationHit `json:"hits"`
}

// writeHitsJSON writes annotation hits to a JSON output file
func writeHitsJSON(filename, name, seq string, hits []AnnotationHit) {
	t := time.Now()
	out := hitsOutput{
		Target:    name,
		TargetSeq: seq,
		Time:      fmt.Sprintf("%d/%02d/%02d %02d:%02d:%02d", t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second()),
		Hits:      hits,
	}

	output, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		stderr.Fatalf("failed to serialize the annotation output: %v", err)
	}

	if err := os.WriteFile(filename, output, 0644); err != nil {
		stderr.Fatalf("failed to write the annotation output: %v", err)
	}
}
