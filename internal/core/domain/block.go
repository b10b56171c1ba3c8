package domain

import (
	"fmt"
	"strings"
)

// Structural marker lines of a chemical table (SDF) file.
const (
	// RecordTerminator separates records in an SDF file.
	RecordTerminator = "$$$$"

	// EndOfStructure closes a molecule's structural body. MoNA exports
	// omit it; the repairer reinserts it.
	EndOfStructure = "M  END"

	// CountsMarker is the token identifying the counts line of a
	// V2000 connection table.
	CountsMarker = "V2000"

	// CommentHeader is the section header MoNA stores free-text
	// comments under. The InChI lives there rather than in its own
	// tagged section.
	CommentHeader = ">  <COMMENT>"

	// InChIPrefix is the literal prefix of a canonical InChI string.
	InChIPrefix = "InChI="
)

// RawRecord is one record's lines exactly as read from the input file,
// terminator line included.
type RawRecord struct {
	// Lines is the ordered record text, unmodified.
	Lines []string
}

// MolBlock is one molecule's textual description: title, program and
// counts header lines, atom/bond body, end-of-structure marker,
// property sections and the record terminator.
type MolBlock struct {
	// ID is the unique identifier assigned when the block passes
	// normalisation.
	ID string

	// Lines is the ordered block text.
	Lines []string
}

// Text returns the block joined into a single string, one line per row.
func (b *MolBlock) Text() string {
	return strings.Join(b.Lines, "\n")
}

// lookupRule describes how a property value is located: the section
// header line to match and how to read the value from the line that
// follows it. Tags with nonstandard storage (the InChI inside the
// comment section) override the default rule.
type lookupRule struct {
	header  string
	extract func(next string) (string, bool)
}

func defaultRule(tag PropertyTag) lookupRule {
	return lookupRule{
		header: tag.Header(),
		extract: func(next string) (string, bool) {
			return next, true
		},
	}
}

// commentInChIRule reads the InChI out of the comment section. The
// value line must start with the literal "InChI=" prefix; anything
// else in the comment is skipped.
var commentInChIRule = lookupRule{
	header: CommentHeader,
	extract: func(next string) (string, bool) {
		if !strings.HasPrefix(next, InChIPrefix) {
			return "", false
		}
		return strings.TrimPrefix(next, InChIPrefix), true
	},
}

func ruleFor(tag PropertyTag) lookupRule {
	if tag == TagInChI {
		return commentInChIRule
	}
	return defaultRule(tag)
}

// HasProperty reports whether the block carries a section header for
// the given tag. Tags outside the supported set are a programming
// error and fail with ErrUnknownTag.
func (b *MolBlock) HasProperty(tag PropertyTag) (bool, error) {
	if !tag.Valid() {
		return false, fmt.Errorf("%w: %q", ErrUnknownTag, string(tag))
	}
	for _, line := range b.Lines {
		if strings.TrimSpace(line) == tag.Header() {
			return true, nil
		}
	}
	return false, nil
}

// Property returns the value of the given tag, or "" when absent.
//
// The InChI tag is looked up even when HasProperty reports false: MoNA
// records never carry a real INCHI section, the value is embedded in
// the comment section instead (see commentInChIRule).
func (b *MolBlock) Property(tag PropertyTag) (string, error) {
	has, err := b.HasProperty(tag)
	if err != nil {
		return "", err
	}
	if !has && tag != TagInChI {
		return "", nil
	}

	rule := ruleFor(tag)
	for i, line := range b.Lines {
		if strings.TrimSpace(line) != rule.header {
			continue
		}
		if i+1 >= len(b.Lines) {
			break
		}
		if value, ok := rule.extract(b.Lines[i+1]); ok {
			return value, nil
		}
	}
	return "", nil
}

// HasAllRequired reports whether every tag in the required set is
// present on the block.
func (b *MolBlock) HasAllRequired() (bool, error) {
	for _, tag := range RequiredTags() {
		has, err := b.HasProperty(tag)
		if err != nil {
			return false, err
		}
		if !has {
			return false, nil
		}
	}
	return true, nil
}
