package chat

import (
	"regexp"
	"strings"
)

// fenceTagPattern matches an opening code fence with a language tag and
// any stray whitespace before the line break.
var fenceTagPattern = regexp.MustCompile("```" + `(\w+)\s*\n`)

// Normalize transforms a raw completion into its canonical display form:
// literal "\n" escape sequences become real line breaks and fenced code
// blocks keep their language tag with no trailing whitespace. Total and
// idempotent; the escape cleanup runs first so a fence revealed by it is
// normalized in the same pass.
func Normalize(raw string) string {
	out := strings.ReplaceAll(raw, `\n`, "\n")
	out = fenceTagPattern.ReplaceAllString(out, "```$1\n")
	return out
}

// SegmentKind discriminates the typed pieces of a normalized completion.
type SegmentKind int

const (
	SegmentText SegmentKind = iota
	SegmentCode
)

// Segment is one renderer-agnostic piece of a completion: plain prose or
// a fenced code block with its language tag.
type Segment struct {
	Kind     SegmentKind
	Language string
	Text     string
}

// SplitSegments splits normalized text into an ordered sequence of plain
// text and code block segments. An unterminated fence consumes the rest
// of the input as code.
func SplitSegments(text string) []Segment {
	var segments []Segment
	rest := text

	for {
		open := strings.Index(rest, "```")
		if open == -1 {
			break
		}

		if plain := rest[:open]; plain != "" {
			segments = append(segments, Segment{Kind: SegmentText, Text: plain})
		}

		after := rest[open+3:]
		newline := strings.Index(after, "\n")
		if newline == -1 {
			// Fence with no body; keep whatever follows as the tag.
			segments = append(segments, Segment{Kind: SegmentCode, Language: firstField(after)})
			return segments
		}

		language := firstField(after[:newline])
		body := after[newline+1:]

		closing := strings.Index(body, "```")
		if closing == -1 {
			segments = append(segments, Segment{Kind: SegmentCode, Language: language, Text: strings.TrimSuffix(body, "\n")})
			return segments
		}

		segments = append(segments, Segment{
			Kind:     SegmentCode,
			Language: language,
			Text:     strings.TrimSuffix(body[:closing], "\n"),
		})
		rest = body[closing+3:]
	}

	if rest != "" {
		segments = append(segments, Segment{Kind: SegmentText, Text: rest})
	}
	return segments
}

func firstField(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
