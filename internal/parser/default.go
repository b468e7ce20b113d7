package parser

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"strings"

	"git.lost.host/meutraa/fourk/internal/game"
	"github.com/pkg/errors"
)

type DefaultParser struct{}

func isHeader(line string) bool {
	return len(line) >= 2 && strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]")
}

// lines splits text into its non blank lines with line endings normalised.
func lines(text string) []string {
	text = strings.TrimPrefix(text, "\ufeff")
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	ls := []string{}
	for _, l := range strings.Split(text, "\n") {
		if strings.TrimSpace(l) == "" {
			continue
		}
		ls = append(ls, l)
	}
	return ls
}

func (p *DefaultParser) Parse(text string) (*game.Chart, error) {
	sum := sha256.Sum256([]byte(text))
	ls := lines(text)

	if len(ls) == 0 {
		return nil, &FormatError{Kind: ErrUnsupportedVersion, Line: 1}
	}
	if ls[0] != Version {
		return nil, &FormatError{Kind: ErrUnsupportedVersion, Line: 1, Text: ls[0]}
	}

	chart := game.NewChart()
	chart.Checksum = hex.EncodeToString(sum[:])

	for i := 1; i < len(ls); {
		header := ls[i]
		if !isHeader(header) {
			return nil, &FormatError{Kind: ErrExpectedSectionHeader, Line: i + 1, Text: header}
		}
		name := header[1 : len(header)-1]

		// The body runs until the next header line
		for i++; i < len(ls) && !isHeader(ls[i]); i++ {
			line := ls[i]
			var err error
			switch name {
			case "General":
				err = keyValue(chart.General, line)
			case "Metadata":
				err = keyValue(chart.Metadata, line)
			case "Difficulty":
				err = keyValue(chart.Difficulty, line)
			case "HitObjects":
				var h game.HitObject
				h, err = hitObject(line)
				if nil == err {
					chart.HitObjects = append(chart.HitObjects, h)
				}
			default:
				// Events, Backgrounds, Breaks, TimingPoints, Editor, Colours
				// and anything else are accepted but not read
			}
			if nil != err {
				if fe, ok := err.(*FormatError); ok {
					fe.Line = i + 1
					fe.Text = line
				}
				return nil, err
			}
		}
	}

	return chart, nil
}

// keyValue splits on the first ':', dropping whitespace after it.
// A repeated key replaces the earlier value.
func keyValue(section map[string]string, line string) error {
	i := strings.Index(line, ":")
	if i < 0 {
		return &FormatError{Kind: ErrMissingKey}
	}
	key := strings.TrimSpace(line[:i])
	if key == "" {
		return &FormatError{Kind: ErrMissingKey}
	}
	section[key] = strings.TrimLeft(line[i+1:], " \t")
	return nil
}

func atoi(s string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if nil != err {
		return 0, &FormatError{Kind: ErrInvalidNumber, Err: errors.Wrapf(err, "field %q", s)}
	}
	return v, nil
}

// x,y,time,type,params...:samples...
func hitObject(line string) (game.HitObject, error) {
	var h game.HitObject
	outer := strings.Split(line, ":")
	parts := strings.Split(outer[0], ",")
	if len(parts) < 4 {
		return h, &FormatError{Kind: ErrMissingKey, Err: errors.Errorf("hit object has %d fields, need at least 4", len(parts))}
	}

	var err error
	if h.X, err = atoi(parts[0]); nil != err {
		return h, err
	}
	if h.Time, err = atoi(parts[2]); nil != err {
		return h, err
	}
	if h.Type, err = atoi(parts[3]); nil != err {
		return h, err
	}

	for _, part := range parts[4:] {
		if strings.TrimSpace(part) == "" {
			continue
		}
		v, err := atoi(part)
		if nil != err {
			return h, err
		}
		h.Params = append(h.Params, v)
	}

	samples := outer[1:]
	for i, part := range samples {
		if strings.TrimSpace(part) == "" {
			continue
		}
		v, err := atoi(part)
		if nil != err {
			// The last component may name a custom sample file
			if i == len(samples)-1 {
				h.SampleFile = part
				break
			}
			return h, err
		}
		h.Sample = append(h.Sample, v)
	}

	return h, nil
}
