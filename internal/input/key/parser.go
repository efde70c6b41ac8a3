package key

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Parse errors.
var (
	ErrEmptySpec        = errors.New("empty chord specification")
	ErrInvalidSpec      = errors.New("invalid chord specification")
	ErrUnmatchedBracket = errors.New("unmatched bracket in chord specification")
)

// DefaultLeader is the leader key used when no explicit leader is
// configured. Space matches the stock configuration.
var DefaultLeader = NewSpecialEvent(KeySpace, ModNone)

// ParseSequence parses chord text into a Sequence using DefaultLeader.
func ParseSequence(spec string) (*Sequence, error) {
	return ParseSequenceWithLeader(spec, DefaultLeader)
}

// ParseSequenceWithLeader parses chord text, expanding <leader> to the
// given event.
//
// Grammar: bare characters are single-key events ("gg" is two events);
// <...> groups are one event and accept modifier prefixes and special
// key names ("<C-s>", "<A-Enter>", "<CR>", "<lt>").
func ParseSequenceWithLeader(spec string, leader Event) (*Sequence, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return nil, ErrEmptySpec
	}

	seq := NewSequence()
	for i := 0; i < len(spec); {
		if spec[i] == '<' {
			end := strings.IndexByte(spec[i:], '>')
			if end < 0 {
				return nil, fmt.Errorf("%w: %q", ErrUnmatchedBracket, spec)
			}
			inner := spec[i+1 : i+end]
			event, err := parseBracketed(inner, leader)
			if err != nil {
				return nil, err
			}
			seq.Add(event)
			i += end + 1
			continue
		}
		if spec[i] == '>' {
			return nil, fmt.Errorf("%w: %q", ErrUnmatchedBracket, spec)
		}
		r, size := utf8.DecodeRuneInString(spec[i:])
		if r == utf8.RuneError {
			return nil, fmt.Errorf("%w: bad encoding in %q", ErrInvalidSpec, spec)
		}
		seq.Add(NewRuneEvent(r))
		i += size
	}

	return seq, nil
}

// parseBracketed parses the inside of a <...> group.
func parseBracketed(inner string, leader Event) (Event, error) {
	if inner == "" {
		return Event{}, fmt.Errorf("%w: empty <> group", ErrInvalidSpec)
	}

	switch strings.ToLower(inner) {
	case "leader":
		return leader, nil
	case "lt":
		return NewRuneEvent('<'), nil
	}

	// Split off modifier prefixes: everything before the last hyphen.
	// A trailing "-" key ("<C-->") is kept as the key itself.
	parts := strings.Split(inner, "-")
	keyPart := parts[len(parts)-1]
	modParts := parts[:len(parts)-1]
	if keyPart == "" && len(modParts) > 0 {
		keyPart = "-"
		modParts = modParts[:len(modParts)-1]
	}

	var mods Modifier
	for _, p := range modParts {
		mod := modifierFromLetter(p)
		if mod == ModNone {
			return Event{}, fmt.Errorf("%w: unknown modifier %q", ErrInvalidSpec, p)
		}
		mods = mods.With(mod)
	}

	if k, ok := specialKeyNames[strings.ToLower(keyPart)]; ok {
		return NewSpecialEvent(k, mods), nil
	}

	if utf8.RuneCountInString(keyPart) == 1 {
		r, _ := utf8.DecodeRuneInString(keyPart)
		e := NewRuneEvent(r)
		e.Mods = mods
		return e, nil
	}

	return Event{}, fmt.Errorf("%w: unknown key %q", ErrInvalidSpec, keyPart)
}
