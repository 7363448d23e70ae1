package lrtest

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"unicode"
)

// TestCase is one golden test: a human-readable description, a literal
// token stream to feed the driver, and the expected concrete syntax
// tree, all read from a single `---`-delimited file.
type TestCase struct {
	Description string
	Tokens      string
	Expected    *Tree
}

var reDelim = regexp.MustCompile(`^\s*---+\s*$`)

// ParseTestCase reads a three-part test case file: description, token
// stream, and an S-expression tree, each separated by a line of three
// or more dashes.
func ParseTestCase(r io.Reader) (*TestCase, error) {
	parts, err := splitIntoParts(r)
	if err != nil {
		return nil, err
	}
	if len(parts) != 3 {
		return nil, fmt.Errorf("a test case needs exactly 3 parts (description, tokens, tree); found %d", len(parts))
	}

	tree, err := parseSExprTree(string(parts[2]))
	if err != nil {
		return nil, fmt.Errorf("malformed expected tree: %w", err)
	}

	return &TestCase{
		Description: string(parts[0]),
		Tokens:      string(parts[1]),
		Expected:    tree.Fill(),
	}, nil
}

func splitIntoParts(r io.Reader) ([][]byte, error) {
	var parts [][]byte
	s := bufio.NewScanner(r)
	for {
		part, ok, err := readPart(s)
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		parts = append(parts, part)
	}
	return parts, s.Err()
}

func readPart(s *bufio.Scanner) ([]byte, bool, error) {
	if !s.Scan() {
		return nil, false, s.Err()
	}
	var buf bytes.Buffer
	line := s.Bytes()
	if reDelim.Match(line) {
		return []byte{}, true, nil
	}
	buf.Write(line)
	for s.Scan() {
		line := s.Bytes()
		if reDelim.Match(line) {
			return buf.Bytes(), true, nil
		}
		buf.WriteByte('\n')
		buf.Write(line)
	}
	return buf.Bytes(), true, s.Err()
}

// parseSExprTree parses the small notation Tree.Format emits:
// `(kind "lexeme"? child*)`, whitespace-separated, no escaping beyond
// Go's own quoted-string syntax.
func parseSExprTree(src string) (*Tree, error) {
	p := &sexprParser{src: src}
	p.skipSpace()
	t, err := p.parseNode()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.pos != len(p.src) {
		return nil, fmt.Errorf("trailing input at offset %d", p.pos)
	}
	return t, nil
}

type sexprParser struct {
	src string
	pos int
}

func (p *sexprParser) skipSpace() {
	for p.pos < len(p.src) && unicode.IsSpace(rune(p.src[p.pos])) {
		p.pos++
	}
}

func (p *sexprParser) parseNode() (*Tree, error) {
	if p.pos >= len(p.src) || p.src[p.pos] != '(' {
		return nil, fmt.Errorf("expected '(' at offset %d", p.pos)
	}
	p.pos++
	p.skipSpace()

	kind, err := p.parseBareword()
	if err != nil {
		return nil, err
	}

	var lexeme string
	hasLexeme := false
	p.skipSpace()
	if p.pos < len(p.src) && p.src[p.pos] == '"' {
		lexeme, err = p.parseQuoted()
		if err != nil {
			return nil, err
		}
		hasLexeme = true
	}

	var children []*Tree
	for {
		p.skipSpace()
		if p.pos < len(p.src) && p.src[p.pos] == '(' {
			child, err := p.parseNode()
			if err != nil {
				return nil, err
			}
			children = append(children, child)
			continue
		}
		break
	}

	p.skipSpace()
	if p.pos >= len(p.src) || p.src[p.pos] != ')' {
		return nil, fmt.Errorf("expected ')' at offset %d", p.pos)
	}
	p.pos++

	if hasLexeme {
		return NewTerminalTree(kind, lexeme), nil
	}
	return NewNonTerminalTree(kind, children...), nil
}

func (p *sexprParser) parseBareword() (string, error) {
	start := p.pos
	for p.pos < len(p.src) && !unicode.IsSpace(rune(p.src[p.pos])) && p.src[p.pos] != '(' && p.src[p.pos] != ')' {
		p.pos++
	}
	if p.pos == start {
		return "", fmt.Errorf("expected a symbol name at offset %d", p.pos)
	}
	return p.src[start:p.pos], nil
}

func (p *sexprParser) parseQuoted() (string, error) {
	start := p.pos
	for end := p.pos + 1; end <= len(p.src); end++ {
		if end == len(p.src) {
			return "", fmt.Errorf("unterminated string starting at offset %d", start)
		}
		if p.src[end] == '"' && p.src[end-1] != '\\' {
			text := p.src[start : end+1]
			p.pos = end + 1
			return strconv.Unquote(text)
		}
	}
	return "", fmt.Errorf("unterminated string starting at offset %d", start)
}
