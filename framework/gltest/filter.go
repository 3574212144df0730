package gltest

import (
	"fmt"
	"regexp"
	"strings"
)

// CasePattern is one wildcard pattern matched against full dotted case paths,
// e.g. "dEQP-GLES2.info.*". '*' matches any run of characters including
// separators, '?' matches exactly one character; everything else is literal.
type CasePattern struct {
	raw string
	rx  *regexp.Regexp
}

// ParseCasePattern compiles a wildcard pattern.
func ParseCasePattern(s string) (CasePattern, error) {
	if s == "" {
		return CasePattern{}, fmt.Errorf("empty case pattern")
	}
	var sb strings.Builder
	sb.WriteString("^")
	for _, r := range s {
		switch r {
		case '*':
			sb.WriteString(".*")
		case '?':
			sb.WriteString(".")
		default:
			sb.WriteString(regexp.QuoteMeta(string(r)))
		}
	}
	sb.WriteString("$")
	rx, err := regexp.Compile(sb.String())
	if err != nil {
		return CasePattern{}, fmt.Errorf("invalid case pattern %q: %w", s, err)
	}
	return CasePattern{raw: s, rx: rx}, nil
}

func (p CasePattern) Match(path string) bool {
	return p.rx != nil && p.rx.MatchString(path)
}

func (p CasePattern) String() string { return p.raw }

// CasePatternList holds the configured case filter. It implements flag.Value
// so the command line parser can feed it directly; each Set call may contain
// several comma-separated patterns, matching the dEQP convention.
type CasePatternList []CasePattern

func (l *CasePatternList) Set(value string) error {
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		p, err := ParseCasePattern(part)
		if err != nil {
			return err
		}
		*l = append(*l, p)
	}
	return nil
}

func (l CasePatternList) String() string {
	ss := make([]string, 0, len(l))
	for _, p := range l {
		ss = append(ss, p.String())
	}
	return strings.Join(ss, ",")
}

// IsDefined reports whether any pattern was configured.
func (l CasePatternList) IsDefined() bool { return len(l) != 0 }

// Match reports whether the case path is selected. An empty list selects
// everything.
func (l CasePatternList) Match(path string) bool {
	if len(l) == 0 {
		return true
	}
	for _, p := range l {
		if p.Match(path) {
			return true
		}
	}
	return false
}
