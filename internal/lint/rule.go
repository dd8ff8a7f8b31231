package lint

import (
	"fmt"
	"regexp"

	"github.com/mikededo/sort-svelte-attributes/internal/sorting/interfaces"
)

// Rule checks the tags of one file
type Rule interface {
	Name() string
	Description() string
	// Messages maps message ids to templates with {{placeholders}}
	Messages() map[string]string
	// Check inspects one tag and reports through ctx
	Check(ctx *Context, tag interfaces.Tag) error
}

// Diagnostic is one reported problem
type Diagnostic struct {
	Rule      string
	MessageID string
	Message   string
	Data      map[string]string
	Filename  string
	Pos       interfaces.Position
	End       interfaces.Position
	Fix       *Fix
}

// Descriptor is what a rule passes to Context.Report
type Descriptor struct {
	MessageID string
	Data      map[string]string
	Node      interfaces.Node
	Fix       func(fixer interfaces.Fixer) ([]interfaces.Edit, error)
}

// Context is the per-file state shared by the rules checking it
type Context struct {
	Filename    string
	Source      interfaces.SourceCode
	rule        Rule
	diagnostics []Diagnostic
}

// NewContext creates a context for one file
func NewContext(filename string, source interfaces.SourceCode) *Context {
	return &Context{Filename: filename, Source: source}
}

// ForRule scopes the following reports to r
func (c *Context) ForRule(r Rule) *Context {
	c.rule = r
	return c
}

// Diagnostics returns everything reported so far
func (c *Context) Diagnostics() []Diagnostic {
	return c.diagnostics
}

// Report records a diagnostic for the current rule
func (c *Context) Report(d Descriptor) error {
	if c.rule == nil {
		return fmt.Errorf("report outside of a rule")
	}

	template, ok := c.rule.Messages()[d.MessageID]
	if !ok {
		return fmt.Errorf("rule %s has no message %q", c.rule.Name(), d.MessageID)
	}

	diagnostic := Diagnostic{
		Rule:      c.rule.Name(),
		MessageID: d.MessageID,
		Message:   Interpolate(template, d.Data),
		Data:      d.Data,
		Filename:  c.Filename,
		Pos:       d.Node.Loc().Start,
		End:       d.Node.Loc().End,
	}

	if d.Fix != nil {
		edits, err := d.Fix(Fixer{})
		if err != nil {
			return fmt.Errorf("building fix for %s: %w", c.rule.Name(), err)
		}
		fix, err := MergeEdits(c.Source.Text(), edits)
		if err != nil {
			return fmt.Errorf("merging fix for %s: %w", c.rule.Name(), err)
		}
		diagnostic.Fix = fix
	}

	c.diagnostics = append(c.diagnostics, diagnostic)
	return nil
}

var placeholder = regexp.MustCompile(`\{\{\s*([^{}]+?)\s*\}\}`)

// Interpolate fills {{name}} placeholders from data. Unknown placeholders
// are left as they are.
func Interpolate(template string, data map[string]string) string {
	return placeholder.ReplaceAllStringFunc(template, func(match string) string {
		key := placeholder.FindStringSubmatch(match)[1]
		if value, ok := data[key]; ok {
			return value
		}
		return match
	})
}
