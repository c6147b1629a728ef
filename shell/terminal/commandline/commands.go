// This file is part of emu6502.
//
// emu6502 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// emu6502 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with emu6502.  If not, see <https://www.gnu.org/licenses/>.

package commandline

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/emu6502/emu6502/curated"
)

// Sentinal error patterns.
const (
	ErrTemplate       = "template: %s: %s"
	ErrUnrecognised   = "unrecognised command (%s)"
	ErrMissingArgs    = "%s: missing argument (%s)"
	ErrTooManyArgs    = "%s: too many arguments (%s)"
	ErrInvalidArgs    = "%s: invalid argument (%s)"
	ErrNoInput        = "no input"
	ErrHelpDuplicated = "%s: already defined"
)

// list of placeholder tags.
const (
	placeholderNumeric  = "%N"
	placeholderString   = "%S"
	placeholderFilename = "%F"
)

// argument is one position in a command template.
type argument struct {
	// keywords and placeholders that can appear in this position
	options []string

	optional bool
}

func (arg argument) String() string {
	s := strings.Join(arg.options, "|")
	if arg.optional {
		return fmt.Sprintf("(%s)", s)
	}
	if len(arg.options) > 1 {
		return fmt.Sprintf("[%s]", s)
	}
	return s
}

// label returns the argument in a form suitable for error messages.
func (arg argument) label() string {
	labels := make([]string, len(arg.options))
	for i, o := range arg.options {
		switch o {
		case placeholderNumeric:
			labels[i] = "numeric argument"
		case placeholderString:
			labels[i] = "string argument"
		case placeholderFilename:
			labels[i] = "filename argument"
		default:
			labels[i] = o
		}
	}
	return strings.Join(labels, " or ")
}

// match returns true if the token is acceptable for the argument.
func (arg argument) match(tok string) bool {
	for _, o := range arg.options {
		switch o {
		case placeholderNumeric:
			if _, err := ParseNumber(tok); err == nil {
				return true
			}
		case placeholderString, placeholderFilename:
			return true
		default:
			if strings.EqualFold(o, tok) {
				return true
			}
		}
	}
	return false
}

// keywords returns the non-placeholder options for the argument.
func (arg argument) keywords() []string {
	var k []string
	for _, o := range arg.options {
		if !strings.HasPrefix(o, "%") {
			k = append(k, o)
		}
	}
	return k
}

// command is a single parsed entry of a command template.
type command struct {
	tag  string
	args []argument
}

func (cmd command) String() string {
	s := strings.Builder{}
	s.WriteString(cmd.tag)
	for _, a := range cmd.args {
		s.WriteString(" ")
		s.WriteString(a.String())
	}
	return s.String()
}

// Commands is the result of parsing a command template.
type Commands struct {
	index map[string]*command
	cmds  []*command

	helpCommand string
	helps       map[string]string
}

// ParseCommandTemplate turns a list of command definitions into a Commands
// instance.
func ParseCommandTemplate(template []string) (*Commands, error) {
	cmds := &Commands{
		index: make(map[string]*command),
	}

	for _, t := range template {
		cmd, err := parseDefinition(t)
		if err != nil {
			return nil, err
		}
		if _, ok := cmds.index[cmd.tag]; ok {
			return nil, curated.Errorf(ErrTemplate, cmd.tag, "duplicate command")
		}
		cmds.index[cmd.tag] = cmd
		cmds.cmds = append(cmds.cmds, cmd)
	}

	sort.Slice(cmds.cmds, func(i, j int) bool {
		return cmds.cmds[i].tag < cmds.cmds[j].tag
	})

	return cmds, nil
}

func parseDefinition(defn string) (*command, error) {
	fields := strings.Fields(defn)
	if len(fields) == 0 {
		return nil, curated.Errorf(ErrTemplate, defn, "empty definition")
	}

	cmd := &command{tag: strings.ToUpper(fields[0])}
	if strings.ContainsAny(cmd.tag, "%[]()|") {
		return nil, curated.Errorf(ErrTemplate, defn, "command must be a keyword")
	}

	var optional bool
	for _, f := range fields[1:] {
		var arg argument

		switch {
		case strings.HasPrefix(f, "(") && strings.HasSuffix(f, ")"):
			arg.optional = true
			f = f[1 : len(f)-1]
		case strings.HasPrefix(f, "[") && strings.HasSuffix(f, "]"):
			f = f[1 : len(f)-1]
		case strings.ContainsAny(f, "[]()"):
			return nil, curated.Errorf(ErrTemplate, defn, "unbalanced group")
		}

		if arg.optional {
			optional = true
		} else if optional {
			return nil, curated.Errorf(ErrTemplate, defn, "required argument after optional argument")
		}

		for _, o := range strings.Split(f, "|") {
			if o == "" {
				return nil, curated.Errorf(ErrTemplate, defn, "empty option")
			}
			if strings.HasPrefix(o, "%") {
				switch o {
				case placeholderNumeric, placeholderString, placeholderFilename:
				default:
					return nil, curated.Errorf(ErrTemplate, defn, fmt.Sprintf("unknown placeholder %s", o))
				}
			} else {
				o = strings.ToUpper(o)
			}
			arg.options = append(arg.options, o)
		}

		cmd.args = append(cmd.args, arg)
	}

	return cmd, nil
}

func (cmds Commands) String() string {
	s := make([]string, len(cmds.cmds))
	for i, c := range cmds.cmds {
		s[i] = c.String()
	}
	return strings.Join(s, "\n")
}

// Len returns the number of commands.
func (cmds Commands) Len() int {
	return len(cmds.cmds)
}

// ValidateTokens checks whether tokens represents a valid command. The
// traversal position of the tokens is reset before and after validation.
func (cmds Commands) ValidateTokens(tokens *Tokens) error {
	tokens.Reset()
	defer tokens.Reset()

	tok, ok := tokens.Get()
	if !ok {
		return curated.Errorf(ErrNoInput)
	}

	cmd, ok := cmds.index[strings.ToUpper(tok)]
	if !ok {
		return curated.Errorf(ErrUnrecognised, tok)
	}

	for _, arg := range cmd.args {
		tok, ok := tokens.Get()
		if !ok {
			if arg.optional {
				return nil
			}
			return curated.Errorf(ErrMissingArgs, cmd.tag, arg.label())
		}
		if !arg.match(tok) {
			return curated.Errorf(ErrInvalidArgs, cmd.tag, tok)
		}
	}

	if tokens.Remaining() > 0 {
		return curated.Errorf(ErrTooManyArgs, cmd.tag, tokens.Remainder())
	}

	return nil
}

// AddHelp adds a help command to the Commands instance. The help command
// takes an optional argument, which is any of the other commands. The helps
// map is keyed by command and is used by the Help() function.
func (cmds *Commands) AddHelp(helpCommand string, helps map[string]string) error {
	helpCommand = strings.ToUpper(helpCommand)
	if _, ok := cmds.index[helpCommand]; ok {
		return curated.Errorf(ErrHelpDuplicated, helpCommand)
	}

	arg := argument{optional: true}
	for _, c := range cmds.cmds {
		arg.options = append(arg.options, c.tag)
	}
	arg.options = append(arg.options, helpCommand)

	cmd := &command{tag: helpCommand, args: []argument{arg}}
	cmds.index[helpCommand] = cmd
	cmds.cmds = append(cmds.cmds, cmd)
	sort.Slice(cmds.cmds, func(i, j int) bool {
		return cmds.cmds[i].tag < cmds.cmds[j].tag
	})

	cmds.helpCommand = helpCommand
	cmds.helps = helps

	return nil
}

// HelpOverview returns a columnised list of all commands.
func (cmds Commands) HelpOverview() string {
	longest := 0
	for _, c := range cmds.cmds {
		longest = max(longest, len(c.tag))
	}

	colWidth := longest + 3
	cols := max(80/colWidth, 1)

	s := strings.Builder{}
	for i, c := range cmds.cmds {
		s.WriteString(fmt.Sprintf("%-*s", colWidth, c.tag))
		if i%cols == cols-1 {
			s.WriteString("\n")
		}
	}

	// trailing white space is removed from every line
	lines := strings.Split(s.String(), "\n")
	for i := range lines {
		lines[i] = strings.TrimRight(lines[i], " ")
	}
	return strings.TrimRight(strings.Join(lines, "\n"), "\n")
}

// Help returns the help and usage for the command.
func (cmds Commands) Help(keyword string) string {
	keyword = strings.ToUpper(keyword)

	s := strings.Builder{}
	if txt, ok := cmds.helps[keyword]; ok {
		s.WriteString(txt)
	} else {
		s.WriteString(fmt.Sprintf("no help for %s", keyword))
	}

	if cmd, ok := cmds.index[keyword]; ok {
		s.WriteString("\n\n  Usage: ")
		s.WriteString(cmd.String())
	}

	return s.String()
}

// ParseNumber converts a numeric argument to an integer. Hexadecimal numbers
// are indicated by the prefix 0x or $.
func ParseNumber(s string) (int, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "$") {
		s = "0x" + s[1:]
	}
	n, err := strconv.ParseInt(s, 0, 32)
	if err != nil {
		return 0, curated.Errorf("commandline: %v", err)
	}
	return int(n), nil
}
