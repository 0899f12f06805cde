// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/slices"
)

type Id int

const (
	ConfigLoadFailedId Id = iota + 1
	ConfigParseErrorId
	CommandNotDefinedId
	UnknownParameterId
	AmbiguousParameterId
	ParameterValueId
	ExecutableNotFoundId
	PermissionDeniedId
)

type MarkdownMsg string

type HttpLink string

type Issue struct {
	id    Id          // ID used to lookup the issue
	mdMsg MarkdownMsg // Markdown text that will be rendered
	links []HttpLink  // external references listed under "See also"
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) Links() []HttpLink {
	return slices.Clone(i.links)
}

// Render renders the guide for the terminal. program replaces every
// occurrence of the canonical program name, so that examples match the name
// the binary was invoked as.
func (i *Issue) Render(program, stylePath string) (string, error) {
	md := string(i.mdMsg)
	if program != "" && program != canonicalProgram {
		md = strings.ReplaceAll(md, canonicalProgram, program)
	}

	if links := i.Links(); len(links) > 0 {
		md += "\n\n## See also\n"
		for _, link := range links {
			md += "\n- <" + string(link) + ">"
		}
	}
	return render(md, stylePath)
}

const canonicalProgram = "shrun"

var (
	render = glamour.Render

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load configuration!

The configuration file could not be read.

## Configuration file locations:
- Linux: ~/.config/shrun/config.toml (or $XDG_CONFIG_HOME/shrun/config.toml)
- macOS: ~/Library/Application Support/shrun/config.toml
- Windows: %APPDATA%\shrun\config.toml

The directory is named after the program, so a symlink called ` + "`gx`" + ` reads
~/.config/gx/config.toml.

## Things you can try:
- Check that the file exists and is readable
- Point to a file explicitly:
~~~
$ shrun --config ./config.toml --list
~~~`,
		links: []HttpLink{
			"https://specifications.freedesktop.org/basedir-spec/latest/",
		},
	}

	configParseErrorIssue = &Issue{
		id: ConfigParseErrorId,
		mdMsg: `
# Failed to parse configuration!

Your config.toml contains syntax errors or keys that are not part of the format.

## Common issues:
- Invalid TOML syntax (unbalanced brackets, missing quotes)
- A [command.<name>] table without a base
- An empty placeholder
- Misspelled tables (headparam instead of headparams)
- An env table with an unknown op

## Example configuration:
~~~toml
[default]
placeholder = "{}"

[command.gc]
base = ["git", "commit"]

[command.gc.middleparams]
msg = ["-m", "{}"]
amend = "--amend"

[command.gc.env]
GIT_EDITOR = "vim"
PATH = { op = "append", value = "/opt/git/bin", separator = ":" }
~~~`,
		links: []HttpLink{
			"https://toml.io/en/v1.0.0",
		},
	}

	commandNotDefinedIssue = &Issue{
		id: CommandNotDefinedId,
		mdMsg: `
# Command not defined!

The command you specified has no [command.<name>] table in your configuration.

## Things you can try:
- List all defined commands:
~~~
$ shrun --list
~~~

- Check for typos in the command name
- Run the executable directly, without a definition:
~~~
$ shrun --passthrough htop
~~~

- Or enable passthrough for every undefined command:
~~~toml
[default]
passthrough_unknown_command = true
~~~`,
	}

	unknownParameterIssue = &Issue{
		id: UnknownParameterId,
		mdMsg: `
# Unknown parameter!

Parameters are written as ` + "`name`" + ` or ` + "`name=value`" + ` and must be declared in
one of the headparams, middleparams or tailparams tables of the command.

## Things you can try:
- Show the parameters of the command:
~~~
$ shrun --list <command>
~~~

- Forward arguments that are not parameters after ` + "`--`" + `:
~~~
$ shrun gc msg=wip -- --no-verify
~~~`,
	}

	ambiguousParameterIssue = &Issue{
		id: AmbiguousParameterId,
		mdMsg: `
# Ambiguous parameter placement!

The parameter is declared in more than one of headparams, middleparams and
tailparams, so its position in the command line is undefined.

## Things you can try:
- Keep the parameter in a single table and rename the others`,
	}

	parameterValueIssue = &Issue{
		id: ParameterValueId,
		mdMsg: `
# Parameter value mismatch!

A parameter takes a value exactly when one of its templates contains the
placeholder.

## Things you can try:
- Pass a value with ` + "`name=value`" + ` when a template contains the placeholder
- Pass a bare ` + "`name`" + ` for flag-like parameters
- Check which placeholder applies with:
~~~
$ shrun --list <command>
~~~`,
	}

	executableNotFoundIssue = &Issue{
		id: ExecutableNotFoundId,
		mdMsg: `
# Executable not found!

The first base token of the command was not found in your PATH.

## Things you can try:
- Check the base of the command:
~~~
$ shrun --list <command>
~~~

- Install the program or add its directory to PATH with an env table:
~~~toml
[command.<name>.env]
PATH = { op = "append", value = "/opt/tool/bin", separator = ":" }
~~~`,
		links: []HttpLink{
			"https://man7.org/linux/man-pages/man3/exec.3.html",
		},
	}

	permissionDeniedIssue = &Issue{
		id: PermissionDeniedId,
		mdMsg: `
# Permission denied!

The executable exists but could not be run.

## Common causes:
- The file is not executable
- The path points to a directory
- The file system is mounted noexec

## Things you can try:
- Check file permissions:
~~~
$ chmod +x /path/to/tool
~~~`,
		links: []HttpLink{
			"https://man7.org/linux/man-pages/man2/execve.2.html",
		},
	}

	issues = map[Id]*Issue{
		configLoadFailedIssue.Id():   configLoadFailedIssue,
		configParseErrorIssue.Id():   configParseErrorIssue,
		commandNotDefinedIssue.Id():  commandNotDefinedIssue,
		unknownParameterIssue.Id():   unknownParameterIssue,
		ambiguousParameterIssue.Id(): ambiguousParameterIssue,
		parameterValueIssue.Id():     parameterValueIssue,
		executableNotFoundIssue.Id(): executableNotFoundIssue,
		permissionDeniedIssue.Id():   permissionDeniedIssue,
	}
)

func Get(id Id) *Issue {
	return issues[id]
}
